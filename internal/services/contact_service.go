package services

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"panchmev/internal/models"
	"panchmev/internal/repositories"
)

// ContactService handles business logic for contact messages.
type ContactService struct {
	repo   repositories.ContactRepository
	events EventPublisher
}

// NewContactService creates a new ContactService. events may be nil.
func NewContactService(repo repositories.ContactRepository, events EventPublisher) *ContactService {
	return &ContactService{
		repo:   repo,
		events: events,
	}
}

// Submit stores a message from the public contact form and publishes a
// contact.created event. Event publication is best effort: the form
// submission already succeeded once the row is stored.
func (s *ContactService) Submit(msg *models.ContactMessage) error {
	if err := s.repo.Create(msg); err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}

	if s.events != nil {
		payload := map[string]interface{}{
			"contactID": msg.ID,
			"email":     msg.Email,
			"name":      strings.TrimSpace(msg.FirstName + " " + msg.LastName),
			"interest":  msg.ProductInterest,
		}
		body, err := json.Marshal(payload)
		if err != nil {
			log.Printf("Failed to marshal contact event: %v", err)
		} else if err := s.events.Publish(EventContactCreated, body); err != nil {
			log.Printf("Warning: failed to publish contact created event for %s: %v", msg.ID, err)
		}
	}
	return nil
}

// List returns all messages matching query, newest first. An empty
// query returns everything; there is no pagination.
func (s *ContactService) List(query string) ([]models.ContactMessage, error) {
	messages, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	return FilterMessages(messages, query), nil
}

// Update replaces the editable fields of one message, keeping its ID
// and creation time.
func (s *ContactService) Update(id string, fields models.ContactMessage) (*models.ContactMessage, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.FirstName = fields.FirstName
	existing.LastName = fields.LastName
	existing.Email = fields.Email
	existing.Phone = fields.Phone
	existing.ProductInterest = fields.ProductInterest
	existing.Message = fields.Message

	if err := s.repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete removes a message by its ID.
func (s *ContactService) Delete(id string) error {
	return s.repo.Delete(id)
}

// FilterMessages returns the messages whose first name, last name,
// email, phone, product interest or body contains query,
// case-insensitively. The checks are OR-combined; an empty query
// matches everything.
func FilterMessages(messages []models.ContactMessage, query string) []models.ContactMessage {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return messages
	}

	matched := make([]models.ContactMessage, 0, len(messages))
	for _, m := range messages {
		if containsFold(m.FirstName, q) ||
			containsFold(m.LastName, q) ||
			containsFold(m.Email, q) ||
			containsFold(m.Phone, q) ||
			containsFold(m.ProductInterest, q) ||
			containsFold(m.Message, q) {
			matched = append(matched, m)
		}
	}
	return matched
}

// containsFold reports whether s contains the already-lowercased q.
func containsFold(s, q string) bool {
	return strings.Contains(strings.ToLower(s), q)
}
