package repositories

import (
	"fmt"
	"sort"
	"sync"

	"panchmev/internal/models"

	"github.com/google/uuid"
)

// MockContactRepository is an in-memory implementation of ContactRepository.
type MockContactRepository struct {
	messages map[string]models.ContactMessage
	mu       sync.RWMutex
}

// NewMockContactRepository creates a new instance of MockContactRepository.
func NewMockContactRepository() *MockContactRepository {
	return &MockContactRepository{
		messages: make(map[string]models.ContactMessage),
	}
}

// GetAll returns all contact messages, newest first.
func (r *MockContactRepository) GetAll() ([]models.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.ContactMessage, 0, len(r.messages))
	for _, m := range r.messages {
		list = append(list, m)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list, nil
}

// GetByID returns a contact message by its ID.
func (r *MockContactRepository) GetByID(id string) (*models.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.messages[id]
	if !ok {
		return nil, fmt.Errorf("contact %s: %w", id, ErrNotFound)
	}
	return &m, nil
}

// Create adds a new contact message.
func (r *MockContactRepository) Create(msg *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	r.messages[msg.ID] = *msg
	return nil
}

// Update modifies an existing contact message.
func (r *MockContactRepository) Update(msg *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[msg.ID]; !ok {
		return fmt.Errorf("contact %s: %w", msg.ID, ErrNotFound)
	}
	r.messages[msg.ID] = *msg
	return nil
}

// Delete removes a contact message by its ID.
func (r *MockContactRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[id]; !ok {
		return fmt.Errorf("contact %s: %w", id, ErrNotFound)
	}
	delete(r.messages, id)
	return nil
}

// Count returns the number of stored contact messages.
func (r *MockContactRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.messages)), nil
}
