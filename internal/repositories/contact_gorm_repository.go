package repositories

import (
	"errors"
	"fmt"

	"panchmev/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMContactRepository is a GORM implementation of ContactRepository.
type GORMContactRepository struct {
	db *gorm.DB
}

// NewGORMContactRepository creates a new instance of GORMContactRepository.
func NewGORMContactRepository(db *gorm.DB) *GORMContactRepository {
	return &GORMContactRepository{db: db}
}

// GetAll retrieves all contact messages, newest first.
func (r *GORMContactRepository) GetAll() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	if err := r.db.Order("created_at DESC").Find(&messages).Error; err != nil {
		return nil, fmt.Errorf("failed to get all contact messages: %w", err)
	}
	return messages, nil
}

// GetByID retrieves a single contact message by its ID.
func (r *GORMContactRepository) GetByID(id string) (*models.ContactMessage, error) {
	var msg models.ContactMessage
	if err := r.db.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contact %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get contact by ID %s: %w", id, err)
	}
	return &msg, nil
}

// Create stores a new contact message.
func (r *GORMContactRepository) Create(msg *models.ContactMessage) error {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if err := r.db.Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// Update replaces the editable fields of an existing contact message.
func (r *GORMContactRepository) Update(msg *models.ContactMessage) error {
	res := r.db.Save(msg)
	if res.Error != nil {
		return fmt.Errorf("failed to update contact message: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("contact %s: %w", msg.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a contact message by its ID.
func (r *GORMContactRepository) Delete(id string) error {
	res := r.db.Delete(&models.ContactMessage{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete contact message: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("contact %s: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of stored contact messages.
func (r *GORMContactRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.ContactMessage{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return n, nil
}
