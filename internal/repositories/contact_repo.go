package repositories

import "panchmev/internal/models"

// ContactRepository defines the interface for contact-message data access.
type ContactRepository interface {
	GetAll() ([]models.ContactMessage, error)
	GetByID(id string) (*models.ContactMessage, error)
	Create(msg *models.ContactMessage) error
	Update(msg *models.ContactMessage) error
	Delete(id string) error
	Count() (int64, error)
}
