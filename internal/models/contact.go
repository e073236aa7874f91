package models

import "time"

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	FirstName       string    `json:"first_name" validate:"required,max=100"`
	LastName        string    `json:"last_name" validate:"required,max=100"`
	Email           string    `json:"email" validate:"required,email"`
	Phone           string    `json:"phone" validate:"required,max=20"`
	ProductInterest string    `json:"product_interest" validate:"omitempty,max=100"`
	Message         string    `json:"message" validate:"required,max=2000"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
