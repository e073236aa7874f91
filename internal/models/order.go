package models

import "time"

// Order statuses. "unknown" is never stored; the stats page buckets
// legacy rows with an empty status under it.
const (
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is an acceptable stored status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Order represents a customer order. TotalPrice is kept as entered —
// like product prices it is free text, and the revenue report treats
// anything unparseable as zero rather than rejecting the row.
type Order struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	ProductID  string    `json:"product_id" gorm:"type:varchar(36)" validate:"required"`
	Quantity   int       `json:"quantity" validate:"gte=1"`
	TotalPrice string    `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
