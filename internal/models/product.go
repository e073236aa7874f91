package models

import "gorm.io/gorm"

// ProductCategories is the fixed set of categories the admin form offers.
var ProductCategories = []string{
	"Milk", "Paneer", "Ghee", "Curd", "Buttermilk", "Cheese", "Cream", "Other",
}

// ValidCategory reports whether c is one of the known product categories.
func ValidCategory(c string) bool {
	for _, known := range ProductCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Product represents a catalog item shown on the storefront.
// Price is a display string ("₹40/L"), not an amount — the catalog sells
// by litre, pack and kilogram, so the unit travels with the number.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Category    string  `json:"category" validate:"required"`
	Price       string  `json:"price" validate:"required,max=50"`
	Rating      float64 `json:"rating" validate:"gte=0,lte=5"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	ImageURL    string  `json:"image_url"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
