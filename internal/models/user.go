package models

import "gorm.io/gorm"

// Role is the closed set of access levels a user account can hold.
// The database stores it as plain text, but every check site goes
// through this type so an unknown value can never pass a guard.
type Role string

const (
	RoleCustomer    Role = "customer"
	RoleFarmer      Role = "farmer"
	RoleDistributor Role = "distributor"
	RoleAdmin       Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleFarmer, RoleDistributor, RoleAdmin:
		return true
	}
	return false
}

// AllRoles lists every role, for routes open to any authenticated user.
func AllRoles() []Role {
	return []Role{RoleCustomer, RoleFarmer, RoleDistributor, RoleAdmin}
}

// User represents a registered account.
// New accounts always start as customers; promotion happens out-of-band.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	FullName   string `json:"full_name" gorm:"type:varchar(100)" validate:"required,min=2,max=100"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialized
	Role       Role   `json:"role" gorm:"type:varchar(20)"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
