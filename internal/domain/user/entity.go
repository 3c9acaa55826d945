// internal/domain/user/entity.go
package user

import (
	"time"

	"gorm.io/gorm"
)

// Role gates access to the admin console surface
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents the user entity
type User struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	Email     string         `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password  string         `gorm:"not null;size:255" json:"-"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Phone     string         `gorm:"size:50" json:"phone,omitempty"`
	Address   string         `gorm:"type:text" json:"address,omitempty"`
	Avatar    string         `gorm:"size:500" json:"avatar,omitempty"`
	Role      string         `gorm:"not null;size:50;default:'customer'" json:"role"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// IsAdmin reports whether the user may use the admin surface
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
