package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole is the role of a user. Admins bypass all ownership checks.
type UserRole string

const (
	UserRoleStandard UserRole = "standard"
	UserRoleAdmin    UserRole = "admin"
)

// User represents a registered user of the expense tracker.
type User struct {
	DefaultModel
	Name     string   `json:"name" example:"Jane Doe"`
	Email    string   `json:"email" gorm:"uniqueIndex" example:"jane@example.com"`
	Password string   `json:"-"` // bcrypt hash, never serialized
	Role     UserRole `json:"role" gorm:"default:standard" example:"standard"`
}

func (u *User) BeforeSave(_ *gorm.DB) (err error) {
	u.Name = strings.TrimSpace(u.Name)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	if u.Role == "" {
		u.Role = UserRoleStandard
	}

	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// MayAccess is the ownership gate: a user may read or mutate a resource
// when they own it or hold the admin role. It is the single authorization
// policy for all resource types.
func (u User) MayAccess(ownerID uuid.UUID) bool {
	return u.ID == ownerID || u.IsAdmin()
}
