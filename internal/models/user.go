package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleShopper   UserRole = "shopper"
	RoleShopOwner UserRole = "shop_owner"
	RoleSupplier  UserRole = "supplier"
	RoleAdmin     UserRole = "admin"
)

// ValidRole reports whether r is one of the defined roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleShopper, RoleShopOwner, RoleSupplier, RoleAdmin:
		return true
	}
	return false
}

// User is a marketplace account. PasswordHash is never serialized.
type User struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Phone         *string   `json:"phone,omitempty"`
	AvatarURL     *string   `json:"avatarUrl,omitempty"`
	Role          UserRole  `json:"role"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
