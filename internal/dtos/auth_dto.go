package dtos

import "github.com/kelcho-spense/multi-vendor-marketplace/internal/models"

type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	FirstName string  `json:"firstName" validate:"required"`
	LastName  string  `json:"lastName" validate:"required"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,min=7"`
	Role      string  `json:"role,omitempty" validate:"omitempty,oneof=shopper shop_owner supplier"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutRequest is optional: without a refreshToken every session the
// caller has is revoked, with one only that session ends.
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken,omitempty"`
}

// TokenPair is the signed access/refresh pair returned on register,
// login and refresh. ExpiresIn is the access-token lifetime in seconds.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

type AuthResponse struct {
	User   *models.User `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}
