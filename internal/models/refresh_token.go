package models

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is the stored record behind one refresh credential. The
// record id is embedded in the signed token's claims, so the row is the
// source of truth for validity.
type RefreshToken struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"userId"`
	Token      string    `json:"-"`
	ExpiresAt  time.Time `json:"expiresAt"`
	IsRevoked  bool      `json:"isRevoked"`
	DeviceInfo *string   `json:"deviceInfo,omitempty"`
	IPAddress  *string   `json:"ipAddress,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

func (rt *RefreshToken) IsValid() bool {
	return !rt.IsRevoked && !rt.IsExpired()
}

// SessionInfo is the caller-facing summary of an active session.
type SessionInfo struct {
	ID         uuid.UUID `json:"id"`
	DeviceInfo *string   `json:"deviceInfo,omitempty"`
	IPAddress  *string   `json:"ipAddress,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
