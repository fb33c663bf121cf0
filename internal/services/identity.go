package services

import (
	"github.com/google/uuid"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
)

// AuthenticatedUser is the identity extracted from a verified access
// token. It flows from the auth middleware into the service layer.
type AuthenticatedUser struct {
	UserID uuid.UUID
	Email  string
	Role   models.UserRole
}
