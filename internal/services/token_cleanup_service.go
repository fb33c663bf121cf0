package services

import (
	"context"
	"time"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

const cleanupTimeout = 2 * time.Minute

// TokenCleanupService sweeps expired refresh-token rows. It runs from
// the nightly cron schedule wired in main.
type TokenCleanupService struct {
	auth *AuthService
}

func NewTokenCleanupService(auth *AuthService) *TokenCleanupService {
	return &TokenCleanupService{auth: auth}
}

// Run is the cron entrypoint; it never panics the scheduler.
func (s *TokenCleanupService) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	deleted, err := s.auth.CleanupExpiredTokens(ctx)
	if err != nil {
		utils.Logger.WithError(err).Error("Expired token cleanup failed")
		return
	}
	utils.Logger.WithField("deleted", deleted).Info("Expired refresh tokens cleaned up")
}
