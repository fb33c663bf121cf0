package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/repositories"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

// RequestMeta carries the client fingerprint recorded alongside each
// refresh-token record.
type RequestMeta struct {
	DeviceInfo *string
	IPAddress  *string
}

// AuthService owns the whole credential lifecycle: registration, login,
// refresh-token rotation with reuse detection, and session management.
type AuthService struct {
	users  repositories.UserRepository
	tokens repositories.TokenRepository
	jwt    *JWTManager

	// now is swapped out in tests.
	now func() time.Time
}

func NewAuthService(users repositories.UserRepository, tokens repositories.TokenRepository, jwt *JWTManager) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		jwt:    jwt,
		now:    time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, req dtos.RegisterRequest, meta RequestMeta) (*dtos.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if existing != nil {
		return nil, utils.Conflict("User with this email already exists")
	}

	role := models.RoleShopper
	if req.Role != "" {
		role = models.UserRole(req.Role)
		if !models.ValidRole(role) || role == models.RoleAdmin {
			return nil, utils.BadRequest(utils.ErrCodeValidation, "Invalid role")
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.Internal(err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, utils.Internal(err)
	}

	utils.Logger.WithField("userId", user.ID).Info("User registered")

	tokens, err := s.issueTokens(ctx, user, meta)
	if err != nil {
		return nil, err
	}
	return &dtos.AuthResponse{User: user, Tokens: *tokens}, nil
}

// Login deliberately returns the same message for an unknown email and a
// wrong password so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, req dtos.LoginRequest, meta RequestMeta) (*dtos.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, utils.Internal(err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, utils.Unauthorized("Invalid credentials")
	}

	utils.Logger.WithField("userId", user.ID).Info("User logged in")

	tokens, err := s.issueTokens(ctx, user, meta)
	if err != nil {
		return nil, err
	}
	return &dtos.AuthResponse{User: user, Tokens: *tokens}, nil
}

// RefreshTokens rotates a refresh token: the presented token is revoked
// and a fresh pair is issued. Presenting an already-revoked token is
// treated as theft evidence and revokes every session the user has.
// Unlike login, the response carries tokens only, no profile.
func (s *AuthService) RefreshTokens(ctx context.Context, presented string, meta RequestMeta) (*dtos.TokenPair, error) {
	claims, err := s.jwt.ParseRefreshToken(presented)
	if err != nil {
		return nil, utils.Unauthorized("Invalid refresh token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, utils.Unauthorized("Invalid refresh token")
	}
	tokenID, err := uuid.Parse(claims.TokenID)
	if err != nil {
		return nil, utils.Unauthorized("Invalid refresh token")
	}

	record, err := s.tokens.GetByIDAndUser(ctx, tokenID, userID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if record == nil {
		return nil, utils.Unauthorized("Invalid refresh token")
	}

	if record.IsRevoked {
		return nil, s.handleTokenReuse(ctx, userID, tokenID)
	}
	if record.IsExpired() {
		return nil, utils.Unauthorized("Refresh token has expired. Please login again.")
	}
	// The claims alone could be replayed from an older signed token, so
	// the presented string must match the stored one exactly.
	if record.Token != presented {
		return nil, utils.Unauthorized("Invalid refresh token")
	}

	// Only one concurrent refresh can win the conditional revoke; the
	// loser is handled as a reuse attempt.
	rotated, err := s.tokens.RevokeIfActive(ctx, tokenID, userID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if !rotated {
		return nil, s.handleTokenReuse(ctx, userID, tokenID)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if user == nil {
		return nil, utils.Unauthorized("User not found")
	}

	return s.issueTokens(ctx, user, meta)
}

func (s *AuthService) handleTokenReuse(ctx context.Context, userID, tokenID uuid.UUID) error {
	utils.Logger.WithFields(map[string]interface{}{
		"userId":  userID,
		"tokenId": tokenID,
	}).Warn("Revoked refresh token presented; revoking all sessions for user")

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return utils.Internal(err)
	}
	return utils.Unauthorized("Refresh token has been revoked. Please login again.")
}

// Logout ends the caller's sessions. With a presented refresh token only
// that one session is revoked; without one every session the user has is
// revoked. Either way it is idempotent: logging out twice is not an error.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID, presented string) error {
	if presented == "" {
		return s.LogoutAll(ctx, userID)
	}

	claims, err := s.jwt.ParseRefreshToken(presented)
	if err != nil {
		return utils.Unauthorized("Invalid refresh token")
	}
	tokenID, err := uuid.Parse(claims.TokenID)
	if err != nil {
		return utils.Unauthorized("Invalid refresh token")
	}

	// The revoke is scoped to the authenticated caller, so a token
	// naming someone else's record cannot end their session.
	if err := s.tokens.Revoke(ctx, tokenID, userID); err != nil {
		return utils.Internal(err)
	}
	return nil
}

func (s *AuthService) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return utils.Internal(err)
	}
	utils.Logger.WithField("userId", userID).Info("All sessions revoked")
	return nil
}

// GetActiveSessions lists the user's live sessions. Rows that expired
// but have not been swept yet are filtered out here.
func (s *AuthService) GetActiveSessions(ctx context.Context, userID uuid.UUID) ([]models.SessionInfo, error) {
	records, err := s.tokens.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, utils.Internal(err)
	}

	sessions := make([]models.SessionInfo, 0, len(records))
	for _, rt := range records {
		if rt.IsExpired() {
			continue
		}
		sessions = append(sessions, models.SessionInfo{
			ID:         rt.ID,
			DeviceInfo: rt.DeviceInfo,
			IPAddress:  rt.IPAddress,
			CreatedAt:  rt.CreatedAt,
		})
	}
	return sessions, nil
}

// RevokeSession ends one session by id. The lookup is scoped to the
// calling user, so someone else's session id comes back as not found.
func (s *AuthService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	record, err := s.tokens.GetByIDAndUser(ctx, sessionID, userID)
	if err != nil {
		return utils.Internal(err)
	}
	if record == nil {
		return utils.NotFound("Session not found")
	}

	if err := s.tokens.Revoke(ctx, sessionID, userID); err != nil {
		return utils.Internal(err)
	}
	return nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.Internal(err)
	}
	if user == nil {
		return nil, utils.NotFound("User not found")
	}
	return user, nil
}

// CleanupExpiredTokens deletes refresh-token rows past their expiry.
// Run from the nightly cron job.
func (s *AuthService) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	return s.tokens.DeleteExpired(ctx)
}

// issueTokens mints an access/refresh pair. The record id is generated
// client-side so the refresh token can embed it and the record lands in
// a single INSERT.
func (s *AuthService) issueTokens(ctx context.Context, user *models.User, meta RequestMeta) (*dtos.TokenPair, error) {
	now := s.now()
	tokenID := uuid.New()

	refreshToken, err := s.jwt.SignRefreshToken(user.ID, tokenID, now)
	if err != nil {
		return nil, utils.Internal(err)
	}
	accessToken, err := s.jwt.SignAccessToken(user, now)
	if err != nil {
		return nil, utils.Internal(err)
	}

	record := &models.RefreshToken{
		ID:         tokenID,
		UserID:     user.ID,
		Token:      refreshToken,
		ExpiresAt:  now.Add(s.jwt.RefreshExpiry()),
		DeviceInfo: meta.DeviceInfo,
		IPAddress:  meta.IPAddress,
	}
	if err := s.tokens.Create(ctx, record); err != nil {
		return nil, utils.Internal(err)
	}

	return &dtos.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.jwt.AccessExpiry().Seconds()),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
