package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/config"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

func newTestAuthService() (*AuthService, *fakeUserRepo, *fakeTokenRepo) {
	cfg := &config.Config{
		AccessTokenSecret:  []byte("test-access-secret"),
		RefreshTokenSecret: []byte("test-refresh-secret"),
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	return NewAuthService(users, tokens, NewJWTManager(cfg)), users, tokens
}

func registerTestUser(t *testing.T, svc *AuthService) *dtos.AuthResponse {
	t.Helper()
	resp, err := svc.Register(context.Background(), dtos.RegisterRequest{
		Email:     "jamie@example.com",
		Password:  "s3cret-password",
		FirstName: "Jamie",
		LastName:  "Doe",
	}, RequestMeta{})
	require.NoError(t, err)
	return resp
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()

	resp := registerTestUser(t, svc)
	assert.Equal(t, "jamie@example.com", resp.User.Email)
	assert.Equal(t, models.RoleShopper, resp.User.Role)
	assert.NotEmpty(t, resp.Tokens.AccessToken)
	assert.NotEmpty(t, resp.Tokens.RefreshToken)
	assert.NotEqual(t, resp.Tokens.AccessToken, resp.Tokens.RefreshToken)

	login, err := svc.Login(ctx, dtos.LoginRequest{
		Email:    "jamie@example.com",
		Password: "s3cret-password",
	}, RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterDuplicateEmailIsCaseInsensitive(t *testing.T) {
	svc, _, _ := newTestAuthService()
	registerTestUser(t, svc)

	_, err := svc.Register(context.Background(), dtos.RegisterRequest{
		Email:     "JAMIE@Example.COM",
		Password:  "another-password",
		FirstName: "Other",
		LastName:  "Person",
	}, RequestMeta{})
	require.Error(t, err)

	appErr, ok := err.(*utils.AppError)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.StatusCode)
}

func TestLoginDoesNotLeakWhichFieldWasWrong(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()
	registerTestUser(t, svc)

	_, errUnknown := svc.Login(ctx, dtos.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cret-password",
	}, RequestMeta{})
	_, errWrongPw := svc.Login(ctx, dtos.LoginRequest{
		Email:    "jamie@example.com",
		Password: "wrong-password",
	}, RequestMeta{})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPw)
	assert.Equal(t, errUnknown.(*utils.AppError).Message, errWrongPw.(*utils.AppError).Message)
	assert.Equal(t, 401, errUnknown.(*utils.AppError).StatusCode)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), dtos.RegisterRequest{
		Email:     "sneaky@example.com",
		Password:  "s3cret-password",
		FirstName: "Sneaky",
		LastName:  "Person",
		Role:      "admin",
	}, RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, 400, err.(*utils.AppError).StatusCode)
}

func TestRefreshRotatesToken(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()
	resp := registerTestUser(t, svc)

	rotated, err := svc.RefreshTokens(ctx, resp.Tokens.RefreshToken, RequestMeta{})
	require.NoError(t, err)
	assert.NotEqual(t, resp.Tokens.RefreshToken, rotated.RefreshToken)

	// Exactly one live session remains: the freshly minted one.
	assert.Equal(t, 1, tokens.activeCount(resp.User.ID))

	// The new token keeps working.
	_, err = svc.RefreshTokens(ctx, rotated.RefreshToken, RequestMeta{})
	require.NoError(t, err)
}

func TestRefreshReuseRevokesAllSessions(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()
	resp := registerTestUser(t, svc)

	// A second session from another device.
	other, err := svc.Login(ctx, dtos.LoginRequest{
		Email:    "jamie@example.com",
		Password: "s3cret-password",
	}, RequestMeta{})
	require.NoError(t, err)

	rotated, err := svc.RefreshTokens(ctx, resp.Tokens.RefreshToken, RequestMeta{})
	require.NoError(t, err)

	// Replaying the consumed token is treated as theft: every session
	// dies, including the rotated one and the other device's.
	_, err = svc.RefreshTokens(ctx, resp.Tokens.RefreshToken, RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, 401, err.(*utils.AppError).StatusCode)
	assert.Equal(t, 0, tokens.activeCount(resp.User.ID))

	_, err = svc.RefreshTokens(ctx, rotated.RefreshToken, RequestMeta{})
	require.Error(t, err)
	_, err = svc.RefreshTokens(ctx, other.Tokens.RefreshToken, RequestMeta{})
	require.Error(t, err)
}

func TestRefreshRejectsExpiredRecord(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()
	resp := registerTestUser(t, svc)

	claims, err := svc.jwt.ParseRefreshToken(resp.Tokens.RefreshToken)
	require.NoError(t, err)
	tokens.expire(mustUUID(t, claims.TokenID))

	_, err = svc.RefreshTokens(ctx, resp.Tokens.RefreshToken, RequestMeta{})
	require.Error(t, err)
	appErr := err.(*utils.AppError)
	assert.Equal(t, 401, appErr.StatusCode)
	assert.Contains(t, appErr.Message, "expired")
}

func TestRefreshRejectsGarbageToken(t *testing.T) {
	svc, _, _ := newTestAuthService()

	_, err := svc.RefreshTokens(context.Background(), "not-a-jwt", RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, 401, err.(*utils.AppError).StatusCode)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _, _ := newTestAuthService()
	resp := registerTestUser(t, svc)

	// An access token is signed with a different secret and type; it
	// must never pass at the refresh endpoint.
	_, err := svc.RefreshTokens(context.Background(), resp.Tokens.AccessToken, RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, 401, err.(*utils.AppError).StatusCode)
}

func TestLogoutIsIdempotent(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()
	resp := registerTestUser(t, svc)

	require.NoError(t, svc.Logout(ctx, resp.User.ID, resp.Tokens.RefreshToken))
	require.NoError(t, svc.Logout(ctx, resp.User.ID, resp.Tokens.RefreshToken))
	assert.Equal(t, 0, tokens.activeCount(resp.User.ID))

	// A logged-out token presented at refresh triggers the reuse path.
	_, err := svc.RefreshTokens(ctx, resp.Tokens.RefreshToken, RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, 401, err.(*utils.AppError).StatusCode)
}

func TestLogoutWithoutTokenRevokesEverySession(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()
	resp := registerTestUser(t, svc)

	// Two more sessions from other devices.
	for i := 0; i < 2; i++ {
		_, err := svc.Login(ctx, dtos.LoginRequest{
			Email:    "jamie@example.com",
			Password: "s3cret-password",
		}, RequestMeta{})
		require.NoError(t, err)
	}
	require.Equal(t, 3, tokens.activeCount(resp.User.ID))

	require.NoError(t, svc.Logout(ctx, resp.User.ID, ""))
	assert.Equal(t, 0, tokens.activeCount(resp.User.ID))

	// Every previously issued refresh token is now dead.
	_, err := svc.RefreshTokens(ctx, resp.Tokens.RefreshToken, RequestMeta{})
	require.Error(t, err)
	assert.Equal(t, 401, err.(*utils.AppError).StatusCode)
}

func TestLogoutAll(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()
	resp := registerTestUser(t, svc)

	for i := 0; i < 3; i++ {
		_, err := svc.Login(ctx, dtos.LoginRequest{
			Email:    "jamie@example.com",
			Password: "s3cret-password",
		}, RequestMeta{})
		require.NoError(t, err)
	}
	require.Equal(t, 4, tokens.activeCount(resp.User.ID))

	require.NoError(t, svc.LogoutAll(ctx, resp.User.ID))
	assert.Equal(t, 0, tokens.activeCount(resp.User.ID))
}

func TestGetActiveSessionsFiltersExpired(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()
	resp := registerTestUser(t, svc)

	second, err := svc.Login(ctx, dtos.LoginRequest{
		Email:    "jamie@example.com",
		Password: "s3cret-password",
	}, RequestMeta{})
	require.NoError(t, err)

	claims, err := svc.jwt.ParseRefreshToken(second.Tokens.RefreshToken)
	require.NoError(t, err)
	tokens.expire(mustUUID(t, claims.TokenID))

	sessions, err := svc.GetActiveSessions(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestRevokeSessionScopedToOwner(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()
	resp := registerTestUser(t, svc)

	other, err := svc.Register(ctx, dtos.RegisterRequest{
		Email:     "other@example.com",
		Password:  "another-password",
		FirstName: "Other",
		LastName:  "Person",
	}, RequestMeta{})
	require.NoError(t, err)

	sessions, err := svc.GetActiveSessions(ctx, resp.User.ID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)

	// Someone else's session id reads as not found.
	err = svc.RevokeSession(ctx, other.User.ID, sessions[0].ID)
	require.Error(t, err)
	assert.Equal(t, 404, err.(*utils.AppError).StatusCode)

	// The owner can revoke it.
	require.NoError(t, svc.RevokeSession(ctx, resp.User.ID, sessions[0].ID))
	sessions, err = svc.GetActiveSessions(ctx, resp.User.ID)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestCleanupExpiredTokens(t *testing.T) {
	svc, _, tokens := newTestAuthService()
	ctx := context.Background()
	resp := registerTestUser(t, svc)

	claims, err := svc.jwt.ParseRefreshToken(resp.Tokens.RefreshToken)
	require.NoError(t, err)
	tokens.expire(mustUUID(t, claims.TokenID))

	deleted, err := svc.CleanupExpiredTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestStoredTokenMustMatchPresented(t *testing.T) {
	svc, _, _ := newTestAuthService()
	ctx := context.Background()
	resp := registerTestUser(t, svc)

	claims, err := svc.jwt.ParseRefreshToken(resp.Tokens.RefreshToken)
	require.NoError(t, err)
	userID := mustUUID(t, claims.Subject)
	tokenID := mustUUID(t, claims.TokenID)

	// A second token signed for the same record at a shifted issue time
	// carries a valid signature and valid claims, but its bytes differ
	// from the canonical stored string.
	forged, err := svc.jwt.SignRefreshToken(userID, tokenID, time.Now().Add(time.Second))
	require.NoError(t, err)
	require.NotEqual(t, resp.Tokens.RefreshToken, forged)

	_, err = svc.RefreshTokens(ctx, forged, RequestMeta{})
	require.Error(t, err)
	appErr := err.(*utils.AppError)
	assert.Equal(t, 401, appErr.StatusCode)
	assert.Equal(t, "Invalid refresh token", appErr.Message)

	// The mismatch is rejected before rotation, so the canonical token
	// is still good.
	_, err = svc.RefreshTokens(ctx, resp.Tokens.RefreshToken, RequestMeta{})
	require.NoError(t, err)
}

func TestIssuedPairReportsAccessTokenLifetime(t *testing.T) {
	svc, _, _ := newTestAuthService()
	resp := registerTestUser(t, svc)
	assert.Equal(t, int64(900), resp.Tokens.ExpiresIn)

	body, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"expiresIn":900`)

	rotated, err := svc.RefreshTokens(context.Background(), resp.Tokens.RefreshToken, RequestMeta{})
	require.NoError(t, err)
	assert.Equal(t, int64(900), rotated.ExpiresIn)
}

func TestRefreshResponseCarriesTokensOnly(t *testing.T) {
	svc, _, _ := newTestAuthService()
	resp := registerTestUser(t, svc)

	rotated, err := svc.RefreshTokens(context.Background(), resp.Tokens.RefreshToken, RequestMeta{})
	require.NoError(t, err)

	body, err := json.Marshal(rotated)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"accessToken"`)
	assert.Contains(t, string(body), `"refreshToken"`)
	assert.NotContains(t, string(body), `"user"`)
}

func mustUUID(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}
