package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/services"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type contextKey string

const userContextKey contextKey = "authenticatedUser"

// Authenticate verifies the Bearer access token and stores the caller's
// identity in the request context. Refresh tokens are rejected here;
// they are only good at the refresh endpoint.
func Authenticate(jwt *services.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing authorization header", nil)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid authorization header", nil)
				return
			}

			claims, err := jwt.ParseAccessToken(parts[1])
			if err != nil {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token", nil, err)
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token", nil, err)
				return
			}

			user := services.AuthenticatedUser{
				UserID: userID,
				Email:  claims.Email,
				Role:   models.UserRole(claims.Role),
			}
			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the identity stored by Authenticate.
func UserFromContext(ctx context.Context) (services.AuthenticatedUser, bool) {
	user, ok := ctx.Value(userContextKey).(services.AuthenticatedUser)
	return user, ok
}

// WithUser is a test helper that injects an identity directly.
func WithUser(ctx context.Context, user services.AuthenticatedUser) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}
