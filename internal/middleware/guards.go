package middleware

import (
	"net/http"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/models"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/rbac"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

// RequirePermissions passes only if the caller's role grants every
// listed permission. Must run after Authenticate.
func RequirePermissions(perms ...rbac.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required", nil)
				return
			}
			if !rbac.RoleHasAll(user.Role, perms...) {
				utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeForbidden, "Insufficient permissions", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRoles passes if the caller holds any of the listed roles.
func RequireRoles(roles ...models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required", nil)
				return
			}
			for _, role := range roles {
				if user.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeForbidden, "Insufficient permissions", nil)
		})
	}
}
