package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/middleware"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/services"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

var validate = validator.New()

// decodeAndValidate parses the JSON body into dst and runs struct
// validation, writing the error response itself on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request payload", nil, err)
		return false
	}
	if err := validate.Struct(dst); err != nil {
		details := map[string]string{}
		var verrs validator.ValidationErrors
		if ok := errorsAs(err, &verrs); ok {
			for _, fe := range verrs {
				details[fe.Field()] = fe.Tag()
			}
		}
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", details, err)
		return false
	}
	return true
}

// errorsAs avoids importing errors in every call site above.
func errorsAs(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}

// pathUUID extracts a UUID path variable, responding 400 on a bad id.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := mux.Vars(r)[name]
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid "+name, nil, err)
		return uuid.Nil, false
	}
	return id, true
}

// currentUser pulls the authenticated identity set by the middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (services.AuthenticatedUser, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Authentication required", nil)
		return services.AuthenticatedUser{}, false
	}
	return user, true
}

// requestMeta captures the client fingerprint stored with each session.
func requestMeta(r *http.Request) services.RequestMeta {
	meta := services.RequestMeta{}

	if ua := r.UserAgent(); ua != "" {
		meta.DeviceInfo = &ua
	}

	ip := r.Header.Get("X-Forwarded-For")
	if ip != "" {
		// First hop in the chain is the client.
		ip = strings.TrimSpace(strings.Split(ip, ",")[0])
	} else {
		ip = r.RemoteAddr
		if idx := strings.LastIndex(ip, ":"); idx > 0 {
			ip = ip[:idx]
		}
	}
	if ip != "" {
		meta.IPAddress = &ip
	}
	return meta
}

// optionalShopID reads the shopId query param if present.
func optionalShopID(w http.ResponseWriter, r *http.Request) (*uuid.UUID, bool) {
	raw := r.URL.Query().Get("shopId")
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Invalid shopId", nil, err)
		return nil, false
	}
	return &id, true
}
