package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/kelcho-spense/multi-vendor-marketplace/internal/dtos"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/services"
	"github.com/kelcho-spense/multi-vendor-marketplace/internal/utils"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dtos.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := c.auth.Register(r.Context(), req, requestMeta(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := c.auth.Login(r.Context(), req, requestMeta(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	profile, err := c.auth.GetProfile(r.Context(), user.UserID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}

func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dtos.RefreshRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := c.auth.RefreshTokens(r.Context(), req.RefreshToken, requestMeta(r))
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	// The body is optional: a plain logout ends every session, while a
	// supplied refreshToken ends only the session behind it.
	var req dtos.LogoutRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	if err := c.auth.Logout(r.Context(), user.UserID, req.RefreshToken); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *AuthController) LogoutAll(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := c.auth.LogoutAll(r.Context(), user.UserID); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (c *AuthController) Sessions(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	sessions, err := c.auth.GetActiveSessions(r.Context(), user.UserID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sessions)
}

func (c *AuthController) RevokeSession(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(w, r)
	if !ok {
		return
	}
	sessionID, ok := pathUUID(w, r, "sessionId")
	if !ok {
		return
	}

	if err := c.auth.RevokeSession(r.Context(), user.UserID, sessionID); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
