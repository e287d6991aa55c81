// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/danielhkuo/invoice-entry/auth"
	"github.com/danielhkuo/invoice-entry/middleware"
	"github.com/danielhkuo/invoice-entry/models"
)

type AuthHandler struct {
	ws *Workspace
}

func NewAuthHandler(ws *Workspace) *AuthHandler {
	return &AuthHandler{ws: ws}
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	fieldErrs, err := auth.Login(req.Username, req.Password)
	if len(fieldErrs) > 0 {
		middleware.JSONResponse(w, http.StatusBadRequest, models.FieldErrorsResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: "Username and password are required",
			Errors:  fieldErrs,
		})
		return
	}
	if errors.Is(err, auth.ErrInvalidCredentials) {
		log.Info().Str("username", req.Username).Msg("login rejected")
		middleware.ErrorResponse(w, http.StatusUnauthorized, auth.InvalidCredentialsMessage)
		return
	}

	sess, err := h.ws.SignIn(r.Context(), req.Username)
	if err != nil {
		log.Error().Err(err).Msg("failed to start session")
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	log.Info().Str("username", sess.Username).Msg("signed in")

	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Authenticated: true,
		Username:      sess.Username,
	})
}

// Logout handles POST /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.ws.SignOut(r.Context()); err != nil {
		log.Error().Err(err).Msg("failed to end session")
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign out")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LogoutResponse{Message: "Signed out"})
}

// GetSession handles GET /session
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess := h.ws.Current()
	if sess == nil {
		middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{})
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Authenticated: true,
		Username:      sess.Username,
	})
}
