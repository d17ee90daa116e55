package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ortosalon/backoffice/internal/auth"
)

// AuthHandler handles login and logout.
type AuthHandler struct {
	manager *auth.Manager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(m *auth.Manager) *AuthHandler {
	return &AuthHandler{manager: m}
}

// LoginRequest represents the login request body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token       string `json:"token"`
	DisplayName string `json:"display_name"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}

	token, displayName, err := h.manager.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid username or password")
			return
		}
		writeJSONError(w, http.StatusInternalServerError, "server_error", "Failed to create session")
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{Token: token, DisplayName: displayName})
}

// Logout handles POST /auth/logout. It revokes the presented bearer token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		h.manager.Logout(parts[1])
	}
	w.WriteHeader(http.StatusNoContent)
}
