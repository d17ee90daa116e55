// Package api implements the HTTP surface of the back-office ledger.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ortosalon/backoffice/internal/auth"
	"github.com/ortosalon/backoffice/internal/ledger"
)

type contextKey string

const contextKeyActor contextKey = "actor"

// AuthMiddleware validates bearer session tokens and stores the logged-in
// actor's display name in the request context for audit stamping.
func AuthMiddleware(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Missing Authorization header")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid Authorization header format")
				return
			}

			actor, ok := manager.Actor(parts[1])
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "unauthorized", "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), contextKeyActor, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// actorFrom returns the audit actor for the request.
func actorFrom(r *http.Request) string {
	if actor, ok := r.Context().Value(contextKeyActor).(string); ok {
		return actor
	}
	return "unknown"
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, error, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:            error,
		ErrorDescription: description,
	})
}

// writeLedgerError maps a ledger error to the API error taxonomy.
func writeLedgerError(w http.ResponseWriter, err error) {
	var validationError *ledger.ValidationError
	switch {
	case errors.As(err, &validationError):
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", validationError.Error())
	case errors.Is(err, ledger.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		writeJSONError(w, http.StatusInternalServerError, "server_error", err.Error())
	}
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
