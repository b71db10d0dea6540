// Package http provides HTTP handlers for the token and to-do item endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/VIJ4YKUMAR/todolist-API/internal/models"
	"github.com/VIJ4YKUMAR/todolist-API/internal/service"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Login verifies the credentials and issues a bearer token.
	// Returns service.ErrInvalidCredentials on bad username or password.
	Login(ctx context.Context, username, password string) (*models.Token, error)
}

// AuthHandler handles HTTP requests for token issuance.
type AuthHandler struct {
	// AuthService performs the underlying authentication operations.
	AuthService AuthService
}

// Token handles POST /token requests.
// It expects an application/x-www-form-urlencoded body with "username" and
// "password" fields and responds with the bearer token payload. Bad
// credentials answer HTTP 400 with the fixed message
// "Incorrect username or password".
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := h.AuthService.Login(r.Context(), username, password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		http.Error(w, "Incorrect username or password", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(token)
}
