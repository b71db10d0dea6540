// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/VIJ4YKUMAR/todolist-API/internal/models"
)

type ctxKey string

const userKey ctxKey = "user"

// UserResolver maps a bearer credential back to a user.
type UserResolver interface {
	// ResolveToken returns the user the credential belongs to, or an error
	// when it resolves to no user.
	ResolveToken(ctx context.Context, token string) (*models.User, error)
}

// BearerAuth is a middleware that enforces bearer-credential authentication.
//
// It expects an "Authorization: Bearer <token>" header, resolves the token
// to a user through the given resolver, and stores the user in the request
// context for downstream handlers. A missing header, a malformed header,
// and a token that resolves to no user all answer HTTP 400 with the fixed
// message "Invalid authentication token".
func BearerAuth(resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				http.Error(w, "Invalid authentication token", http.StatusBadRequest)
				return
			}

			user, err := resolver.ResolveToken(r.Context(), parts[1])
			if err != nil {
				http.Error(w, "Invalid authentication token", http.StatusBadRequest)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext extracts the authenticated user from the request
// context. Returns nil if no user was stored.
func GetUserFromContext(ctx context.Context) *models.User {
	val := ctx.Value(userKey)
	if u, ok := val.(*models.User); ok {
		return u
	}
	return nil
}
