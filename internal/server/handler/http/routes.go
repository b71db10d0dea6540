// Package http provides HTTP routing and middleware configuration
// for the to-do list service.
package http

import (
	"net/http"

	"github.com/VIJ4YKUMAR/todolist-API/internal/middleware"
	"go.uber.org/zap"

	"github.com/go-chi/chi/v5"
)

// NewRouter constructs and returns an HTTP handler that serves the to-do
// list API. It applies request logging globally and bearer-credential
// authentication to the to-do routes.
//
// Parameters:
//
//	authHandler - handler for the token endpoint
//	todoHandler - handler for the to-do item endpoints
//	resolver    - maps bearer credentials to users for the protected group
//	logger      - structured logger for request logging middleware
//
// Routes:
//
//	POST /token        → authHandler.Token
//	POST /todo_items/  → todoHandler.Create (protected by BearerAuth)
//	GET  /todo_items/  → todoHandler.List   (protected by BearerAuth)
func NewRouter(
	authHandler *AuthHandler,
	todoHandler *TodoHandler,
	resolver middleware.UserResolver,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	// Public endpoint: form login, no credential required
	r.Post("/token", authHandler.Token)

	// Protected group: requires a resolvable bearer credential
	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(resolver))
		r.Post("/todo_items/", todoHandler.Create)
		r.Get("/todo_items/", todoHandler.List)
	})

	return r
}
