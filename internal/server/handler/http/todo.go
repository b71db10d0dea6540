package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/VIJ4YKUMAR/todolist-API/internal/middleware"
	"github.com/VIJ4YKUMAR/todolist-API/internal/models"
)

// Paging defaults for the list endpoint.
const (
	defaultSkip  = 0
	defaultLimit = 100
)

// TodoService defines the interface for to-do operations
// required by the TodoHandler.
type TodoService interface {
	// Create persists a new item owned by owner and returns it with its
	// server-assigned id.
	Create(ctx context.Context, owner *models.User, title, description string) (*models.TodoItem, error)
	// List returns owner's items with offset/limit paging.
	List(ctx context.Context, owner *models.User, skip, limit int) ([]models.TodoItem, error)
}

// TodoHandler handles HTTP requests for creating and listing to-do items.
type TodoHandler struct {
	TodoService TodoService
}

// createRequest represents the JSON payload for item creation.
type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Create handles POST /todo_items/ requests.
// It decodes a JSON body with "title" and "description", creates the item
// for the authenticated user, and writes the created item as JSON. Any
// user_id the client smuggles into the body is ignored; ownership always
// comes from the resolved credential.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Invalid authentication token", http.StatusBadRequest)
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	item, err := h.TodoService.Create(r.Context(), user, req.Title, req.Description)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(item)
}

// List handles GET /todo_items/ requests.
// Query parameters "skip" (default 0) and "limit" (default 100) page
// through the authenticated user's items. Values are forwarded to the
// store as given.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		http.Error(w, "Invalid authentication token", http.StatusBadRequest)
		return
	}

	skip, err := queryInt(r, "skip", defaultSkip)
	if err != nil {
		http.Error(w, "invalid skip parameter", http.StatusBadRequest)
		return
	}
	limit, err := queryInt(r, "limit", defaultLimit)
	if err != nil {
		http.Error(w, "invalid limit parameter", http.StatusBadRequest)
		return
	}

	items, err := h.TodoService.List(r.Context(), user, skip, limit)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(items)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
