package service

import (
	"context"

	"github.com/VIJ4YKUMAR/todolist-API/internal/models"
)

// TodoRepository defines the persistence operations needed by the TodoService.
type TodoRepository interface {
	// Insert persists a new to-do item and fills in its server-assigned id.
	Insert(ctx context.Context, item *models.TodoItem) error
	// ListByOwner returns the items owned by the given user, applying
	// offset/limit paging.
	ListByOwner(ctx context.Context, userID int64, skip, limit int) ([]models.TodoItem, error)
}

// TodoService implements to-do item business logic for the authenticated user.
type TodoService struct {
	// repo is the underlying persistence repository.
	repo TodoRepository
}

// NewTodoService constructs a TodoService with the provided TodoRepository.
func NewTodoService(repo TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

// Create builds and persists a to-do item owned by owner. Ownership comes
// from the authenticated caller, never from client input, and new items
// always start uncompleted. Empty title and description are accepted.
func (s *TodoService) Create(ctx context.Context, owner *models.User, title, description string) (*models.TodoItem, error) {
	item := &models.TodoItem{
		Title:       title,
		Description: description,
		IsCompleted: false,
		UserID:      owner.ID,
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns the owner's to-do items with offset/limit paging. The filter
// is strictly on the owner's id; skip and limit go to the store as given.
func (s *TodoService) List(ctx context.Context, owner *models.User, skip, limit int) ([]models.TodoItem, error) {
	return s.repo.ListByOwner(ctx, owner.ID, skip, limit)
}
