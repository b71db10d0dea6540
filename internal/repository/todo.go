package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/VIJ4YKUMAR/todolist-API/internal/models"
)

// PostgresTodoRepository implements to-do item persistence against a
// PostgreSQL database.
type PostgresTodoRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresTodoRepository creates a new PostgresTodoRepository using the
// provided *sql.DB.
func NewPostgresTodoRepository(db *sql.DB) *PostgresTodoRepository {
	return &PostgresTodoRepository{DB: db}
}

// Insert persists a new to-do item and fills in its server-assigned id.
func (r *PostgresTodoRepository) Insert(ctx context.Context, item *models.TodoItem) error {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO todo_items (title, description, is_completed, user_id)
		VALUES ($1, $2, $3, $4) RETURNING id
	`, item.Title, item.Description, item.IsCompleted, item.UserID).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("Insert: %w", err)
	}
	return nil
}

// ListByOwner fetches the to-do items belonging to the given user, ordered by
// id (insertion order), applying offset/limit paging. skip and limit are
// passed through to the store untouched; degenerate values surface as store
// errors. A user with no items yields an empty, non-nil slice.
func (r *PostgresTodoRepository) ListByOwner(ctx context.Context, userID int64, skip, limit int) ([]models.TodoItem, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, title, description, is_completed, user_id FROM todo_items
		WHERE user_id = $1 ORDER BY id OFFSET $2 LIMIT $3
	`, userID, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("ListByOwner: %w", err)
	}
	defer rows.Close()

	items := make([]models.TodoItem, 0)
	for rows.Next() {
		var item models.TodoItem
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.IsCompleted, &item.UserID); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListByOwner rows: %w", err)
	}
	return items, nil
}
