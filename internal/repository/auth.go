// Package repository provides raw-SQL persistence for users and to-do items.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/VIJ4YKUMAR/todolist-API/internal/models"
)

// PostgresAuthRepository implements user lookup and creation against a
// PostgreSQL database.
type PostgresAuthRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresAuthRepository creates a new PostgresAuthRepository with the
// given database connection. db must be a valid *sql.DB connected to a
// PostgreSQL instance.
func NewPostgresAuthRepository(db *sql.DB) *PostgresAuthRepository {
	return &PostgresAuthRepository{DB: db}
}

// FindByUsername looks up exactly one user by exact, case-sensitive username
// match. Returns ErrNotFound if no such user exists.
func (r *PostgresAuthRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRowContext(
		ctx,
		`SELECT id, username, hashed_password FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.HashedPassword)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("FindByUsername: %w", err)
	}
	return &user, nil
}

// CreateUser inserts a new user with the given username and password digest,
// returning the stored user including its server-assigned id. Only the
// out-of-band provisioning tool calls this; no HTTP route creates users.
func (r *PostgresAuthRepository) CreateUser(ctx context.Context, username, hashedPassword string) (*models.User, error) {
	user := models.User{Username: username, HashedPassword: hashedPassword}
	err := r.DB.QueryRowContext(
		ctx,
		`INSERT INTO users (username, hashed_password) VALUES ($1, $2) RETURNING id`,
		username, hashedPassword,
	).Scan(&user.ID)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return &user, nil
}
