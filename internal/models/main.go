// Package models defines the core data structures for users and to-do items.
package models

// User represents an application user with credentials.
// Users are provisioned out-of-band; no HTTP route creates or mutates them.
type User struct {
	// ID is the unique identifier for the user.
	ID int64 `json:"id"`
	// Username is the login name chosen by the user. It doubles as the
	// bearer credential returned by the token endpoint.
	Username string `json:"username"`
	// HashedPassword is the bcrypt digest of the user's password.
	// Never serialized into responses.
	HashedPassword string `json:"-"`
}

// TodoItem is a task owned by exactly one user.
type TodoItem struct {
	// ID is the unique identifier for the item.
	ID int64 `json:"id"`
	// Title is a short label for the task.
	Title string `json:"title"`
	// Description holds free-form details about the task.
	Description string `json:"description"`
	// IsCompleted marks whether the task is done. Always false on creation;
	// no route currently toggles it.
	IsCompleted bool `json:"is_completed"`
	// UserID is the id of the owning user. Set from the authenticated
	// caller, never from client input.
	UserID int64 `json:"user_id"`
}

// Token is the credential payload returned by the token endpoint.
type Token struct {
	// AccessToken is the bearer credential: the username verbatim.
	AccessToken string `json:"access_token"`
	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}
