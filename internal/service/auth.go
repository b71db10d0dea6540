// Package service provides business logic for authentication and to-do
// management, delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"

	"github.com/VIJ4YKUMAR/todolist-API/internal/models"
	"github.com/VIJ4YKUMAR/todolist-API/internal/repository"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so callers cannot tell which part failed.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrInvalidToken indicates a bearer credential that resolves to no user.
	ErrInvalidToken = errors.New("invalid authentication token")
)

// AuthRepository defines the persistence operations
// required by the authentication service.
type AuthRepository interface {
	// FindByUsername looks up a user by exact username match.
	// Returns repository.ErrNotFound if the user does not exist.
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthService implements authentication operations by delegating
// to an AuthRepository.
type AuthService struct {
	// repo performs the data-layer operations.
	repo AuthRepository
}

// NewAuthService constructs a new AuthService using the provided repository.
func NewAuthService(repo AuthRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Authenticate verifies a username/password pair against the store.
// Returns ErrInvalidCredentials when the user does not exist or the
// password does not match the stored digest.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !checkPassword(password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates the credentials and issues the bearer credential:
// the username verbatim, with no expiry and no signature. This mirrors the
// original contract; anyone holding a username can present it as a token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*models.Token, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	return &models.Token{AccessToken: user.Username, TokenType: "bearer"}, nil
}

// ResolveToken maps a bearer credential back to its user. The credential is
// treated as a bare username; no password or signature check happens here.
// Returns ErrInvalidToken when no matching user exists.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	user, err := s.repo.FindByUsername(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
