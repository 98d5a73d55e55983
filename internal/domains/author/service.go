package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the author business operations.
type Service interface {
	// Register hashes the password, creates the author and issues a token.
	// Returns ErrNameTaken if the name is already registered.
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)

	// Login verifies credentials and issues a token. Every failure mode
	// returns ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)

	// GetByID returns the public projection or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*AuthorResponse, error)

	// GetByName returns the public projection, matching case-insensitively.
	GetByName(ctx context.Context, name string) (*AuthorResponse, error)
}
