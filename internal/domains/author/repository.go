package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for authors.
type Repository interface {
	// Create inserts a new author and returns the stored row.
	// Returns ErrNameTaken when the name unique constraint fires.
	Create(ctx context.Context, a *Author) (*Author, error)

	// FindByID returns the full record or ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// FindByName does an exact, case-sensitive lookup (login path).
	FindByName(ctx context.Context, name string) (*Author, error)

	// FindByNameInsensitive does a case-insensitive lookup (public profile path).
	FindByNameInsensitive(ctx context.Context, name string) (*Author, error)

	// ExistsByID reports whether the author exists, without fetching the row.
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}
