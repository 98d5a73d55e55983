package article

import (
	"context"

	"github.com/google/uuid"
)

// UpdateFields carries a partial update; nil means leave the column alone.
type UpdateFields struct {
	Title *string
	Body  *string
	Tags  *[]string
}

// Repository defines data access for articles. Every read joins the owning
// author's public projection.
//
// The mutating operations take the owner id and apply it in the WHERE clause,
// so the ownership decision made by the service is re-asserted atomically at
// write time. Zero rows affected after a passed ownership check means the
// article vanished in between and surfaces as ErrNotFound.
type Repository interface {
	// Create inserts a draft article.
	Create(ctx context.Context, a *Article) (*WithAuthor, error)

	// FindByID returns the article in any status, or ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*WithAuthor, error)

	// FindOwnerID returns the owning author id, or ErrNotFound.
	FindOwnerID(ctx context.Context, id uuid.UUID) (uuid.UUID, error)

	// Update applies the non-nil fields, conditional on the owner.
	Update(ctx context.Context, id, ownerID uuid.UUID, fields UpdateFields) (*WithAuthor, error)

	// SetStatus flips the lifecycle state, conditional on the owner.
	// Publishing stamps publishedAt with the database clock; unpublishing
	// clears it.
	SetStatus(ctx context.Context, id, ownerID uuid.UUID, status Status) (*WithAuthor, error)

	// ListPublished returns published articles, newest first, with the
	// query's tag/author filters and pagination applied.
	ListPublished(ctx context.Context, q ListPublishedQuery) ([]WithAuthor, error)
}
