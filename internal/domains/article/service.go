package article

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the article business operations. authorID identifies the
// authenticated caller; it is a pointer on Create because creation may be
// anonymous when the deployment allows it.
type Service interface {
	// Create persists a new draft. The authoring identity is the
	// authenticated caller when present; otherwise the body's authorId is
	// required. A body authorId that contradicts the caller is rejected.
	Create(ctx context.Context, req CreateArticleRequest, authorID *uuid.UUID) (*WithAuthor, error)

	// Update applies a partial update to an owned article.
	Update(ctx context.Context, id uuid.UUID, req UpdateArticleRequest, authorID uuid.UUID) (*WithAuthor, error)

	// Publish marks an owned article published and stamps publishedAt.
	// Re-publishing resets the timestamp.
	Publish(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (*WithAuthor, error)

	// Unpublish reverts an owned article to draft and clears publishedAt.
	Unpublish(ctx context.Context, id uuid.UUID, authorID uuid.UUID) (*WithAuthor, error)

	// ListPublished returns published articles, newest first.
	ListPublished(ctx context.Context, q ListPublishedQuery) ([]WithAuthor, error)

	// GetByID returns an article in any status.
	GetByID(ctx context.Context, id uuid.UUID) (*WithAuthor, error)
}
