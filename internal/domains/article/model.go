package article

import (
	"time"

	"github.com/google/uuid"

	"pressroom-backend/internal/domains/author"
)

// Status is the article lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Article is the domain entity. PublishedAt is set iff Status is published;
// the publish/unpublish operations maintain that invariant, not the schema.
type Article struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Body        string     `json:"body" db:"body"`
	Tags        []string   `json:"tags" db:"tags"`
	Status      Status     `json:"status" db:"status"`
	PublishedAt *time.Time `json:"publishedAt" db:"published_at"`
	AuthorID    uuid.UUID  `json:"authorId" db:"author_id"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

// WithAuthor is an article joined with the owning author's public projection.
// Every read path returns this shape.
type WithAuthor struct {
	Article
	Author author.AuthorResponse `json:"author"`
}
