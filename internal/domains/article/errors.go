package article

import "pressroom-backend/internal/shared/apperr"

var (
	ErrNotFound = apperr.NotFound("Article not found")

	// ErrNotOwner: mutations are restricted to the owning author.
	ErrNotOwner = apperr.Forbidden("You can only modify your own articles")

	// ErrAuthorRequired: creation without a token and without an authorId.
	ErrAuthorRequired = apperr.Forbidden("Authenticated author is required")

	// ErrAuthorMismatch: the body names someone other than the caller.
	ErrAuthorMismatch = apperr.Forbidden("You can only create articles for your own author account")

	ErrAuthorNotFound = apperr.NotFound("Author not found")
)
