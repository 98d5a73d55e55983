package author

import "pressroom-backend/internal/shared/apperr"

var (
	// ErrNameTaken maps the unique constraint on authors.name.
	ErrNameTaken = apperr.Conflict("Author name already exists")

	// ErrInvalidCredentials is the single message for every login failure:
	// unknown name, missing hash, or wrong password. One text, no account
	// enumeration.
	ErrInvalidCredentials = apperr.Unauthorized("Invalid credentials")

	ErrNotFound = apperr.NotFound("Author not found")
)
