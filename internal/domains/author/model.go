package author

import (
	"time"

	"github.com/google/uuid"
)

// Author is the account entity. PasswordHash never leaves the service layer;
// API responses use the public projection in dto.go.
type Author struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
