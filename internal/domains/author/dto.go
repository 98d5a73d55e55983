package author

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// RegisterRequest - POST /api/authors
type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Normalize trims string fields before validation. Passwords are kept
// verbatim; leading whitespace in a password is the user's problem.
func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 0).Error("password must be at least 8 characters"),
		),
	)
}

// LoginRequest - POST /api/authors/login
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
}

// AuthorResponse is the public projection: no password material, ever.
type AuthorResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse pairs the public projection with a fresh session token.
type AuthResponse struct {
	Author AuthorResponse `json:"author"`
	Token  string         `json:"token"`
}

// ToResponse converts an Author entity to its public projection.
func (a *Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
	}
}
