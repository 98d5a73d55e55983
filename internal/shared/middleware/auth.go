package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"pressroom-backend/internal/shared/apperr"
	"pressroom-backend/pkg/jwt"
)

const (
	// AuthorIDKey is the context key holding the authenticated author's id.
	AuthorIDKey = "authorID"
	// AuthorNameKey is the context key holding the authenticated author's name.
	AuthorNameKey = "authorName"
)

// RequireAuth rejects requests without a valid bearer token and stores the
// verified identity in the request context.
func RequireAuth(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}

		authorID, name, err := tokens.Verify(token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(AuthorIDKey, authorID)
		c.Set(AuthorNameKey, name)
		c.Next()
	}
}

// OptionalAuth lets anonymous requests through untouched but still verifies a
// token when one is presented. A bad token is rejected rather than silently
// downgraded to anonymous.
func OptionalAuth(tokens *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		token, ok := bearerToken(c)
		if !ok {
			abortUnauthorized(c, "Missing or invalid Authorization header")
			return
		}

		authorID, name, err := tokens.Verify(token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(AuthorIDKey, authorID)
		c.Set(AuthorNameKey, name)
		c.Next()
	}
}

// AuthorID returns the authenticated author id set by the auth middleware,
// or nil for anonymous requests.
func AuthorID(c *gin.Context) *uuid.UUID {
	value, exists := c.Get(AuthorIDKey)
	if !exists {
		return nil
	}

	id, ok := value.(uuid.UUID)
	if !ok {
		return nil
	}

	return &id
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperr.Unauthorized(message))
	c.Abort()
}
