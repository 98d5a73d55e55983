package article

import (
	"errors"
	"net/url"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"pressroom-backend/internal/shared/apperr"
)

// Pagination bounds for the published listing.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// CreateArticleRequest - POST /api/articles
// AuthorID is only honored for unauthenticated callers when anonymous
// creation is enabled; authenticated callers may send it, but it must match
// their own identity.
type CreateArticleRequest struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Tags     *TagList `json:"tags"`
	AuthorID string   `json:"authorId"`
}

func (r *CreateArticleRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Body = strings.TrimSpace(r.Body)
	r.AuthorID = strings.TrimSpace(r.AuthorID)
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&r.Body,
			validation.Required.Error("body is required"),
		),
		validation.Field(&r.Tags,
			validation.By(validateTagList),
		),
		validation.Field(&r.AuthorID,
			is.UUID.Error("Invalid authorId"),
		),
	)
}

// UpdateArticleRequest - PUT /api/articles/:id
// Partial update: nil fields are left untouched. At least one field must be
// present.
type UpdateArticleRequest struct {
	Title *string  `json:"title"`
	Body  *string  `json:"body"`
	Tags  *TagList `json:"tags"`
}

func (r *UpdateArticleRequest) Normalize() {
	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		r.Title = &trimmed
	}
	if r.Body != nil {
		trimmed := strings.TrimSpace(*r.Body)
		r.Body = &trimmed
	}
}

func (r UpdateArticleRequest) Validate() error {
	if r.Title == nil && r.Body == nil && r.Tags == nil {
		return validation.Errors{
			"body": errors.New("Provide at least one field to update"),
		}
	}

	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.By(nonEmptyIfSet("title cannot be empty")),
		),
		validation.Field(&r.Body,
			validation.By(nonEmptyIfSet("body cannot be empty")),
		),
		validation.Field(&r.Tags,
			validation.By(validateTagList),
		),
	)
}

// nonEmptyIfSet rejects present-but-blank optional string fields.
func nonEmptyIfSet(message string) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(*string)
		if !ok || s == nil {
			return nil
		}
		if strings.TrimSpace(*s) == "" {
			return errors.New(message)
		}
		return nil
	}
}

// ListPublishedQuery - GET /api/articles/published
type ListPublishedQuery struct {
	Tag      string
	AuthorID *uuid.UUID
	Limit    int
	Offset   int
}

// ParseListPublishedQuery coerces and bounds the listing query parameters.
// Out-of-range values are validation failures, not silent clamps.
func ParseListPublishedQuery(values url.Values) (*ListPublishedQuery, error) {
	q := &ListPublishedQuery{Limit: DefaultLimit, Offset: 0}
	var fields []apperr.FieldError

	if values.Has("tag") {
		q.Tag = strings.TrimSpace(values.Get("tag"))
		if q.Tag == "" {
			fields = append(fields, apperr.FieldError{Path: "tag", Message: "tag cannot be empty"})
		}
	}

	if raw := values.Get("authorId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			fields = append(fields, apperr.FieldError{Path: "authorId", Message: "Invalid authorId"})
		} else {
			q.AuthorID = &id
		}
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields = append(fields, apperr.FieldError{Path: "limit", Message: "limit must be an integer"})
		case limit < 1 || limit > MaxLimit:
			fields = append(fields, apperr.FieldError{Path: "limit", Message: "limit must be between 1 and 100"})
		default:
			q.Limit = limit
		}
	}

	if raw := values.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			fields = append(fields, apperr.FieldError{Path: "offset", Message: "offset must be an integer"})
		case offset < 0:
			fields = append(fields, apperr.FieldError{Path: "offset", Message: "offset must be at least 0"})
		default:
			q.Offset = offset
		}
	}

	if len(fields) > 0 {
		return nil, apperr.Validation(fields...)
	}

	return q, nil
}
