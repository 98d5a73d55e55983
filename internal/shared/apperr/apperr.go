package apperr

import "fmt"

// Kind is the closed set of failure categories the API can produce.
// The error translator middleware switches over this set; services never
// decide HTTP statuses themselves.
type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
	KindInternal
)

// FieldError is one entry of a validation failure response.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error is the tagged domain error carried from services to the translator.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError // populated for KindValidation only
	Err     error        // wrapped cause, never exposed to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: cause}
}

// Validation builds a validation failure from explicit field errors.
// Used for failures ozzo cannot express, e.g. malformed UUID path params.
func Validation(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

// Field is a shorthand for a single-field validation failure.
func Field(path, message string) *Error {
	return Validation(FieldError{Path: path, Message: message})
}
