package middleware

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"pressroom-backend/internal/shared/apperr"
)

const uniqueViolation = "23505"

// ErrorTranslator is the single place request errors become HTTP responses.
// Handlers attach errors with c.Error and never write error bodies
// themselves.
func ErrorTranslator() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		writeError(c, c.Errors.Last().Err)
	}
}

func writeError(c *gin.Context, err error) {
	var fields validation.Errors
	if errors.As(err, &fields) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  flattenValidation(fields),
		})
		return
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		writeAppError(c, appErr)
		return
	}

	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
		return
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		c.JSON(http.StatusConflict, gin.H{"message": "Resource already exists"})
		return
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("unhandled error")

	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

func writeAppError(c *gin.Context, appErr *apperr.Error) {
	switch appErr.Kind {
	case apperr.KindValidation:
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"errors":  appErr.Fields,
		})
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"message": appErr.Message})
	case apperr.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, gin.H{"message": appErr.Message})
	case apperr.KindForbidden:
		c.JSON(http.StatusForbidden, gin.H{"message": appErr.Message})
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, gin.H{"message": appErr.Message})
	default:
		log.Error().
			Err(appErr).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("internal error")

		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

// flattenValidation turns possibly nested ozzo errors into a flat, stably
// ordered field list. Nested struct paths are joined with dots.
func flattenValidation(errs validation.Errors) []apperr.FieldError {
	fields := make([]apperr.FieldError, 0, len(errs))
	var walk func(prefix string, errs validation.Errors)
	walk = func(prefix string, errs validation.Errors) {
		for name, err := range errs {
			path := name
			if prefix != "" {
				path = prefix + "." + name
			}

			var nested validation.Errors
			if errors.As(err, &nested) {
				walk(path, nested)
				continue
			}

			fields = append(fields, apperr.FieldError{Path: path, Message: err.Error()})
		}
	}
	walk("", errs)

	sort.Slice(fields, func(i, j int) bool { return fields[i].Path < fields[j].Path })
	return fields
}
