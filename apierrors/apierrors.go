// Package apierrors defines the closed set of error kinds handlers return.
// Each kind maps to exactly one HTTP status at the response boundary.
package apierrors

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Kind int

const (
	Internal Kind = iota
	NotFound
	ValidationFailed
	Unauthorized
	Forbidden
	Conflict
)

type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying cause, logged but never sent to the client
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func E(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Status(kind Kind) int {
	switch kind {
	case NotFound:
		return http.StatusNotFound
	case ValidationFailed:
		return http.StatusBadRequest
	case Unauthorized:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a JSON error response. Unknown error values are
// treated as Internal and their cause is logged server-side only.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = Wrap(Internal, "Internal server error", err)
	}
	if apiErr.Kind == Internal {
		log.Printf("internal error: %v", apiErr)
		c.JSON(http.StatusInternalServerError, gin.H{"error": apiErr.Message})
		return
	}
	c.JSON(Status(apiErr.Kind), gin.H{"error": apiErr.Message})
}
