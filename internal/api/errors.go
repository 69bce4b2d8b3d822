package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Stable error codes clients branch on.
const (
	CodeInvalidOrgID      = "INVALID_ORG_ID"
	CodeInvalidLocationID = "INVALID_LOCATION_ID"
	CodeInvalidRange      = "INVALID_RANGE"
	CodeInvalidSince      = "INVALID_SINCE"
	CodeInvalidLimit      = "INVALID_LIMIT"
	CodeValidation        = "VALIDATION_ERROR"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeNotImplemented    = "NOT_IMPLEMENTED"
	CodeInternal          = "INTERNAL"
)

// Error is the structured error carried from validation and service layers
// out to the HTTP response.
type Error struct {
	Code    string `json:"error"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Details any    `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Field != "" {
		return e.Code + " (" + e.Field + "): " + e.Message
	}
	return e.Code + ": " + e.Message
}

func NewError(code, message, field string) *Error {
	return &Error{Code: code, Message: message, Field: field}
}

func Forbidden() *Error {
	return &Error{Code: CodeForbidden, Message: "Access denied to organization data"}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func NotImplemented(message string) *Error {
	return &Error{Code: CodeNotImplemented, Message: message}
}

// Status maps an error code to its HTTP status. Validation failures are 422,
// tenant mismatches 403; anything unrecognized is a 500.
func (e *Error) Status() int {
	switch e.Code {
	case CodeInvalidOrgID, CodeInvalidLocationID, CodeInvalidRange,
		CodeInvalidSince, CodeInvalidLimit, CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as the uniform error body. Unknown error types are
// flattened to a generic 500 so internals never leak.
func Respond(c *gin.Context, err error) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status(), apiErr)
		return
	}
	c.JSON(http.StatusInternalServerError, &Error{
		Code:    CodeInternal,
		Message: "internal server error",
	})
}
