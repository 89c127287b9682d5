package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Data    interface{}  `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError pinpoints one offending request field.
type FieldError struct {
	Field    string   `json:"field"`
	Location string   `json:"location"`
	Messages []string `json:"messages"`
}

// APIError is an error the API knows how to answer: a status code plus the
// field errors to ship alongside it.
type APIError struct {
	Code    int
	Message string
	Errors  []FieldError
}

func (e *APIError) Error() string { return e.Message }

// NotFound is the answer for ids that do not resolve to a record.
func NotFound(message string) *APIError {
	return &APIError{Code: http.StatusNotFound, Message: message}
}

// Conflict is the duplicate-key answer: a validation error naming the field.
func Conflict(field string) *APIError {
	return &APIError{
		Code:    http.StatusConflict,
		Message: "Validation Error",
		Errors: []FieldError{{
			Field:    field,
			Location: "body",
			Messages: []string{`"` + field + `" already exists`},
		}},
	}
}

// APIResponse writes the standard envelope.
func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, Response{
		Success: success,
		Message: message,
		Data:    data,
	})
}

// AbortWithError answers a failed request. Known errors keep their status and
// field details; everything else becomes a 500 and is left on the context for
// the request logger.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Code, Response{
			Message: apiErr.Message,
			Errors:  apiErr.Errors,
		})
		return
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{Message: "Internal Server Error"})
}
