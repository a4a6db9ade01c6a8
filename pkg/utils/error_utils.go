package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the standardized error body. Every error response carries a
// message; validation failures additionally carry a per-field message map.
type APIError struct {
	StatusCode int               `json:"-"` // HTTP status code, not part of the JSON body
	Message    string            `json:"message"`
	Fields     map[string]string `json:"fields,omitempty"`
}

// NewAPIError creates a message-only APIError, used for not-found conditions
// and business-rule violations.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

// NewValidationAPIError creates a 422 APIError carrying per-field messages.
func NewValidationAPIError(message string, fields map[string]string) *APIError {
	return &APIError{StatusCode: http.StatusUnprocessableEntity, Message: message, Fields: fields}
}

// RespondWithError sends a standardized JSON error response.
func RespondWithError(c *gin.Context, err *APIError) {
	c.JSON(err.StatusCode, gin.H{"error": err})
	c.Abort()
}
