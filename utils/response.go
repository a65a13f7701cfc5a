// File: /utils/response.go
package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"wanderlog-api/services"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
	})
}

// StatusForError maps the services failure taxonomy onto HTTP statuses.
// Unrecognized errors fall through to 500.
func StatusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrMissingCredential),
		errors.Is(err, services.ErrInvalidCredential):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidArgument),
		errors.Is(err, services.ErrInvalidOperation),
		errors.Is(err, services.ErrInvalidReference):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SendServiceError writes the status derived from the failure taxonomy.
// resource names the entity for not-found wording ("Trip" -> "Trip not
// found"); fallback is the 500 message.
func SendServiceError(c *gin.Context, err error, resource, fallback string) {
	status := StatusForError(err)
	msg := fallback
	switch status {
	case http.StatusNotFound:
		msg = resource + " not found"
	case http.StatusForbidden:
		msg = "Access denied"
	case http.StatusUnauthorized:
		msg = "Invalid credentials"
	case http.StatusConflict:
		msg = "Conflict"
	case http.StatusBadRequest:
		msg = err.Error()
	}
	SendError(c, status, msg)
}
