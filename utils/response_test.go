// File: /utils/response_test.go
package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"wanderlog-api/services"
)

func TestStatusForError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{services.ErrMissingCredential, http.StatusUnauthorized},
		{services.ErrInvalidCredential, http.StatusUnauthorized},
		{services.ErrAccessDenied, http.StatusForbidden},
		{services.ErrNotFound, http.StatusNotFound},
		{services.ErrConflict, http.StatusConflict},
		{services.ErrInvalidArgument, http.StatusBadRequest},
		{services.ErrInvalidOperation, http.StatusBadRequest},
		{services.ErrInvalidReference, http.StatusBadRequest},
		{services.ErrPartialFailure, http.StatusInternalServerError},
		{errors.New("unclassified"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := StatusForError(tt.err); got != tt.want {
			t.Errorf("StatusForError(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestStatusForWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("resolving trip: %w", services.ErrNotFound)
	if got := StatusForError(wrapped); got != http.StatusNotFound {
		t.Errorf("StatusForError(wrapped not found) = %d, want %d", got, http.StatusNotFound)
	}
}
