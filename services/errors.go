// File: /services/errors.go
package services

import "errors"

// Failure taxonomy shared by every service. Controllers translate these
// into HTTP statuses in one place (utils.StatusForError).
var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrNotFound          = errors.New("not found")
	ErrAccessDenied      = errors.New("access denied")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrInvalidReference  = errors.New("invalid reference")
	ErrConflict          = errors.New("conflict")
	ErrPartialFailure    = errors.New("partial failure")
)
