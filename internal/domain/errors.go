package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")

	// ErrMissingField is returned when a required input field is absent.
	ErrMissingField = fmt.Errorf("missing field: %w", ErrBadRequest)
	// ErrStorageWrite is returned when the token store rejects or cannot complete a write.
	ErrStorageWrite = errors.New("storage write failed")
)
