package entities

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. Handlers map these to HTTP statuses at the
// delivery boundary; anything else is treated as an internal error and
// logged without leaking detail to the client.
var (
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrGenerationFailed    = errors.New("generation failed")
	ErrConflict            = errors.New("conflict")
	ErrNotConfigured       = errors.New("not configured")
)

// GenerationError wraps a provider failure so callers can both match on
// ErrGenerationFailed and inspect the cause.
func GenerationError(cause error) error {
	return fmt.Errorf("%w: %v", ErrGenerationFailed, cause)
}

// NotConfiguredError names the missing setting.
func NotConfiguredError(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotConfigured)
}
