package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers. Every one of these is a local,
// recoverable, caller-facing condition; internal invariant violations are
// surfaced as panics, not typed errors.
var (
	ErrNotFound     = errors.New("not found")
	ErrNotOwner     = errors.New("caller is not the owner")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrDuplicateHash is returned when a content hash is registered twice,
	// regardless of which account owns the earlier record.
	ErrDuplicateHash = errors.New("content hash already registered")

	// ErrConflict marks a lost optimistic-concurrency race (e.g. two
	// registrations by the same owner picking the same sequence). Callers
	// retry against the updated state.
	ErrConflict = errors.New("conflict")

	ErrInvalidPrice  = errors.New("invalid price")
	ErrInvalidAmount = errors.New("invalid amount")

	ErrListingInactive       = errors.New("listing is no longer active")
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")

	ErrCooldownActive = errors.New("claim cooldown active")
	ErrBelowThreshold = errors.New("step count below reward threshold")
	ErrPoolExhausted  = errors.New("reward pool exhausted")

	ErrValidation = errors.New("validation error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
