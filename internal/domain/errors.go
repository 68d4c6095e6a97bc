package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrPrecondition = errors.New("precondition failed")
	ErrUnavailable  = errors.New("unavailable")
)

// FieldError describes a validation error for a specific field.
// Code is a stable machine-readable identifier (e.g. "email_invalid").
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Code)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Codes returns the error codes in the order they were collected.
func (e *ValidationError) Codes() []string {
	codes := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		codes[i] = fe.Code
	}
	return codes
}

// Has reports whether any collected error carries the given code.
func (e *ValidationError) Has(code string) bool {
	for _, fe := range e.Errors {
		if fe.Code == code {
			return true
		}
	}
	return false
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, code, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Code: code, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// Precondition codes reported when an emergency package cannot be assembled.
const (
	PreconditionNoGuardians = "no_guardians"
	PreconditionNoLocation  = "no_location"
)

// PreconditionError reports that a request is well-formed but the current
// state does not allow it to be served.
type PreconditionError struct {
	Code string
}

func (e *PreconditionError) Error() string {
	return "precondition: " + e.Code
}

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

// NewPreconditionError creates a PreconditionError with the given code.
func NewPreconditionError(code string) *PreconditionError {
	return &PreconditionError{Code: code}
}
