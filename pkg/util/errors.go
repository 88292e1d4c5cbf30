// Package util provides logging, string helpers, and common error types.
package util

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the CLI and storage layers. The parser and risk
// engine never return errors; these cover everything around them.
var (
	ErrNotFound         = errors.New("result not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("result store unavailable")
	ErrValidationFailed = errors.New("validation failed")
)

// InputError describes unusable caller input with context
type InputError struct {
	Source  string
	Details string
}

func (e *InputError) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("invalid input from %s", e.Source)
	}
	return fmt.Sprintf("invalid input from %s: %s", e.Source, e.Details)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// NewInputError creates a new input error
func NewInputError(source, details string) *InputError {
	return &InputError{Source: source, Details: details}
}

// ValidationError represents one or more validation failures
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "validation failed: " + e.Errors[0]
	}
	return fmt.Sprintf("validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewValidationError creates a validation error from messages
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Errors: messages}
}

// ValidationBuilder helps accumulate validation errors
type ValidationBuilder struct {
	errors []string
}

// Add adds an error message if condition is false
func (v *ValidationBuilder) Add(condition bool, message string) *ValidationBuilder {
	if !condition {
		v.errors = append(v.errors, message)
	}
	return v
}

// AddError adds an error message unconditionally
func (v *ValidationBuilder) AddError(message string) *ValidationBuilder {
	v.errors = append(v.errors, message)
	return v
}

// AddErrorf adds a formatted error message
func (v *ValidationBuilder) AddErrorf(format string, args ...interface{}) *ValidationBuilder {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
	return v
}

// HasErrors returns true if there are validation errors
func (v *ValidationBuilder) HasErrors() bool {
	return len(v.errors) > 0
}

// Build returns the validation error or nil if no errors
func (v *ValidationBuilder) Build() error {
	if len(v.errors) == 0 {
		return nil
	}
	return &ValidationError{Errors: v.errors}
}
