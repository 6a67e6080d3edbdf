// Package domain contains the error kinds shared by every layer of the
// inventory. Services return these typed errors; transports map them to
// status codes.
package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every typed error below matches exactly one of these
// through errors.Is.
var (
	// ErrValidation marks input that violates a domain rule.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an identifier that does not resolve to a live entity.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks an operation rejected because of related state,
	// such as deleting a parent that still owns children.
	ErrConflict = errors.New("conflict")
)

// ValidationError describes a single rule violation on an input field.
type ValidationError struct {
	// Field is the input field that failed validation.
	Field string

	// Message is a human-readable explanation.
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Error implements error.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError reports that an entity of the given kind does not exist.
type NotFoundError struct {
	// Entity is the kind of entity, e.g. "category".
	Entity string

	// ID is the identifier that failed to resolve.
	ID string
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(entity string, id fmt.Stringer) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id.String()}
}

// Error implements error.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConflictError reports that an operation cannot proceed because of the
// state of related entities.
type ConflictError struct {
	Entity string
	ID     string
	Reason string
}

// NewConflictError creates a ConflictError.
func NewConflictError(entity string, id fmt.Stringer, reason string) *ConflictError {
	return &ConflictError{Entity: entity, ID: id.String(), Reason: reason}
}

// Error implements error.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Entity, e.ID, e.Reason)
}

// Is reports whether target is ErrConflict.
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is a not-found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err is a conflict failure.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
