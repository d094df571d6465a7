// Package domain holds the wine inventory model and the failures it can
// report. Errors here carry no transport meaning; adapters decide how each
// kind is surfaced.
package domain

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is. The typed errors below unwrap to one
// of these.
var (
	ErrNotFound             = errors.New("not found")
	ErrValidation           = errors.New("validation failed")
	ErrReferentialIntegrity = errors.New("referential integrity violation")
)

// NotFoundError reports a winemaker or bottle id with no record.
type NotFoundError struct {
	Entity string
	ID     int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// NewNotFoundError returns a *NotFoundError for entity and id.
func NewNotFoundError(entity string, id int) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ReferentialIntegrityError reports a write whose foreign id resolves to
// nothing, such as a bottle naming an unknown winemaker.
type ReferentialIntegrityError struct {
	Entity    string
	Reference string
	ID        int
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s references %s %d, which does not exist", e.Entity, e.Reference, e.ID)
}

func (e *ReferentialIntegrityError) Unwrap() error { return ErrReferentialIntegrity }

// NewReferentialIntegrityError returns a *ReferentialIntegrityError.
func NewReferentialIntegrityError(entity, reference string, id int) error {
	return &ReferentialIntegrityError{Entity: entity, Reference: reference, ID: id}
}

// ValidationError reports a single rejected field. Field may be empty when
// the problem spans the whole value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}

	return "validation failed for " + e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError returns a *ValidationError.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound and its siblings report whether err wraps the matching sentinel.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsReferentialIntegrity(err error) bool { return errors.Is(err, ErrReferentialIntegrity) }
