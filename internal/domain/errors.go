// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflicting write")

	// Record-related errors
	ErrInvalidName   = errors.New("invalid name")
	ErrDuplicateName = errors.New("name already exists")
	ErrValidation    = errors.New("validation failed")

	// Seeding errors
	ErrFixture = errors.New("fixture load failed")
)

// InvalidNameError is returned when a name has no characters a slug can be built from.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	if e.Name == "" {
		return "name is required to generate a slug"
	}
	return fmt.Sprintf("unable to derive slug from name %q", e.Name)
}

func (e *InvalidNameError) Is(target error) bool { return target == ErrInvalidName }

// DuplicateNameError reports a name already taken by another record of the same kind.
type DuplicateNameError struct {
	Kind string
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("%s named %q already exists", e.Kind, e.Name)
}

func (e *DuplicateNameError) Is(target error) bool { return target == ErrDuplicateName }

// FieldError is a single field rule violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationError collects every field violation found for one record.
type FieldValidationError struct {
	Kind   string
	Fields []FieldError
}

func (e *FieldValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Kind, strings.Join(parts, "; "))
}

func (e *FieldValidationError) Is(target error) bool { return target == ErrValidation }

// Add records a violation for field.
func (e *FieldValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Has reports whether field has at least one violation.
func (e *FieldValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// NotFoundError is returned by slug lookups that match no record.
type NotFoundError struct {
	Kind string
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Slug)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// FixtureLoadError means a seed fixture is missing or malformed.
type FixtureLoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FixtureLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fixture %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("fixture %s: %s", e.Path, e.Reason)
}

func (e *FixtureLoadError) Is(target error) bool { return target == ErrFixture }

func (e *FixtureLoadError) Unwrap() error { return e.Err }
