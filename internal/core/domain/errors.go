package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserExists         = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// NotFoundError reports a lookup miss for a named entity and key. Query
// handlers raise it so the transport layer can render a 404 with the entity
// spelled out.
type NotFoundError struct {
	Entity string
	Key    any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entity %q (%v) was not found", e.Entity, e.Key)
}

// FieldError is a single field-level rule violation.
type FieldError struct {
	PropertyName string `json:"propertyName"`
	ErrorMessage string `json:"errorMessage"`
}

// ValidationError carries every violation found in a request. Commands are
// never applied when one is raised.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s)", len(e.Errors))
}
