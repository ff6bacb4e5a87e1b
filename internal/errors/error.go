// Package errors provides custom error types for catalog operations.
package errors

import "errors"

var (
	// ErrProductNotFound is returned when no product matches the given identifier.
	ErrProductNotFound = errors.New("product not found")

	// ErrDataValidation is returned when persisted or input data violates the
	// product's field constraints. Callers wrap it with context via fmt.Errorf.
	ErrDataValidation = errors.New("data validation failed")
)
