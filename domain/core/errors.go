package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input shape errors
	ErrColumnMissing  = errors.New("required column missing")
	ErrColumnLength   = errors.New("column lengths differ")
	ErrMalformedValue = errors.New("malformed value")
	ErrEmptyTable     = errors.New("table has no rows")

	ErrValidation = errors.New("validation failed")
)

// Error constructors with context
func NewColumnMissingError(table, column string) error {
	return fmt.Errorf("%w: %s.%s", ErrColumnMissing, table, column)
}

func NewMalformedValueError(column string, row int, value string) error {
	return fmt.Errorf("%w: %s row %d: %q", ErrMalformedValue, column, row, value)
}

func NewValidationError(field, message string) error {
	return fmt.Errorf("%w: %s: %s", ErrValidation, field, message)
}

// IsInputShapeError reports whether err describes a structurally bad input table
func IsInputShapeError(err error) bool {
	return errors.Is(err, ErrColumnMissing) ||
		errors.Is(err, ErrColumnLength) ||
		errors.Is(err, ErrMalformedValue) ||
		errors.Is(err, ErrEmptyTable)
}
