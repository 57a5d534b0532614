package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Load errors
	ErrMissingColumn  = errors.New("required column missing")
	ErrInvalidPayload = errors.New("invalid payload mass")
	ErrInvalidOutcome = errors.New("invalid outcome class")
	ErrMissingValue   = errors.New("required value missing")
	ErrNoRecords      = errors.New("no launch records")

	// Query errors
	ErrInvalidBound = errors.New("invalid payload bound")
)

// NewMissingColumnError reports a required header that the input lacks
func NewMissingColumnError(column string) error {
	return fmt.Errorf("%w: %q", ErrMissingColumn, column)
}

// NewRowError annotates a load error with the 1-based data row and the column
func NewRowError(row int, column string, err error) error {
	return fmt.Errorf("row %d, column %q: %w", row, column, err)
}

// IsLoadError reports whether err came from validating input data
func IsLoadError(err error) bool {
	return errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrInvalidPayload) ||
		errors.Is(err, ErrInvalidOutcome) ||
		errors.Is(err, ErrMissingValue) ||
		errors.Is(err, ErrNoRecords)
}
