package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// ErrParse covers undecodable input bytes and files without a header row.
	ErrParse = errors.New("tabular parse failed")

	// ErrValidation covers schema failures: missing required columns or
	// unparseable values in required numeric columns.
	ErrValidation = errors.New("schema validation failed")

	// ErrInsufficientData marks analyses that cannot run on the given rows.
	// Engines normally degrade to empty results instead of returning this;
	// it exists for callers that need an explicit signal.
	ErrInsufficientData = errors.New("insufficient data for analysis")
)

// MissingColumnsError reports required columns absent from the header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

func (e *MissingColumnsError) Unwrap() error { return ErrValidation }

// NumericFieldError reports a non-empty value in a required numeric column
// that does not parse as a float. Row is the 1-based record index.
type NumericFieldError struct {
	Column string
	Row    int
}

func (e *NumericFieldError) Error() string {
	return fmt.Sprintf("invalid numeric in %s at row %d", e.Column, e.Row)
}

func (e *NumericFieldError) Unwrap() error { return ErrValidation }

// Error constructors with context
func NewParseError(reason string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %s: %v", ErrParse, reason, cause)
	}
	return fmt.Errorf("%w: %s", ErrParse, reason)
}

func NewMissingColumnsError(columns []string) error {
	return &MissingColumnsError{Columns: columns}
}

func NewNumericFieldError(column string, row int) error {
	return &NumericFieldError{Column: column, Row: row}
}

// Error checking helpers
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
