package column

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel error kinds. Every failure surfaced by the column store or the
// engines wraps exactly one of these, so callers can match with errors.Is.
var (
	ErrIndexOutOfRange     = errors.New("index out of range")
	ErrInvalidOffsets      = errors.New("invalid offsets")
	ErrFieldLengthMismatch = errors.New("field length mismatch")
	ErrDuplicateFieldName  = errors.New("duplicate field name")
	ErrUnknownField        = errors.New("unknown field")
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrLengthMismatch      = errors.New("length mismatch")
)

// Error is a validation failure with enough context to identify the
// offending column, field or row. All failures are detected synchronously
// and leave existing columns untouched; outputs are newly allocated, so no
// partial mutation is possible.
type Error struct {
	Kind   error  // one of the sentinel kinds above
	Field  string // field name, for struct-related failures
	Row    int    // row number (0-based), -1 if not row-specific
	Reason string // human-readable explanation
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func (e *Error) Error() string {
	var parts []string

	parts = append(parts, e.Kind.Error())

	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field %q", e.Field))
	}

	if e.Row >= 0 {
		parts = append(parts, fmt.Sprintf("at row %d", e.Row))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	return strings.Join(parts, " - ")
}

// Errorf builds an Error of the given kind with a formatted reason
func Errorf(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Row: -1, Reason: fmt.Sprintf(format, args...)}
}

func indexError(row, length int) *Error {
	return &Error{
		Kind:   ErrIndexOutOfRange,
		Row:    row,
		Reason: fmt.Sprintf("column has %d rows", length),
	}
}

func fieldError(kind error, field, reason string) *Error {
	return &Error{Kind: kind, Field: field, Row: -1, Reason: reason}
}
