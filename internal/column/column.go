// Package column implements typed, contiguous storage for one logical
// column of a table: primitive stores, plus list, struct and enum layouts
// built from offset arrays, child columns and category dictionaries.
//
// Columns are immutable once constructed. Every operation that produces a
// column allocates a new one; inputs are never mutated. Nested types are
// strictly tree-shaped, so ownership is simple: a list or struct column
// exclusively owns its child column(s).
package column

import (
	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/domain/value"
)

// Column is one named, typed sequence of values with a validity mask.
type Column interface {
	// DataType returns the logical type of the column's values
	DataType() schema.DataType

	// Len returns the row count
	Len() int

	// IsNull reports whether row i is logically null
	IsNull(i int) bool

	// Validity returns the column's validity mask
	Validity() Bitmap

	// Get reconstructs the logical value at the given row, honoring
	// validity and recursively resolving child storage. Fails with
	// ErrIndexOutOfRange when row >= Len().
	Get(row int) (value.Value, error)
}

func checkRow(row, length int) error {
	if row < 0 || row >= length {
		return indexError(row, length)
	}
	return nil
}

// checkMask verifies an allocated validity mask covers every row
func checkMask(valid Bitmap, length int) error {
	if !valid.Covers(length) {
		return Errorf(ErrLengthMismatch,
			"validity mask covers %d rows, column has %d", valid.n, length)
	}
	return nil
}

// withValidity returns a column sharing src's storage under a
// replacement validity mask
func withValidity(src Column, valid Bitmap) Column {
	switch c := src.(type) {
	case *Int64:
		return &Int64{values: c.values, valid: valid}
	case *Float64:
		return &Float64{values: c.values, valid: valid}
	case *String:
		return &String{values: c.values, valid: valid}
	case *Bool:
		return &Bool{values: c.values, valid: valid}
	case *Date:
		return &Date{days: c.days, valid: valid}
	case *Enum:
		return &Enum{dtype: c.dtype, indices: c.indices, valid: valid}
	case *List:
		return &List{dtype: c.dtype, child: c.child, offsets: c.offsets, valid: valid}
	case *Struct:
		return &Struct{dtype: c.dtype, fields: c.fields, length: c.length, valid: valid}
	}
	return src
}
