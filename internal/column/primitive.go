package column

import (
	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/domain/value"
)

// Int64 is a flat column of 64-bit integers
type Int64 struct {
	values []int64
	valid  Bitmap
}

// NewInt64 wraps a value slice in a column. Pass the zero Bitmap when the
// column has no nulls; an allocated mask must cover the whole slice.
// The slice is owned by the column afterwards.
func NewInt64(values []int64, valid Bitmap) *Int64 {
	return &Int64{values: values, valid: valid}
}

func (c *Int64) DataType() schema.DataType { return schema.Int64() }
func (c *Int64) Len() int                  { return len(c.values) }
func (c *Int64) IsNull(i int) bool         { return !c.valid.Valid(i) }
func (c *Int64) Validity() Bitmap          { return c.valid }

func (c *Int64) Get(row int) (value.Value, error) {
	if err := checkRow(row, len(c.values)); err != nil {
		return value.Null(), err
	}
	if !c.valid.Valid(row) {
		return value.Null(), nil
	}
	return value.Int64(c.values[row]), nil
}

// Value returns the raw storage at row, ignoring validity
func (c *Int64) Value(row int) int64 { return c.values[row] }

// Float64 is a flat column of 64-bit floats
type Float64 struct {
	values []float64
	valid  Bitmap
}

func NewFloat64(values []float64, valid Bitmap) *Float64 {
	return &Float64{values: values, valid: valid}
}

func (c *Float64) DataType() schema.DataType { return schema.Float64() }
func (c *Float64) Len() int                  { return len(c.values) }
func (c *Float64) IsNull(i int) bool         { return !c.valid.Valid(i) }
func (c *Float64) Validity() Bitmap          { return c.valid }

func (c *Float64) Get(row int) (value.Value, error) {
	if err := checkRow(row, len(c.values)); err != nil {
		return value.Null(), err
	}
	if !c.valid.Valid(row) {
		return value.Null(), nil
	}
	return value.Float64(c.values[row]), nil
}

// String is a flat column of strings
type String struct {
	values []string
	valid  Bitmap
}

func NewString(values []string, valid Bitmap) *String {
	return &String{values: values, valid: valid}
}

func (c *String) DataType() schema.DataType { return schema.String() }
func (c *String) Len() int                  { return len(c.values) }
func (c *String) IsNull(i int) bool         { return !c.valid.Valid(i) }
func (c *String) Validity() Bitmap          { return c.valid }

func (c *String) Get(row int) (value.Value, error) {
	if err := checkRow(row, len(c.values)); err != nil {
		return value.Null(), err
	}
	if !c.valid.Valid(row) {
		return value.Null(), nil
	}
	return value.String(c.values[row]), nil
}

// Bool is a flat column of booleans
type Bool struct {
	values []bool
	valid  Bitmap
}

func NewBool(values []bool, valid Bitmap) *Bool {
	return &Bool{values: values, valid: valid}
}

func (c *Bool) DataType() schema.DataType { return schema.Bool() }
func (c *Bool) Len() int                  { return len(c.values) }
func (c *Bool) IsNull(i int) bool         { return !c.valid.Valid(i) }
func (c *Bool) Validity() Bitmap          { return c.valid }

func (c *Bool) Get(row int) (value.Value, error) {
	if err := checkRow(row, len(c.values)); err != nil {
		return value.Null(), err
	}
	if !c.valid.Valid(row) {
		return value.Null(), nil
	}
	return value.Bool(c.values[row]), nil
}

// Date is a flat column of dates stored as days since the Unix epoch
type Date struct {
	days  []int32
	valid Bitmap
}

func NewDate(days []int32, valid Bitmap) *Date {
	return &Date{days: days, valid: valid}
}

func (c *Date) DataType() schema.DataType { return schema.Date() }
func (c *Date) Len() int                  { return len(c.days) }
func (c *Date) IsNull(i int) bool         { return !c.valid.Valid(i) }
func (c *Date) Validity() Bitmap          { return c.valid }

func (c *Date) Get(row int) (value.Value, error) {
	if err := checkRow(row, len(c.days)); err != nil {
		return value.Null(), err
	}
	if !c.valid.Valid(row) {
		return value.Null(), nil
	}
	return value.Date(c.days[row]), nil
}
