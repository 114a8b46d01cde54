package column

import (
	"fmt"

	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/domain/value"
)

// StructField pairs a field name with its child column
type StructField struct {
	Name   string
	Column Column
}

// Struct is a struct column: a fixed ordered list of named child columns,
// every child sharing the parent's row count. A row is null iff the
// parent's validity bit is clear; the children still hold valid storage
// for that row, it is just ignored on output.
type Struct struct {
	dtype  schema.DataType
	fields []StructField
	length int
	valid  Bitmap
}

// NewStruct builds a struct column from ordered named children.
// Fails with ErrDuplicateFieldName if a name repeats, with
// ErrFieldLengthMismatch if the children disagree on length, and with
// ErrLengthMismatch if an allocated mask is shorter than the children.
func NewStruct(fields []StructField, valid Bitmap) (*Struct, error) {
	if len(fields) == 0 {
		return nil, Errorf(ErrFieldLengthMismatch, "struct column needs at least one field")
	}
	seen := make(map[string]bool, len(fields))
	length := fields[0].Column.Len()
	schemaFields := make([]schema.Field, len(fields))
	for i, f := range fields {
		if seen[f.Name] {
			return nil, fieldError(ErrDuplicateFieldName, f.Name, "field declared twice")
		}
		seen[f.Name] = true
		if f.Column.Len() != length {
			return nil, fieldError(ErrFieldLengthMismatch, f.Name,
				fmt.Sprintf("has %d rows, expected %d", f.Column.Len(), length))
		}
		schemaFields[i] = schema.Field{Name: f.Name, Type: f.Column.DataType()}
	}
	if err := checkMask(valid, length); err != nil {
		return nil, err
	}
	return &Struct{
		dtype:  schema.Struct(schemaFields...),
		fields: fields,
		length: length,
		valid:  valid,
	}, nil
}

func (c *Struct) DataType() schema.DataType { return c.dtype }
func (c *Struct) Len() int                  { return c.length }
func (c *Struct) IsNull(i int) bool         { return !c.valid.Valid(i) }
func (c *Struct) Validity() Bitmap          { return c.valid }

// Fields returns the ordered child columns. Callers must not mutate it.
func (c *Struct) Fields() []StructField { return c.fields }

// Field projects the named field's child column. Rows where the struct
// itself is null project as null field values, even when the child holds
// live storage there; elsewhere the result aliases the parent's storage,
// which columns being immutable makes safe.
// Fails with ErrUnknownField if no field has that name.
func (c *Struct) Field(name string) (Column, error) {
	for _, f := range c.fields {
		if f.Name == name {
			if !c.valid.Allocated() {
				return f.Column, nil
			}
			return withValidity(f.Column, andBitmaps(f.Column.Validity(), c.valid, c.length)), nil
		}
	}
	return nil, fieldError(ErrUnknownField, name,
		fmt.Sprintf("struct has fields %s", c.dtype))
}

func (c *Struct) Get(row int) (value.Value, error) {
	if err := checkRow(row, c.length); err != nil {
		return value.Null(), err
	}
	if !c.valid.Valid(row) {
		return value.Null(), nil
	}
	fields := make([]value.Field, len(c.fields))
	for i, f := range c.fields {
		v, err := f.Column.Get(row)
		if err != nil {
			return value.Null(), err
		}
		fields[i] = value.Field{Name: f.Name, Value: v}
	}
	return value.Struct(fields...), nil
}
