package column

import (
	"fmt"

	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/domain/value"
)

// List is a variable-length list column: a single flattened child column
// holds all elements contiguously, and offsets[i]..offsets[i+1] delimits
// row i's slice of it.
type List struct {
	dtype   schema.DataType
	child   Column
	offsets []int
	valid   Bitmap
}

// NewList builds a list column from a flattened child column and offsets.
// Fails with ErrInvalidOffsets unless offsets starts at 0, is
// monotonically non-decreasing, and its last entry does not exceed the
// child length, and with ErrLengthMismatch if an allocated mask is
// shorter than the rows. The row count is len(offsets)-1.
func NewList(child Column, offsets []int, valid Bitmap) (*List, error) {
	if len(offsets) == 0 {
		return nil, Errorf(ErrInvalidOffsets, "offsets must have length rows+1, got 0")
	}
	if offsets[0] != 0 {
		return nil, Errorf(ErrInvalidOffsets, "offsets must start at 0, got %d", offsets[0])
	}
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < offsets[i-1] {
			return nil, &Error{
				Kind:   ErrInvalidOffsets,
				Row:    i - 1,
				Reason: fmt.Sprintf("offsets decrease from %d to %d", offsets[i-1], offsets[i]),
			}
		}
	}
	if last := offsets[len(offsets)-1]; last > child.Len() {
		return nil, Errorf(ErrInvalidOffsets, "offsets end at %d but child has %d elements", last, child.Len())
	}
	if err := checkMask(valid, len(offsets)-1); err != nil {
		return nil, err
	}
	return &List{
		dtype:   schema.List(child.DataType()),
		child:   child,
		offsets: offsets,
		valid:   valid,
	}, nil
}

func (c *List) DataType() schema.DataType { return c.dtype }
func (c *List) Len() int                  { return len(c.offsets) - 1 }
func (c *List) IsNull(i int) bool         { return !c.valid.Valid(i) }
func (c *List) Validity() Bitmap          { return c.valid }

// Child returns the flattened element column. Callers must not mutate it.
func (c *List) Child() Column { return c.child }

// Offsets returns the offset array. Callers must not mutate it.
func (c *List) Offsets() []int { return c.offsets }

// ElemRange returns the [start, end) slice of the child column for row i
func (c *List) ElemRange(i int) (int, int) {
	return c.offsets[i], c.offsets[i+1]
}

func (c *List) Get(row int) (value.Value, error) {
	if err := checkRow(row, c.Len()); err != nil {
		return value.Null(), err
	}
	if !c.valid.Valid(row) {
		return value.Null(), nil
	}
	start, end := c.ElemRange(row)
	elems := make([]value.Value, 0, end-start)
	for j := start; j < end; j++ {
		v, err := c.child.Get(j)
		if err != nil {
			return value.Null(), err
		}
		elems = append(elems, v)
	}
	return value.List(elems...), nil
}
