package column

import (
	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/domain/value"
)

// nullIndex is the storage sentinel for a null enum entry. Nullness is
// recorded both here and in the validity mask; IsNull honors either.
const nullIndex = int32(-1)

// Enum is a dictionary-encoded column: a fixed ordered category list plus
// an index array pointing into it.
type Enum struct {
	dtype   schema.DataType
	indices []int32
	valid   Bitmap
}

// NewEnum builds an enum column over the given category set. Every index
// must be in range for the categories or the null sentinel; anything else
// fails with ErrTypeMismatch. An allocated mask shorter than the index
// array fails with ErrLengthMismatch.
func NewEnum(categories []string, indices []int32, valid Bitmap) (*Enum, error) {
	for i, idx := range indices {
		if idx != nullIndex && (idx < 0 || int(idx) >= len(categories)) {
			return nil, &Error{
				Kind:   ErrTypeMismatch,
				Row:    i,
				Reason: "enum index out of category range",
			}
		}
	}
	if err := checkMask(valid, len(indices)); err != nil {
		return nil, err
	}
	return &Enum{dtype: schema.Enum(categories...), indices: indices, valid: valid}, nil
}

func (c *Enum) DataType() schema.DataType { return c.dtype }
func (c *Enum) Len() int                  { return len(c.indices) }
func (c *Enum) Validity() Bitmap          { return c.valid }

func (c *Enum) IsNull(i int) bool {
	return !c.valid.Valid(i) || c.indices[i] == nullIndex
}

func (c *Enum) Get(row int) (value.Value, error) {
	if err := checkRow(row, len(c.indices)); err != nil {
		return value.Null(), err
	}
	if c.IsNull(row) {
		return value.Null(), nil
	}
	return value.Enum(c.dtype.Categories[c.indices[row]]), nil
}

// Categories returns the fixed category list. Callers must not mutate it.
func (c *Enum) Categories() []string { return c.dtype.Categories }
