package column

import (
	"fmt"
)

// Gather builds a new column holding, for each k, the value of src at row
// indices[k]. Indices may repeat and may appear in any order; this is the
// row-level "take" that the repeat-by engine is built on.
//
// Nested values are copied whole: gathering a list row copies that row's
// element range from the flattened child and never decomposes it, so
// arbitrarily deep nesting works with no per-type special cases beyond
// the recursion below.
//
// Fails with ErrIndexOutOfRange on the first out-of-range index.
func Gather(src Column, indices []int) (Column, error) {
	length := src.Len()
	for _, idx := range indices {
		if idx < 0 || idx >= length {
			return nil, indexError(idx, length)
		}
	}
	return gather(src, indices)
}

// gather assumes indices are already bounds-checked
func gather(src Column, indices []int) (Column, error) {
	switch c := src.(type) {
	case *Int64:
		out := make([]int64, len(indices))
		for k, idx := range indices {
			out[k] = c.values[idx]
		}
		return NewInt64(out, gatherBitmap(c.valid, indices)), nil

	case *Float64:
		out := make([]float64, len(indices))
		for k, idx := range indices {
			out[k] = c.values[idx]
		}
		return NewFloat64(out, gatherBitmap(c.valid, indices)), nil

	case *String:
		out := make([]string, len(indices))
		for k, idx := range indices {
			out[k] = c.values[idx]
		}
		return NewString(out, gatherBitmap(c.valid, indices)), nil

	case *Bool:
		out := make([]bool, len(indices))
		for k, idx := range indices {
			out[k] = c.values[idx]
		}
		return NewBool(out, gatherBitmap(c.valid, indices)), nil

	case *Date:
		out := make([]int32, len(indices))
		for k, idx := range indices {
			out[k] = c.days[idx]
		}
		return NewDate(out, gatherBitmap(c.valid, indices)), nil

	case *Enum:
		out := make([]int32, len(indices))
		for k, idx := range indices {
			out[k] = c.indices[idx]
		}
		return NewEnum(c.dtype.Categories, out, gatherBitmap(c.valid, indices))

	case *List:
		// New offsets first, then one expanded index list for the child.
		offsets := make([]int, len(indices)+1)
		total := 0
		for k, idx := range indices {
			offsets[k] = total
			total += c.offsets[idx+1] - c.offsets[idx]
		}
		offsets[len(indices)] = total

		childIdx := make([]int, 0, total)
		for _, idx := range indices {
			for j := c.offsets[idx]; j < c.offsets[idx+1]; j++ {
				childIdx = append(childIdx, j)
			}
		}
		child, err := gather(c.child, childIdx)
		if err != nil {
			return nil, err
		}
		return NewList(child, offsets, gatherBitmap(c.valid, indices))

	case *Struct:
		fields := make([]StructField, len(c.fields))
		for i, f := range c.fields {
			child, err := gather(f.Column, indices)
			if err != nil {
				return nil, err
			}
			fields[i] = StructField{Name: f.Name, Column: child}
		}
		return NewStruct(fields, gatherBitmap(c.valid, indices))

	default:
		return nil, Errorf(ErrTypeMismatch, "gather: unsupported column %T", src)
	}
}

// RepeatIndices expands per-row repeat counts into a gather index list:
// row i contributes counts[i] copies of i, in row order. A negative count
// is the caller's validation failure, not ours; panic to make that loud.
func RepeatIndices(counts []int) []int {
	total := 0
	for _, n := range counts {
		if n < 0 {
			panic(fmt.Sprintf("negative repeat count %d", n))
		}
		total += n
	}
	out := make([]int, 0, total)
	for i, n := range counts {
		for ; n > 0; n-- {
			out = append(out, i)
		}
	}
	return out
}
