package column

import (
	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/domain/value"
)

// FromValues materializes a column of the declared type from logical
// values, one per row. This is the inverse of calling Get for every row:
// ingestion uses it to turn literals into storage, and the by-row
// extraction path uses it to rebuild its result.
//
// Fails with ErrTypeMismatch on the first value whose kind does not match
// the declared type.
func FromValues(dtype schema.DataType, vals []value.Value) (Column, error) {
	switch dtype.Kind {
	case schema.KindInt64:
		out := make([]int64, len(vals))
		valid, err := fillFlat(vals, value.KindInt64, dtype, func(i int, v value.Value) {
			out[i] = v.Int64()
		})
		if err != nil {
			return nil, err
		}
		return NewInt64(out, valid), nil

	case schema.KindFloat64:
		out := make([]float64, len(vals))
		valid, err := fillFlat(vals, value.KindFloat64, dtype, func(i int, v value.Value) {
			out[i] = v.Float64()
		})
		if err != nil {
			return nil, err
		}
		return NewFloat64(out, valid), nil

	case schema.KindString:
		out := make([]string, len(vals))
		valid, err := fillFlat(vals, value.KindString, dtype, func(i int, v value.Value) {
			out[i] = v.Str()
		})
		if err != nil {
			return nil, err
		}
		return NewString(out, valid), nil

	case schema.KindBool:
		out := make([]bool, len(vals))
		valid, err := fillFlat(vals, value.KindBool, dtype, func(i int, v value.Value) {
			out[i] = v.Bool()
		})
		if err != nil {
			return nil, err
		}
		return NewBool(out, valid), nil

	case schema.KindDate:
		out := make([]int32, len(vals))
		valid, err := fillFlat(vals, value.KindDate, dtype, func(i int, v value.Value) {
			out[i] = v.Days()
		})
		if err != nil {
			return nil, err
		}
		return NewDate(out, valid), nil

	case schema.KindEnum:
		return enumFromValues(dtype, vals)

	case schema.KindList:
		return listFromValues(dtype, vals)

	case schema.KindStruct:
		return structFromValues(dtype, vals)

	default:
		return nil, Errorf(ErrTypeMismatch, "cannot build column of type %s", dtype)
	}
}

// fillFlat drives a flat column build: nulls clear validity, matching
// kinds invoke set, anything else is a type mismatch.
func fillFlat(vals []value.Value, want value.Kind, dtype schema.DataType, set func(int, value.Value)) (Bitmap, error) {
	valid := Bitmap{}
	for i, v := range vals {
		if v.IsNull() {
			if !valid.Allocated() {
				valid = NewBitmap(len(vals))
			}
			valid.SetNull(i)
			continue
		}
		if v.Kind() != want {
			return Bitmap{}, typeMismatchAt(i, dtype, v)
		}
		set(i, v)
	}
	return valid, nil
}

func typeMismatchAt(row int, dtype schema.DataType, v value.Value) *Error {
	return &Error{
		Kind:   ErrTypeMismatch,
		Row:    row,
		Reason: "value " + v.String() + " does not fit type " + dtype.String(),
	}
}

func enumFromValues(dtype schema.DataType, vals []value.Value) (Column, error) {
	byName := make(map[string]int32, len(dtype.Categories))
	for i, c := range dtype.Categories {
		byName[c] = int32(i)
	}
	indices := make([]int32, len(vals))
	valid := Bitmap{}
	for i, v := range vals {
		if v.IsNull() {
			indices[i] = nullIndex
			if !valid.Allocated() {
				valid = NewBitmap(len(vals))
			}
			valid.SetNull(i)
			continue
		}
		// Plain strings are accepted and resolved against the category
		// list, matching how frames are declared with an explicit schema.
		var name string
		switch v.Kind() {
		case value.KindEnum:
			name = v.Category()
		case value.KindString:
			name = v.Str()
		default:
			return nil, typeMismatchAt(i, dtype, v)
		}
		idx, ok := byName[name]
		if !ok {
			return nil, &Error{
				Kind:   ErrTypeMismatch,
				Row:    i,
				Reason: "category " + name + " is not in " + dtype.String(),
			}
		}
		indices[i] = idx
	}
	return NewEnum(dtype.Categories, indices, valid)
}

func listFromValues(dtype schema.DataType, vals []value.Value) (Column, error) {
	offsets := make([]int, len(vals)+1)
	var flat []value.Value
	valid := Bitmap{}
	for i, v := range vals {
		offsets[i] = len(flat)
		if v.IsNull() {
			if !valid.Allocated() {
				valid = NewBitmap(len(vals))
			}
			valid.SetNull(i)
			continue
		}
		if v.Kind() != value.KindList {
			return nil, typeMismatchAt(i, dtype, v)
		}
		flat = append(flat, v.List()...)
	}
	offsets[len(vals)] = len(flat)

	child, err := FromValues(*dtype.Elem, flat)
	if err != nil {
		return nil, err
	}
	return NewList(child, offsets, valid)
}

func structFromValues(dtype schema.DataType, vals []value.Value) (Column, error) {
	perField := make([][]value.Value, len(dtype.Fields))
	for fi := range dtype.Fields {
		perField[fi] = make([]value.Value, len(vals))
	}
	valid := Bitmap{}
	for i, v := range vals {
		if v.IsNull() {
			// Children keep valid storage for a null parent row; nulls
			// are the cheapest thing to store there.
			for fi := range perField {
				perField[fi][i] = value.Null()
			}
			if !valid.Allocated() {
				valid = NewBitmap(len(vals))
			}
			valid.SetNull(i)
			continue
		}
		if v.Kind() != value.KindStruct {
			return nil, typeMismatchAt(i, dtype, v)
		}
		for fi, f := range dtype.Fields {
			fv, ok := v.GetField(f.Name)
			if !ok {
				fv = value.Null()
			}
			perField[fi][i] = fv
		}
	}

	fields := make([]StructField, len(dtype.Fields))
	for fi, f := range dtype.Fields {
		child, err := FromValues(f.Type, perField[fi])
		if err != nil {
			return nil, err
		}
		fields[fi] = StructField{Name: f.Name, Column: child}
	}
	return NewStruct(fields, valid)
}
