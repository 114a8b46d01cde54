package column

// Concat stitches same-typed columns into one, preserving part order.
// This is the merge step of the partitioned parallel path: workers produce
// per-partition columns and Concat reassembles them in input row order.
//
// Fails with ErrTypeMismatch when the parts disagree on data type.
func Concat(parts ...Column) (Column, error) {
	if len(parts) == 0 {
		return nil, Errorf(ErrTypeMismatch, "concat of zero columns")
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	dtype := parts[0].DataType()
	for _, p := range parts[1:] {
		if !p.DataType().Equal(dtype) {
			return nil, Errorf(ErrTypeMismatch, "concat of %s with %s", dtype, p.DataType())
		}
	}

	masks := make([]Bitmap, len(parts))
	lengths := make([]int, len(parts))
	for i, p := range parts {
		masks[i] = p.Validity()
		lengths[i] = p.Len()
	}

	switch parts[0].(type) {
	case *Int64:
		var out []int64
		for _, p := range parts {
			out = append(out, p.(*Int64).values...)
		}
		return NewInt64(out, concatBitmaps(masks, lengths)), nil

	case *Float64:
		var out []float64
		for _, p := range parts {
			out = append(out, p.(*Float64).values...)
		}
		return NewFloat64(out, concatBitmaps(masks, lengths)), nil

	case *String:
		var out []string
		for _, p := range parts {
			out = append(out, p.(*String).values...)
		}
		return NewString(out, concatBitmaps(masks, lengths)), nil

	case *Bool:
		var out []bool
		for _, p := range parts {
			out = append(out, p.(*Bool).values...)
		}
		return NewBool(out, concatBitmaps(masks, lengths)), nil

	case *Date:
		var out []int32
		for _, p := range parts {
			out = append(out, p.(*Date).days...)
		}
		return NewDate(out, concatBitmaps(masks, lengths)), nil

	case *Enum:
		var out []int32
		for _, p := range parts {
			out = append(out, p.(*Enum).indices...)
		}
		// dtype equality above guarantees identical category lists,
		// so indices stay positionally valid.
		return NewEnum(dtype.Categories, out, concatBitmaps(masks, lengths))

	case *List:
		children := make([]Column, len(parts))
		for i, p := range parts {
			children[i] = p.(*List).child
		}
		child, err := Concat(children...)
		if err != nil {
			return nil, err
		}
		total := 0
		for _, n := range lengths {
			total += n
		}
		offsets := make([]int, 0, total+1)
		offsets = append(offsets, 0)
		shift := 0
		for _, p := range parts {
			lc := p.(*List)
			for i := 1; i < len(lc.offsets); i++ {
				offsets = append(offsets, lc.offsets[i]+shift)
			}
			shift += lc.offsets[len(lc.offsets)-1]
		}
		return NewList(child, offsets, concatBitmaps(masks, lengths))

	case *Struct:
		first := parts[0].(*Struct)
		fields := make([]StructField, len(first.fields))
		for fi, f := range first.fields {
			children := make([]Column, len(parts))
			for i, p := range parts {
				children[i] = p.(*Struct).fields[fi].Column
			}
			child, err := Concat(children...)
			if err != nil {
				return nil, err
			}
			fields[fi] = StructField{Name: f.Name, Column: child}
		}
		return NewStruct(fields, concatBitmaps(masks, lengths))

	default:
		return nil, Errorf(ErrTypeMismatch, "concat: unsupported column %T", parts[0])
	}
}
