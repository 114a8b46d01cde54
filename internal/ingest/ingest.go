// Package ingest constructs tables from Go literals and JSON rows. It is
// the external collaborator feeding the engine: everything here ends in a
// table that satisfies the column store invariants, and nothing here is
// needed once a table exists.
package ingest

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/leengari/colframe/internal/column"
	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/domain/value"
	"github.com/leengari/colframe/internal/table"
)

// Spec declares one column to ingest: its name, type and literal rows
type Spec struct {
	Name string
	Type schema.DataType
	Data []interface{}
}

// Table builds a table from column specs, converting literals per the
// declared types. Mirrors constructing a frame with an explicit schema.
func Table(specs ...Spec) (*table.Table, error) {
	cols := make([]table.Named, len(specs))
	for i, s := range specs {
		col, err := Column(s.Type, s.Data)
		if err != nil {
			return nil, errors.Wrapf(err, "ingest column %q", s.Name)
		}
		cols[i] = table.Named{Name: s.Name, Column: col}
	}
	return table.New(cols...)
}

// Column converts literal rows to a column of the declared type
func Column(dtype schema.DataType, data []interface{}) (column.Column, error) {
	vals := make([]value.Value, len(data))
	for i, raw := range data {
		v, err := Value(dtype, raw)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		vals[i] = v
	}
	return column.FromValues(dtype, vals)
}

// Value converts one native Go literal to a logical value of the declared
// type. nil always converts to null. JSON decoding feeds through here
// too, so float64 is accepted wherever it round-trips losslessly.
func Value(dtype schema.DataType, raw interface{}) (value.Value, error) {
	if raw == nil {
		return value.Null(), nil
	}
	if v, ok := raw.(value.Value); ok {
		return v, nil
	}
	switch dtype.Kind {
	case schema.KindInt64:
		switch n := raw.(type) {
		case int:
			return value.Int64(int64(n)), nil
		case int64:
			return value.Int64(n), nil
		case float64:
			if n == float64(int64(n)) {
				return value.Int64(int64(n)), nil
			}
			return value.Null(), errors.Errorf("%v is not an integer", n)
		}
	case schema.KindFloat64:
		switch n := raw.(type) {
		case float64:
			return value.Float64(n), nil
		case int:
			return value.Float64(float64(n)), nil
		case int64:
			return value.Float64(float64(n)), nil
		}
	case schema.KindString:
		if s, ok := raw.(string); ok {
			return value.String(s), nil
		}
	case schema.KindBool:
		if b, ok := raw.(bool); ok {
			return value.Bool(b), nil
		}
	case schema.KindDate:
		switch d := raw.(type) {
		case time.Time:
			return value.DateOf(d.Year(), d.Month(), d.Day()), nil
		case string:
			t, err := time.Parse("2006-01-02", d)
			if err != nil {
				return value.Null(), errors.Wrapf(err, "parse date %q", d)
			}
			return value.DateOf(t.Year(), t.Month(), t.Day()), nil
		}
	case schema.KindEnum:
		if s, ok := raw.(string); ok {
			return value.Enum(s), nil
		}
	case schema.KindList:
		if elems, ok := raw.([]interface{}); ok {
			out := make([]value.Value, len(elems))
			for i, e := range elems {
				v, err := Value(*dtype.Elem, e)
				if err != nil {
					return value.Null(), errors.Wrapf(err, "element %d", i)
				}
				out[i] = v
			}
			return value.List(out...), nil
		}
	case schema.KindStruct:
		if m, ok := raw.(map[string]interface{}); ok {
			fields := make([]value.Field, len(dtype.Fields))
			for i, f := range dtype.Fields {
				fv, err := Value(f.Type, m[f.Name])
				if err != nil {
					return value.Null(), errors.Wrapf(err, "field %q", f.Name)
				}
				fields[i] = value.Field{Name: f.Name, Value: fv}
			}
			return value.Struct(fields...), nil
		}
	}
	return value.Null(), errors.Errorf("cannot convert %T to %s", raw, dtype)
}

// InferType guesses a column type from literal rows: the first non-nil
// row decides, recursively for nested shapes. Struct fields come out in
// name order since Go maps carry none. Fails when every row is nil.
func InferType(data []interface{}) (schema.DataType, error) {
	for _, raw := range data {
		if raw == nil {
			continue
		}
		return inferOne(raw)
	}
	return schema.DataType{}, errors.New("cannot infer a type from all-null data")
}

func inferOne(raw interface{}) (schema.DataType, error) {
	switch v := raw.(type) {
	case int, int64:
		return schema.Int64(), nil
	case float64:
		return schema.Float64(), nil
	case string:
		return schema.String(), nil
	case bool:
		return schema.Bool(), nil
	case time.Time:
		return schema.Date(), nil
	case []interface{}:
		elem, err := InferType(v)
		if err != nil {
			return schema.DataType{}, errors.Wrap(err, "list element")
		}
		return schema.List(elem), nil
	case map[string]interface{}:
		names := make([]string, 0, len(v))
		for name := range v {
			names = append(names, name)
		}
		sort.Strings(names)
		fields := make([]schema.Field, len(names))
		for i, name := range names {
			ft, err := inferOne(v[name])
			if err != nil {
				return schema.DataType{}, errors.Wrapf(err, "field %q", name)
			}
			fields[i] = schema.Field{Name: name, Type: ft}
		}
		return schema.Struct(fields...), nil
	default:
		return schema.DataType{}, errors.Errorf("cannot infer a type for %T", raw)
	}
}
