package engine

import (
	"context"
	"testing"

	"github.com/leengari/colframe/internal/column"
	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/domain/value"
	"github.com/leengari/colframe/internal/testutil"
)

func mustColumn(t *testing.T, dtype schema.DataType, rows ...value.Value) column.Column {
	t.Helper()
	col, err := column.FromValues(dtype, rows)
	if err != nil {
		t.Fatalf("FromValues(%s) failed: %v", dtype, err)
	}
	return col
}

func countsCol(t *testing.T, counts ...value.Value) column.Column {
	t.Helper()
	return mustColumn(t, schema.Int64(), counts...)
}

func TestRepeatBy_ConcreteScenario(t *testing.T) {
	// src = [[1,2,3]], counts = [2] => out = [[[1,2,3],[1,2,3]]]
	eng := New()
	src := mustColumn(t, schema.List(schema.Int64()),
		value.List(value.Int64(1), value.Int64(2), value.Int64(3)))

	out, err := eng.RepeatBy(context.Background(), src, countsCol(t, value.Int64(2)))
	testutil.AssertNoError(t, err, "RepeatBy")
	testutil.AssertLen(t, out, 1, "output")

	inner := value.List(value.Int64(1), value.Int64(2), value.Int64(3))
	testutil.AssertRowIdentical(t, out, 0, value.List(inner, inner), "row 0")
}

func TestRepeatBy_ZeroCountIsEmptyList(t *testing.T) {
	eng := New()
	src := mustColumn(t, schema.List(schema.Int64()),
		value.List(value.Int64(1)),
		value.List(value.Int64(2)),
	)

	out, err := eng.RepeatBy(context.Background(), src, countsCol(t, value.Int64(0), value.Int64(3)))
	testutil.AssertNoError(t, err, "RepeatBy")

	if out.IsNull(0) {
		t.Error("count 0 must yield an empty list, not null")
	}
	v, err := out.Get(0)
	testutil.AssertNoError(t, err, "Get(0)")
	if v.Kind() != value.KindList || len(v.List()) != 0 {
		t.Errorf("expected empty list, got %s", v)
	}

	v, err = out.Get(1)
	testutil.AssertNoError(t, err, "Get(1)")
	if len(v.List()) != 3 {
		t.Errorf("expected 3 repeats, got %s", v)
	}
}

func TestRepeatBy_NullSourcePropagates(t *testing.T) {
	eng := New()
	src := mustColumn(t, schema.List(schema.Int64()),
		value.Null(),
		value.List(value.Int64(7)),
	)

	out, err := eng.RepeatBy(context.Background(), src, countsCol(t, value.Int64(5), value.Int64(1)))
	testutil.AssertNoError(t, err, "RepeatBy")
	testutil.AssertRowNull(t, out, 0, "null source row")
	testutil.AssertRowIdentical(t, out, 1, value.List(value.List(value.Int64(7))), "valid row")
}

func TestRepeatBy_NullCountPropagatesNull(t *testing.T) {
	eng := New()
	src := mustColumn(t, schema.List(schema.Int64()),
		value.List(value.Int64(1)),
	)

	out, err := eng.RepeatBy(context.Background(), src, countsCol(t, value.Null()))
	testutil.AssertNoError(t, err, "RepeatBy")
	testutil.AssertRowNull(t, out, 0, "null count row")
}

// TestRepeatBy_ShapeAgnostic builds one representative source column per
// element shape, all with the same row 0, and checks that repeating with
// count 2 yields a two-element list whose elements deep-equal the source
// row regardless of the element type.
func TestRepeatBy_ShapeAgnostic(t *testing.T) {
	structOfLists := schema.Struct(
		schema.Field{Name: "a", Type: schema.List(schema.Int64())},
		schema.Field{Name: "b", Type: schema.List(schema.Int64())},
	)
	icd := schema.Struct(
		schema.Field{Name: "icd", Type: schema.String()},
		schema.Field{Name: "location", Type: schema.Enum("R", "L", "B")},
		schema.Field{Name: "date", Type: schema.Date()},
	)

	cases := []struct {
		name string
		elem schema.DataType
		row  value.Value
	}{
		{
			name: "primitive",
			elem: schema.Int64(),
			row:  value.List(value.Int64(1), value.Int64(2), value.Int64(3)),
		},
		{
			name: "enum with null element",
			elem: schema.Enum("a", "b"),
			row:  value.List(value.Enum("a"), value.Enum("b"), value.Null()),
		},
		{
			name: "struct of lists",
			elem: structOfLists,
			row: value.List(value.Struct(
				value.Field{Name: "a", Value: value.List(value.Int64(1), value.Int64(2), value.Int64(3))},
				value.Field{Name: "b", Value: value.List(value.Int64(4), value.Int64(5))},
			)),
		},
		{
			name: "struct with enum and date",
			elem: icd,
			row: value.List(
				value.Struct(
					value.Field{Name: "icd", Value: value.String("A123")},
					value.Field{Name: "location", Value: value.Enum("L")},
					value.Field{Name: "date", Value: value.DateOf(2020, 1, 1)},
				),
				value.Struct(
					value.Field{Name: "icd", Value: value.String("B456")},
					value.Field{Name: "location", Value: value.Null()},
					value.Field{Name: "date", Value: value.DateOf(2020, 1, 1)},
				),
			),
		},
		{
			name: "nested list",
			elem: schema.List(schema.Int64()),
			row: value.List(
				value.List(value.Int64(1), value.Int64(2)),
				value.List(value.Int64(3)),
			),
		},
	}

	eng := New()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			src := mustColumn(t, schema.List(c.elem), c.row)
			out, err := eng.RepeatBy(context.Background(), src, countsCol(t, value.Int64(2)))
			testutil.AssertNoError(t, err, "RepeatBy")
			testutil.AssertLen(t, out, 1, "output")
			testutil.AssertRowIdentical(t, out, 0, value.List(c.row, c.row), "row 0")
		})
	}
}

func TestRepeatBy_LengthMismatch(t *testing.T) {
	eng := New()
	src := mustColumn(t, schema.List(schema.Int64()), value.List(value.Int64(1)))
	_, err := eng.RepeatBy(context.Background(), src, countsCol(t, value.Int64(1), value.Int64(2)))
	testutil.AssertErrorIs(t, err, column.ErrLengthMismatch, "mismatched lengths")
}

func TestRepeatBy_TypeMismatches(t *testing.T) {
	eng := New()
	src := mustColumn(t, schema.List(schema.Int64()), value.List(value.Int64(1)))

	notInts := mustColumn(t, schema.String(), value.String("2"))
	_, err := eng.RepeatBy(context.Background(), src, notInts)
	testutil.AssertErrorIs(t, err, column.ErrTypeMismatch, "non-integer counts")

	notList := mustColumn(t, schema.Int64(), value.Int64(1))
	_, err = eng.RepeatBy(context.Background(), notList, countsCol(t, value.Int64(1)))
	testutil.AssertErrorIs(t, err, column.ErrTypeMismatch, "non-list source")

	_, err = eng.RepeatBy(context.Background(), src, countsCol(t, value.Int64(-1)))
	testutil.AssertErrorIs(t, err, column.ErrTypeMismatch, "negative count")
}
