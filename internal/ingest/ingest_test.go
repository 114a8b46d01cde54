package ingest

import (
	"testing"

	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/domain/value"
	"github.com/leengari/colframe/internal/testutil"
)

func TestTable_ExplicitSchema(t *testing.T) {
	tbl, err := Table(
		Spec{
			Name: "a",
			Type: schema.List(schema.Enum("a", "b")),
			Data: []interface{}{[]interface{}{"a", "b", nil}},
		},
		Spec{Name: "n", Type: schema.Int64(), Data: []interface{}{2}},
	)
	testutil.AssertNoError(t, err, "Table")

	if tbl.Len() != 1 || tbl.Width() != 2 {
		t.Fatalf("expected shape (1, 2), got (%d, %d)", tbl.Len(), tbl.Width())
	}

	col, err := tbl.Column("a")
	testutil.AssertNoError(t, err, "Column")
	testutil.AssertRowIdentical(t, col, 0,
		value.List(value.Enum("a"), value.Enum("b"), value.Null()), "row 0")
}

func TestValue_NestedStruct(t *testing.T) {
	dtype := schema.Struct(
		schema.Field{Name: "icd", Type: schema.Struct(
			schema.Field{Name: "group", Type: schema.String()},
			schema.Field{Name: "value", Type: schema.String()},
		)},
		schema.Field{Name: "location", Type: schema.Enum("R", "L", "B")},
	)
	raw := map[string]interface{}{
		"icd":      map[string]interface{}{"group": "A", "value": "123"},
		"location": nil,
	}

	v, err := Value(dtype, raw)
	testutil.AssertNoError(t, err, "Value")

	want := value.Struct(
		value.Field{Name: "icd", Value: value.Struct(
			value.Field{Name: "group", Value: value.String("A")},
			value.Field{Name: "value", Value: value.String("123")},
		)},
		value.Field{Name: "location", Value: value.Null()},
	)
	testutil.AssertValueIdentical(t, v, want, "nested struct")
}

func TestValue_DateForms(t *testing.T) {
	v, err := Value(schema.Date(), "2020-01-01")
	testutil.AssertNoError(t, err, "date string")
	testutil.AssertValueIdentical(t, v, value.DateOf(2020, 1, 1), "date string")

	_, err = Value(schema.Date(), "not-a-date")
	if err == nil {
		t.Error("expected error parsing a malformed date")
	}
}

func TestValue_RejectsMismatchedLiteral(t *testing.T) {
	_, err := Value(schema.Int64(), "five")
	if err == nil {
		t.Error("expected error converting a string to int64")
	}
	_, err = Value(schema.Int64(), 1.5)
	if err == nil {
		t.Error("expected error converting a fractional float to int64")
	}
}

func TestInferType(t *testing.T) {
	dt, err := InferType([]interface{}{
		nil,
		[]interface{}{map[string]interface{}{"a": 1, "b": "x"}},
	})
	testutil.AssertNoError(t, err, "InferType")

	want := schema.List(schema.Struct(
		schema.Field{Name: "a", Type: schema.Int64()},
		schema.Field{Name: "b", Type: schema.String()},
	))
	if !dt.Equal(want) {
		t.Errorf("expected %s, got %s", want, dt)
	}

	if _, err := InferType([]interface{}{nil, nil}); err == nil {
		t.Error("expected error inferring from all-null data")
	}
}

func TestTableFromJSON(t *testing.T) {
	data := []byte(`[
		{"a": [1, 2, 3], "n": 2},
		{"a": [], "n": 0},
		{"n": 1}
	]`)
	tbl, err := TableFromJSON(data, []JSONColumn{
		{Name: "a", Type: schema.List(schema.Int64())},
		{Name: "n", Type: schema.Int64()},
	})
	testutil.AssertNoError(t, err, "TableFromJSON")

	if tbl.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", tbl.Len())
	}
	col, err := tbl.Column("a")
	testutil.AssertNoError(t, err, "Column a")
	testutil.AssertRowIdentical(t, col, 0,
		value.List(value.Int64(1), value.Int64(2), value.Int64(3)), "row 0")
	testutil.AssertRowIdentical(t, col, 1, value.List(), "row 1")
	testutil.AssertRowNull(t, col, 2, "missing key ingests as null")
}

func TestTableFromJSON_Malformed(t *testing.T) {
	_, err := TableFromJSON([]byte(`{"not": "an array"}`), []JSONColumn{
		{Name: "a", Type: schema.Int64()},
	})
	if err == nil {
		t.Error("expected error decoding a non-array document")
	}
}
