package column

import (
	"errors"
	"testing"

	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/domain/value"
)

func TestFromValues_ListOfStructWithNestedNulls(t *testing.T) {
	dtype := schema.List(schema.Struct(
		schema.Field{Name: "icd", Type: schema.String()},
		schema.Field{Name: "location", Type: schema.Enum("R", "L", "B")},
	))
	rows := []value.Value{
		value.List(
			value.Struct(
				value.Field{Name: "icd", Value: value.String("A123")},
				value.Field{Name: "location", Value: value.Enum("L")},
			),
			value.Struct(
				value.Field{Name: "icd", Value: value.String("B456")},
				value.Field{Name: "location", Value: value.Null()},
			),
		),
		value.Null(),
	}

	col, err := FromValues(dtype, rows)
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}
	if !col.DataType().Equal(dtype) {
		t.Fatalf("expected type %s, got %s", dtype, col.DataType())
	}

	// Everything must read back exactly, nested null included.
	for i, want := range rows {
		got, err := col.Get(i)
		if err != nil {
			t.Fatalf("Get(%d) failed: %v", i, err)
		}
		if !got.Identical(want) {
			t.Errorf("row %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestFromValues_EnumResolvesStrings(t *testing.T) {
	col, err := FromValues(schema.Enum("a", "b"), []value.Value{
		value.String("b"), value.Enum("a"), value.Null(),
	})
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}
	v, _ := col.Get(0)
	if !v.Identical(value.Enum("b")) {
		t.Errorf("expected enum b, got %s", v)
	}
	if !col.IsNull(2) {
		t.Error("expected row 2 to be null")
	}
}

func TestFromValues_EnumRejectsUnknownCategory(t *testing.T) {
	_, err := FromValues(schema.Enum("a", "b"), []value.Value{value.String("c")})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got: %v", err)
	}
}

func TestFromValues_KindMismatch(t *testing.T) {
	_, err := FromValues(schema.Int64(), []value.Value{value.String("nope")})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got: %v", err)
	}

	var colErr *Error
	if !errors.As(err, &colErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if colErr.Row != 0 {
		t.Errorf("expected failure at row 0, got row %d", colErr.Row)
	}
}

func TestFromValues_DateRoundTrip(t *testing.T) {
	d := value.DateOf(2020, 1, 1)
	col, err := FromValues(schema.Date(), []value.Value{d})
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}
	got, _ := col.Get(0)
	if !got.Identical(d) {
		t.Errorf("expected %s, got %s", d, got)
	}
	if got.String() != "2020-01-01" {
		t.Errorf("expected 2020-01-01, got %s", got)
	}
}
