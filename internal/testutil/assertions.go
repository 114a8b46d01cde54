package testutil

import (
	"errors"
	"testing"

	"github.com/leengari/colframe/internal/column"
	"github.com/leengari/colframe/internal/domain/value"
)

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error, context string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: expected no error, got: %v", context, err)
	}
}

// AssertErrorIs checks that an error matches the expected kind
func AssertErrorIs(t *testing.T, err, kind error, context string) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: expected error %v, got nil", context, kind)
	}
	if !errors.Is(err, kind) {
		t.Errorf("%s: expected error %v, got: %v", context, kind, err)
	}
}

// AssertLen checks a column's row count
func AssertLen(t *testing.T, col column.Column, expected int, context string) {
	t.Helper()
	if col.Len() != expected {
		t.Errorf("%s: expected %d rows, got %d", context, expected, col.Len())
	}
}

// AssertValueIdentical checks two values for structural identity,
// with nulls matching nulls
func AssertValueIdentical(t *testing.T, actual, expected value.Value, context string) {
	t.Helper()
	if !actual.Identical(expected) {
		t.Errorf("%s: expected %s, got %s", context, expected, actual)
	}
}

// AssertRowIdentical checks the value at one row of a column
func AssertRowIdentical(t *testing.T, col column.Column, row int, expected value.Value, context string) {
	t.Helper()
	actual, err := col.Get(row)
	if err != nil {
		t.Fatalf("%s: Get(%d) failed: %v", context, row, err)
	}
	if !actual.Identical(expected) {
		t.Errorf("%s: row %d: expected %s, got %s", context, row, expected, actual)
	}
}

// AssertRowNull checks that one row of a column is logically null
func AssertRowNull(t *testing.T, col column.Column, row int, context string) {
	t.Helper()
	if !col.IsNull(row) {
		v, _ := col.Get(row)
		t.Errorf("%s: expected row %d to be null, got %s", context, row, v)
	}
}

// AssertColumnsIdentical checks two columns row by row: same type, same
// length, and structurally identical values including nulls
func AssertColumnsIdentical(t *testing.T, actual, expected column.Column, context string) {
	t.Helper()
	if !actual.DataType().Equal(expected.DataType()) {
		t.Fatalf("%s: expected type %s, got %s", context, expected.DataType(), actual.DataType())
	}
	if actual.Len() != expected.Len() {
		t.Fatalf("%s: expected %d rows, got %d", context, expected.Len(), actual.Len())
	}
	for i := 0; i < expected.Len(); i++ {
		want, err := expected.Get(i)
		if err != nil {
			t.Fatalf("%s: expected.Get(%d) failed: %v", context, i, err)
		}
		got, err := actual.Get(i)
		if err != nil {
			t.Fatalf("%s: actual.Get(%d) failed: %v", context, i, err)
		}
		if !got.Identical(want) {
			t.Errorf("%s: row %d: expected %s, got %s", context, i, want, got)
		}
	}
}
