package column

import (
	"errors"
	"testing"

	"github.com/leengari/colframe/internal/domain/value"
)

func TestNewEnum_RejectsIndexOutOfCategoryRange(t *testing.T) {
	_, err := NewEnum([]string{"R", "L"}, []int32{0, 2}, Bitmap{})
	if !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("expected ErrTypeMismatch, got: %v", err)
	}
}

func TestNewEnum_RejectsShortMask(t *testing.T) {
	_, err := NewEnum([]string{"R", "L"}, []int32{0, 1, 0}, NewBitmap(2))
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got: %v", err)
	}
}

func TestEnum_Get(t *testing.T) {
	col, err := NewEnum([]string{"R", "L", "B"}, []int32{1, 0}, Bitmap{})
	if err != nil {
		t.Fatalf("NewEnum failed: %v", err)
	}
	v, err := col.Get(0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !v.Identical(value.Enum("L")) {
		t.Errorf("expected L, got %s", v)
	}
}

func TestEnum_NullSentinel(t *testing.T) {
	// Null is representable both through the sentinel index and the
	// validity mask; either alone must read back as null.
	col, err := NewEnum([]string{"a", "b"}, []int32{0, -1}, Bitmap{})
	if err != nil {
		t.Fatalf("NewEnum failed: %v", err)
	}
	if !col.IsNull(1) {
		t.Error("expected sentinel index to read as null")
	}

	valid := NewBitmap(2)
	valid.SetNull(0)
	col, err = NewEnum([]string{"a", "b"}, []int32{0, 1}, valid)
	if err != nil {
		t.Fatalf("NewEnum failed: %v", err)
	}
	if !col.IsNull(0) {
		t.Error("expected cleared validity bit to read as null")
	}
	v, err := col.Get(0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !v.IsNull() {
		t.Errorf("expected null, got %s", v)
	}
}
