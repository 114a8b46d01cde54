package format

import (
	"strings"
	"testing"

	"github.com/leengari/colframe/internal/column"
	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/domain/value"
	"github.com/leengari/colframe/internal/table"
)

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	a, err := column.FromValues(schema.List(schema.Int64()),
		[]value.Value{value.List(value.Int64(1), value.Int64(2), value.Int64(3))})
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}
	n, err := column.FromValues(schema.Int64(), []value.Value{value.Int64(2)})
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}
	tbl, err := table.New(
		table.Named{Name: "a", Column: a},
		table.Named{Name: "n", Column: n},
	)
	if err != nil {
		t.Fatalf("table.New failed: %v", err)
	}
	return tbl
}

func TestString_RendersHeaderAndRows(t *testing.T) {
	out, err := String(sampleTable(t))
	if err != nil {
		t.Fatalf("String failed: %v", err)
	}

	if !strings.HasPrefix(out, "shape: (1, 2)\n") {
		t.Errorf("expected shape header, got:\n%s", out)
	}
	for _, want := range []string{"a", "n","list[int64]", "int64", "[1, 2, 3]", "2"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRender_TruncatesWideCells(t *testing.T) {
	long := strings.Repeat("x", 100)
	col, err := column.FromValues(schema.String(), []value.Value{value.String(long)})
	if err != nil {
		t.Fatalf("FromValues failed: %v", err)
	}
	tbl, err := table.New(table.Named{Name: "s", Column: col})
	if err != nil {
		t.Fatalf("table.New failed: %v", err)
	}

	var b strings.Builder
	if err := Render(&b, tbl, Options{MaxCellWidth: 10}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(b.String(), long) {
		t.Error("expected the long cell to be truncated")
	}
	if !strings.Contains(b.String(), "…") {
		t.Error("expected an ellipsis marker in truncated output")
	}
}

func TestRender_EmptyTable(t *testing.T) {
	tbl, err := table.New()
	if err != nil {
		t.Fatalf("table.New failed: %v", err)
	}
	out, err := String(tbl)
	if err != nil {
		t.Fatalf("String failed: %v", err)
	}
	if !strings.Contains(out, "shape: (0, 0)") {
		t.Errorf("expected empty shape, got: %s", out)
	}
}
