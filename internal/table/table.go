// Package table provides the ordered name-to-column mapping that the
// engines select their inputs from and assemble their outputs into.
package table

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/leengari/colframe/internal/column"
)

// Named pairs a column with its table-level name
type Named struct {
	Name   string
	Column column.Column
}

// Table is an ordered mapping from unique column name to column, all
// columns sharing the same row count. Tables are immutable once built;
// every operation returns a new Table and never mutates the receiver.
type Table struct {
	cols   []Named
	byName map[string]int
	length int
}

// New validates and assembles a table. All violations are reported at
// once rather than stopping at the first: duplicate names and per-column
// length mismatches are combined into a single error.
func New(cols ...Named) (*Table, error) {
	if len(cols) == 0 {
		return &Table{byName: map[string]int{}}, nil
	}
	var err error
	byName := make(map[string]int, len(cols))
	length := cols[0].Column.Len()
	for i, c := range cols {
		if _, dup := byName[c.Name]; dup {
			err = multierr.Append(err, fmt.Errorf("duplicate column name %q", c.Name))
			continue
		}
		byName[c.Name] = i
		if c.Column.Len() != length {
			err = multierr.Append(err, fmt.Errorf(
				"column %q has %d rows, expected %d", c.Name, c.Column.Len(), length))
		}
	}
	if err != nil {
		return nil, err
	}
	return &Table{cols: cols, byName: byName, length: length}, nil
}

// Len returns the shared row count
func (t *Table) Len() int { return t.length }

// Width returns the column count
func (t *Table) Width() int { return len(t.cols) }

// Names returns the column names in declaration order
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Columns returns the ordered columns. Callers must not mutate the slice.
func (t *Table) Columns() []Named { return t.cols }

// Column returns the named column
func (t *Table) Column(name string) (column.Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("column not found: %s", name)
	}
	return t.cols[i].Column, nil
}

// Select builds a new table holding only the named columns, in the
// requested order. The columns are shared, not copied; both tables stay
// valid because columns are immutable.
func (t *Table) Select(names ...string) (*Table, error) {
	cols := make([]Named, 0, len(names))
	for _, name := range names {
		i, ok := t.byName[name]
		if !ok {
			return nil, fmt.Errorf("column not found: %s", name)
		}
		cols = append(cols, t.cols[i])
	}
	return New(cols...)
}

// WithColumn returns a new table with the named column appended, or
// replaced in place if the name already exists.
func (t *Table) WithColumn(name string, col column.Column) (*Table, error) {
	cols := make([]Named, len(t.cols), len(t.cols)+1)
	copy(cols, t.cols)
	if i, ok := t.byName[name]; ok {
		cols[i] = Named{Name: name, Column: col}
	} else {
		cols = append(cols, Named{Name: name, Column: col})
	}
	return New(cols...)
}
