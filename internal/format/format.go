// Package format renders tables as text. It only ever reads columns
// through Get, so anything a column can reconstruct it can print.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/leengari/colframe/internal/table"
)

// Options controls rendering
type Options struct {
	// MaxCellWidth truncates cell text beyond this many runes; 0 means
	// the default of 32.
	MaxCellWidth int
}

const defaultMaxCellWidth = 32

// Render writes a boxed text rendering of the table: a header row with
// column names, a second header row with data types, then one line per
// row with values rendered in display notation.
func Render(w io.Writer, t *table.Table, opts Options) error {
	maxWidth := opts.MaxCellWidth
	if maxWidth <= 0 {
		maxWidth = defaultMaxCellWidth
	}

	cols := t.Columns()
	if len(cols) == 0 {
		_, err := fmt.Fprintf(w, "shape: (%d, 0)\n", t.Len())
		return err
	}

	// Collect all cell texts first so column widths can be computed.
	header := make([]string, len(cols))
	dtypes := make([]string, len(cols))
	cells := make([][]string, t.Len())
	for ci, c := range cols {
		header[ci] = clip(c.Name, maxWidth)
		dtypes[ci] = clip(c.Column.DataType().String(), maxWidth)
	}
	for r := 0; r < t.Len(); r++ {
		cells[r] = make([]string, len(cols))
		for ci, c := range cols {
			v, err := c.Column.Get(r)
			if err != nil {
				return err
			}
			cells[r][ci] = clip(v.String(), maxWidth)
		}
	}

	widths := make([]int, len(cols))
	for ci := range cols {
		widths[ci] = len(header[ci])
		if len(dtypes[ci]) > widths[ci] {
			widths[ci] = len(dtypes[ci])
		}
		for r := range cells {
			if len(cells[r][ci]) > widths[ci] {
				widths[ci] = len(cells[r][ci])
			}
		}
	}

	if _, err := fmt.Fprintf(w, "shape: (%d, %d)\n", t.Len(), len(cols)); err != nil {
		return err
	}
	if err := writeRule(w, widths); err != nil {
		return err
	}
	if err := writeRow(w, header, widths); err != nil {
		return err
	}
	if err := writeRow(w, dtypes, widths); err != nil {
		return err
	}
	if err := writeRule(w, widths); err != nil {
		return err
	}
	for r := range cells {
		if err := writeRow(w, cells[r], widths); err != nil {
			return err
		}
	}
	return writeRule(w, widths)
}

// String renders the table with default options
func String(t *table.Table) (string, error) {
	var b strings.Builder
	if err := Render(&b, t, Options{}); err != nil {
		return "", err
	}
	return b.String(), nil
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

func writeRule(w io.Writer, widths []int) error {
	parts := make([]string, len(widths))
	for i, n := range widths {
		parts[i] = strings.Repeat("-", n+2)
	}
	_, err := fmt.Fprintf(w, "+%s+\n", strings.Join(parts, "+"))
	return err
}

func writeRow(w io.Writer, cells []string, widths []int) error {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf(" %-*s ", widths[i], c)
	}
	_, err := fmt.Fprintf(w, "|%s|\n", strings.Join(parts, "|"))
	return err
}
