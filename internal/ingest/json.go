package ingest

import (
	gojson "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/table"
)

// JSONColumn declares one column of a JSON-rows document: the object key
// to read and the type to convert it to.
type JSONColumn struct {
	Name string
	Type schema.DataType
}

// TableFromJSON builds a table from a JSON array of row objects, e.g.
//
//	[{"a": [1, 2, 3], "n": 2}, {"a": [], "n": 0}]
//
// Keys absent from a row object ingest as null. Column order follows the
// declared columns, not the document.
func TableFromJSON(data []byte, cols []JSONColumn) (*table.Table, error) {
	var rows []map[string]interface{}
	if err := gojson.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, "decode JSON rows")
	}

	specs := make([]Spec, len(cols))
	for i, c := range cols {
		cells := make([]interface{}, len(rows))
		for r, row := range rows {
			cells[r] = row[c.Name]
		}
		specs[i] = Spec{Name: c.Name, Type: c.Type, Data: cells}
	}
	return Table(specs...)
}
