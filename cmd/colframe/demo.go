package main

import (
	"context"
	"fmt"
	"io"

	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/engine"
	"github.com/leengari/colframe/internal/format"
	"github.com/leengari/colframe/internal/ingest"
	"github.com/leengari/colframe/internal/table"
)

// repeatByCase is one input frame for the repeat-by demo
type repeatByCase struct {
	title  string
	src    ingest.Spec
	counts []interface{}
}

func repeatByCases() []repeatByCase {
	intList := schema.List(schema.Int64())
	return []repeatByCase{
		{
			title:  "list of integers",
			src:    ingest.Spec{Name: "a", Type: intList, Data: []interface{}{[]interface{}{1, 2, 3}}},
			counts: []interface{}{2},
		},
		{
			title:  "list of strings",
			src:    ingest.Spec{Name: "a", Type: schema.List(schema.String()), Data: []interface{}{[]interface{}{"a", "b", "c"}}},
			counts: []interface{}{2},
		},
		{
			title: "list of enum with a null element",
			src: ingest.Spec{
				Name: "a",
				Type: schema.List(schema.Enum("a", "b")),
				Data: []interface{}{[]interface{}{"a", "b", nil}},
			},
			counts: []interface{}{2},
		},
		{
			title: "list of struct of lists",
			src: ingest.Spec{
				Name: "a",
				Type: schema.List(schema.Struct(
					schema.Field{Name: "a", Type: intList},
					schema.Field{Name: "b", Type: intList},
				)),
				Data: []interface{}{[]interface{}{
					map[string]interface{}{
						"a": []interface{}{1, 2, 3},
						"b": []interface{}{4, 5},
					},
				}},
			},
			counts: []interface{}{2},
		},
		{
			title: "list of struct with enum and date fields",
			src: ingest.Spec{
				Name: "icds",
				Type: schema.List(schema.Struct(
					schema.Field{Name: "icd", Type: schema.String()},
					schema.Field{Name: "location", Type: schema.Enum("R", "L", "B")},
					schema.Field{Name: "date", Type: schema.Date()},
				)),
				Data: []interface{}{[]interface{}{
					map[string]interface{}{"icd": "A123", "location": "L", "date": "2020-01-01"},
					map[string]interface{}{"icd": "B456", "location": nil, "date": "2020-01-01"},
				}},
			},
			counts: []interface{}{3},
		},
	}
}

func demoRepeatBy(ctx context.Context, w io.Writer, eng *engine.Engine) error {
	for _, c := range repeatByCases() {
		fmt.Fprintf(w, "== %s\n", c.title)
		in, err := ingest.Table(
			c.src,
			ingest.Spec{Name: "n", Type: schema.Int64(), Data: c.counts},
		)
		if err != nil {
			return err
		}
		if err := printTable(w, in); err != nil {
			return err
		}

		src, err := in.Column(c.src.Name)
		if err != nil {
			return err
		}
		counts, err := in.Column("n")
		if err != nil {
			return err
		}
		repeated, err := eng.RepeatBy(ctx, src, counts)
		if err != nil {
			return err
		}
		out, err := table.New(table.Named{Name: c.src.Name, Column: repeated})
		if err != nil {
			return err
		}
		if err := printTable(w, out); err != nil {
			return err
		}
	}
	return nil
}

func demoStructField(ctx context.Context, w io.Writer, eng *engine.Engine, field string) error {
	in, err := ingest.Table(ingest.Spec{
		Name: "a",
		Type: schema.List(schema.Struct(
			schema.Field{Name: "icd", Type: schema.String()},
			schema.Field{Name: "location", Type: schema.Enum("R", "L", "B")},
		)),
		Data: []interface{}{
			[]interface{}{
				map[string]interface{}{"icd": "A123", "location": "L"},
				map[string]interface{}{"icd": "B456", "location": nil},
			},
		},
	})
	if err != nil {
		return err
	}
	if err := printTable(w, in); err != nil {
		return err
	}

	src, err := in.Column("a")
	if err != nil {
		return err
	}
	extracted, err := eng.StructField(ctx, src, field)
	if err != nil {
		return err
	}
	out, err := in.WithColumn("b", extracted)
	if err != nil {
		return err
	}
	return printTable(w, out)
}

func printTable(w io.Writer, t *table.Table) error {
	return format.Render(w, t, format.Options{MaxCellWidth: 100})
}
