package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/leengari/colframe/internal/bench"
	"github.com/leengari/colframe/internal/column"
	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/domain/value"
	"github.com/leengari/colframe/internal/engine"
)

// benchStructField compares the flattened extraction path against by-row
// reconstruction on a generated list-of-structs column
func benchStructField(ctx context.Context, eng *engine.Engine, rows, iters int) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	src, err := generateListOfStructs(rows)
	if err != nil {
		return err
	}
	logger.Info("generated frame", zap.Int("rows", src.Len()))

	flat, err := bench.Run("list.struct_field", iters, func() error {
		_, err := eng.StructField(ctx, src, "a")
		return err
	})
	if err != nil {
		return err
	}
	bench.Report(logger, flat)

	byRow, err := bench.Run("list.eval(element.struct.field)", iters, func() error {
		_, err := eng.StructFieldByRow(ctx, src, "a")
		return err
	})
	if err != nil {
		return err
	}
	bench.Report(logger, byRow)
	return nil
}

// generateListOfStructs builds n rows of [{a: 1, b: 2}, {a: 3, b: 4}]
func generateListOfStructs(n int) (column.Column, error) {
	row := value.List(
		value.Struct(
			value.Field{Name: "a", Value: value.Int64(1)},
			value.Field{Name: "b", Value: value.Int64(2)},
		),
		value.Struct(
			value.Field{Name: "a", Value: value.Int64(3)},
			value.Field{Name: "b", Value: value.Int64(4)},
		),
	)
	vals := make([]value.Value, n)
	for i := range vals {
		vals[i] = row
	}
	dtype := schema.List(schema.Struct(
		schema.Field{Name: "a", Type: schema.Int64()},
		schema.Field{Name: "b", Type: schema.Int64()},
	))
	return column.FromValues(dtype, vals)
}
