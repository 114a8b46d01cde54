package engine

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/leengari/colframe/internal/column"
	"github.com/leengari/colframe/internal/domain/schema"
	"github.com/leengari/colframe/internal/domain/value"
)

// StructField extracts one named field from every struct element of a
// list-of-struct column, preserving the source's row count, per-row list
// lengths and row-level nullability exactly.
//
// This is the flattened path: the field is projected directly on the
// flattened child struct column and rewrapped with the source's original
// offsets and validity. No per-row or per-element value is ever
// reconstructed, which is what makes it cheap; StructFieldByRow is the
// observably equivalent slow path.
//
// Fails with ErrTypeMismatch when src is not a list-of-struct column and
// with ErrUnknownField when the element type has no such field.
func (e *Engine) StructField(ctx context.Context, src column.Column, field string) (out column.Column, err error) {
	opID := newOpID()
	e.emit(EventStructFieldStart, opID, src.Len(), nil)

	ctx, span := e.tracer.Start(ctx, "engine.StructField", trace.WithAttributes(
		attribute.Int("rows.in", src.Len()),
		attribute.String("field", field),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			e.emit(EventStructFieldEnd, opID, 0, err)
		} else {
			e.emit(EventStructFieldEnd, opID, out.Len(), nil)
		}
		span.End()
	}()

	srcList, structChild, err := listOfStructs(src)
	if err != nil {
		return nil, err
	}
	projected, err := structChild.Field(field)
	if err != nil {
		return nil, err
	}
	out, err = column.NewList(projected, srcList.Offsets(), srcList.Validity())
	if err != nil {
		return nil, err
	}

	e.rowsProduced.Add(ctx, int64(out.Len()), metric.WithAttributes(
		attribute.String("op", "struct_field"),
	))
	return out, nil
}

// StructFieldByRow is the naive strategy: reconstruct every row's list of
// struct values, pick the field out of each element, and rebuild a
// column from the results. It exists as the correctness baseline for the
// flattened path and as the cost comparison the bench command measures.
// Output is identical to StructField for any input.
func (e *Engine) StructFieldByRow(ctx context.Context, src column.Column, field string) (column.Column, error) {
	srcList, structChild, err := listOfStructs(src)
	if err != nil {
		return nil, err
	}
	elemType := structChild.DataType()
	fi := elemType.FieldIndex(field)
	if fi < 0 {
		_, err := structChild.Field(field)
		return nil, err
	}
	fieldType := elemType.Fields[fi].Type

	rows := make([]value.Value, srcList.Len())
	for i := 0; i < srcList.Len(); i++ {
		if srcList.IsNull(i) {
			rows[i] = value.Null()
			continue
		}
		row, err := srcList.Get(i)
		if err != nil {
			return nil, err
		}
		elems := make([]value.Value, 0, len(row.List()))
		for _, elem := range row.List() {
			if elem.IsNull() {
				// A null struct element yields a null field value;
				// element nullability is independent of row nullability.
				elems = append(elems, value.Null())
				continue
			}
			fv, _ := elem.GetField(field)
			elems = append(elems, fv)
		}
		rows[i] = value.List(elems...)
	}

	return column.FromValues(schema.List(fieldType), rows)
}

func listOfStructs(src column.Column) (*column.List, *column.Struct, error) {
	srcList, ok := src.(*column.List)
	if !ok {
		return nil, nil, column.Errorf(column.ErrTypeMismatch,
			"struct_field source must be a list column, got %s", src.DataType())
	}
	structChild, ok := srcList.Child().(*column.Struct)
	if !ok {
		return nil, nil, column.Errorf(column.ErrTypeMismatch,
			"struct_field needs struct list elements, got %s", srcList.Child().DataType())
	}
	return srcList, structChild, nil
}
