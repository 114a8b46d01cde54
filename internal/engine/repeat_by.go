package engine

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/leengari/colframe/internal/column"
)

// RepeatBy produces a list-of-list column: out[i] holds counts[i] copies
// of the whole list value src[i]. The source value is repeated opaquely,
// never decomposed, so any element type works: primitive, enum, struct,
// or further nesting.
//
// Null semantics:
//   - out[i] is null whenever src[i] is null; the count is irrelevant then.
//   - a null count also yields a null out[i].
//   - counts[i] == 0 yields an empty, non-null list.
//
// Fails with ErrTypeMismatch when src is not a list column, counts is not
// an integer column, or a count is negative; with ErrLengthMismatch when
// the inputs disagree on row count.
func (e *Engine) RepeatBy(ctx context.Context, src, counts column.Column) (out column.Column, err error) {
	opID := newOpID()
	e.emit(EventRepeatByStart, opID, src.Len(), nil)

	ctx, span := e.tracer.Start(ctx, "engine.RepeatBy", trace.WithAttributes(
		attribute.Int("rows.in", src.Len()),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			e.emit(EventRepeatByEnd, opID, 0, err)
		} else {
			e.emit(EventRepeatByEnd, opID, out.Len(), nil)
		}
		span.End()
	}()

	srcList, ok := src.(*column.List)
	if !ok {
		return nil, column.Errorf(column.ErrTypeMismatch,
			"repeat_by source must be a list column, got %s", src.DataType())
	}
	cnt, ok := counts.(*column.Int64)
	if !ok {
		return nil, column.Errorf(column.ErrTypeMismatch,
			"repeat_by counts must be an integer column, got %s", counts.DataType())
	}
	length := srcList.Len()
	if cnt.Len() != length {
		return nil, column.Errorf(column.ErrLengthMismatch,
			"source has %d rows, counts has %d", length, cnt.Len())
	}

	// One pass over the rows: resolve the null policy and the per-row
	// repeat count; offsets are the running sum.
	repeats := make([]int, length)
	valid := column.Bitmap{}
	for i := 0; i < length; i++ {
		if srcList.IsNull(i) || cnt.IsNull(i) {
			if !valid.Allocated() {
				valid = column.NewBitmap(length)
			}
			valid.SetNull(i)
			continue
		}
		n := cnt.Value(i)
		if n < 0 {
			return nil, &column.Error{
				Kind:   column.ErrTypeMismatch,
				Row:    i,
				Reason: "negative repeat count",
			}
		}
		repeats[i] = int(n)
	}

	offsets := make([]int, length+1)
	total := 0
	for i, n := range repeats {
		offsets[i] = total
		total += n
	}
	offsets[length] = total

	child, err := e.gather(srcList, column.RepeatIndices(repeats))
	if err != nil {
		return nil, err
	}
	out, err = column.NewList(child, offsets, valid)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("rows.out", out.Len()))
	e.rowsProduced.Add(ctx, int64(out.Len()), metric.WithAttributes(
		attribute.String("op", "repeat_by"),
	))
	return out, nil
}
