// Package engine implements the vectorized column transformations:
// repeat-by and struct-field extraction. Both are pure, single-pass
// computations over immutable inputs; every call allocates its output and
// never touches the inputs, so no locking is needed anywhere.
package engine

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/leengari/colframe/internal/engine"

	// Below this many gather indices the partitioned path costs more
	// than it saves and the engine stays sequential.
	defaultParallelThreshold = 1 << 14
)

// Engine executes the column transformations. The zero cost of sharing
// one Engine across goroutines is intentional: it holds no mutable state
// beyond its configuration.
type Engine struct {
	logger            *slog.Logger
	tracer            trace.Tracer
	rowsProduced      metric.Int64Counter
	observers         []Observer
	pool              *ants.Pool
	parallelThreshold int
	workers           int
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the engine's structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithObserver subscribes an observer to operation lifecycle events
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, o) }
}

// WithPool enables the partitioned parallel path using the given worker
// pool. The pool is borrowed; the caller releases it.
func WithPool(pool *ants.Pool, workers int) Option {
	return func(e *Engine) {
		e.pool = pool
		e.workers = workers
	}
}

// WithParallelThreshold overrides the row count above which the engine
// partitions work across the pool
func WithParallelThreshold(n int) Option {
	return func(e *Engine) { e.parallelThreshold = n }
}

// New creates an engine wired to the global OpenTelemetry providers
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:            slog.Default(),
		tracer:            otel.Tracer(instrumentationName),
		parallelThreshold: defaultParallelThreshold,
	}
	meter := otel.Meter(instrumentationName)
	e.rowsProduced, _ = meter.Int64Counter("colframe.engine.rows_produced",
		metric.WithDescription("Rows produced by engine operations"))
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// emit notifies all observers of an event
func (e *Engine) emit(eventType EventType, opID string, rows int, err error) {
	if len(e.observers) == 0 {
		return
	}
	event := Event{
		Type:      eventType,
		OpID:      opID,
		Timestamp: time.Now(),
		Rows:      rows,
		Err:       err,
	}
	for _, o := range e.observers {
		o.OnEvent(event)
	}
}

func newOpID() string {
	return uuid.NewString()
}
