package engine

import (
	"log/slog"
	"time"
)

// EventType represents lifecycle phases of engine operations
type EventType string

const (
	EventRepeatByStart    EventType = "repeat_by_start"
	EventRepeatByEnd      EventType = "repeat_by_end"
	EventStructFieldStart EventType = "struct_field_start"
	EventStructFieldEnd   EventType = "struct_field_end"
)

// Event represents one lifecycle event of an engine operation
type Event struct {
	Type      EventType // Type of event
	OpID      string    // Operation ID for correlating start/end pairs
	Timestamp time.Time // When the event occurred
	Rows      int       // Input rows on start events, output rows on end events
	Err       error     // Set on end events when the operation failed
}

// Observer interface for event subscribers
// Observers receive events at the start and end of every engine operation
type Observer interface {
	OnEvent(event Event)
}

// LoggingObserver is a simple observer that logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface
// It logs each event with structured fields for easy filtering and analysis
func (lo *LoggingObserver) OnEvent(event Event) {
	if event.Err != nil {
		lo.logger.Error("engine_op",
			"event", event.Type,
			"op_id", event.OpID,
			"rows", event.Rows,
			"error", event.Err,
		)
		return
	}
	lo.logger.Info("engine_op",
		"event", event.Type,
		"op_id", event.OpID,
		"rows", event.Rows,
	)
}
