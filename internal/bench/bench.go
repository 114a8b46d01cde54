// Package bench is a small wall-clock harness for comparing engine
// strategies. It relies on the engine's determinism: repeated calls do
// the same work, so the mean over iterations is meaningful.
package bench

import (
	"time"

	"go.uber.org/zap"
)

// Result is the timing of one measured operation
type Result struct {
	Name       string
	Iterations int
	Total      time.Duration
	Mean       time.Duration
}

// Run invokes fn the given number of times and reports the mean duration.
// The first error aborts the run.
func Run(name string, iterations int, fn func() error) (Result, error) {
	if iterations < 1 {
		iterations = 1
	}
	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := fn(); err != nil {
			return Result{}, err
		}
	}
	total := time.Since(start)
	return Result{
		Name:       name,
		Iterations: iterations,
		Total:      total,
		Mean:       total / time.Duration(iterations),
	}, nil
}

// Report logs a result with structured fields
func Report(logger *zap.Logger, r Result) {
	logger.Info("benchmark",
		zap.String("name", r.Name),
		zap.Int("iterations", r.Iterations),
		zap.Duration("total", r.Total),
		zap.Duration("mean", r.Mean),
	)
}
