package engine

import (
	"runtime"
	"sync"

	"go.uber.org/multierr"

	"github.com/leengari/colframe/internal/column"
)

// gather runs the row take for an operation, partitioned across the
// worker pool when one is configured and the work is large enough.
// Rows have no cross-partition dependency, so each worker gathers its
// index slice independently and the partial outputs are concatenated in
// partition order, which preserves input row order exactly.
func (e *Engine) gather(src column.Column, indices []int) (column.Column, error) {
	if e.pool == nil || len(indices) < e.parallelThreshold {
		return column.Gather(src, indices)
	}

	workers := e.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	chunk := (len(indices) + workers - 1) / workers
	var bounds [][2]int
	for lo := 0; lo < len(indices); lo += chunk {
		hi := lo + chunk
		if hi > len(indices) {
			hi = len(indices)
		}
		bounds = append(bounds, [2]int{lo, hi})
	}

	parts := make([]column.Column, len(bounds))
	errs := make([]error, len(bounds))
	var wg sync.WaitGroup
	for p, b := range bounds {
		p, b := p, b
		wg.Add(1)
		submitErr := e.pool.Submit(func() {
			defer wg.Done()
			parts[p], errs[p] = column.Gather(src, indices[b[0]:b[1]])
		})
		if submitErr != nil {
			// Pool rejected the task (released or overloaded); do the
			// chunk inline rather than fail the whole operation.
			parts[p], errs[p] = column.Gather(src, indices[b[0]:b[1]])
			wg.Done()
		}
	}
	wg.Wait()

	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}
	return column.Concat(parts...)
}
