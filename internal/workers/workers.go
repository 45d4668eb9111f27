package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker
}

// NewWorkers collects the given workers into a single aggregate.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned. Cancelling ctx is the only way to stop workers that run
// indefinitely.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(len(w.workers))

	for _, worker := range w.workers {
		worker := worker
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}

	wg.Wait()
}
