package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Add registers another worker. It must be called before Run.
func (w *Workers) Add(worker Worker) {
	w.workers = append(w.workers, worker)
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and waits for all of them. The first failure
// cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		worker := worker
		g.Go(func() error {
			return worker.Run(ctx)
		})
	}
	return g.Wait()
}
