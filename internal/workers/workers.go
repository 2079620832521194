package workers

import (
	"context"
	"sync"
)

type Workers struct {
	workers []Worker

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func New(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start runs every worker in its own goroutine. Calling Start while workers
// are running restarts them.
func (w *Workers) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()
			worker.Run(runCtx)
		}(worker)
	}
	w.mu.Unlock()
}

// Stop cancels the workers and blocks until all of them have returned.
// It is a no-op when nothing is running.
func (w *Workers) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
