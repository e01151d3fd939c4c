package orchestrator

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Background runs best-effort side work — embedding backfills, anything
// that must not delay the moderator-visible response a request is
// waiting on — off a bounded pool of goroutines. Grounded on the
// teacher's queue.Worker fire-and-forget cleanup (time.AfterFunc plus a
// logged, swallowed error) and its WorkerPool's graceful-shutdown
// sync.WaitGroup, generalized here into a reusable named-task runner
// instead of a single hardcoded cleanup call.
type Background struct {
	logger *slog.Logger
	sem    chan struct{}
	wg     sync.WaitGroup

	mu       sync.Mutex
	stopped  bool
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewBackground builds a Background executor with at most maxConcurrent
// tasks running at once. maxConcurrent <= 0 means unbounded.
func NewBackground(logger *slog.Logger, maxConcurrent int) *Background {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Background{logger: logger, stopCh: make(chan struct{})}
	if maxConcurrent > 0 {
		b.sem = make(chan struct{}, maxConcurrent)
	}
	return b
}

// Go runs fn on its own goroutine, tagged with name for logging. A
// failure is logged and otherwise swallowed: there is no caller left
// waiting for the result by the time this was dispatched. Go is a
// no-op once Stop has been called, since by then nothing will wait for
// newly spawned work to finish.
func (b *Background) Go(name string, fn func(ctx context.Context) error) {
	b.mu.Lock()
	if b.stopped {
		b.mu.Unlock()
		b.logger.Warn("background task dropped after shutdown", "task", name)
		return
	}
	b.wg.Add(1)
	b.mu.Unlock()

	go func() {
		defer b.wg.Done()
		if b.sem != nil {
			b.sem <- struct{}{}
			defer func() { <-b.sem }()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := fn(ctx); err != nil {
			b.logger.Warn("background task failed", "task", name, "error", err)
		}
	}()
}

// Stop blocks new tasks and waits up to timeout for in-flight ones to
// finish, mirroring the worker pool's own graceful-shutdown budget.
func (b *Background) Stop(timeout time.Duration) {
	b.stopOnce.Do(func() {
		b.mu.Lock()
		b.stopped = true
		close(b.stopCh)
		b.mu.Unlock()
	})

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		b.logger.Warn("background tasks still running at shutdown timeout", "timeout", timeout)
	}
}
