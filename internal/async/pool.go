// Package async runs blocking repository work on a shared worker pool and
// hands results back to the interactive goroutine through futures.
package async

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/tmlsync/internal/errclass"
	"github.com/renato0307/tmlsync/internal/logging"
)

const (
	DefaultQueueSize = 64
	DefaultWorkers   = 4
)

var (
	ErrPoolClosed = errors.New("worker pool is closed")
	ErrQueueFull  = errors.New("worker pool queue is full")
)

type job struct {
	fail func(error)
	name string
	run  func()
}

// Pool is a fixed set of workers draining a bounded queue.
// Jobs are never interrupted once started.
type Pool struct {
	group *errgroup.Group
	jobs  chan job

	mu     sync.RWMutex
	closed bool
}

// NewPool starts workers goroutines with a queue of queueSize pending jobs
func NewPool(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = DefaultWorkers
	}
	if queueSize < 1 {
		queueSize = DefaultQueueSize
	}

	p := &Pool{
		group: &errgroup.Group{},
		jobs:  make(chan job, queueSize),
	}
	for i := 0; i < workers; i++ {
		p.group.Go(p.worker)
	}

	logging.Logger.Debug("Worker pool started", "workers", workers, "queue", queueSize)
	return p
}

func (p *Pool) worker() error {
	for j := range p.jobs {
		if p.isClosed() {
			logging.Logger.Debug("Dropping queued job", "job", j.name)
			j.fail(ErrPoolClosed)
			continue
		}
		p.execute(j)
	}
	return nil
}

func (p *Pool) execute(j job) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger.Error("Job panicked", "job", j.name, "panic", r)
			j.fail(fmt.Errorf("%s: panic: %v", j.name, r))
		}
	}()

	start := time.Now()
	j.run()
	logging.Logger.Debug("Job finished", "job", j.name, "duration", time.Since(start))
}

func (p *Pool) isClosed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}

func (p *Pool) enqueue(j job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}
	select {
	case p.jobs <- j:
		return nil
	default:
		return ErrQueueFull
	}
}

// Shutdown stops intake and fails jobs that have not started.
// It waits for running jobs until ctx ends.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		_ = p.group.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Logger.Debug("Worker pool stopped")
		return nil
	case <-ctx.Done():
		logging.Logger.Warn("Worker pool shutdown timed out, jobs still running")
		return ctx.Err()
	}
}

// Submit queues fn and returns its future.
// If the pool cannot accept the job, the future fails immediately.
func Submit[T any](p *Pool, name string, fn func() (T, error)) *Future[T] {
	f := newFuture[T]()
	var zero T

	j := job{
		name: name,
		run: func() {
			value, err := fn()
			f.complete(value, err)
		},
		fail: func(err error) { f.complete(zero, err) },
	}
	if err := p.enqueue(j); err != nil {
		f.complete(zero, fmt.Errorf("%s: %w", name, err))
	}
	return f
}

// SubmitWithTimeout queues fn with its own deadline.
// An expired deadline surfaces as a TIMEOUT failure.
func SubmitWithTimeout[T any](p *Pool, name string, timeout time.Duration, fn func(ctx context.Context) (T, error)) *Future[T] {
	return Submit(p, name, func() (T, error) {
		return RunWithTimeout(context.Background(), name, timeout, fn)
	})
}

// RunWithTimeout runs fn under a deadline derived from parent
func RunWithTimeout[T any](parent context.Context, name string, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()

	value, err := fn(ctx)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.Is(err, errclass.Timeout) {
		return value, errclass.New(errclass.KindTimeout, name, fmt.Sprintf("no response within %s", timeout), err)
	}
	return value, err
}
