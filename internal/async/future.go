package async

import (
	"context"
	"sync"
)

// Future is the pending result of a job submitted to a Pool
type Future[T any] struct {
	done chan struct{}

	mu        sync.Mutex
	callbacks []func()
	completed bool
	err       error
	value     T
}

func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Completed returns a future that is already resolved
func Completed[T any](value T, err error) *Future[T] {
	f := newFuture[T]()
	f.complete(value, err)
	return f
}

// complete resolves the future once; later calls are ignored
func (f *Future[T]) complete(value T, err error) {
	f.mu.Lock()
	if f.completed {
		f.mu.Unlock()
		return
	}
	f.completed = true
	f.value = value
	f.err = err
	callbacks := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}

// Done is closed when the result is available
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the result is available or ctx ends.
// Giving up on the wait does not cancel the job.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Then registers fn to receive the result on the dispatcher's thread.
// If the future is already resolved, fn is posted immediately.
func (f *Future[T]) Then(d Dispatcher, fn func(T, error)) {
	post := func() {
		value, err := f.value, f.err
		d.Post(func() { fn(value, err) })
	}

	f.mu.Lock()
	if !f.completed {
		f.callbacks = append(f.callbacks, post)
		f.mu.Unlock()
		return
	}
	f.mu.Unlock()
	post()
}
