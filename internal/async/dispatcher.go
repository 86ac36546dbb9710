package async

import (
	"context"
	"sync"

	"github.com/renato0307/tmlsync/internal/logging"
)

// Dispatcher runs callbacks on the thread that owns interactive state
type Dispatcher interface {
	Post(fn func())
}

// InlineDispatcher runs callbacks on the goroutine that resolves the future
type InlineDispatcher struct{}

// Post runs fn immediately
func (InlineDispatcher) Post(fn func()) {
	fn()
}

// LoopDispatcher queues callbacks for a single consuming goroutine.
// The consumer either calls Run, or calls RunPending between prompts.
type LoopDispatcher struct {
	queue    chan func()
	stopOnce sync.Once
	stopped  chan struct{}
}

// NewLoopDispatcher creates a dispatcher with the given queue capacity
func NewLoopDispatcher(buffer int) *LoopDispatcher {
	if buffer < 1 {
		buffer = 1
	}
	return &LoopDispatcher{
		queue:   make(chan func(), buffer),
		stopped: make(chan struct{}),
	}
}

// Post queues fn. Callbacks posted after Stop are dropped.
func (d *LoopDispatcher) Post(fn func()) {
	select {
	case d.queue <- fn:
	case <-d.stopped:
		logging.Logger.Debug("Dispatcher stopped, dropping callback")
	}
}

// TryPost queues fn without blocking. It reports false and drops fn when
// the queue is full or the dispatcher is stopped.
func (d *LoopDispatcher) TryPost(fn func()) bool {
	select {
	case <-d.stopped:
		return false
	default:
	}
	select {
	case d.queue <- fn:
		return true
	default:
		return false
	}
}

// Run executes callbacks until ctx ends or Stop is called
func (d *LoopDispatcher) Run(ctx context.Context) error {
	for {
		select {
		case fn := <-d.queue:
			fn()
		case <-d.stopped:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// RunPending executes the callbacks already queued and returns how many ran
func (d *LoopDispatcher) RunPending() int {
	ran := 0
	for {
		select {
		case fn := <-d.queue:
			fn()
			ran++
		default:
			return ran
		}
	}
}

// Stop ends Run and makes later Posts no-ops
func (d *LoopDispatcher) Stop() {
	d.stopOnce.Do(func() { close(d.stopped) })
}

// RunUntil executes callbacks until done is closed, then drains the queue
func (d *LoopDispatcher) RunUntil(done <-chan struct{}) {
	for {
		select {
		case fn := <-d.queue:
			fn()
		case <-done:
			d.RunPending()
			return
		}
	}
}
