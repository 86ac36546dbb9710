package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuture_WaitHonorsContext(t *testing.T) {
	f := newFuture[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := f.Wait(ctx)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestFuture_CompleteOnlyOnce(t *testing.T) {
	f := newFuture[string]()
	f.complete("first", nil)
	f.complete("second", errors.New("ignored"))

	value, err := f.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "first", value)
}

func TestFuture_ThenRunsOnDispatcher(t *testing.T) {
	d := NewLoopDispatcher(4)
	f := newFuture[int]()

	var got []int
	f.Then(d, func(v int, err error) { got = append(got, v) })
	assert.Equal(t, 0, d.RunPending(), "nothing is posted before completion")

	f.complete(7, nil)
	assert.Empty(t, got, "callback must not run on the completing goroutine")

	assert.Equal(t, 1, d.RunPending())
	assert.Equal(t, []int{7}, got)
}

func TestFuture_ThenAfterCompletion(t *testing.T) {
	var got error
	boom := errors.New("boom")

	Completed(0, boom).Then(InlineDispatcher{}, func(_ int, err error) { got = err })

	assert.ErrorIs(t, got, boom)
}

func TestLoopDispatcher_RunStops(t *testing.T) {
	d := NewLoopDispatcher(1)
	ran := make(chan struct{})
	d.Post(func() { close(ran) })

	errs := make(chan error)
	go func() { errs <- d.Run(context.Background()) }()

	<-ran
	d.Stop()
	assert.NoError(t, <-errs)

	// Posting after Stop must not block
	d.Post(func() {})
	d.Post(func() {})
}

func TestLoopDispatcher_TryPostDropsWhenFull(t *testing.T) {
	d := NewLoopDispatcher(1)
	ran := 0

	assert.True(t, d.TryPost(func() { ran++ }))
	assert.False(t, d.TryPost(func() { ran++ }))
	assert.Equal(t, 1, d.RunPending())
	assert.Equal(t, 1, ran)

	d.Stop()
	assert.False(t, d.TryPost(func() { ran++ }))
}
