package services

import (
	"github.com/renato0307/tmlsync/internal/async"
	"github.com/renato0307/tmlsync/internal/ports"
)

type noopListener struct{}

func (noopListener) Failed(string, error) {}
func (noopListener) Log(string) {}
func (noopListener) Progress(string, bool) {}
func (noopListener) Succeeded(string, string) {}

// DispatchingListener forwards notifications to inner on the dispatcher's thread
type DispatchingListener struct {
	dispatcher async.Dispatcher
	inner      ports.SyncListener
}

// Verify interface compliance at compile time
var _ ports.SyncListener = (*DispatchingListener)(nil)

// NewDispatchingListener creates a new DispatchingListener
func NewDispatchingListener(dispatcher async.Dispatcher, inner ports.SyncListener) *DispatchingListener {
	return &DispatchingListener{dispatcher: dispatcher, inner: inner}
}

func (l *DispatchingListener) Failed(operation string, err error) {
	l.dispatcher.Post(func() { l.inner.Failed(operation, err) })
}

func (l *DispatchingListener) Log(line string) {
	l.dispatcher.Post(func() { l.inner.Log(line) })
}

func (l *DispatchingListener) Progress(operation string, active bool) {
	l.dispatcher.Post(func() { l.inner.Progress(operation, active) })
}

func (l *DispatchingListener) Succeeded(operation, message string) {
	l.dispatcher.Post(func() { l.inner.Succeeded(operation, message) })
}
