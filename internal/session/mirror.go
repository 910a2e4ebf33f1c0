// Package session owns the process-wide Firebase client bundle. The clients
// are initialized lazily and exactly once: callers that arrive while the
// first initialization is still in flight all wait on the same attempt
// instead of registering their own.
package session

import (
	"context"
	"sync"

	fb "github.com/salcho-dev/devlog/backend/pkg/firebase"
)

// InitFunc produces the Firebase client bundle.
type InitFunc func(ctx context.Context) (*fb.App, error)

// Mirror memoizes one initialization of the Firebase clients, success or
// failure. Ready blocks until that single attempt completes; Close tears the
// bundle down at most once.
type Mirror struct {
	init InitFunc

	mu     sync.Mutex
	done   chan struct{}
	app    *fb.App
	err    error
	closed bool
}

func NewMirror(init InitFunc) *Mirror {
	return &Mirror{init: init}
}

// Ready returns the initialized client bundle, starting the initialization
// on the first call. Concurrent callers share the same in-flight attempt.
// A canceled ctx abandons the wait, not the initialization itself.
func (m *Mirror) Ready(ctx context.Context) (*fb.App, error) {
	m.mu.Lock()
	if m.done == nil {
		m.done = make(chan struct{})
		go m.run()
	}
	done := m.done
	m.mu.Unlock()

	select {
	case <-done:
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.app, m.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (m *Mirror) run() {
	app, err := m.init(context.Background())

	m.mu.Lock()
	m.app, m.err = app, err
	close(m.done)
	m.mu.Unlock()
}

// Close waits for any in-flight initialization and releases the clients.
// Subsequent calls are no-ops.
func (m *Mirror) Close() error {
	m.mu.Lock()
	if m.closed || m.done == nil {
		m.closed = true
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	done := m.done
	m.mu.Unlock()

	<-done
	if m.app != nil {
		return m.app.Close()
	}
	return nil
}
