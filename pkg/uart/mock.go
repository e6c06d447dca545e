package uart

import (
	"bytes"
	"sync"

	"github.com/pkg/errors"
)

// Mock is an in-memory Port that records writes.
type Mock struct {
	mu      sync.Mutex
	written bytes.Buffer
	closed  bool

	// WriteErr, when set, is returned by every Write.
	WriteErr error
}

// Ensure Mock implements Port.
var _ Port = (*Mock)(nil)

// NewMock creates an open mock port.
func NewMock() *Mock {
	return &Mock{}
}

// Write records p.
func (m *Mock) Write(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return 0, errors.New("mock port closed")
	}
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	return m.written.Write(p)
}

// Close marks the port closed.
func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}

// Written returns everything written so far.
func (m *Mock) Written() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.written.String()
}

// IsClosed reports whether Close was called.
func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
