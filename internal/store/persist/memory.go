package persist

import (
	"context"
	"sync"
)

// Memory is an in-process engine for tests.
type Memory struct {
	mu   sync.Mutex
	data []byte
}

// NewMemory returns an empty in-memory engine.
func NewMemory() *Memory {
	return &Memory{}
}

// Load implements Engine.
func (m *Memory) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

// Save implements Engine.
func (m *Memory) Save(_ context.Context, snapshot []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(snapshot))
	copy(m.data, snapshot)
	return nil
}

// Close implements Engine.
func (m *Memory) Close() error { return nil }
