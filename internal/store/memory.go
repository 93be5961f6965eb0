package store

import (
	"context"
	"sync"
)

// MemoryBackend is a map-backed Backend. It stands in for the real keyed
// storage in tests and when the service runs without redis or postgres.
type MemoryBackend struct {
	mu       sync.RWMutex
	payloads map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{payloads: make(map[string][]byte)}
}

// Get returns the payload stored under key, or ErrNotFound.
func (m *MemoryBackend) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	payload, ok := m.payloads[key]
	if !ok {
		return nil, ErrNotFound
	}

	cp := make([]byte, len(payload))
	copy(cp, payload)
	return cp, nil
}

// Set stores payload under key, replacing any prior value.
func (m *MemoryBackend) Set(_ context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(payload))
	copy(cp, payload)
	m.payloads[key] = cp
	return nil
}
