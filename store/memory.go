package store

import (
	"context"
	"errors"
	"sync"
)

var errWriteFailed = errors.New("write failed")

// MemoryKV is an in-memory KV implementation used by tests and the reset
// command's dry runs. It implements the same contract as SQLiteKV.
type MemoryKV struct {
	mu      sync.RWMutex
	entries map[string][]byte

	// FailWrites makes Set return an error, for exercising rollback paths.
	FailWrites bool
}

// NewMemoryKV creates an empty in-memory key-value store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: make(map[string][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.entries[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

func (m *MemoryKV) Set(_ context.Context, key string, value []byte) error {
	if m.FailWrites {
		return errWriteFailed
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.entries[key] = cp
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *MemoryKV) Close() error { return nil }
