// Package store persists journal collections in a shared key-value store.
// A KV backend holds opaque bytes; Scoped layers the per-user key scheme
// and JSON encoding on top and is what the journal consumes.
package store

import (
	"context"
	"sync"
)

// KV is a byte-level key-value store. Get's second return reports whether
// the key was present; a missing key is not an error.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Memory is an in-process KV, used for tests and throwaway journals.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Close() error {
	return nil
}
