// Package store persists the tracker's entity collections. Each collection
// is one JSON snapshot under a fixed key; every mutation is a
// read-modify-write of the whole snapshot, serialized by the Store mutex.
package store

import (
	"context"
	"sync"
)

// KV is the raw persistence boundary: whole-value reads and writes per
// key. Implementations must make Write atomic per key but need not
// provide any cross-key guarantees.
type KV interface {
	Read(ctx context.Context, key string) (value []byte, ok bool, err error)
	Write(ctx context.Context, key string, value []byte) error
	Close() error
}

// MemoryKV is an in-memory KV used by tests and as a scratch backend.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Read(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, true, nil
}

func (m *MemoryKV) Write(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *MemoryKV) Close() error { return nil }
