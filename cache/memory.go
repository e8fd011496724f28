package cache

import (
	"context"
	"sync"
)

// MemoryMedium keeps the blob in process memory. Individual reads and writes
// are mutex-serialized. Contents do not survive restarts; useful as a default
// and in tests.
type MemoryMedium struct {
	mu   sync.Mutex
	data []byte
	ok   bool
}

// NewMemoryMedium creates an empty in-memory medium.
func NewMemoryMedium() *MemoryMedium {
	return &MemoryMedium{}
}

// Read returns the stored blob, ok is false before the first Write.
func (m *MemoryMedium) Read(ctx context.Context) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.ok {
		return nil, false, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, true, nil
}

// Write replaces the stored blob.
func (m *MemoryMedium) Write(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.ok = true
	return nil
}

// Verify MemoryMedium implements Medium
var _ Medium = (*MemoryMedium)(nil)
