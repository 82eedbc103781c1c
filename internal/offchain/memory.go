package offchain

import (
	"context"
	"fmt"
	"sync"

	"github.com/healthchain/healthchain-backend/internal/domain"
)

// MemoryEngine is a thread-safe in-memory blob engine. Payloads are copied on
// the way in and out, so callers can never mutate stored bytes.
type MemoryEngine struct {
	mu    sync.RWMutex
	blobs map[domain.ContentHash]*Blob
}

// NewMemoryEngine initializes an empty engine.
func NewMemoryEngine() *MemoryEngine {
	return &MemoryEngine{
		blobs: make(map[domain.ContentHash]*Blob),
	}
}

// Put stores a blob under its hash. Re-storing an existing hash is a no-op:
// identical inputs produce identical content.
func (m *MemoryEngine) Put(_ context.Context, blob *Blob) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.blobs[blob.Hash]; ok {
		return nil
	}
	m.blobs[blob.Hash] = copyBlob(blob)
	return nil
}

// Get returns the blob stored under a hash.
// Returns domain.ErrNotFound if nothing is stored there.
func (m *MemoryEngine) Get(_ context.Context, hash domain.ContentHash) (*Blob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.blobs[hash]
	if !ok {
		return nil, fmt.Errorf("payload %s: %w", hash, domain.ErrNotFound)
	}
	return copyBlob(blob), nil
}

// Len returns the number of stored blobs.
func (m *MemoryEngine) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.blobs)
}

func copyBlob(b *Blob) *Blob {
	out := *b
	out.Payload = make([]byte, len(b.Payload))
	copy(out.Payload, b.Payload)
	if b.Metadata != nil {
		out.Metadata = make(map[string]string, len(b.Metadata))
		for k, v := range b.Metadata {
			out.Metadata[k] = v
		}
	}
	return &out
}
