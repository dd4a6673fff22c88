// Package memory implements the key-value backend in process memory.
// It backs tests and the no-Redis development mode.
package memory

import (
	"context"
	"sync"

	"github.com/MrSnakeDoc/cloudmark/internal/backend"
)

// Backend holds document blobs in a mutex-guarded map.
type Backend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// New creates an empty in-memory backend.
func New() *Backend {
	return &Backend{
		docs: make(map[string][]byte),
	}
}

// Load returns a copy of the blob stored under mark.
func (b *Backend) Load(_ context.Context, mark string) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	blob, ok := b.docs[mark]
	if !ok {
		return nil, backend.ErrKeyNotFound
	}

	cp := make([]byte, len(blob))
	copy(cp, blob)
	return cp, nil
}

// Save stores a copy of blob under mark.
func (b *Backend) Save(_ context.Context, mark string, blob []byte) error {
	cp := make([]byte, len(blob))
	copy(cp, blob)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.docs[mark] = cp
	return nil
}

// List returns all marks holding a document.
func (b *Backend) List(_ context.Context) ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	marks := make([]string, 0, len(b.docs))
	for mark := range b.docs {
		marks = append(marks, mark)
	}
	return marks, nil
}

// Len returns the number of stored documents.
func (b *Backend) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.docs)
}
