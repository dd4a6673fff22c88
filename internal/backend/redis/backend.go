// Package redis implements the key-value backend on a Redis server,
// one key per mark holding the whole serialized document.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/cloudmark/internal/backend"
)

// Backend stores one document blob per mark.
type Backend struct {
	client *redis.Client
}

// New creates a Redis-backed document store.
func New(client *redis.Client) *Backend {
	return &Backend{
		client: client,
	}
}

// Load retrieves the document blob for a mark.
func (b *Backend) Load(ctx context.Context, mark string) ([]byte, error) {
	data, err := b.client.Get(ctx, MarkKey(mark)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, backend.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to load document %q: %w", mark, err)
	}
	return data, nil
}

// Save overwrites the document blob for a mark. Documents never expire;
// a collection exists until it is explicitly removed out of band.
func (b *Backend) Save(ctx context.Context, mark string, blob []byte) error {
	if err := b.client.Set(ctx, MarkKey(mark), blob, 0).Err(); err != nil {
		return fmt.Errorf("failed to save document %q: %w", mark, err)
	}
	return nil
}

// List returns all marks holding a document, discovered by scanning the
// key namespace.
func (b *Backend) List(ctx context.Context) ([]string, error) {
	marks := make([]string, 0, 16)

	iter := b.client.Scan(ctx, 0, KeyPrefixMark+"*", 0).Iterator()
	for iter.Next(ctx) {
		mark, err := ExtractMark(iter.Val())
		if err != nil {
			// Foreign key that happens to share the prefix, skip it.
			continue
		}
		marks = append(marks, mark)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return marks, nil
}
