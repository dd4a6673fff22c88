// Package backend defines the narrow persistence contract the store
// depends on: one opaque blob per mark, whole-value reads and writes.
package backend

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Load when no document exists under the
// given mark.
var ErrKeyNotFound = errors.New("key not found")

// Backend is the key-value persistence layer. It supports whole-value
// get, whole-value put and key listing only: no partial-field updates,
// no transactions, no compare-and-swap. Implementations (Redis, memory,
// a relational table) can be swapped without touching store logic.
type Backend interface {
	// Load returns the blob stored under mark, or ErrKeyNotFound.
	Load(ctx context.Context, mark string) ([]byte, error)

	// Save overwrites the blob stored under mark. A single Save is the
	// sole consistency boundary the store relies on.
	Save(ctx context.Context, mark string, blob []byte) error

	// List returns all marks that currently hold a document.
	List(ctx context.Context) ([]string, error)
}
