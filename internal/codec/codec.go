// Package codec serializes BookmarksData documents to and from the
// opaque blob representation held by the key-value backend.
package codec

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/MrSnakeDoc/cloudmark/internal/domain"
)

// Encode serializes a document to the backend blob format.
// Empty Favicon and Description are omitted from the output; an absent
// key and an empty string are the same value project-wide.
func Encode(doc *domain.BookmarksData) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return data, nil
}

// Decode parses a backend blob back into a document. A blob that does
// not parse is reported as a domain.MalformedError so the store can
// distinguish corruption from absence and callers can decide whether
// to reprovision.
func Decode(mark string, blob []byte) (*domain.BookmarksData, error) {
	var doc domain.BookmarksData
	if err := json.Unmarshal(blob, &doc); err != nil {
		return nil, &domain.MalformedError{Mark: mark, Err: err}
	}

	// Normalize documents written by older clients.
	if doc.Mark == "" {
		doc.Mark = mark
	}
	if doc.Bookmarks == nil {
		doc.Bookmarks = []domain.BookmarkInstance{}
	}

	return &doc, nil
}
