package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a uuid does not reference any record in
// a document, or when delete or update targets a collection that was
// never provisioned. Match with errors.Is.
var ErrNotFound = errors.New("bookmark not found")

// ValidationError rejects a request before the backend is touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ConflictError rejects an insert whose URL already exists in the
// collection. Nothing is written; Existing is the record that already
// owns the URL.
type ConflictError struct {
	Existing BookmarkInstance
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("url already bookmarked as %q (uuid %s)", e.Existing.Title, e.Existing.UUID)
}

// MalformedError marks a stored document that cannot be decoded. It is
// surfaced distinctly so callers can treat the collection as corrupt
// instead of silently reprovisioning over real data.
type MalformedError struct {
	Mark string
	Err  error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed document for mark %q: %v", e.Mark, e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }
