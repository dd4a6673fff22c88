package domain

import (
	"net/url"
	"strings"
)

// BookmarkFields carries the caller-supplied mutable fields of a
// record, shared by insert and update.
type BookmarkFields struct {
	URL         string
	Title       string
	Description string
	Category    string
}

// Validate checks the insert/update preconditions: a syntactically
// valid absolute URL and non-empty title and category. Description is
// optional.
func (f BookmarkFields) Validate() error {
	if strings.TrimSpace(f.URL) == "" {
		return &ValidationError{Field: "url", Reason: "required"}
	}
	u, err := url.Parse(f.URL)
	if err != nil {
		return &ValidationError{Field: "url", Reason: "not a parsable URL"}
	}
	if !u.IsAbs() || u.Host == "" {
		return &ValidationError{Field: "url", Reason: "must be absolute"}
	}
	if strings.TrimSpace(f.Title) == "" {
		return &ValidationError{Field: "title", Reason: "required"}
	}
	if strings.TrimSpace(f.Category) == "" {
		return &ValidationError{Field: "category", Reason: "required"}
	}
	return nil
}

// ValidateMark checks that a collection name is usable as a backend
// key.
func ValidateMark(mark string) error {
	if strings.TrimSpace(mark) == "" {
		return &ValidationError{Field: "mark", Reason: "required"}
	}
	return nil
}
