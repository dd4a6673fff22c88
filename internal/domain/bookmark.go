package domain

import "time"

const (
	// DefaultMark is the collection used when a caller does not name one.
	DefaultMark = "default"

	// DefaultCategory is assigned by the quick-add entry point.
	DefaultCategory = "Uncategorized"

	// DemoMark is the reserved collection name served by the ephemeral
	// demo store. Operations on it never touch the backend.
	DemoMark = "demo"
)

// IsDemoMark reports whether mark selects the ephemeral demo store.
func IsDemoMark(mark string) bool {
	return mark == DemoMark
}

// BookmarkInstance is a single bookmark record inside a collection.
type BookmarkInstance struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// UUID is assigned at creation and never changes.
	// It is the primary key for update and delete.
	UUID string `json:"uuid"`

	// ─────────────────────────────
	// User-supplied fields
	// ─────────────────────────────

	// URL is the absolute URL the bookmark points to.
	// Unique within a collection; insert enforces this.
	URL string `json:"url"`

	// Title is the display name.
	Title string `json:"title"`

	// Category is a free-form label, not a foreign key. The
	// collection's category set is derived by scanning records.
	Category string `json:"category"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// ─────────────────────────────
	// Derived & maintained fields
	// ─────────────────────────────

	// Favicon is the resolved icon URL. Derived from URL, may be empty
	// when resolution degraded.
	Favicon string `json:"favicon,omitempty"`

	// CreatedAt is set once at creation and never mutated.
	CreatedAt time.Time `json:"createdAt"`

	// ModifiedAt is set at creation and refreshed on every successful
	// update.
	ModifiedAt time.Time `json:"modifiedAt"`
}

// BookmarksData is the whole per-collection document stored under one
// backend key. Insertion order of Bookmarks is preserved but carries no
// meaning; callers sort at presentation time.
type BookmarksData struct {
	Mark      string             `json:"mark"`
	Bookmarks []BookmarkInstance `json:"bookmarks"`
}

// NewBookmarksData returns the empty document auto-provisioned on first
// access to an unknown mark.
func NewBookmarksData(mark string) *BookmarksData {
	return &BookmarksData{
		Mark:      mark,
		Bookmarks: []BookmarkInstance{},
	}
}

// Find returns a pointer into the document for the record with the
// given uuid, or nil when absent.
func (d *BookmarksData) Find(uuid string) *BookmarkInstance {
	for i := range d.Bookmarks {
		if d.Bookmarks[i].UUID == uuid {
			return &d.Bookmarks[i]
		}
	}
	return nil
}

// FindByURL returns the record whose URL is exactly equal to url, or
// nil. Comparison is case-sensitive string equality.
func (d *BookmarksData) FindByURL(url string) *BookmarkInstance {
	for i := range d.Bookmarks {
		if d.Bookmarks[i].URL == url {
			return &d.Bookmarks[i]
		}
	}
	return nil
}

// Remove deletes the record with the given uuid in place and reports
// whether it was present. All other records are left untouched.
func (d *BookmarksData) Remove(uuid string) bool {
	for i := range d.Bookmarks {
		if d.Bookmarks[i].UUID == uuid {
			d.Bookmarks = append(d.Bookmarks[:i], d.Bookmarks[i+1:]...)
			return true
		}
	}
	return false
}

// Categories returns the distinct category values across the current
// records, in first-seen order. It is recomputed on every call so it
// can never go stale after an insert, update or delete.
func (d *BookmarksData) Categories() []string {
	categories := make([]string, 0, 8)
	seen := make(map[string]bool, 8)
	for i := range d.Bookmarks {
		c := d.Bookmarks[i].Category
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	return categories
}

// ByCategory returns the records whose category equals the given label.
// Linear scan over the document; there is no secondary index.
func (d *BookmarksData) ByCategory(category string) []BookmarkInstance {
	matches := make([]BookmarkInstance, 0, len(d.Bookmarks))
	for i := range d.Bookmarks {
		if d.Bookmarks[i].Category == category {
			matches = append(matches, d.Bookmarks[i])
		}
	}
	return matches
}
