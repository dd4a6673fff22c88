package domain

import (
	"reflect"
	"testing"
)

func sampleDoc() *BookmarksData {
	doc := NewBookmarksData("team")
	doc.Bookmarks = []BookmarkInstance{
		{UUID: "a", URL: "https://a.com", Title: "A", Category: "Dev"},
		{UUID: "b", URL: "https://b.com", Title: "B", Category: "Docs"},
		{UUID: "c", URL: "https://c.com", Title: "C", Category: "Dev"},
	}
	return doc
}

func TestNewBookmarksData(t *testing.T) {
	doc := NewBookmarksData("team")
	if doc.Mark != "team" {
		t.Errorf("NewBookmarksData() mark = %q, want %q", doc.Mark, "team")
	}
	if doc.Bookmarks == nil {
		t.Fatal("NewBookmarksData() bookmarks should be non-nil")
	}
	if len(doc.Bookmarks) != 0 {
		t.Errorf("NewBookmarksData() should start empty, got %d records", len(doc.Bookmarks))
	}
}

func TestFind(t *testing.T) {
	doc := sampleDoc()

	record := doc.Find("b")
	if record == nil {
		t.Fatal("Find(b) returned nil")
	}
	if record.Title != "B" {
		t.Errorf("Find(b) title = %q, want %q", record.Title, "B")
	}

	if doc.Find("missing") != nil {
		t.Error("Find(missing) should return nil")
	}
}

func TestFindByURL(t *testing.T) {
	doc := sampleDoc()

	record := doc.FindByURL("https://a.com")
	if record == nil {
		t.Fatal("FindByURL() returned nil for existing url")
	}
	if record.UUID != "a" {
		t.Errorf("FindByURL() uuid = %q, want %q", record.UUID, "a")
	}

	// Comparison is case-sensitive.
	if doc.FindByURL("https://A.com") != nil {
		t.Error("FindByURL() should be case-sensitive")
	}
}

func TestRemove(t *testing.T) {
	doc := sampleDoc()

	if !doc.Remove("b") {
		t.Fatal("Remove(b) = false, want true")
	}
	if len(doc.Bookmarks) != 2 {
		t.Errorf("Remove() left %d records, want 2", len(doc.Bookmarks))
	}
	if doc.Find("b") != nil {
		t.Error("record b still present after Remove")
	}

	// Other records are untouched.
	want := []string{"a", "c"}
	got := []string{doc.Bookmarks[0].UUID, doc.Bookmarks[1].UUID}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("remaining uuids = %v, want %v", got, want)
	}

	if doc.Remove("missing") {
		t.Error("Remove(missing) = true, want false")
	}
}

func TestCategories(t *testing.T) {
	doc := sampleDoc()

	got := doc.Categories()
	want := []string{"Dev", "Docs"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}

	// Derived fresh after a mutation, never stale.
	doc.Remove("b")
	got = doc.Categories()
	want = []string{"Dev"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() after remove = %v, want %v", got, want)
	}

	empty := NewBookmarksData("empty")
	if len(empty.Categories()) != 0 {
		t.Errorf("Categories() on empty doc = %v, want none", empty.Categories())
	}
}

func TestByCategory(t *testing.T) {
	doc := sampleDoc()

	dev := doc.ByCategory("Dev")
	if len(dev) != 2 {
		t.Fatalf("ByCategory(Dev) returned %d records, want 2", len(dev))
	}
	for _, b := range dev {
		if b.Category != "Dev" {
			t.Errorf("ByCategory(Dev) returned record with category %q", b.Category)
		}
	}

	if len(doc.ByCategory("Nope")) != 0 {
		t.Error("ByCategory(Nope) should be empty")
	}
}

func TestIsDemoMark(t *testing.T) {
	tests := []struct {
		mark string
		want bool
	}{
		{DemoMark, true},
		{"default", false},
		{"team", false},
		{"Demo", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsDemoMark(tt.mark); got != tt.want {
			t.Errorf("IsDemoMark(%q) = %v, want %v", tt.mark, got, tt.want)
		}
	}
}
