package codec

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/MrSnakeDoc/cloudmark/internal/domain"
)

func TestRoundTrip(t *testing.T) {
	stamp := time.Date(2025, time.June, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		doc  *domain.BookmarksData
	}{
		{
			name: "empty document",
			doc:  domain.NewBookmarksData("team"),
		},
		{
			name: "single record",
			doc: &domain.BookmarksData{
				Mark: "team",
				Bookmarks: []domain.BookmarkInstance{
					{
						UUID:        "u1",
						URL:         "https://a.com",
						Title:       "A",
						Category:    "Dev",
						Description: "notes",
						Favicon:     "https://www.google.com/s2/favicons?domain=a.com&sz=64",
						CreatedAt:   stamp,
						ModifiedAt:  stamp,
					},
				},
			},
		},
		{
			name: "many records with empty optional fields",
			doc: &domain.BookmarksData{
				Mark: "team",
				Bookmarks: []domain.BookmarkInstance{
					{UUID: "u1", URL: "https://a.com", Title: "A", Category: "Dev", CreatedAt: stamp, ModifiedAt: stamp},
					{UUID: "u2", URL: "https://b.com", Title: "B", Category: "Docs", CreatedAt: stamp, ModifiedAt: stamp},
					{UUID: "u3", URL: "https://c.com", Title: "C", Category: "Dev", Description: "d", CreatedAt: stamp, ModifiedAt: stamp},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := Encode(tt.doc)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}

			decoded, err := Decode(tt.doc.Mark, blob)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}

			if !reflect.DeepEqual(decoded, tt.doc) {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, tt.doc)
			}
		})
	}
}

func TestEncodeOmitsEmptyOptionalFields(t *testing.T) {
	doc := &domain.BookmarksData{
		Mark: "team",
		Bookmarks: []domain.BookmarkInstance{
			{UUID: "u1", URL: "https://a.com", Title: "A", Category: "Dev"},
		},
	}

	blob, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	s := string(blob)
	if strings.Contains(s, "favicon") {
		t.Errorf("Encode() should omit empty favicon, got %s", s)
	}
	if strings.Contains(s, "description") {
		t.Errorf("Encode() should omit empty description, got %s", s)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{name: "truncated json", blob: `{"mark":"team","bookmarks":[`},
		{name: "wrong shape", blob: `{"mark":"team","bookmarks":"nope"}`},
		{name: "not json at all", blob: `<<garbage>>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode("team", []byte(tt.blob))
			var mErr *domain.MalformedError
			if !errors.As(err, &mErr) {
				t.Fatalf("Decode() = %v, want *domain.MalformedError", err)
			}
			if mErr.Mark != "team" {
				t.Errorf("MalformedError mark = %q, want %q", mErr.Mark, "team")
			}
		})
	}
}

func TestDecodeNormalizesOldDocuments(t *testing.T) {
	// Documents written by older clients may lack the mark or carry a
	// null bookmarks array.
	decoded, err := Decode("team", []byte(`{"bookmarks":null}`))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if decoded.Mark != "team" {
		t.Errorf("Decode() mark = %q, want %q", decoded.Mark, "team")
	}
	if decoded.Bookmarks == nil {
		t.Error("Decode() bookmarks should be normalized to an empty slice")
	}
}
