package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/cloudmark/internal/domain"
	"github.com/MrSnakeDoc/cloudmark/internal/favicon"
)

// Ephemeral serves the reserved demo mark without touching any backend.
// FetchOrCreate returns a fixed seed document, Insert and Update
// compute and return the would-be record without persisting it, and
// Delete is a no-op. It exists so a caller can preview the UI without
// provisioning storage.
type Ephemeral struct {
	favicon favicon.Resolver

	now   func() time.Time
	newID func() string
}

// NewEphemeral creates the demo store.
func NewEphemeral(f favicon.Resolver) *Ephemeral {
	return &Ephemeral{
		favicon: f,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// seedStamp is the fixed timestamp carried by all seed records.
var seedStamp = time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

// SeedDocument returns a fresh copy of the demo collection.
func SeedDocument() *domain.BookmarksData {
	seed := []struct {
		uuid, url, title, category, description string
	}{
		{"11111111-1111-4111-8111-111111111111", "https://chat.openai.com", "ChatGPT", "AI", "Conversational assistant"},
		{"22222222-2222-4222-8222-222222222222", "https://chat.deepseek.com", "DeepSeek", "AI", ""},
		{"33333333-3333-4333-8333-333333333333", "https://caniuse.com", "Can I use", "Dev Tools", "Browser API compatibility tables"},
		{"44444444-4444-4444-8444-444444444444", "https://github.com", "GitHub", "Dev Tools", ""},
		{"55555555-5555-4555-8555-555555555555", "https://www.producthunt.com", "Product Hunt", "Trending", "New products and startups"},
	}

	doc := domain.NewBookmarksData(domain.DemoMark)
	google := favicon.NewGoogle(favicon.DefaultSize)
	for _, s := range seed {
		doc.Bookmarks = append(doc.Bookmarks, domain.BookmarkInstance{
			UUID:        s.uuid,
			URL:         s.url,
			Title:       s.title,
			Category:    s.category,
			Description: s.description,
			Favicon:     google.Resolve(s.url),
			CreatedAt:   seedStamp,
			ModifiedAt:  seedStamp,
		})
	}
	return doc
}

// FetchOrCreate returns the fixed seed document regardless of prior
// operations; nothing an ephemeral caller does is ever visible again.
func (s *Ephemeral) FetchOrCreate(_ context.Context, mark string) (*domain.BookmarksData, error) {
	if err := domain.ValidateMark(mark); err != nil {
		return nil, err
	}
	return SeedDocument(), nil
}

// Insert validates and returns the record that a persistent insert
// would have created, without writing anything.
func (s *Ephemeral) Insert(_ context.Context, mark string, fields domain.BookmarkFields) (*domain.BookmarkInstance, error) {
	if err := domain.ValidateMark(mark); err != nil {
		return nil, err
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	record := domain.BookmarkInstance{
		UUID:        s.newID(),
		URL:         fields.URL,
		Title:       fields.Title,
		Category:    fields.Category,
		Description: fields.Description,
		Favicon:     s.favicon.Resolve(fields.URL),
		CreatedAt:   now,
		ModifiedAt:  now,
	}
	return &record, nil
}

// Update applies the fields to a copy of the seed record with the given
// uuid and returns it, without persisting the change.
func (s *Ephemeral) Update(_ context.Context, mark, id string, fields domain.BookmarkFields) (*domain.BookmarkInstance, error) {
	if err := domain.ValidateMark(mark); err != nil {
		return nil, err
	}
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	doc := SeedDocument()
	record := doc.Find(id)
	if record == nil {
		return nil, fmt.Errorf("update %s/%s: %w", mark, id, domain.ErrNotFound)
	}

	record.URL = fields.URL
	record.Title = fields.Title
	record.Category = fields.Category
	record.Description = fields.Description
	record.Favicon = s.favicon.Resolve(fields.URL)
	record.ModifiedAt = s.now()

	updated := *record
	return &updated, nil
}

// Delete is a no-op: the demo collection cannot be changed.
func (s *Ephemeral) Delete(_ context.Context, mark, _ string) error {
	return domain.ValidateMark(mark)
}
