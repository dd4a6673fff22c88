// Package store owns the business rules of the bookmark collection
// store: default-document creation, URL dedup on insert, uuid lookup on
// update and delete, timestamp maintenance.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/cloudmark/internal/backend"
	"github.com/MrSnakeDoc/cloudmark/internal/codec"
	"github.com/MrSnakeDoc/cloudmark/internal/domain"
	"github.com/MrSnakeDoc/cloudmark/internal/favicon"
	"github.com/MrSnakeDoc/cloudmark/internal/logger"
)

// Store is the four-operation contract over bookmark collections.
type Store interface {
	FetchOrCreate(ctx context.Context, mark string) (*domain.BookmarksData, error)
	Insert(ctx context.Context, mark string, fields domain.BookmarkFields) (*domain.BookmarkInstance, error)
	Update(ctx context.Context, mark, id string, fields domain.BookmarkFields) (*domain.BookmarkInstance, error)
	Delete(ctx context.Context, mark, id string) error
}

// ForMark picks the store variant for a mark: the reserved demo mark is
// served by the ephemeral store, everything else by the persistent one.
func ForMark(mark string, persistent *Persistent, demo *Ephemeral) Store {
	if domain.IsDemoMark(mark) {
		return demo
	}
	return persistent
}

// Persistent is the backend-backed store. Each operation performs one
// whole-document read plus, when it mutates, one whole-document write.
// There is no locking or compare-and-swap between the read and the
// write: two concurrent mutations of the same mark race and the later
// write wins at document granularity. Known limitation; callers issuing
// concurrent mutations on one collection can lose updates. Operations
// on different marks are fully independent.
type Persistent struct {
	backend backend.Backend
	favicon favicon.Resolver
	logger  logger.Logger

	now   func() time.Time
	newID func() string
}

// NewPersistent creates a store over the given backend.
func NewPersistent(b backend.Backend, f favicon.Resolver, log logger.Logger) *Persistent {
	return &Persistent{
		backend: b,
		favicon: f,
		logger:  log,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// FetchOrCreate returns the document for a mark. An unknown mark is
// provisioned as an empty collection and persisted, so repeated calls
// are idempotent and a collection exists after first touch. A document
// that no longer decodes surfaces as domain.MalformedError, never as a
// silent reprovision.
func (s *Persistent) FetchOrCreate(ctx context.Context, mark string) (*domain.BookmarksData, error) {
	if err := domain.ValidateMark(mark); err != nil {
		return nil, err
	}

	blob, err := s.backend.Load(ctx, mark)
	if errors.Is(err, backend.ErrKeyNotFound) {
		doc := domain.NewBookmarksData(mark)
		if err := s.save(ctx, doc); err != nil {
			return nil, err
		}
		s.logger.Info("provisioned collection", logger.String("mark", mark))
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %q: %w", mark, err)
	}

	return codec.Decode(mark, blob)
}

// Insert validates the fields, rejects a duplicate URL with
// domain.ConflictError, then appends a freshly stamped record and
// writes the document back. Favicon resolution is best effort and
// never fails the insert.
func (s *Persistent) Insert(ctx context.Context, mark string, fields domain.BookmarkFields) (*domain.BookmarkInstance, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.FetchOrCreate(ctx, mark)
	if err != nil {
		return nil, err
	}

	if existing := doc.FindByURL(fields.URL); existing != nil {
		return nil, &domain.ConflictError{Existing: *existing}
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

	doc.Bookmarks = append(doc.Bookmarks, record)
	if err := s.save(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Debug("bookmark inserted",
		logger.String("mark", mark),
		logger.String("uuid", record.UUID))
	return &record, nil
}

// Update replaces all mutable fields of the record with the given uuid,
// re-resolves the favicon from the possibly changed URL and refreshes
// ModifiedAt. UUID and CreatedAt are never touched.
//
// Sibling URLs are deliberately not re-checked here, so two records can
// end up sharing a URL after an update.
func (s *Persistent) Update(ctx context.Context, mark, id string, fields domain.BookmarkFields) (*domain.BookmarkInstance, error) {
	if err := fields.Validate(); err != nil {
		return nil, err
	}

	doc, err := s.load(ctx, mark)
	if err != nil {
		return nil, err
	}

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

	if err := s.save(ctx, doc); err != nil {
		return nil, err
	}

	s.logger.Debug("bookmark updated",
		logger.String("mark", mark),
		logger.String("uuid", id))

	updated := *record
	return &updated, nil
}

// Delete removes the record with the given uuid and writes the document
// back. Both an unknown mark and an unknown uuid fail with
// domain.ErrNotFound; nothing is written in either case.
func (s *Persistent) Delete(ctx context.Context, mark, id string) error {
	doc, err := s.load(ctx, mark)
	if err != nil {
		return err
	}

	if !doc.Remove(id) {
		return fmt.Errorf("delete %s/%s: %w", mark, id, domain.ErrNotFound)
	}

	if err := s.save(ctx, doc); err != nil {
		return err
	}

	s.logger.Debug("bookmark deleted",
		logger.String("mark", mark),
		logger.String("uuid", id))
	return nil
}

// ListMarks returns the names of all provisioned collections.
func (s *Persistent) ListMarks(ctx context.Context) ([]string, error) {
	marks, err := s.backend.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list collections: %w", err)
	}
	return marks, nil
}

// load fetches a document without provisioning. An absent document is
// reported as domain.ErrNotFound; mutating operations fail closed on
// absence.
func (s *Persistent) load(ctx context.Context, mark string) (*domain.BookmarksData, error) {
	if err := domain.ValidateMark(mark); err != nil {
		return nil, err
	}

	blob, err := s.backend.Load(ctx, mark)
	if errors.Is(err, backend.ErrKeyNotFound) {
		return nil, fmt.Errorf("collection %q: %w", mark, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %q: %w", mark, err)
	}

	return codec.Decode(mark, blob)
}

func (s *Persistent) save(ctx context.Context, doc *domain.BookmarksData) error {
	blob, err := codec.Encode(doc)
	if err != nil {
		return err
	}
	return s.backend.Save(ctx, doc.Mark, blob)
}
