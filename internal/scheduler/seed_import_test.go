package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MrSnakeDoc/cloudmark/internal/backend/memory"
	"github.com/MrSnakeDoc/cloudmark/internal/domain"
	"github.com/MrSnakeDoc/cloudmark/internal/favicon"
	"github.com/MrSnakeDoc/cloudmark/internal/logger"
	"github.com/MrSnakeDoc/cloudmark/internal/store"
)

const seedYAML = `
collections:
  - mark: team
    bookmarks:
      - url: https://github.com
        title: GitHub
        category: Dev Tools
      - url: https://caniuse.com
        title: Can I use
  - mark: personal
    bookmarks:
      - url: https://news.ycombinator.com
        title: Hacker News
        category: News
`

func newTestImporter(t *testing.T, yaml string) (*SeedImporter, *store.Persistent) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.yml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("writing seed file: %v", err)
	}

	st := store.NewPersistent(memory.New(), favicon.Static{Icon: "icon://seed"}, logger.NewNop())
	si := NewSeedImporter(path, st, logger.NewNop(), time.Hour, make(chan struct{}, 1))
	return si, st
}

func TestImport(t *testing.T) {
	si, st := newTestImporter(t, seedYAML)
	ctx := context.Background()

	if err := si.Import(ctx); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	team, err := st.FetchOrCreate(ctx, "team")
	if err != nil {
		t.Fatalf("FetchOrCreate(team) error = %v", err)
	}
	if len(team.Bookmarks) != 2 {
		t.Errorf("team holds %d records, want 2", len(team.Bookmarks))
	}
	if team.FindByURL("https://github.com") == nil {
		t.Error("github seed entry missing")
	}

	personal, err := st.FetchOrCreate(ctx, "personal")
	if err != nil {
		t.Fatalf("FetchOrCreate(personal) error = %v", err)
	}
	if len(personal.Bookmarks) != 1 {
		t.Errorf("personal holds %d records, want 1", len(personal.Bookmarks))
	}

	if last, inserted := si.LastImport(); last.IsZero() || inserted != 3 {
		t.Errorf("LastImport() = %v, %d, want recent time and 3 inserts", last, inserted)
	}
}

func TestImportIsIdempotent(t *testing.T) {
	si, st := newTestImporter(t, seedYAML)
	ctx := context.Background()

	if err := si.Import(ctx); err != nil {
		t.Fatalf("first Import() error = %v", err)
	}
	if err := si.Import(ctx); err != nil {
		t.Fatalf("second Import() error = %v", err)
	}

	team, _ := st.FetchOrCreate(ctx, "team")
	if len(team.Bookmarks) != 2 {
		t.Errorf("re-import duplicated records: team holds %d", len(team.Bookmarks))
	}

	// The re-import inserted nothing new.
	if _, inserted := si.LastImport(); inserted != 0 {
		t.Errorf("LastImport() inserted = %d, want 0 after re-import", inserted)
	}
}

func TestImportDoesNotOverwrite(t *testing.T) {
	si, st := newTestImporter(t, seedYAML)
	ctx := context.Background()

	if err := si.Import(ctx); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	team, _ := st.FetchOrCreate(ctx, "team")
	record := team.FindByURL("https://github.com")
	if _, err := st.Update(ctx, "team", record.UUID, domain.BookmarkFields{URL: "https://github.com", Title: "Renamed", Category: "Dev Tools"}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if err := si.Import(ctx); err != nil {
		t.Fatalf("re-Import() error = %v", err)
	}

	team, _ = st.FetchOrCreate(ctx, "team")
	if got := team.FindByURL("https://github.com").Title; got != "Renamed" {
		t.Errorf("seed overwrote user edit: title = %q", got)
	}
}

func TestImportMissingFile(t *testing.T) {
	st := store.NewPersistent(memory.New(), favicon.Static{}, logger.NewNop())
	si := NewSeedImporter(filepath.Join(t.TempDir(), "nope.yml"), st, logger.NewNop(), time.Hour, nil)

	if err := si.Import(context.Background()); err == nil {
		t.Fatal("Import() with a missing file should fail")
	}
}

func TestStartAndStop(t *testing.T) {
	si, st := newTestImporter(t, seedYAML)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := si.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	si.Stop()

	// The initial import ran synchronously.
	team, err := st.FetchOrCreate(ctx, "team")
	if err != nil {
		t.Fatalf("FetchOrCreate() error = %v", err)
	}
	if len(team.Bookmarks) != 2 {
		t.Errorf("initial import incomplete: %d records", len(team.Bookmarks))
	}
}
