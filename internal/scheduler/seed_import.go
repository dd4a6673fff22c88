// Package scheduler runs the periodic seed import.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/cloudmark/internal/domain"
	"github.com/MrSnakeDoc/cloudmark/internal/logger"
	"github.com/MrSnakeDoc/cloudmark/internal/sources/seedfile"
	"github.com/MrSnakeDoc/cloudmark/internal/store"
)

// SeedImporter imports the seed file into the store at startup and
// re-imports it periodically or on manual trigger. Import uses insert
// semantics, so URLs already present in a collection are skipped and
// never overwritten.
type SeedImporter struct {
	loader        *seedfile.Loader
	mapper        *seedfile.Mapper
	store         *store.Persistent
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}

	mu           sync.RWMutex
	lastImport   time.Time
	lastInserted int
}

// NewSeedImporter creates a new seed importer.
func NewSeedImporter(
	seedFile string,
	st *store.Persistent,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *SeedImporter {
	return &SeedImporter{
		loader:        seedfile.NewLoader(seedFile),
		mapper:        seedfile.NewMapper(),
		store:         st,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start runs an immediate import and begins the periodic re-import.
func (si *SeedImporter) Start(ctx context.Context) error {
	if err := si.Import(ctx); err != nil {
		return fmt.Errorf("initial seed import failed: %w", err)
	}

	ticker := time.NewTicker(si.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := si.Import(ctx); err != nil {
					si.logger.Error("failed to import seed file", logger.Error(err))
				}
			case <-si.manualTrigger:
				si.logger.Info("manual seed import triggered")
				if err := si.Import(ctx); err != nil {
					si.logger.Error("failed to import seed file", logger.Error(err))
				}
			case <-si.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the importer.
func (si *SeedImporter) Stop() {
	close(si.stopCh)
}

// Import loads the seed file and inserts every declared bookmark into
// its collection. Duplicate URLs are skipped, invalid entries are
// counted and reported, backend failures abort the import.
func (si *SeedImporter) Import(ctx context.Context) error {
	si.logger.Info("importing seed file")

	config, err := si.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load seed file: %w", err)
	}

	byMark, err := si.mapper.Map(config)
	if err != nil {
		return fmt.Errorf("failed to map seed file: %w", err)
	}

	var inserted, skipped, failed int
	for mark, entries := range byMark {
		for _, fields := range entries {
			_, err := si.store.Insert(ctx, mark, fields)
			var conflict *domain.ConflictError
			switch {
			case err == nil:
				inserted++
			case errors.As(err, &conflict):
				// Already bookmarked, the seed never overwrites.
				skipped++
			default:
				failed++
				si.logger.Warn("failed to insert seed bookmark",
					logger.String("mark", mark),
					logger.String("url", fields.URL),
					logger.Error(err))
			}
		}
	}

	si.mu.Lock()
	si.lastImport = time.Now()
	si.lastInserted = inserted
	si.mu.Unlock()

	si.logger.Info("seed import finished",
		logger.Int("inserted", inserted),
		logger.Int("skipped", skipped),
		logger.Int("failed", failed))

	if failed > 0 {
		return fmt.Errorf("seed import finished with %d failed inserts", failed)
	}
	return nil
}

// LastImport returns when the last import finished and how many records
// it inserted.
func (si *SeedImporter) LastImport() (time.Time, int) {
	si.mu.RLock()
	defer si.mu.RUnlock()
	return si.lastImport, si.lastInserted
}
