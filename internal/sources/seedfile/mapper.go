package seedfile

import (
	"fmt"

	"github.com/MrSnakeDoc/cloudmark/internal/domain"
)

// Mapper converts seed declarations into insertable bookmark fields.
type Mapper struct{}

// NewMapper creates a new mapper.
func NewMapper() *Mapper {
	return &Mapper{}
}

// Map validates the config and returns the fields to insert, keyed by
// mark. Entries that fail field validation are skipped; an entry with
// no category gets the default one, an entry with no title gets
// "Untitled". The reserved demo mark is never seeded.
func (m *Mapper) Map(config *Config) (map[string][]domain.BookmarkFields, error) {
	byMark := make(map[string][]domain.BookmarkFields, len(config.Collections))
	total := 0

	for _, collection := range config.Collections {
		if collection.Mark == "" || domain.IsDemoMark(collection.Mark) {
			continue
		}

		for _, entry := range collection.Bookmarks {
			fields := domain.BookmarkFields{
				URL:         entry.URL,
				Title:       entry.Title,
				Description: entry.Description,
				Category:    entry.Category,
			}
			if fields.Title == "" {
				fields.Title = "Untitled"
			}
			if fields.Category == "" {
				fields.Category = domain.DefaultCategory
			}
			if err := fields.Validate(); err != nil {
				continue
			}

			byMark[collection.Mark] = append(byMark[collection.Mark], fields)
			total++
		}
	}

	if total == 0 {
		return nil, fmt.Errorf("no valid bookmarks found in seed config")
	}

	return byMark, nil
}
