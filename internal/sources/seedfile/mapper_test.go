package seedfile

import (
	"testing"

	"github.com/MrSnakeDoc/cloudmark/internal/domain"
)

func TestMap(t *testing.T) {
	config := &Config{
		Collections: []Collection{
			{
				Mark: "team",
				Bookmarks: []Entry{
					{URL: "https://github.com", Title: "GitHub", Category: "Dev Tools"},
					{URL: "https://caniuse.com"}, // no title, no category
				},
			},
			{
				Mark: "personal",
				Bookmarks: []Entry{
					{URL: "https://news.ycombinator.com", Title: "HN", Category: "News"},
				},
			},
		},
	}

	byMark, err := NewMapper().Map(config)
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}

	if len(byMark) != 2 {
		t.Fatalf("Map() produced %d marks, want 2", len(byMark))
	}

	team := byMark["team"]
	if len(team) != 2 {
		t.Fatalf("team has %d entries, want 2", len(team))
	}
	if team[1].Title != "Untitled" {
		t.Errorf("missing title defaulted to %q, want %q", team[1].Title, "Untitled")
	}
	if team[1].Category != domain.DefaultCategory {
		t.Errorf("missing category defaulted to %q, want %q", team[1].Category, domain.DefaultCategory)
	}
}

func TestMapSkipsInvalidEntries(t *testing.T) {
	config := &Config{
		Collections: []Collection{
			{
				Mark: "team",
				Bookmarks: []Entry{
					{URL: "not-a-url", Title: "Broken"},
					{URL: "https://a.com", Title: "A", Category: "Dev"},
				},
			},
		},
	}

	byMark, err := NewMapper().Map(config)
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if len(byMark["team"]) != 1 {
		t.Errorf("team has %d entries, want 1 (invalid entry skipped)", len(byMark["team"]))
	}
}

func TestMapSkipsDemoMark(t *testing.T) {
	config := &Config{
		Collections: []Collection{
			{
				Mark: domain.DemoMark,
				Bookmarks: []Entry{
					{URL: "https://a.com", Title: "A", Category: "Dev"},
				},
			},
			{
				Mark: "team",
				Bookmarks: []Entry{
					{URL: "https://b.com", Title: "B", Category: "Dev"},
				},
			},
		},
	}

	byMark, err := NewMapper().Map(config)
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if _, ok := byMark[domain.DemoMark]; ok {
		t.Error("demo mark must never be seeded")
	}
	if len(byMark["team"]) != 1 {
		t.Errorf("team has %d entries, want 1", len(byMark["team"]))
	}
}

func TestMapEmptyConfig(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
	}{
		{name: "no collections", config: &Config{}},
		{
			name: "only invalid entries",
			config: &Config{
				Collections: []Collection{
					{Mark: "team", Bookmarks: []Entry{{URL: "garbage"}}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewMapper().Map(tt.config); err == nil {
				t.Error("Map() should fail when nothing can be imported")
			}
		})
	}
}
