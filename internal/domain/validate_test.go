package domain

import (
	"errors"
	"testing"
)

func TestBookmarkFieldsValidate(t *testing.T) {
	tests := []struct {
		name      string
		fields    BookmarkFields
		wantField string // empty = valid
	}{
		{
			name:   "valid",
			fields: BookmarkFields{URL: "https://a.com", Title: "A", Category: "Dev"},
		},
		{
			name:   "valid with description",
			fields: BookmarkFields{URL: "https://a.com/path?x=1", Title: "A", Category: "Dev", Description: "notes"},
		},
		{
			name:      "missing url",
			fields:    BookmarkFields{Title: "A", Category: "Dev"},
			wantField: "url",
		},
		{
			name:      "relative url",
			fields:    BookmarkFields{URL: "/just/a/path", Title: "A", Category: "Dev"},
			wantField: "url",
		},
		{
			name:      "scheme without host",
			fields:    BookmarkFields{URL: "https://", Title: "A", Category: "Dev"},
			wantField: "url",
		},
		{
			name:      "unparsable url",
			fields:    BookmarkFields{URL: "http://[::1", Title: "A", Category: "Dev"},
			wantField: "url",
		},
		{
			name:      "missing title",
			fields:    BookmarkFields{URL: "https://a.com", Category: "Dev"},
			wantField: "title",
		},
		{
			name:      "blank title",
			fields:    BookmarkFields{URL: "https://a.com", Title: "   ", Category: "Dev"},
			wantField: "title",
		},
		{
			name:      "missing category",
			fields:    BookmarkFields{URL: "https://a.com", Title: "A"},
			wantField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fields.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("Validate() field = %q, want %q", vErr.Field, tt.wantField)
			}
		})
	}
}

func TestValidateMark(t *testing.T) {
	if err := ValidateMark("team"); err != nil {
		t.Errorf("ValidateMark(team) = %v, want nil", err)
	}

	var vErr *ValidationError
	if err := ValidateMark(""); !errors.As(err, &vErr) {
		t.Errorf("ValidateMark(\"\") = %v, want *ValidationError", err)
	}
	if err := ValidateMark("  "); !errors.As(err, &vErr) {
		t.Errorf("ValidateMark(blank) = %v, want *ValidationError", err)
	}
}
