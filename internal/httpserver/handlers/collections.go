package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/cloudmark/internal/domain"
	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/deps"
	"github.com/MrSnakeDoc/cloudmark/internal/store"
)

type keysResponse struct {
	Keys []string `json:"keys"`
}

// collectionResponse is the document plus its derived category set.
// Categories are recomputed per response, never stored.
type collectionResponse struct {
	Mark       string                    `json:"mark"`
	Categories []string                  `json:"categories"`
	Bookmarks  []domain.BookmarkInstance `json:"bookmarks"`
}

// ListCollections returns the names of all provisioned collections.
func ListCollections(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		marks, err := d.Store.ListMarks(r.Context())
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, keysResponse{Keys: marks})
	}
}

// GetCollection returns the whole document for a mark, provisioning an
// empty one on first access. An optional ?category= query filters the
// records by exact label; the category set always reflects the full
// document.
func GetCollection(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mark := chi.URLParam(r, "mark")

		st := store.ForMark(mark, d.Store, d.Demo)
		doc, err := st.FetchOrCreate(r.Context(), mark)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}

		bookmarks := doc.Bookmarks
		if category := r.URL.Query().Get("category"); category != "" {
			bookmarks = doc.ByCategory(category)
		}

		writeJSON(w, http.StatusOK, collectionResponse{
			Mark:       doc.Mark,
			Categories: doc.Categories(),
			Bookmarks:  bookmarks,
		})
	}
}
