package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MrSnakeDoc/cloudmark/internal/domain"
	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/deps"
	"github.com/MrSnakeDoc/cloudmark/internal/logger"
	"github.com/MrSnakeDoc/cloudmark/internal/store"
)

// QuickAdd is the entry point behind the drag-to-bookmark-bar launcher.
// It accepts mark, title and url as query parameters, inserts with the
// default category, then redirects to the collection page with a
// machine-readable status and message pair the page can toast.
func QuickAdd(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		mark := strings.TrimSpace(q.Get("mark"))
		rawURL := strings.TrimSpace(q.Get("url"))
		title := strings.TrimSpace(q.Get("title"))
		if title == "" {
			title = "Untitled"
		}

		if mark == "" {
			redirectStatus(w, r, domain.DefaultMark, "error", "markRequired")
			return
		}
		if rawURL == "" {
			redirectStatus(w, r, mark, "error", "urlRequired")
			return
		}

		st := store.ForMark(mark, d.Store, d.Demo)
		_, err := st.Insert(r.Context(), mark, domain.BookmarkFields{
			URL:      rawURL,
			Title:    title,
			Category: domain.DefaultCategory,
		})

		var (
			conflict   *domain.ConflictError
			validation *domain.ValidationError
		)
		switch {
		case err == nil:
			redirectStatus(w, r, mark, "success", "bookmarkAdded")
		case errors.As(err, &conflict):
			redirectStatus(w, r, mark, "error", "duplicateUrl")
		case errors.As(err, &validation):
			redirectStatus(w, r, mark, "error", "invalidUrl")
		default:
			d.Logger.Error("quick add failed",
				logger.String("mark", mark),
				logger.Error(err))
			redirectStatus(w, r, mark, "error", "processingError")
		}
	}
}

func redirectStatus(w http.ResponseWriter, r *http.Request, mark, status, message string) {
	target := fmt.Sprintf("/%s?status=%s&message=%s",
		url.PathEscape(mark), status, url.QueryEscape(message))
	http.Redirect(w, r, target, http.StatusFound)
}
