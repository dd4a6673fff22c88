package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/deps"
	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/mw"
)

func init() { Register(registerBookmarks) }

func registerBookmarks(r chi.Router, d deps.Deps) {
	sub := r.With(mw.EnforceHost(d.AllowedHosts, d.Logger))
	sub.Post("/api/bookmarks", handlers.UpsertBookmark(d))
	sub.Put("/api/bookmarks", handlers.UpsertBookmark(d))
	sub.Delete("/api/bookmarks", handlers.DeleteBookmark(d))
}
