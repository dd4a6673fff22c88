package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/deps"
	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/mw"
)

func init() { Register(registerCollections) }

func registerCollections(r chi.Router, d deps.Deps) {
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/api/collections", handlers.ListCollections(d))
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger)).Get("/api/collections/{mark}", handlers.GetCollection(d))
}
