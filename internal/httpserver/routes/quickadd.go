package routes

import (
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/deps"
	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/mw"
)

func init() { Register(registerQuickAdd) }

// The quick-add launcher is the only endpoint meant to be hit from
// arbitrary pages, so it gets its own rate limit.
func registerQuickAdd(r chi.Router, d deps.Deps) {
	limit := mw.RateLimit(mw.RateLimitConfig{
		Burst:             10,
		RefillPerIPPerMin: 30,
		MaxEntries:        4096,
		SweepInterval:     time.Minute,
		IdleTTL:           15 * time.Minute,
		TrustProxy:        d.TrustProxy,
	})
	r.With(mw.EnforceHost(d.AllowedHosts, d.Logger), limit).Get("/api/add", handlers.QuickAdd(d))
}
