package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/deps"
	"github.com/MrSnakeDoc/cloudmark/internal/logger"
)

// Reload triggers a manual re-import of the seed file.
func Reload(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.SeedTrigger == nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "seed import is not configured", Code: "seedDisabled"})
			return
		}

		select {
		case d.SeedTrigger <- struct{}{}:
			d.Logger.Info("manual seed import triggered via endpoint",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusAccepted)
			if _, err := w.Write([]byte("✅ Seed import triggered successfully\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		default:
			d.Logger.Warn("seed import already in progress",
				logger.String("remote_ip", r.RemoteAddr))
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := w.Write([]byte("⏳ Seed import already in progress, please wait\n")); err != nil {
				d.Logger.Debug("failed to write response", logger.Error(err))
			}
		}
	}
}
