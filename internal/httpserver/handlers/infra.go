package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/deps"
)

type componentStatus struct {
	OK           bool   `json:"ok"`
	Mode         string `json:"mode,omitempty"`
	LastImport   string `json:"last_import,omitempty"`
	LastInserted *int   `json:"last_inserted,omitempty"`
	Error        string `json:"error,omitempty"`
}

type infraResponse struct {
	StorageMode string                     `json:"storage_mode"`
	Components  map[string]componentStatus `json:"components"`
}

// Infra reports the health of the storage backend and the seed
// importer.
func Infra(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"backend": checkBackend(d),
			"seed":    seedStatus(d),
		}

		mode := "persistent"
		if d.RedisClient == nil {
			mode = "memory"
		} else if !components["backend"].OK {
			mode = "degraded"
		}

		writeJSON(w, http.StatusOK, infraResponse{
			StorageMode: mode,
			Components:  components,
		})
	}
}

func checkBackend(d deps.Deps) componentStatus {
	if d.RedisClient == nil {
		return componentStatus{
			OK:   true,
			Mode: "memory",
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := d.RedisClient.Ping(ctx).Err(); err != nil {
		return componentStatus{
			OK:    false,
			Mode:  "redis",
			Error: err.Error(),
		}
	}

	return componentStatus{
		OK:   true,
		Mode: "redis",
	}
}

func seedStatus(d deps.Deps) componentStatus {
	if d.SeedImporter == nil {
		return componentStatus{
			OK:   true,
			Mode: "disabled",
		}
	}

	lastImport, inserted := d.SeedImporter.LastImport()
	lastImportStr := "never"
	if !lastImport.IsZero() {
		lastImportStr = lastImport.Format("2006-01-02 15:04:05")
	}

	return componentStatus{
		OK:           !lastImport.IsZero(),
		Mode:         "enabled",
		LastImport:   lastImportStr,
		LastInserted: &inserted,
	}
}
