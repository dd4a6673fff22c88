package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/cloudmark/internal/logger"
	"github.com/MrSnakeDoc/cloudmark/internal/scheduler"
	"github.com/MrSnakeDoc/cloudmark/internal/store"
)

type Deps struct {
	Logger       logger.Logger
	StartTime    time.Time
	Version      string
	Commit       string
	BuildDate    string
	GoVersion    string
	AllowedHosts []string                 // Host headers allowed to access the server
	AllowedCIDRS []string                 // IPs allowed to access ops endpoints
	TrustProxy   bool                     // true if running behind a trusted reverse proxy (e.g., cloudflared)
	RedisClient  *redis.Client            // nil when running on the memory backend
	Store        *store.Persistent        // backend-backed collection store
	Demo         *store.Ephemeral         // serves the reserved demo mark
	SeedImporter *scheduler.SeedImporter  // nil when no seed file is configured
	SeedTrigger  chan struct{}            // channel to trigger a manual seed import (nil if disabled)
}
