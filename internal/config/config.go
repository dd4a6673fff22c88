package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	Backend     string // "redis" (default) or "memory" (dev, nothing survives a restart)
	FaviconSize int    // icon edge size requested from the favicon proxy

	SeedFile           string        // path to an optional seed YAML (empty = seed import disabled)
	SeedReloadInterval time.Duration // interval between seed re-imports (default: 24h)

	// Redis
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict ops endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("CLOUDMARK_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("CLOUDMARK_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("CLOUDMARK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("CLOUDMARK_PRETTY_LOG", true),

		// Storage & collaborators
		Backend:     getenv("CLOUDMARK_BACKEND", "redis"),
		FaviconSize: getenvInt("CLOUDMARK_FAVICON_SIZE", 64),

		// Seed import
		SeedFile:           getenv("CLOUDMARK_SEED_FILE", ""), // Optional, empty = seed import disabled
		SeedReloadInterval: mustDuration("CLOUDMARK_SEED_RELOAD_INTERVAL", 24*time.Hour),

		// Redis settings
		RedisUser:             getenv("CLOUDMARK_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("CLOUDMARK_REDIS_PASSWORD_REQUIRED", true),
		RedisPassword:         getenv("CLOUDMARK_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("CLOUDMARK_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("CLOUDMARK_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("CLOUDMARK_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("CLOUDMARK_TRUST_PROXY", true),
	}

	switch cfg.Backend {
	case "redis":
		cfg.RedisAddr = requireEnv("CLOUDMARK_REDIS_ADDR")
		if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
			panic("❌ FATAL: CLOUDMARK_REDIS_PASSWORD is required when CLOUDMARK_REDIS_PASSWORD_REQUIRED=true")
		}
	case "memory":
		// Nothing to validate; documents live and die with the process.
	default:
		panic(fmt.Sprintf("❌ FATAL: Invalid CLOUDMARK_BACKEND %q (want redis or memory)", cfg.Backend))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
