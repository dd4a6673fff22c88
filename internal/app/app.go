package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/cloudmark/internal/backend"
	memorybackend "github.com/MrSnakeDoc/cloudmark/internal/backend/memory"
	redisbackend "github.com/MrSnakeDoc/cloudmark/internal/backend/redis"
	"github.com/MrSnakeDoc/cloudmark/internal/config"
	"github.com/MrSnakeDoc/cloudmark/internal/favicon"
	"github.com/MrSnakeDoc/cloudmark/internal/httpserver"
	"github.com/MrSnakeDoc/cloudmark/internal/httpserver/deps"
	"github.com/MrSnakeDoc/cloudmark/internal/logger"
	"github.com/MrSnakeDoc/cloudmark/internal/redis"
	"github.com/MrSnakeDoc/cloudmark/internal/scheduler"
	"github.com/MrSnakeDoc/cloudmark/internal/store"
	"github.com/MrSnakeDoc/cloudmark/internal/version"
)

type App struct {
	cfg          *config.Config
	logger       logger.Logger
	server       *httpserver.Server
	redisClient  *goredis.Client
	seedImporter *scheduler.SeedImporter
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Pick the document backend. Redis is the real one; memory exists
	// for local development and loses everything on restart.
	var (
		docBackend  backend.Backend
		redisClient *goredis.Client
	)
	switch cfg.Backend {
	case "memory":
		loggerClient.Warn("running on the memory backend, documents will not survive a restart")
		docBackend = memorybackend.New()
	default:
		// Initialize Redis early - fail fast if unavailable
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")
		redisClient = client
		docBackend = redisbackend.New(client)
	}

	resolver := favicon.NewGoogle(cfg.FaviconSize)
	persistentStore := store.NewPersistent(docBackend, resolver, loggerClient)
	demoStore := store.NewEphemeral(resolver)

	// Initialize seed importer (if a seed file is configured)
	var seedImporter *scheduler.SeedImporter
	var seedTrigger chan struct{}
	if cfg.SeedFile != "" {
		loggerClient.Info("seed file configured, initializing seed importer",
			logger.String("file", cfg.SeedFile))
		seedTrigger = make(chan struct{}, 1)
		seedImporter = scheduler.NewSeedImporter(
			cfg.SeedFile,
			persistentStore,
			loggerClient,
			cfg.SeedReloadInterval,
			seedTrigger,
		)
	} else {
		loggerClient.Info("seed file not configured, seed import disabled")
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		RedisClient:  redisClient,
		Store:        persistentStore,
		Demo:         demoStore,
		SeedImporter: seedImporter,
		SeedTrigger:  seedTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:          cfg,
		logger:       loggerClient,
		server:       server,
		redisClient:  redisClient,
		seedImporter: seedImporter,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting cloudmark v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("cloudmark %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start seed importer (if enabled)
	if a.seedImporter != nil {
		if err := a.seedImporter.Start(ctx); err != nil {
			return fmt.Errorf("failed to start seed importer: %w", err)
		}
		a.logger.Info("seed importer started",
			logger.Duration("interval", a.cfg.SeedReloadInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.seedImporter != nil {
		a.seedImporter.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ cloudmark stopped cleanly")
	return nil
}
