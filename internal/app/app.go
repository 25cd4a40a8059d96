package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/foyer/internal/config"
	"github.com/MrSnakeDoc/foyer/internal/feed"
	"github.com/MrSnakeDoc/foyer/internal/httpserver"
	"github.com/MrSnakeDoc/foyer/internal/httpserver/deps"
	"github.com/MrSnakeDoc/foyer/internal/logger"
	"github.com/MrSnakeDoc/foyer/internal/player"
	"github.com/MrSnakeDoc/foyer/internal/redis"
	"github.com/MrSnakeDoc/foyer/internal/scheduler"
	"github.com/MrSnakeDoc/foyer/internal/sources/seed"
	redisstore "github.com/MrSnakeDoc/foyer/internal/store/redis"
	"github.com/MrSnakeDoc/foyer/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	store       *redisstore.Store
	player      *player.Player
	refresher   *scheduler.FeedRefresher
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Connect Redis early - fail fast if configured but unavailable.
	// No address means memory-only mode: nothing survives a restart.
	var redisClient *goredis.Client
	if cfg.RedisAddr != "" {
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
		redisClient = client
	} else {
		loggerClient.Warn("FOYER_REDIS_ADDR not set, playlists will not be persisted")
	}

	// Load the playlist collection (legacy migration happens here).
	store := redisstore.NewStore(redisClient, loggerClient)
	if err := store.Load(context.Background()); err != nil {
		loggerClient.Warn("failed to load persisted playlists, starting empty",
			logger.Error(err))
	}

	// First-run provisioning from the seed file, before the player is
	// listening so no rotation resets fire during the import.
	if cfg.SeedFile != "" {
		importer := seed.NewImporter(cfg.SeedFile, store, loggerClient)
		if err := importer.Run(context.Background()); err != nil {
			loggerClient.Warn("seed import failed", logger.Error(err))
		}
	}

	// Rotation scheduler, wired to every store mutation.
	playerClient := player.New(store, loggerClient)
	store.SetListener(playerClient)

	// Feed ticker pipeline.
	ingestor := feed.NewIngestor(nil, loggerClient)
	ticker := feed.NewTicker(ingestor, cfg.FeedURL, loggerClient)

	var refresher *scheduler.FeedRefresher
	var refreshTrigger chan struct{}
	if cfg.FeedURL != "" {
		refreshTrigger = make(chan struct{}, 1)
		refresher = scheduler.NewFeedRefresher(ticker, loggerClient, cfg.FeedRefreshInterval, refreshTrigger)
	} else {
		loggerClient.Info("feed url not configured, ticker disabled")
	}

	d := deps.Deps{
		Logger:             loggerClient,
		StartTime:          time.Now(),
		Version:            version.Version,
		Commit:             version.Commit,
		BuildDate:          version.BuildDate,
		GoVersion:          version.GoVersion,
		AllowedHosts:       cfg.AllowedHosts,
		AllowedCIDRS:       cfg.AllowedCIDRS,
		TrustProxy:         cfg.TrustProxy,
		RedisClient:        redisClient,
		Store:              store,
		Player:             playerClient,
		Ticker:             ticker,
		FeedRefreshTrigger: refreshTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		store:       store,
		player:      playerClient,
		refresher:   refresher,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Foyer v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Foyer %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start the feed refresher (first refresh runs inline).
	if a.refresher != nil {
		a.refresher.Start(ctx)
		a.logger.Info("feed refresher started",
			logger.Duration("interval", a.cfg.FeedRefreshInterval))
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

	if a.refresher != nil {
		a.refresher.Stop()
	}

	// Cancel any pending rotation advance.
	a.player.Stop()

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

	a.logger.Info("✅ Foyer stopped cleanly")
	return nil
}
