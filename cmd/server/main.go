package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/api"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/cache"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/config"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/database"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/errors"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/middleware"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/monitoring"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/privacy"
	"github.com/ZanzyTHEbar/ies-diagnostics/internal/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// app owns every long-lived resource of the server
type app struct {
	cfg     *config.Config
	logger  *monitoring.Logger
	router  *gin.Engine
	db      *database.DB
	redis   *ratelimit.RedisClient
	limiter *ratelimit.RateLimiter
	privacy *privacy.Service
}

func newApp(cfg *config.Config) (*app, error) {
	gin.SetMode(cfg.GinMode)

	logger := monitoring.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger.Logger)

	metrics := monitoring.MustNewMetrics(prometheus.NewRegistry())

	db, err := database.NewDB(cfg.DataDir)
	if err != nil {
		return nil, errors.NewStorageError("open database", err)
	}

	redisClient, err := ratelimit.NewRedisClient(context.Background(), ratelimit.RedisOptions{
		URL:      cfg.Redis.URL,
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}, logger, metrics)
	if err != nil {
		// degraded, not fatal: the limiter falls back to memory
		logger.Warn("Redis unavailable, continuing with in-memory rate limiting", "error", err)
	}

	limiter := ratelimit.NewRateLimiter(redisClient, ratelimit.Config{
		PerMinute:       cfg.RateLimit.PerMinute,
		BurstMultiplier: cfg.RateLimit.BurstMultiplier,
	}, metrics)

	var compressor *middleware.Compressor
	if cfg.Compression.Enabled {
		cc := middleware.DefaultCompressionConfig()
		cc.MinSize = cfg.Compression.MinSize
		cc.Level = cfg.Compression.Level
		compressor = middleware.NewCompressor(cc)
	}

	repo := database.NewRepository(db)
	privacySvc := privacy.NewService(repo, logger, cfg.Retention.Days)

	router := api.NewRouter(api.Deps{
		Logger:         logger,
		Metrics:        metrics,
		Assessments:    database.NewAssessmentService(repo, logger, metrics),
		DB:             db,
		Cache:          cache.NewCache(cfg.Cache.Size, cfg.Cache.TTL),
		Limiter:        limiter,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Security:       cfg.Security,
		Compressor:     compressor,
		Privacy:        privacySvc,
	})

	return &app{
		cfg:     cfg,
		logger:  logger,
		router:  router,
		db:      db,
		redis:   redisClient,
		limiter: limiter,
		privacy: privacySvc,
	}, nil
}

func (a *app) Close() {
	a.limiter.Close()
	errors.SafeClose(a.redis, "redis")
	errors.SafeClose(a.db, "database")
}

func main() {
	cfg, err := config.Load(os.Getenv("IES_CONFIG"))
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	a, err := newApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	purgeCtx, stopPurge := context.WithCancel(context.Background())
	purgeDone := make(chan struct{})
	go func() {
		defer close(purgeDone)
		a.privacy.Run(purgeCtx, cfg.Retention.Interval)
	}()

	go func() {
		a.logger.SystemLogger("server_start", "listening on "+cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.logger.SystemLogger("server_shutdown", "signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		a.logger.Error("Server forced to shutdown", "error", err)
	}

	stopPurge()
	<-purgeDone

	a.logger.Info("Server exited")
}
