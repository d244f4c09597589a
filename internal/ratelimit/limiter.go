package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ZanzyTHEbar/ies-diagnostics/internal/monitoring"
	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"
)

const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds rate limiter configuration
type Config struct {
	PerMinute       int // requests per minute per client IP
	BurstMultiplier int // burst capacity of the in-memory limiter, as a multiple of PerMinute
	CleanupInterval time.Duration
}

// DefaultConfig returns default rate limiting configuration
func DefaultConfig() Config {
	return Config{
		PerMinute:       60,
		BurstMultiplier: 2,
		CleanupInterval: time.Hour,
	}
}

// Result represents the result of a rate limit check
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetAt    time.Time
	RetryAfter time.Duration
	Backend    string
}

type fallbackEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter limits requests through Redis when available and an
// in-memory token bucket otherwise
type RateLimiter struct {
	redisLimiter *redis_rate.Limiter
	redisClient  *RedisClient
	config       Config
	metrics      *monitoring.Metrics

	fallbackLimiters map[string]*fallbackEntry
	fallbackMutex    sync.Mutex

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a limiter. A nil or disabled redisClient means
// in-memory only.
func NewRateLimiter(redisClient *RedisClient, config Config, metrics *monitoring.Metrics) *RateLimiter {
	if config.PerMinute <= 0 {
		config.PerMinute = DefaultConfig().PerMinute
	}
	if config.BurstMultiplier <= 0 {
		config.BurstMultiplier = 1
	}
	if config.CleanupInterval <= 0 {
		config.CleanupInterval = DefaultConfig().CleanupInterval
	}
	if redisClient == nil {
		redisClient = &RedisClient{}
	}

	rl := &RateLimiter{
		redisClient:      redisClient,
		config:           config,
		metrics:          metrics,
		fallbackLimiters: make(map[string]*fallbackEntry),
		stop:             make(chan struct{}),
	}

	if redisClient.IsEnabled() {
		rl.redisLimiter = redis_rate.NewLimiter(redisClient.GetClient())
		slog.Info("Redis rate limiter initialized")
	} else {
		slog.Warn("Redis unavailable, using in-memory rate limiting only")
	}

	go rl.cleanupFallbackLimiters()

	return rl
}

// AllowIP checks the per-minute limit of a client IP
func (rl *RateLimiter) AllowIP(ctx context.Context, ip string) (*Result, error) {
	return rl.Allow(ctx, fmt.Sprintf("ratelimit:ip:%s", ip), rl.config.PerMinute, time.Minute)
}

// Allow checks key against limit requests per period. A Redis failure is
// logged and answered by the in-memory limiter.
func (rl *RateLimiter) Allow(ctx context.Context, key string, limit int, period time.Duration) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if rl.redisLimiter != nil && rl.redisClient.IsEnabled() {
		result, err := rl.allowRedis(ctx, key, limit, period)
		if err == nil {
			return result, nil
		}
		slog.Warn("Redis rate limit check failed, using fallback", "key", key, "error", err)
		rl.metrics.IncRateLimitFallback()
	}

	return rl.allowFallback(key, limit, period), nil
}

func (rl *RateLimiter) allowRedis(ctx context.Context, key string, limit int, period time.Duration) (*Result, error) {
	res, err := rl.redisLimiter.Allow(ctx, key, redis_rate.Limit{
		Rate:   limit,
		Burst:  limit,
		Period: period,
	})
	if err != nil {
		return nil, fmt.Errorf("redis rate limit check failed: %w", err)
	}

	return &Result{
		Allowed:    res.Allowed > 0,
		Limit:      res.Limit.Rate,
		Remaining:  res.Remaining,
		ResetAt:    time.Now().Add(res.ResetAfter),
		RetryAfter: res.RetryAfter,
		Backend:    BackendRedis,
	}, nil
}

func (rl *RateLimiter) allowFallback(key string, limit int, period time.Duration) *Result {
	now := time.Now()

	rl.fallbackMutex.Lock()
	entry, exists := rl.fallbackLimiters[key]
	if !exists {
		rps := rate.Limit(float64(limit) / period.Seconds())
		entry = &fallbackEntry{limiter: rate.NewLimiter(rps, limit*rl.config.BurstMultiplier)}
		rl.fallbackLimiters[key] = entry
	}
	entry.lastSeen = now
	rl.fallbackMutex.Unlock()

	allowed := entry.limiter.AllowN(now, 1)

	remaining := int(entry.limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}

	perToken := time.Duration(float64(period) / float64(limit))
	result := &Result{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   now.Add(perToken),
		Backend:   BackendMemory,
	}
	if !allowed {
		result.RetryAfter = perToken
	}
	return result
}

// cleanupFallbackLimiters drops in-memory limiters idle for a full interval
func (rl *RateLimiter) cleanupFallbackLimiters() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.evictIdle(now.Add(-rl.config.CleanupInterval))
		}
	}
}

func (rl *RateLimiter) evictIdle(cutoff time.Time) int {
	rl.fallbackMutex.Lock()
	defer rl.fallbackMutex.Unlock()

	removed := 0
	for key, entry := range rl.fallbackLimiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.fallbackLimiters, key)
			removed++
		}
	}
	if removed > 0 {
		slog.Debug("Cleaned up fallback rate limiters", "removed", removed)
	}
	return removed
}

// Close stops the cleanup goroutine
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

// GetStats returns rate limiter statistics
func (rl *RateLimiter) GetStats() map[string]interface{} {
	rl.fallbackMutex.Lock()
	fallbackCount := len(rl.fallbackLimiters)
	rl.fallbackMutex.Unlock()

	return map[string]interface{}{
		"redis_enabled":     rl.redisClient.IsEnabled(),
		"fallback_limiters": fallbackCount,
		"per_minute":        rl.config.PerMinute,
		"redis_pool":        rl.redisClient.GetPoolStats(),
	}
}
