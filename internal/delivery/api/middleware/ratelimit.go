package middleware

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"dukasync/config"
	"dukasync/internal/delivery/api/response"
	deliverycontext "dukasync/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const limiterCleanupInterval = 5 * time.Minute

type ipLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter limits the auth forms per client IP.
type RateLimiter struct {
	perMinute int
	limit     rate.Limit
	burst     int
	logger    *slog.Logger
	now       func() time.Time

	mu       sync.Mutex
	limiters map[string]*ipLimiter

	stopCh chan struct{}
}

// RateLimiterParams holds dependencies for RateLimiter, injected by Fx.
type RateLimiterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewRateLimiter creates the limiter and runs its cleanup loop for the application lifetime.
func NewRateLimiter(params RateLimiterParams) *RateLimiter {
	rl := newRateLimiter(params.Config.RateLimit, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go rl.cleanupLoop()

			return nil
		},
		OnStop: func(context.Context) error {
			close(rl.stopCh)

			return nil
		},
	})

	return rl
}

func newRateLimiter(cfg *config.RateLimitConfig, logger *slog.Logger) *RateLimiter {
	return &RateLimiter{
		perMinute: cfg.RequestsPerMinute,
		limit:     rate.Limit(float64(cfg.RequestsPerMinute) / 60.0),
		burst:     cfg.Burst,
		logger:    logger,
		now:       time.Now,
		limiters:  make(map[string]*ipLimiter),
		stopCh:    make(chan struct{}),
	}
}

// Limit answers 429 with Retry-After once the caller's IP runs out of tokens.
func (rl *RateLimiter) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ip := c.RealIP()

		if !rl.limiterFor(ip).AllowN(rl.now(), 1) {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), rl.logger).Warn("Rate limit exceeded",
				slog.String("remote_ip", ip),
				slog.String("route", c.Path()),
			)

			return response.TooManyRequests(c, rl.retryAfterSeconds())
		}

		return next(c)
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, ok := rl.limiters[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[ip] = entry
	}
	entry.lastAccess = rl.now()

	return entry.limiter
}

// retryAfterSeconds is the time for one token to refill, at least one second.
func (rl *RateLimiter) retryAfterSeconds() int {
	if rl.perMinute <= 0 {
		return int(limiterCleanupInterval.Seconds())
	}

	return max(1, int(math.Ceil(60.0/float64(rl.perMinute))))
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup drops limiters idle for two cleanup intervals.
func (rl *RateLimiter) cleanup() {
	cutoff := rl.now().Add(-2 * limiterCleanupInterval)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, entry := range rl.limiters {
		if entry.lastAccess.Before(cutoff) {
			delete(rl.limiters, ip)
		}
	}
}
