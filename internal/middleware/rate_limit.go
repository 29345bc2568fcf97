package middleware

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/deppfellow/movie-api/internal/config"
	"github.com/deppfellow/movie-api/internal/errs"
	"github.com/deppfellow/movie-api/internal/server"
)

const (
	rateLimitKeyPrefix    = "movie-api:ratelimit"
	rateLimitStoreTimeout = 200 * time.Millisecond
	memoryStoreExpiresIn  = 3 * time.Minute
)

// RateLimitMiddleware enforces a per-client request limit keyed by real IP.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		server: s,
	}
}

// Limiter returns the rate limiting middleware. With Redis configured the
// counters live in Redis so every instance shares them; otherwise each
// instance keeps an in-memory token bucket. A disabled limit passes
// everything through.
func (r *RateLimitMiddleware) Limiter() echo.MiddlewareFunc {
	cfg := r.server.Config.RateLimit
	if !cfg.Enabled {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: r.store(cfg),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return errs.NewBadRequestError("Could not identify client", false, nil, nil)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			r.RecordRateLimitHit(c.Path())
			GetLogger(c).Warn().
				Str("client", identifier).
				Msg("rate limit exceeded")
			return errs.NewTooManyRequestsError("Rate limit exceeded")
		},
	})
}

func (r *RateLimitMiddleware) store(cfg config.RateLimitConfig) middleware.RateLimiterStore {
	if r.server.Redis != nil {
		return NewRedisRateLimiterStore(r.server.Redis, cfg, r.server.Logger)
	}

	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.Rate),
		Burst:     cfg.Burst,
		ExpiresIn: memoryStoreExpiresIn,
	})
}

// RecordRateLimitHit records a RateLimitHit custom event in New Relic.
func (r *RateLimitMiddleware) RecordRateLimitHit(endpoint string) {
	if r.server.LoggerService != nil && r.server.LoggerService.GetApplication() != nil {
		r.server.LoggerService.GetApplication().RecordCustomEvent("RateLimitHit", map[string]interface{}{
			"endpoint": endpoint,
		})
	}
}

// RedisRateLimiterStore is a fixed window counter per identifier.
//
// Each window allows max(Rate*WindowSeconds, Burst) requests. Keys embed the
// window number and expire with it. Redis failures fail open.
type RedisRateLimiterStore struct {
	client redis.Cmdable
	limit  int64
	window time.Duration
	log    *zerolog.Logger
	now    func() time.Time
}

// NewRedisRateLimiterStore builds a store on client for the given limits.
func NewRedisRateLimiterStore(client redis.Cmdable, cfg config.RateLimitConfig, log *zerolog.Logger) *RedisRateLimiterStore {
	window := time.Duration(cfg.WindowSeconds) * time.Second
	limit := int64(math.Ceil(cfg.Rate * float64(cfg.WindowSeconds)))
	if limit < int64(cfg.Burst) {
		limit = int64(cfg.Burst)
	}

	return &RedisRateLimiterStore{
		client: client,
		limit:  limit,
		window: window,
		log:    log,
		now:    time.Now,
	}
}

func (s *RedisRateLimiterStore) key(identifier string) string {
	slot := s.now().UnixNano() / int64(s.window)
	return fmt.Sprintf("%s:%s:%d", rateLimitKeyPrefix, identifier, slot)
}

// Allow implements middleware.RateLimiterStore.
func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), rateLimitStoreTimeout)
	defer cancel()

	key := s.key(identifier)

	var incr *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, s.window)
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("rate limiter store unavailable, allowing request")
		return true, nil
	}

	return incr.Val() <= s.limit, nil
}
