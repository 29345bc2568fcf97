package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/movie-api/internal/config"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisRateLimiterStore_FixedWindow(t *testing.T) {
	mr, client := newRedis(t)
	logger := zerolog.Nop()

	store := NewRedisRateLimiterStore(client, config.RateLimitConfig{
		Rate:          0.05,
		Burst:         2,
		WindowSeconds: 60,
	}, &logger)

	now := time.Unix(1_700_000_000, 0)
	store.now = func() time.Time { return now }

	for range 2 {
		allowed, err := store.Allow("10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Other clients have their own counter.
	allowed, err = store.Allow("10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)

	key := store.key("10.0.0.1")
	assert.True(t, mr.Exists(key))
	assert.Equal(t, time.Minute, mr.TTL(key))

	// Next window starts fresh.
	now = now.Add(time.Minute)
	allowed, err = store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisRateLimiterStore_LimitFromRate(t *testing.T) {
	_, client := newRedis(t)
	logger := zerolog.Nop()

	store := NewRedisRateLimiterStore(client, config.RateLimitConfig{
		Rate:          2.5,
		Burst:         1,
		WindowSeconds: 2,
	}, &logger)

	assert.Equal(t, int64(5), store.limit)
	assert.Equal(t, 2*time.Second, store.window)
}

func TestRedisRateLimiterStore_FailsOpen(t *testing.T) {
	mr, client := newRedis(t)
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	store := NewRedisRateLimiterStore(client, config.RateLimitConfig{
		Rate:          1,
		Burst:         1,
		WindowSeconds: 1,
	}, &logger)

	mr.Close()

	allowed, err := store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Contains(t, buf.String(), "rate limiter store unavailable")
}

func limitedEcho(t *testing.T, withRedis bool) (*echo.Echo, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	s := testServer(&buf)
	if withRedis {
		_, client := newRedis(t)
		s.Redis = client
	}

	e := newEcho(s)
	e.Use(NewRateLimitMiddleware(s).Limiter())
	e.GET("/api/movies", func(c echo.Context) error { return c.JSON(http.StatusOK, []string{}) })
	return e, &buf
}

func TestLimiter_DeniesWith429(t *testing.T) {
	for _, withRedis := range []bool{false, true} {
		e, buf := limitedEcho(t, withRedis)

		var codes []int
		for range 3 {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies", nil))
			codes = append(codes, rec.Code)
		}

		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes, "redis=%v", withRedis)
		assert.Contains(t, buf.String(), "rate limit exceeded")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	var buf bytes.Buffer
	s := testServer(&buf)
	s.Config.RateLimit.Enabled = false

	e := newEcho(s)
	e.Use(NewRateLimitMiddleware(s).Limiter())
	e.GET("/api/movies", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for range 5 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/movies", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
