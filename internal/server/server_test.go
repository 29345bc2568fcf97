package server

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/movie-api/internal/config"
)

func TestNewRedisClient_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	assert.Nil(t, NewRedisClient(config.RedisConfig{}, &logger, nil))
	assert.Contains(t, buf.String(), "redis not configured")
}

func TestNewRedisClient_Connects(t *testing.T) {
	mr := miniredis.RunT(t)
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	client := NewRedisClient(config.RedisConfig{Address: mr.Addr()}, &logger, nil)
	require.NotNil(t, client)
	t.Cleanup(func() { _ = client.Close() })

	assert.Contains(t, buf.String(), "connected to redis")
	require.NoError(t, client.Set(context.Background(), "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestStart_RequiresSetup(t *testing.T) {
	logger := zerolog.Nop()
	s := &Server{Config: &config.Config{}, Logger: &logger}
	assert.Error(t, s.Start())
}

func TestShutdown_ClosesServerAndRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	logger := zerolog.Nop()

	s := &Server{
		Config: &config.Config{Server: config.ServerConfig{Port: "0"}},
		Logger: &logger,
		Redis:  NewRedisClient(config.RedisConfig{Address: mr.Addr()}, &logger, nil),
	}
	s.SetupHTTPServer(http.NotFoundHandler())

	done := make(chan error, 1)
	go func() { done <- s.Start() }()

	require.NoError(t, s.Shutdown(context.Background()))
	assert.NoError(t, <-done)
	assert.Error(t, s.Redis.Ping(context.Background()).Err())
}
