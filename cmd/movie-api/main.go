// Command movie-api serves the movies and users CRUD API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/deppfellow/movie-api/internal/config"
	"github.com/deppfellow/movie-api/internal/handler"
	"github.com/deppfellow/movie-api/internal/logger"
	"github.com/deppfellow/movie-api/internal/repository"
	"github.com/deppfellow/movie-api/internal/router"
	"github.com/deppfellow/movie-api/internal/server"
	"github.com/deppfellow/movie-api/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	appLogger := logger.NewLoggerWithService(cfg.Observability, loggerService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, cfg, &appLogger, loggerService)
	stop()

	if err != nil {
		appLogger.Error().Err(err).Msg("movie-api exited with error")
	}

	// os.Exit skips deferred calls, so New Relic is flushed first.
	loggerService.Shutdown()
	if err != nil {
		os.Exit(1)
	}
}

// run wires the application and serves until ctx is cancelled or the
// HTTP server stops on its own.
func run(ctx context.Context, cfg *config.Config, appLogger *zerolog.Logger, loggerService *logger.LoggerService) error {
	srv, err := server.New(cfg, appLogger, loggerService)
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(repos)
	handlers := handler.NewHandlers(srv, services)

	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			appLogger.Error().Err(err).Msg("server stopped")
		}
	case <-ctx.Done():
		appLogger.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	appLogger.Info().Msg("server exited properly")
	return nil
}
