// Command api runs the items HTTP service.
//
// Startup order: config, logger, schema migration, application
// container, dependency containers (repositories, services, handlers,
// middlewares), router, HTTP server. Shutdown is graceful on
// SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/deppfellow/items-api/internal/config"
	"github.com/deppfellow/items-api/internal/database"
	"github.com/deppfellow/items-api/internal/handler"
	"github.com/deppfellow/items-api/internal/logger"
	"github.com/deppfellow/items-api/internal/middleware"
	"github.com/deppfellow/items-api/internal/repository"
	"github.com/deppfellow/items-api/internal/router"
	"github.com/deppfellow/items-api/internal/server"
	"github.com/deppfellow/items-api/internal/service"
)

// shutdownTimeout bounds how long inflight requests may run after a
// termination signal before the process exits.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config failed before the real logger exists; use a bare
		// console logger for the one fatal line.
		bootLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Primary.Env, cfg.Logging.Level, cfg.Logging.Format)

	// Apply the schema migration before accepting any traffic.
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(migrateCtx, &log, cfg); err != nil {
		cancelMigrate()
		log.Fatal().Err(err).Msg("failed to migrate database")
	}
	cancelMigrate()

	srv, err := server.New(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	repos := repository.NewRepositories(srv)
	services := service.NewServices(srv, repos)
	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)

	e := router.New(srv, middlewares, handlers)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	// Block until a termination signal arrives, then drain.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
		os.Exit(1)
	}

	log.Info().Msg("shutdown complete")
}
