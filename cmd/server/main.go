package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	router "github.com/acmartinr/liveup/internal/adapters/http"
	"github.com/acmartinr/liveup/internal/app"
	"github.com/acmartinr/liveup/internal/config"
	"github.com/acmartinr/liveup/internal/core"
	"github.com/acmartinr/liveup/internal/upload"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	// Human-friendly output for terminal; in production you may want JSON only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	store, err := upload.NewStore(cfg.UploadDir, cfg.MaxUploadBytes, router.PublicFilesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init upload store")
	}

	// The room registry is owned here and injected; there is no hidden
	// package-level state.
	rooms := core.NewRoomRegistry()
	sessions := app.NewRegistry()
	coord := app.NewCoordinator(sessions, rooms)

	r := router.SetupRouter(ctx, cfg, coord, sessions, store)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("LiveUp server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}
