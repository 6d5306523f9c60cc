package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lennonhrmn/AWI-Mobile/internal/config"
	"github.com/lennonhrmn/AWI-Mobile/internal/infra"
	"github.com/lennonhrmn/AWI-Mobile/internal/router"
	"github.com/lennonhrmn/AWI-Mobile/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := infra.NewDepotClient(infra.DefaultBaseURL, time.Duration(cfg.APITimeoutSeconds)*time.Second)
	workspaces := service.NewWorkspaceStore(router.Repositories(api), time.Duration(cfg.WorkspaceTTLMinutes)*time.Minute)
	go workspaces.Run(ctx, 5*time.Minute)

	r := router.New(cfg, router.Deps{
		API:        api,
		Mailer:     infra.NewMailer(cfg),
		Workspaces: workspaces,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Str("api", infra.DefaultBaseURL).Msgf("dépôt-vente console listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
