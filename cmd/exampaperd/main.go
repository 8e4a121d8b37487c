package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/exampaper/go-exampaper/internal/config"
	"github.com/exampaper/go-exampaper/internal/logging"
	"github.com/exampaper/go-exampaper/internal/server"
	"github.com/exampaper/go-exampaper/internal/translit"
)

func main() {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded: %v", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.Name, cfg.Env)

	translitClient := translit.New(
		cfg.Translit.BaseURL,
		cfg.Translit.InputMethod,
		&http.Client{Timeout: cfg.Translit.HTTPTimeout},
		logger,
	)

	handlers := server.NewHandlers(cfg, logger, translitClient)
	srv := server.NewHTTPServer(cfg, logger, handlers)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("paper service listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}
