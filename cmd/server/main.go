package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-order/internal/adapters/repositories"
	"restaurant-order/internal/api"
	"restaurant-order/internal/config"
	"restaurant-order/internal/platform/obs"
)

// main wires the order store behind its port and starts the menu/history HTTP server.
func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.Load("info")
	logger := obs.NewLogger(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.WithContext(ctx)

	repo, closeStore, err := repositories.Open(ctx, cfg.Store)
	if err != nil {
		logger.Error().Err(err).Str("store", cfg.Store.Driver).Msg("open order store")
		return 1
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error().Err(err).Msg("close order store")
		}
	}()

	if repo == nil {
		logger.Warn().Msg("ORDER_STORE not set, /orders is disabled")
	}

	router := api.NewRouter(repo, api.RouterConfig{
		Logger:       logger,
		HistoryLimit: cfg.HistoryLimit,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown")
		}
	}()

	logger.Info().Str("addr", srv.Addr).Str("store", cfg.Store.Driver).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error().Err(err).Msg("server failed")
		return 1
	}
	<-shutdownDone
	logger.Info().Msg("server stopped")
	return 0
}
