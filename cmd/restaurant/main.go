package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"restaurant-order/internal/adapters/console"
	"restaurant-order/internal/adapters/repositories"
	"restaurant-order/internal/config"
	"restaurant-order/internal/domain"
	"restaurant-order/internal/platform/obs"
	"restaurant-order/internal/services"
)

// main is the composition root of the interactive ordering session.
// Logs go to stderr so the conversation on stdout stays readable.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run returns the process exit code so deferred cleanup always runs.
func run(ctx context.Context, in io.Reader, out, logOut io.Writer) int {
	cfg := config.Load("warn")
	logger := obs.NewLogger(logOut, cfg.LogLevel)
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

	session := services.NewSession(domain.NewAdmin(), console.NewTerminal(in, out))

	order, err := session.Run(ctx)
	if err != nil {
		if services.IsRejection(err) {
			logger.Info().Err(err).Msg("session ended early")
			return 0
		}
		logger.Error().Err(err).Msg("session failed")
		return 1
	}

	if repo == nil || len(order.Seats) == 0 {
		return 0
	}
	if err := repo.SaveOrder(ctx, order); err != nil {
		logger.Error().Err(err).Str("order_id", order.ID).Msg("save order")
		return 1
	}
	logger.Info().Str("order_id", order.ID).Str("store", cfg.Store.Driver).Msg("order saved")
	return 0
}
