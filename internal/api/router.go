package api

import (
	"net/http"
	"restaurant-order/internal/api/handlers"
	"restaurant-order/internal/domain"
	"restaurant-order/internal/ports"
	"time"

	"github.com/rs/zerolog"
)

type RouterConfig struct {
	Logger       zerolog.Logger
	HistoryLimit int
	// Clock used by /menu when no hour is given. Defaults to time.Now.
	Now func() time.Time
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// /orders is only served when repo is not nil.
func NewRouter(repo ports.OrderRepository, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	menuHandler := &handlers.MenuHandler{Admin: domain.NewAdmin(), Now: now}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/menu", menuHandler.Get)

	if repo != nil {
		orderHandler := &handlers.OrderHandler{Repo: repo, DefaultLimit: cfg.HistoryLimit}
		mux.HandleFunc("/orders", orderHandler.List)
	}

	return loggingMiddleware(cfg.Logger, mux)
}
