package ports

import (
	"context"
	"restaurant-order/internal/domain"
)

// Port: a boundary for persisting finished orders.
type OrderRepository interface {
	// Store a finished order.
	SaveOrder(ctx context.Context, order *domain.Order) error
	// Return up to limit orders, newest first.
	ListOrders(ctx context.Context, limit int) ([]*domain.Order, error)
}
