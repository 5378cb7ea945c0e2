package repositories

import (
	"context"
	"testing"
	"time"

	"restaurant-order/internal/domain"
	"restaurant-order/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrders(t *testing.T) (older, newer *domain.Order) {
	t.Helper()

	older = domain.NewOrder("order-a", 10, domain.American, 2, time.Date(2026, 3, 1, 10, 5, 0, 0, time.UTC))
	require.NoError(t, older.Serve(domain.Combo("Cheeseburger", "Beer")))
	_, err := older.RepeatPrevious()
	require.NoError(t, err)

	newer = domain.NewOrder("order-b", 20, domain.Italian, 3, time.Date(2026, 3, 1, 20, 30, 0, 0, time.UTC))
	require.NoError(t, newer.Serve(domain.ALaCarte("Lasagna")))
	require.NoError(t, newer.Skip())
	require.NoError(t, newer.Serve(domain.Combo("Fettuccine", "Juice")))

	return older, newer
}

func assertSameOrder(t *testing.T, want, got *domain.Order) {
	t.Helper()

	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Hour, got.Hour)
	assert.Equal(t, want.Cuisine, got.Cuisine)
	assert.Equal(t, want.PartySize, got.PartySize)
	assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", want.CreatedAt, got.CreatedAt)
	assert.Equal(t, want.Seats, got.Seats)
}

// exerciseRepository runs the behavior every OrderRepository must share.
func exerciseRepository(t *testing.T, repo ports.OrderRepository) {
	ctx := context.Background()
	older, newer := sampleOrders(t)

	require.NoError(t, repo.SaveOrder(ctx, older))
	require.NoError(t, repo.SaveOrder(ctx, newer))

	orders, err := repo.ListOrders(ctx, 10)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assertSameOrder(t, newer, orders[0])
	assertSameOrder(t, older, orders[1])

	orders, err = repo.ListOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "order-b", orders[0].ID)

	orders, err = repo.ListOrders(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, orders)

	// Saving again replaces the stored seats.
	newer.Seats = newer.Seats[:1]
	require.NoError(t, repo.SaveOrder(ctx, newer))

	orders, err = repo.ListOrders(ctx, 1)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assertSameOrder(t, newer, orders[0])

	// Orders from the same millisecond come back in id order.
	tie := newer.CreatedAt.Add(time.Hour + 400*time.Microsecond)
	for _, id := range []string{"order-z", "order-c", "order-m"} {
		o := domain.NewOrder(id, 21, domain.Italian, 1, tie)
		require.NoError(t, o.Serve(domain.ALaCarte("Carbonara")))
		require.NoError(t, repo.SaveOrder(ctx, o))
	}

	orders, err = repo.ListOrders(ctx, 4)
	require.NoError(t, err)
	require.Len(t, orders, 4)
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"order-c", "order-m", "order-z", "order-b"}, ids)

	orders, err = repo.ListOrders(ctx, 2)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "order-c", orders[0].ID)
	assert.Equal(t, "order-m", orders[1].ID)
}
