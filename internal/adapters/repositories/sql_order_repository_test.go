package repositories

import (
	"context"
	"os"
	"testing"

	"restaurant-order/internal/platform/db"

	"github.com/stretchr/testify/require"
)

// Integration test against a real PostgreSQL. Skipped unless TEST_DATABASE_URL is set.
func TestSQLOrderRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("skipping postgres integration test: TEST_DATABASE_URL not set")
	}

	conn, err := db.Open(url)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, InitPostgresSchema(conn))

	ctx := context.Background()
	_, err = conn.ExecContext(ctx, `DELETE FROM orders WHERE order_id IN ('order-a', 'order-b');`)
	require.NoError(t, err)
	defer func() {
		_, _ = conn.ExecContext(ctx, `DELETE FROM orders WHERE order_id IN ('order-a', 'order-b');`)
	}()

	exerciseRepository(t, NewSQLOrderRepository(conn))
}
