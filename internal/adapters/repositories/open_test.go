package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"restaurant-order/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenNone(t *testing.T) {
	repo, closeFn, err := Open(context.Background(), config.StoreConfig{})
	require.NoError(t, err)
	assert.Nil(t, repo)
	assert.NoError(t, closeFn())
}

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "orders.db")

	repo, closeFn, err := Open(context.Background(), config.StoreConfig{Driver: config.StoreSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &SqliteOrderRepository{}, repo)
	assert.FileExists(t, path)
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	repo, closeFn, err := Open(context.Background(), config.StoreConfig{Driver: config.StoreRedis, RedisAddr: mr.Addr()})
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &RedisOrderRepository{}, repo)
}

func TestOpenErrors(t *testing.T) {
	_, closeFn, err := Open(context.Background(), config.StoreConfig{Driver: "mongo"})
	assert.Error(t, err)
	assert.NoError(t, closeFn())

	_, _, err = Open(context.Background(), config.StoreConfig{Driver: config.StorePostgres})
	assert.ErrorContains(t, err, "DATABASE_URL")
}
