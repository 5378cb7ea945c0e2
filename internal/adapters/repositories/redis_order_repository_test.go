package repositories

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisRepo(t *testing.T) (*RedisOrderRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisOrderRepository(client, "test"), mr
}

func TestRedisOrderRepository(t *testing.T) {
	repo, _ := newRedisRepo(t)
	exerciseRepository(t, repo)
}

func TestRedisOrderRepositoryKeys(t *testing.T) {
	repo, mr := newRedisRepo(t)
	older, _ := sampleOrders(t)

	require.NoError(t, repo.SaveOrder(context.Background(), older))

	assert.True(t, mr.Exists("test:order:order-a"))
	members, err := mr.ZMembers("test:orders")
	require.NoError(t, err)
	assert.Equal(t, []string{"order-a"}, members)
}

func TestRedisOrderRepositorySkipsMissingDocuments(t *testing.T) {
	repo, mr := newRedisRepo(t)
	older, newer := sampleOrders(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveOrder(ctx, older))
	require.NoError(t, repo.SaveOrder(ctx, newer))
	mr.Del("test:order:order-b")

	orders, err := repo.ListOrders(ctx, 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assertSameOrder(t, older, orders[0])
}

func TestRedisOrderRepositoryDefaultPrefix(t *testing.T) {
	repo := NewRedisOrderRepository(nil, "")
	assert.Equal(t, "restaurant:orders", repo.indexKey())

	older, _ := sampleOrders(t)
	assert.Error(t, repo.SaveOrder(context.Background(), older))
}
