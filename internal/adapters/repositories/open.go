package repositories

import (
	"context"
	"fmt"
	"restaurant-order/internal/config"
	"restaurant-order/internal/platform/db"
	"restaurant-order/internal/ports"

	"github.com/redis/go-redis/v9"
)

// Open builds the order repository selected by cfg.Driver and makes sure
// its schema exists. It returns a nil repository when no store is
// configured. The returned close function is never nil.
func Open(ctx context.Context, cfg config.StoreConfig) (ports.OrderRepository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.StoreNone:
		return nil, noop, nil

	case config.StoreSQLite:
		conn, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		if err := InitSQLiteSchema(conn); err != nil {
			conn.Close()
			return nil, noop, err
		}
		return NewSqliteOrderRepository(conn), conn.Close, nil

	case config.StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, noop, fmt.Errorf("open store: DATABASE_URL is required for %q", cfg.Driver)
		}
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		if err := InitPostgresSchema(conn); err != nil {
			conn.Close()
			return nil, noop, err
		}
		return NewSQLOrderRepository(conn), conn.Close, nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, noop, fmt.Errorf("open store: ping redis at %q: %w", cfg.RedisAddr, err)
		}
		return NewRedisOrderRepository(client, ""), client.Close, nil

	default:
		return nil, noop, fmt.Errorf("open store: unknown ORDER_STORE %q", cfg.Driver)
	}
}
