package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Supported ORDER_STORE values. An empty driver keeps no history.
const (
	StoreNone     = ""
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreRedis    = "redis"
)

type Config struct {
	LogLevel     string
	Port         string
	HistoryLimit int
	Store        StoreConfig
}

type StoreConfig struct {
	Driver        string
	SQLitePath    string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Load reads .env (if present) and the process environment.
// defaultLogLevel differs between the interactive program and the server.
func Load(defaultLogLevel string) Config {
	_ = godotenv.Load()

	return Config{
		LogLevel:     Get("LOG_LEVEL", defaultLogLevel),
		Port:         Get("PORT", "8080"),
		HistoryLimit: GetInt("HISTORY_LIMIT", 20),
		Store: StoreConfig{
			Driver:        strings.ToLower(Get("ORDER_STORE", StoreNone)),
			SQLitePath:    Get("SQLITE_PATH", "data/orders.db"),
			DatabaseURL:   os.Getenv("DATABASE_URL"),
			RedisAddr:     Get("REDIS_ADDR", "localhost:6379"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),
			RedisDB:       GetInt("REDIS_DB", 0),
		},
	}
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// GetInt falls back when the variable is unset or not an integer.
func GetInt(key string, fallback int) int {
	v, err := strconv.Atoi(Get(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
