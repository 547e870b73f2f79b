package db

import (
	"context"
	"fmt"

	"github.com/rajivgeraev/phoneswap-api/internal/config"
)

// KV – строковое key-value хранилище, в котором мини-приложение держит свои коллекции.
// Запись перезаписывает предыдущее значение целиком.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}

// Open открывает хранилище, выбранное в конфигурации
func Open(ctx context.Context, cfg config.StorageConfig) (KV, error) {
	switch cfg.Driver {
	case "", "memory":
		return NewMemory(), nil
	case "postgres":
		return NewPostgres(ctx, cfg.Database.URL())
	case "sqlite":
		return NewSQLite(cfg.SQLiteDSN)
	case "redis":
		return NewRedis(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("неизвестный драйвер хранилища: %s", cfg.Driver)
	}
}
