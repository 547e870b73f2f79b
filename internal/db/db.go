package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const queryTimeout = 5 * time.Second

// Postgres хранит записи в таблице kv_store через пул соединений pgx
type Postgres struct {
	Pool *pgxpool.Pool
}

// NewPostgres подключается к базе данных и создает таблицу при необходимости
func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	// Создаем контекст с таймаутом для подключения
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе URL базы данных: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 2

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пула соединений: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ошибка при проверке соединения: %w", err)
	}

	p := &Postgres{Pool: pool}
	if err := p.AutoMigrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	log.Println("✅ Успешное подключение к базе данных")
	return p, nil
}

// AutoMigrate создает таблицу kv_store
func (p *Postgres) AutoMigrate(ctx context.Context) error {
	_, err := p.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("ошибка миграции kv_store: %w", err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var value string
	err := p.Pool.QueryRow(ctx, "SELECT value FROM kv_store WHERE key = $1", key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("ошибка чтения ключа %s: %w", key, err)
	}
	return value, true, nil
}

func (p *Postgres) Set(ctx context.Context, key, value string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := p.Pool.Exec(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`, key, value)
	if err != nil {
		return fmt.Errorf("ошибка записи ключа %s: %w", key, err)
	}
	return nil
}

// Close закрывает соединение с базой данных
func (p *Postgres) Close() error {
	if p.Pool != nil {
		p.Pool.Close()
	}
	return nil
}
