// Package storage сериализует коллекции объявлений и обменов в key-value хранилище.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rajivgeraev/phoneswap-api/internal/db"
	"github.com/rajivgeraev/phoneswap-api/internal/models"
)

// Имена записей в хранилище
const (
	ListingsKey  = "userListings"
	ExchangesKey = "userExchanges"
)

// LoadAnomaly сообщает, что сохраненное значение не удалось разобрать.
// Коллекция при этом считается пустой.
type LoadAnomaly struct {
	Key string
	Err error
}

func (a *LoadAnomaly) Error() string {
	return fmt.Sprintf("поврежденное значение %s: %v", a.Key, a.Err)
}

func (a *LoadAnomaly) Unwrap() error { return a.Err }

// Repository читает и пишет обе коллекции
type Repository struct {
	kv        db.KV
	namespace string
}

// NewRepository создает адаптер. namespace, если задан, добавляется к именам ключей через ":".
func NewRepository(kv db.KV, namespace string) *Repository {
	return &Repository{kv: kv, namespace: namespace}
}

func (r *Repository) key(name string) string {
	if r.namespace == "" {
		return name
	}
	return r.namespace + ":" + name
}

// Load возвращает сохраненные коллекции. Отсутствующие записи дают пустые коллекции.
// Поврежденные записи тоже дают пустые коллекции, а в anomalies попадает описание каждой.
// err возвращается только при сбое самого хранилища.
func (r *Repository) Load(ctx context.Context) (listings []models.Listing, exchanges []models.Exchange, anomalies []*LoadAnomaly, err error) {
	listings = []models.Listing{}
	exchanges = []models.Exchange{}

	if a, err := r.read(ctx, ListingsKey, &listings); err != nil {
		return nil, nil, nil, err
	} else if a != nil {
		listings = []models.Listing{}
		anomalies = append(anomalies, a)
	}

	if a, err := r.read(ctx, ExchangesKey, &exchanges); err != nil {
		return nil, nil, nil, err
	} else if a != nil {
		exchanges = []models.Exchange{}
		anomalies = append(anomalies, a)
	}

	return listings, exchanges, anomalies, nil
}

func (r *Repository) read(ctx context.Context, name string, dst any) (*LoadAnomaly, error) {
	raw, ok, err := r.kv.Get(ctx, r.key(name))
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения %s: %w", name, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return &LoadAnomaly{Key: name, Err: err}, nil
	}
	return nil, nil
}

// Save перезаписывает обе коллекции
func (r *Repository) Save(ctx context.Context, listings []models.Listing, exchanges []models.Exchange) error {
	if listings == nil {
		listings = []models.Listing{}
	}
	if exchanges == nil {
		exchanges = []models.Exchange{}
	}

	if err := r.write(ctx, ListingsKey, listings); err != nil {
		return err
	}
	return r.write(ctx, ExchangesKey, exchanges)
}

func (r *Repository) write(ctx context.Context, name string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("ошибка сериализации %s: %w", name, err)
	}
	if err := r.kv.Set(ctx, r.key(name), string(data)); err != nil {
		return fmt.Errorf("ошибка сохранения %s: %w", name, err)
	}
	return nil
}
