// Package app хранит состояние мини-приложения и выполняет команды пользователя:
// изменить состояние, сохранить его и вернуть новый экран.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	applog "github.com/rajivgeraev/phoneswap-api/internal/log"
	"github.com/rajivgeraev/phoneswap-api/internal/models"
	"github.com/rajivgeraev/phoneswap-api/internal/storage"
)

// Persister загружает и сохраняет коллекции объявлений и обменов
type Persister interface {
	Load(ctx context.Context) ([]models.Listing, []models.Exchange, []*storage.LoadAnomaly, error)
	Save(ctx context.Context, listings []models.Listing, exchanges []models.Exchange) error
}

// Options настраивает App. Нулевые поля получают значения по умолчанию.
type Options struct {
	GuarantorFee  int
	DefaultLocale string
	Now           func() time.Time
	NewID         func() string
	PickCity      func(cities []string) string
}

// App владеет коллекциями объявлений и обменов и UI-состоянием сессий.
// Все команды выполняются под одним мьютексом целиком: изменение, сохранение, отрисовка.
type App struct {
	mu        sync.Mutex
	repo      Persister
	opts      Options
	listings  []models.Listing
	exchanges []models.Exchange
	sessions  map[int64]*Session
}

// New создает App. Перед использованием нужно вызвать Init.
func New(repo Persister, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = newTimeOrderedID
	}
	if opts.PickCity == nil {
		opts.PickCity = func(cities []string) string { return cities[rand.IntN(len(cities))] }
	}
	if opts.GuarantorFee == 0 {
		opts.GuarantorFee = models.DefaultGuarantorFee
	}
	if opts.DefaultLocale == "" {
		opts.DefaultLocale = "ru"
	}
	return &App{
		repo:      repo,
		opts:      opts,
		listings:  []models.Listing{},
		exchanges: []models.Exchange{},
		sessions:  make(map[int64]*Session),
	}
}

// newTimeOrderedID возвращает UUIDv7: идентификаторы растут вместе со временем создания
func newTimeOrderedID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Init загружает сохраненные коллекции. Поврежденные записи заменяются пустыми
// и попадают в лог как предупреждение.
func (a *App) Init(ctx context.Context) error {
	listings, exchanges, anomalies, err := a.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("ошибка загрузки состояния: %w", err)
	}
	for _, anomaly := range anomalies {
		applog.Warn(nil, "storage.load.anomaly", anomaly, map[string]any{"key": anomaly.Key})
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.listings = listings
	a.exchanges = exchanges
	return nil
}

// Close сохраняет состояние при остановке
func (a *App) Close(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.persist(ctx)
}

func (a *App) persist(ctx context.Context) error {
	if err := a.repo.Save(ctx, a.listings, a.exchanges); err != nil {
		return fmt.Errorf("ошибка сохранения состояния: %w", err)
	}
	return nil
}

// Listings возвращает копию всех объявлений, включая неактивные
func (a *App) Listings() []models.Listing {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.listings)
}

// Exchanges возвращает копию всех обменов
func (a *App) Exchanges() []models.Exchange {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.exchanges)
}

func (a *App) findListing(id string) int {
	return slices.IndexFunc(a.listings, func(l models.Listing) bool { return l.ID == id })
}

func (a *App) myListings(userID int64) []models.Listing {
	var mine []models.Listing
	for _, l := range a.listings {
		if l.OwnedBy(userID) && l.IsActive() {
			mine = append(mine, l)
		}
	}
	return mine
}

func (a *App) exchangeCount(userID int64) int {
	n := 0
	for _, e := range a.exchanges {
		if e.UserID == userID {
			n++
		}
	}
	return n
}
