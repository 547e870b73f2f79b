package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajivgeraev/phoneswap-api/internal/db"
	"github.com/rajivgeraev/phoneswap-api/internal/models"
	"github.com/rajivgeraev/phoneswap-api/internal/storage"
	"github.com/rajivgeraev/phoneswap-api/internal/view"
)

var (
	owner = &models.User{ID: 1, FirstName: "Иван", LastName: "Петров", Username: "ivan", LanguageCode: "en"}
	buyer = &models.User{ID: 2, FirstName: "Anna", LanguageCode: "en"}
)

type fixture struct {
	app   *App
	repo  *storage.Repository
	kv    *db.Memory
	clock time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{kv: db.NewMemory(), clock: time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)}
	f.repo = storage.NewRepository(f.kv, "")

	seq := 0
	f.app = New(f.repo, Options{
		Now: func() time.Time { return f.clock },
		NewID: func() string {
			seq++
			return fmt.Sprintf("id-%03d", seq)
		},
		PickCity: func(cities []string) string { return cities[0] },
	})
	require.NoError(t, f.app.Init(context.Background()))
	return f
}

func (f *fixture) create(t *testing.T, user *models.User, model, condition, desired string) models.Listing {
	t.Helper()
	_, err := f.app.Session(user).Submit(context.Background(), Form{
		PhoneModel:   model,
		Condition:    condition,
		DesiredPhone: desired,
	})
	require.NoError(t, err)
	return f.app.Listings()[0]
}

func (f *fixture) stored(t *testing.T) ([]models.Listing, []models.Exchange) {
	t.Helper()
	listings, exchanges, anomalies, err := f.repo.Load(context.Background())
	require.NoError(t, err)
	require.Empty(t, anomalies)
	return listings, exchanges
}

type failingRepo struct{ saves int }

func (r *failingRepo) Load(context.Context) ([]models.Listing, []models.Exchange, []*storage.LoadAnomaly, error) {
	return nil, nil, nil, nil
}

func (r *failingRepo) Save(context.Context, []models.Listing, []models.Exchange) error {
	r.saves++
	return errors.New("disk full")
}

func TestInit(t *testing.T) {
	t.Run("Поврежденные данные загружаются как пустые", func(t *testing.T) {
		kv := db.NewMemory()
		require.NoError(t, kv.Set(context.Background(), storage.ListingsKey, "not json"))

		a := New(storage.NewRepository(kv, ""), Options{})
		require.NoError(t, a.Init(context.Background()))
		assert.Empty(t, a.Listings())
		assert.Empty(t, a.Exchanges())
	})

	t.Run("Данные веб-клиента загружаются и доступны по числовым ID", func(t *testing.T) {
		kv := db.NewMemory()
		require.NoError(t, kv.Set(context.Background(), storage.ListingsKey, `[{"id":1760000000000,"userId":1,`+
			`"userName":"Иван Петров","userRating":5,"phoneModel":"iPhone 13 Pro","condition":"excellent",`+
			`"conditionText":"Отличное","description":"Описание не указано","desiredPhone":"Samsung Galaxy S23",`+
			`"location":"Казань","status":"active","timestamp":"2025-10-09T08:53:20.000Z","isUserCreated":true}]`))

		a := New(storage.NewRepository(kv, ""), Options{})
		require.NoError(t, a.Init(context.Background()))
		require.Len(t, a.Listings(), 1)

		screen, err := a.Session(buyer).OpenListing("1760000000000")
		require.NoError(t, err)
		require.NotNil(t, screen.Detail)
		assert.Equal(t, "iPhone 13 Pro", screen.Detail.PhoneModel)
		assert.Equal(t, 1, len(a.Session(owner).MyListings()))
	})

	t.Run("Неактивные объявления сохраняются при загрузке", func(t *testing.T) {
		f := newFixture(t)
		l := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")
		_, err := f.app.Session(owner).Delete(context.Background(), l.ID)
		require.NoError(t, err)

		reloaded := New(f.repo, Options{})
		require.NoError(t, reloaded.Init(context.Background()))
		require.Len(t, reloaded.Listings(), 1)
		assert.Equal(t, models.StatusInactive, reloaded.Listings()[0].Status)
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Новое объявление принадлежит автору и активно", func(t *testing.T) {
		f := newFixture(t)
		s := f.app.Session(owner)
		s.SwitchTab(TabCreate)

		screen, err := s.Submit(ctx, Form{
			PhoneModel:   "  iPhone 13 Pro ",
			Condition:    "excellent",
			Description:  "  ",
			DesiredPhone: "Samsung Galaxy S23",
		})
		require.NoError(t, err)

		listings := f.app.Listings()
		require.Len(t, listings, 1)
		l := listings[0]
		assert.Equal(t, "id-001", l.ID)
		assert.Equal(t, owner.ID, l.UserID)
		assert.Equal(t, "Иван Петров", l.UserName)
		assert.Equal(t, "ivan", l.UserHandle)
		assert.Equal(t, models.StatusActive, l.Status)
		assert.Equal(t, "iPhone 13 Pro", l.PhoneModel)
		assert.Equal(t, "No description", l.Description)
		assert.Equal(t, "Excellent", l.ConditionText)
		assert.Equal(t, models.DefaultRating, l.UserRating)
		assert.Equal(t, "Москва", l.Location)
		assert.Equal(t, f.clock, l.CreatedAt)

		assert.Equal(t, TabFeed, screen.Tab, "после публикации открывается лента")
		assert.Equal(t, "✅ Listing published!", screen.Notification)
		require.NotNil(t, screen.Feed)
		require.Len(t, screen.Feed.Cards, 1)
		assert.True(t, screen.Feed.Cards[0].IsMine)

		assert.Equal(t, "", s.SwitchTab(TabCreate).Form.PhoneModel, "форма очищена")

		stored, _ := f.stored(t)
		assert.Equal(t, listings, stored, "объявление сохранено")
	})

	t.Run("Новые объявления попадают в начало", func(t *testing.T) {
		f := newFixture(t)
		f.create(t, owner, "iPhone 13 Pro", "good", "Pixel 8")
		f.clock = f.clock.Add(time.Minute)
		f.create(t, owner, "Samsung Galaxy S22", "new", "iPhone 14")

		mine := f.app.Session(owner).MyListings()
		require.Len(t, mine, 2)
		assert.Equal(t, "Samsung Galaxy S22", mine[0].PhoneModel)
		assert.Equal(t, "Samsung Galaxy S22", f.app.Listings()[0].PhoneModel)
	})

	t.Run("Без пользователя создание отклоняется", func(t *testing.T) {
		f := newFixture(t)
		screen, err := f.app.Session(nil).Submit(ctx, Form{PhoneModel: "iPhone", Condition: "new", DesiredPhone: "Pixel"})
		assert.ErrorIs(t, err, ErrNoUser)
		assert.Equal(t, "❌ Ошибка: пользователь не определен", screen.Notification)
		assert.Empty(t, f.app.Listings())
	})

	tests := []struct {
		name   string
		form   Form
		notice string
	}{
		{"Нет модели", Form{PhoneModel: "   ", Condition: "new", DesiredPhone: "Pixel"}, "❌ Fill in all required fields"},
		{"Нет состояния", Form{PhoneModel: "iPhone", DesiredPhone: "Pixel"}, "❌ Fill in all required fields"},
		{"Нет желаемого телефона", Form{PhoneModel: "iPhone", Condition: "new", DesiredPhone: "\t"}, "❌ Fill in all required fields"},
		{"Неизвестное состояние", Form{PhoneModel: "iPhone", Condition: "broken", DesiredPhone: "Pixel"}, "❌ Choose the phone condition"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			s := f.app.Session(owner)
			s.SwitchTab(TabCreate)

			screen, err := s.Submit(ctx, tt.form)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, tt.notice, screen.Notification)
			assert.Equal(t, TabCreate, screen.Tab)
			require.NotNil(t, screen.Form)
			assert.Equal(t, tt.form, *screen.Form, "форма сохраняется")
			assert.Empty(t, f.app.Listings())

			_, ok, err := f.kv.Get(ctx, storage.ListingsKey)
			require.NoError(t, err)
			assert.False(t, ok, "ничего не сохранено")
		})
	}

	t.Run("Ошибка сохранения возвращается, но объявление остается в памяти", func(t *testing.T) {
		repo := &failingRepo{}
		a := New(repo, Options{})
		require.NoError(t, a.Init(ctx))

		_, err := a.Session(owner).Submit(ctx, Form{PhoneModel: "iPhone", Condition: "new", DesiredPhone: "Pixel"})
		assert.Error(t, err)
		assert.Equal(t, 1, repo.saves)
		assert.Len(t, a.Listings(), 1)
	})
}

func TestEdit(t *testing.T) {
	ctx := context.Background()

	t.Run("Редактирование обновляет исходное объявление", func(t *testing.T) {
		f := newFixture(t)
		l := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")
		s := f.app.Session(owner)

		screen, err := s.BeginEdit(l.ID)
		require.NoError(t, err)
		assert.Equal(t, TabCreate, screen.Tab)
		assert.Equal(t, ModalNone, screen.Modal)
		assert.Equal(t, "✏️ Edit your listing", screen.Notification)
		require.NotNil(t, screen.Form)
		assert.Equal(t, Form{
			EditingID:    l.ID,
			PhoneModel:   "iPhone 13 Pro",
			Condition:    "excellent",
			Description:  "No description",
			DesiredPhone: "Samsung Galaxy S23",
		}, *screen.Form)

		form := *screen.Form
		form.DesiredPhone = "Pixel 9"
		form.Condition = "good"
		f.clock = f.clock.Add(time.Hour)

		screen, err = s.Submit(ctx, form)
		require.NoError(t, err)
		assert.Equal(t, "✅ Listing updated!", screen.Notification)

		listings := f.app.Listings()
		require.Len(t, listings, 1, "дубликат не создается")
		assert.Equal(t, l.ID, listings[0].ID)
		assert.Equal(t, owner.ID, listings[0].UserID)
		assert.Equal(t, l.CreatedAt, listings[0].CreatedAt)
		assert.Equal(t, "Pixel 9", listings[0].DesiredPhone)
		assert.Equal(t, models.ConditionGood, listings[0].Condition)

		stored, _ := f.stored(t)
		assert.Equal(t, listings, stored)
	})

	t.Run("Чужое объявление редактировать нельзя", func(t *testing.T) {
		f := newFixture(t)
		l := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")

		_, err := f.app.Session(buyer).BeginEdit(l.ID)
		assert.ErrorIs(t, err, ErrForbidden)

		_, err = f.app.Session(buyer).Submit(ctx, Form{EditingID: l.ID, PhoneModel: "x", Condition: "new", DesiredPhone: "y"})
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Equal(t, "iPhone 13 Pro", f.app.Listings()[0].PhoneModel)
	})

	t.Run("Без пользователя и для неизвестного ID ничего не происходит", func(t *testing.T) {
		f := newFixture(t)
		l := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")

		screen, err := f.app.Session(nil).BeginEdit(l.ID)
		assert.ErrorIs(t, err, ErrNoUser)
		assert.Empty(t, screen.Notification)

		_, err = f.app.Session(owner).BeginEdit("missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Удаление только снимает объявление с публикации", func(t *testing.T) {
		f := newFixture(t)
		l := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")
		s := f.app.Session(owner)
		_, err := s.OpenListing(l.ID)
		require.NoError(t, err)

		screen, err := s.Delete(ctx, l.ID)
		require.NoError(t, err)
		assert.Equal(t, ModalNone, screen.Modal)
		assert.Equal(t, "🗑️ Listing deleted", screen.Notification)
		require.NotNil(t, screen.Feed)
		assert.Empty(t, screen.Feed.Cards, "неактивное не попадает в ленту")
		assert.Empty(t, s.MyListings())

		stored, _ := f.stored(t)
		require.Len(t, stored, 1, "запись остается в хранилище")
		assert.Equal(t, models.StatusInactive, stored[0].Status)

		profile := s.SwitchTab(TabProfile).Profile
		require.NotNil(t, profile)
		assert.Equal(t, 0, profile.ActiveListings)
	})

	t.Run("Повторное удаление и чужое объявление", func(t *testing.T) {
		f := newFixture(t)
		l := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")

		_, err := f.app.Session(buyer).Delete(ctx, l.ID)
		assert.ErrorIs(t, err, ErrForbidden)
		assert.Equal(t, models.StatusActive, f.app.Listings()[0].Status)

		_, err = f.app.Session(owner).Delete(ctx, l.ID)
		require.NoError(t, err)
		_, err = f.app.Session(owner).Delete(ctx, l.ID)
		assert.ErrorIs(t, err, ErrNotFound, "inactive является конечным статусом")

		_, err = f.app.Session(nil).Delete(ctx, l.ID)
		assert.ErrorIs(t, err, ErrNoUser)
	})
}

func TestSearch(t *testing.T) {
	f := newFixture(t)
	a := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")
	b := f.create(t, buyer, "Samsung Galaxy S22", "good", "iPhone 14")
	c := f.create(t, buyer, "Pixel 7", "new", "Xiaomi 13")
	d := f.create(t, owner, "Samsung Galaxy A54", "good", "Pixel 8")
	_, err := f.app.Session(owner).Delete(context.Background(), d.ID)
	require.NoError(t, err)

	ids := func(listings []models.Listing) []string {
		var out []string
		for _, l := range listings {
			out = append(out, l.ID)
		}
		return out
	}

	all := f.app.Listings()
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids(Search(all, "Samsung")))
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids(Search(all, "sAmSuNg")))
	assert.ElementsMatch(t, []string{a.ID, b.ID, c.ID}, ids(Search(all, "")))
	assert.Empty(t, Search(all, "nokia"))

	screen := f.app.Session(buyer).Search("  iphone ")
	assert.Equal(t, TabFeed, screen.Tab)
	require.NotNil(t, screen.Feed)
	assert.Equal(t, "iphone", screen.Feed.Query)
	assert.Len(t, screen.Feed.Cards, 2)

	screen = f.app.Session(buyer).SwitchTab(TabFeed)
	assert.Empty(t, screen.Feed.Query, "переход на ленту сбрасывает поиск")
	assert.Len(t, screen.Feed.Cards, 3)
}

func TestSearchDescription(t *testing.T) {
	listings := []models.Listing{
		{ID: "1", PhoneModel: "iPhone 12", DesiredPhone: "Pixel", Description: "Батарея 90%, есть ЧЕХОЛ", Status: models.StatusActive},
		{ID: "2", PhoneModel: "iPhone 11", DesiredPhone: "Pixel", Description: "", Status: models.StatusActive},
	}
	got := Search(listings, "чехол")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestExchange(t *testing.T) {
	ctx := context.Background()

	t.Run("Подтверждение создает заявку pending", func(t *testing.T) {
		f := newFixture(t)
		l := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")
		s := f.app.Session(buyer)

		screen, err := s.OpenListing(l.ID)
		require.NoError(t, err)
		require.NotNil(t, screen.Detail)
		assert.Equal(t, view.ActionStartExchange, screen.Detail.Actions[0].Kind)

		screen, err = s.StartExchange("")
		require.NoError(t, err)
		assert.Equal(t, ModalExchange, screen.Modal)
		assert.Equal(t, l.ID, screen.ExchangeFor)
		assert.Equal(t, models.DefaultGuarantorFee, screen.GuarantorFee)
		assert.Empty(t, f.app.Exchanges(), "начало обмена не меняет состояние")

		screen, err = s.ConfirmExchange(ctx)
		require.NoError(t, err)
		assert.Equal(t, ModalNone, screen.Modal)
		assert.Contains(t, screen.Notification, "guarantor")

		exchanges := f.app.Exchanges()
		require.Len(t, exchanges, 1)
		assert.Equal(t, l.ID, exchanges[0].ListingID)
		assert.Equal(t, models.ExchangePending, exchanges[0].Status)
		assert.Equal(t, models.DefaultGuarantorFee, exchanges[0].GuarantorFee)
		assert.Equal(t, buyer.ID, exchanges[0].UserID)

		_, stored := f.stored(t)
		assert.Equal(t, exchanges, stored)

		profile := s.SwitchTab(TabProfile).Profile
		require.NotNil(t, profile)
		assert.Equal(t, 1, profile.Exchanges)
	})

	t.Run("Повторное подтверждение создает вторую заявку", func(t *testing.T) {
		f := newFixture(t)
		l := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")
		s := f.app.Session(buyer)

		for i := 0; i < 2; i++ {
			_, err := s.StartExchange(l.ID)
			require.NoError(t, err)
			_, err = s.ConfirmExchange(ctx)
			require.NoError(t, err)
		}

		exchanges := f.app.Exchanges()
		require.Len(t, exchanges, 2)
		assert.NotEqual(t, exchanges[0].ID, exchanges[1].ID)
		for _, e := range exchanges {
			assert.Equal(t, l.ID, e.ListingID)
			assert.Equal(t, models.ExchangePending, e.Status)
		}
	})

	t.Run("Без открытого окна подтверждения ничего не создается", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.app.Session(buyer).ConfirmExchange(ctx)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, f.app.Exchanges())
	})

	t.Run("Снятое с публикации объявление нельзя подтвердить", func(t *testing.T) {
		f := newFixture(t)
		l := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")
		s := f.app.Session(buyer)

		_, err := s.StartExchange(l.ID)
		require.NoError(t, err)
		_, err = f.app.Session(owner).Delete(ctx, l.ID)
		require.NoError(t, err)

		screen, err := s.ConfirmExchange(ctx)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Empty(t, screen.Notification)
		assert.Empty(t, f.app.Exchanges())

		_, stored := f.stored(t)
		assert.Empty(t, stored)
	})

	t.Run("Владелец не может начать обмен со своим объявлением", func(t *testing.T) {
		f := newFixture(t)
		l := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")
		_, err := f.app.Session(owner).StartExchange(l.ID)
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestContactOwner(t *testing.T) {
	f := newFixture(t)
	l := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")
	s := f.app.Session(buyer)
	_, err := s.OpenListing(l.ID)
	require.NoError(t, err)

	screen, err := s.ContactOwner("")
	require.NoError(t, err)
	assert.Equal(t, "https://t.me/ivan", screen.ContactURL)
	assert.Equal(t, ModalNone, screen.Modal)
	assert.NotEmpty(t, screen.Notification)

	again := s.Screen()
	assert.Empty(t, again.ContactURL, "ссылка и уведомление показываются один раз")
	assert.Empty(t, again.Notification)

	_, err = s.ContactOwner("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfile(t *testing.T) {
	f := newFixture(t)
	f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")
	f.create(t, owner, "Pixel 7", "good", "iPhone 14")
	f.create(t, buyer, "Samsung Galaxy S22", "good", "iPhone 14")

	profile := f.app.Session(owner).SwitchTab(TabProfile).Profile
	require.NotNil(t, profile)
	assert.Equal(t, view.Profile{Present: true, Name: "Иван Петров", Username: "@ivan", ActiveListings: 2}, *profile)

	anon := f.app.Session(nil).SwitchTab(TabProfile).Profile
	require.NotNil(t, anon)
	assert.False(t, anon.Present)
}

func TestOpenListing(t *testing.T) {
	f := newFixture(t)
	l := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")

	screen, err := f.app.Session(owner).OpenListing(l.ID)
	require.NoError(t, err)
	require.NotNil(t, screen.Detail)
	assert.Equal(t, view.ActionEdit, screen.Detail.Actions[0].Kind)

	screen = f.app.Session(owner).CloseModals()
	assert.Equal(t, ModalNone, screen.Modal)
	assert.Nil(t, screen.Detail)

	_, err = f.app.Session(owner).OpenListing("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMyCardsAndExchanges(t *testing.T) {
	f := newFixture(t)
	first := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")
	f.clock = f.clock.Add(time.Hour)
	second := f.create(t, owner, "Pixel 7", "good", "iPhone 14")
	other := f.create(t, buyer, "Samsung Galaxy S22", "good", "iPhone 14")

	cards := f.app.Session(owner).MyCards()
	require.Len(t, cards, 2)
	assert.Equal(t, second.ID, cards[0].ID)
	assert.Equal(t, first.ID, cards[1].ID)
	assert.True(t, cards[0].IsMine)

	assert.Empty(t, f.app.Session(nil).MyCards())

	s := f.app.Session(owner)
	_, err := s.StartExchange(other.ID)
	require.NoError(t, err)
	_, err = s.ConfirmExchange(context.Background())
	require.NoError(t, err)

	require.Len(t, s.MyExchanges(), 1)
	assert.Equal(t, other.ID, s.MyExchanges()[0].ListingID)
	assert.Empty(t, f.app.Session(buyer).MyExchanges())
}

func TestNavigate(t *testing.T) {
	t.Run("Вкладка, поиск и карточка применяются за одну отрисовку", func(t *testing.T) {
		f := newFixture(t)
		f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")
		pixel := f.create(t, owner, "Pixel 7", "good", "iPhone 14")

		s := f.app.Session(buyer)
		s.SwitchTab(TabProfile)
		s.notification = "✅ Listing published!"

		screen := s.Navigate(TabFeed, "pixel", pixel.ID)
		assert.Equal(t, "✅ Listing published!", screen.Notification)
		assert.Equal(t, TabFeed, screen.Tab)
		require.NotNil(t, screen.Feed)
		assert.Equal(t, "pixel", screen.Feed.Query)
		require.Len(t, screen.Feed.Cards, 1)
		assert.Equal(t, pixel.ID, screen.Feed.Cards[0].ID)
		assert.Equal(t, ModalListing, screen.Modal)
		require.NotNil(t, screen.Detail)
		assert.Equal(t, pixel.ID, screen.Detail.ID)

		assert.Empty(t, s.Screen().Notification)
	})

	t.Run("Пустые параметры не меняют состояние", func(t *testing.T) {
		f := newFixture(t)
		s := f.app.Session(buyer)
		s.SwitchTab(TabProfile)

		screen := s.Navigate("", "", "missing")
		assert.Equal(t, TabProfile, screen.Tab)
		assert.Equal(t, ModalNone, screen.Modal)
	})
}

func TestSessionConcurrentAccess(t *testing.T) {
	f := newFixture(t)
	l := f.create(t, owner, "iPhone 13 Pro", "excellent", "Samsung Galaxy S23")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				f.app.Session(owner)
				f.app.Session(&models.User{ID: owner.ID, FirstName: "Иван", LanguageCode: "ru"})
			}
		}()
		go func() {
			defer wg.Done()
			s := f.app.Session(owner)
			for j := 0; j < 50; j++ {
				assert.Equal(t, owner.ID, s.User().ID)
				assert.NotNil(t, s.Locale())
				assert.Len(t, s.MyCards(), 1)
				assert.Len(t, s.MyListings(), 1)
				assert.Empty(t, s.MyExchanges())
				s.Navigate(TabFeed, "", l.ID)
			}
		}()
	}
	wg.Wait()
}
