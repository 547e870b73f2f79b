package app

import (
	"slices"

	"github.com/rajivgeraev/phoneswap-api/internal/models"
	"github.com/rajivgeraev/phoneswap-api/internal/view"
)

// Tab – вкладка нижней навигации
type Tab string

const (
	TabFeed    Tab = "feed"
	TabCreate  Tab = "create"
	TabProfile Tab = "profile"
)

// Valid проверяет название вкладки
func (t Tab) Valid() bool {
	return t == TabFeed || t == TabCreate || t == TabProfile
}

// Modal – открытое модальное окно
type Modal string

const (
	ModalNone     Modal = ""
	ModalListing  Modal = "listing"
	ModalExchange Modal = "exchange"
)

// Form – содержимое формы создания объявления.
// EditingID заполняется, когда форма открыта для редактирования существующего объявления.
type Form struct {
	EditingID    string `json:"editing_id,omitempty"`
	PhoneModel   string `json:"phone_model"`
	Condition    string `json:"condition"`
	Description  string `json:"description"`
	DesiredPhone string `json:"desired_phone"`
}

// Session связывает App с текущим пользователем и его UI-состоянием.
// Пользователь может отсутствовать: тогда доступны только просмотр и поиск.
// Все поля читаются и меняются под app.mu.
type Session struct {
	app    *App
	user   *models.User
	locale *view.Locale

	tab          Tab
	modal        Modal
	modalListing string
	form         Form
	query        string
	notification string
	contactURL   string
}

// Session возвращает сессию пользователя. Для nil создается одноразовая анонимная сессия.
func (a *App) Session(user *models.User) *Session {
	a.mu.Lock()
	defer a.mu.Unlock()

	if user == nil {
		return &Session{app: a, locale: view.LocaleFor("", a.opts.DefaultLocale), tab: TabFeed}
	}

	s, ok := a.sessions[user.ID]
	if !ok {
		s = &Session{app: a, tab: TabFeed}
		a.sessions[user.ID] = s
	}
	u := *user
	s.user = &u
	s.locale = view.LocaleFor(user.LanguageCode, a.opts.DefaultLocale)
	return s
}

// User возвращает текущего пользователя или nil
func (s *Session) User() *models.User {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()
	return s.user
}

// Locale возвращает локаль сессии
func (s *Session) Locale() *view.Locale {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()
	return s.locale
}

// MyListings возвращает активные объявления текущего пользователя
func (s *Session) MyListings() []models.Listing {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	if s.user == nil {
		return nil
	}
	return s.app.myListings(s.user.ID)
}

// MyCards возвращает карточки активных объявлений пользователя, новые первыми
func (s *Session) MyCards() []view.Card {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	if s.user == nil {
		return []view.Card{}
	}
	mine := s.app.myListings(s.user.ID)
	view.SortNewestFirst(mine)
	now := s.app.opts.Now()
	cards := make([]view.Card, 0, len(mine))
	for _, l := range mine {
		cards = append(cards, view.NewCard(l, s.user, now, s.locale))
	}
	return cards
}

// MyExchanges возвращает заявки на обмен, оформленные пользователем
func (s *Session) MyExchanges() []models.Exchange {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	if s.user == nil {
		return []models.Exchange{}
	}
	out := slices.DeleteFunc(slices.Clone(s.app.exchanges), func(e models.Exchange) bool {
		return e.UserID != s.user.ID
	})
	if out == nil {
		out = []models.Exchange{}
	}
	return out
}
