// Package view строит модели представления для ленты, карточки объявления и профиля.
// Функции пакета не меняют состояние и не зависят от способа отрисовки.
package view

import (
	"slices"
	"strings"
	"time"

	"github.com/rajivgeraev/phoneswap-api/internal/models"
)

// Card – объявление в том виде, в каком его показывает лента
type Card struct {
	ID            string  `json:"id"`
	PhoneModel    string  `json:"phone_model"`
	Brand         string  `json:"brand"`
	Emoji         string  `json:"emoji"`
	Condition     string  `json:"condition"`
	ConditionText string  `json:"condition_text"`
	Description   string  `json:"description"`
	DesiredPhone  string  `json:"desired_phone"`
	ExchangeFor   string  `json:"exchange_for"`
	Location      string  `json:"location,omitempty"`
	OwnerName     string  `json:"owner_name"`
	OwnerRating   float64 `json:"owner_rating"`
	TimeAgo       string  `json:"time_ago"`
	IsMine        bool    `json:"is_mine"`
	MineBadge     string  `json:"mine_badge,omitempty"`
}

// EmptyState показывается вместо пустой ленты
type EmptyState struct {
	Title       string `json:"title"`
	Text        string `json:"text,omitempty"`
	ActionLabel string `json:"action_label,omitempty"`
	ActionTab   string `json:"action_tab,omitempty"`
}

// Feed – лента активных объявлений
type Feed struct {
	Query string      `json:"query,omitempty"`
	Cards []Card      `json:"cards"`
	Empty *EmptyState `json:"empty,omitempty"`
}

// ActionKind – действие, доступное в карточке объявления
type ActionKind string

const (
	ActionEdit          ActionKind = "edit"
	ActionDelete        ActionKind = "delete"
	ActionStartExchange ActionKind = "start_exchange"
	ActionContactOwner  ActionKind = "contact_owner"
)

// Action – кнопка в карточке объявления
type Action struct {
	Kind  ActionKind `json:"kind"`
	Label string     `json:"label"`
}

// Detail – открытая карточка объявления
type Detail struct {
	Card
	OwnerHandle string   `json:"owner_handle,omitempty"`
	Actions     []Action `json:"actions"`
}

// Profile – статистика текущего пользователя
type Profile struct {
	Present        bool   `json:"present"`
	Name           string `json:"name,omitempty"`
	Username       string `json:"username,omitempty"`
	ActiveListings int    `json:"active_listings"`
	Exchanges      int    `json:"exchanges"`
}

// NewCard переводит объявление в модель карточки
func NewCard(l models.Listing, viewer *models.User, now time.Time, loc *Locale) Card {
	card := Card{
		ID:            l.ID,
		PhoneModel:    l.PhoneModel,
		Brand:         PhoneBrand(l.PhoneModel),
		Emoji:         PhoneEmoji(l.PhoneModel),
		Condition:     string(l.Condition),
		ConditionText: loc.ConditionText(l.Condition),
		Description:   l.Description,
		DesiredPhone:  l.DesiredPhone,
		ExchangeFor:   loc.ExchangeFor + " " + l.DesiredPhone,
		Location:      l.Location,
		OwnerName:     l.UserName,
		OwnerRating:   l.UserRating,
		TimeAgo:       TimeAgo(l.CreatedAt, now, loc),
		IsMine:        viewer != nil && l.OwnedBy(viewer.ID),
	}
	if card.Description == "" {
		card.Description = loc.NoDescription
	}
	if card.IsMine {
		card.MineBadge = loc.MyListingBadge
	}
	return card
}

// SortNewestFirst упорядочивает объявления от новых к старым
func SortNewestFirst(listings []models.Listing) {
	slices.SortStableFunc(listings, func(a, b models.Listing) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(b.ID, a.ID)
	})
}

// BuildFeed строит ленту: только активные объявления, новые сверху.
// query попадает в модель для отображения; фильтрацию делает вызывающий код.
func BuildFeed(listings []models.Listing, query string, viewer *models.User, now time.Time, loc *Locale) Feed {
	active := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if l.IsActive() {
			active = append(active, l)
		}
	}
	SortNewestFirst(active)

	feed := Feed{Query: query, Cards: make([]Card, 0, len(active))}
	for _, l := range active {
		feed.Cards = append(feed.Cards, NewCard(l, viewer, now, loc))
	}

	if len(feed.Cards) == 0 {
		if query != "" {
			feed.Empty = &EmptyState{Title: loc.NothingFound}
		} else {
			feed.Empty = &EmptyState{
				Title:       loc.EmptyFeedTitle,
				Text:        loc.EmptyFeedText,
				ActionLabel: loc.EmptyFeedAction,
				ActionTab:   "create",
			}
		}
	}
	return feed
}

// BuildDetail строит карточку объявления с набором действий:
// владелец редактирует и удаляет, остальные начинают обмен или пишут владельцу.
func BuildDetail(l models.Listing, viewer *models.User, now time.Time, loc *Locale) Detail {
	d := Detail{
		Card:        NewCard(l, viewer, now, loc),
		OwnerHandle: l.UserHandle,
	}
	if d.IsMine {
		d.Actions = []Action{
			{Kind: ActionEdit, Label: loc.ActionEdit},
			{Kind: ActionDelete, Label: loc.ActionDelete},
		}
	} else {
		d.Actions = []Action{
			{Kind: ActionStartExchange, Label: loc.ActionStartExchange},
			{Kind: ActionContactOwner, Label: loc.ActionContactOwner},
		}
	}
	return d
}

// BuildProfile строит профиль. Без пользователя профиль пустой.
func BuildProfile(user *models.User, activeListings, exchanges int) Profile {
	if user == nil {
		return Profile{}
	}
	p := Profile{
		Present:        true,
		Name:           user.DisplayName(),
		ActiveListings: activeListings,
		Exchanges:      exchanges,
	}
	if user.Username != "" {
		p.Username = "@" + user.Username
	}
	return p
}
