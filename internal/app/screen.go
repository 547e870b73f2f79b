package app

import (
	"github.com/rajivgeraev/phoneswap-api/internal/models"
	"github.com/rajivgeraev/phoneswap-api/internal/view"
)

// Screen – все, что клиент должен показать после команды
type Screen struct {
	Tab          Tab           `json:"tab"`
	Feed         *view.Feed    `json:"feed,omitempty"`
	Form         *Form         `json:"form,omitempty"`
	Conditions   []Option      `json:"conditions,omitempty"`
	Profile      *view.Profile `json:"profile,omitempty"`
	Modal        Modal         `json:"modal,omitempty"`
	Detail       *view.Detail  `json:"detail,omitempty"`
	ExchangeFor  string        `json:"exchange_listing_id,omitempty"`
	GuarantorFee int           `json:"guarantor_fee,omitempty"`
	Notification string        `json:"notification,omitempty"`
	ContactURL   string        `json:"contact_url,omitempty"`
}

// Option – пункт выпадающего списка
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Screen отрисовывает текущее состояние сессии. Уведомление показывается один раз.
func (s *Session) Screen() Screen {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()
	return s.render()
}

// render вызывается под s.app.mu
func (s *Session) render() Screen {
	a := s.app
	now := a.opts.Now()

	screen := Screen{
		Tab:          s.tab,
		Modal:        s.modal,
		Notification: s.notification,
		ContactURL:   s.contactURL,
	}
	s.notification = ""
	s.contactURL = ""

	switch s.tab {
	case TabFeed:
		feed := view.BuildFeed(Search(a.listings, s.query), s.query, s.user, now, s.locale)
		screen.Feed = &feed
	case TabCreate:
		form := s.form
		screen.Form = &form
		for _, c := range models.Conditions {
			screen.Conditions = append(screen.Conditions, Option{Value: string(c), Label: s.locale.ConditionText(c)})
		}
	case TabProfile:
		var profile view.Profile
		if s.user != nil {
			profile = view.BuildProfile(s.user, len(a.myListings(s.user.ID)), a.exchangeCount(s.user.ID))
		}
		screen.Profile = &profile
	}

	switch s.modal {
	case ModalListing:
		if i := a.findListing(s.modalListing); i >= 0 {
			detail := view.BuildDetail(a.listings[i], s.user, now, s.locale)
			screen.Detail = &detail
		} else {
			screen.Modal = ModalNone
		}
	case ModalExchange:
		screen.ExchangeFor = s.modalListing
		screen.GuarantorFee = a.opts.GuarantorFee
	}
	return screen
}
