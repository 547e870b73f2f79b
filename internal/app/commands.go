package app

import (
	"context"
	"net/url"

	"github.com/rajivgeraev/phoneswap-api/internal/models"
	"github.com/rajivgeraev/phoneswap-api/internal/validate"
)

// SwitchTab переключает вкладку. Переход на ленту сбрасывает поиск.
func (s *Session) SwitchTab(tab Tab) Screen {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	s.switchTab(tab)
	return s.render()
}

func (s *Session) switchTab(tab Tab) {
	if tab.Valid() {
		s.tab = tab
		if tab == TabFeed {
			s.query = ""
		}
	}
}

// Search показывает ленту, отфильтрованную по запросу
func (s *Session) Search(query string) Screen {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	s.search(query)
	return s.render()
}

func (s *Session) search(query string) {
	s.tab = TabFeed
	s.query = validate.Query(query)
}

// CloseModals закрывает все модальные окна
func (s *Session) CloseModals() Screen {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	s.closeModals()
	return s.render()
}

func (s *Session) closeModals() {
	s.modal = ModalNone
	s.modalListing = ""
}

// OpenListing открывает карточку объявления
func (s *Session) OpenListing(id string) (Screen, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	err := s.openListing(id)
	return s.render(), err
}

func (s *Session) openListing(id string) error {
	if s.app.findListing(id) < 0 {
		return ErrNotFound
	}
	s.modal = ModalListing
	s.modalListing = id
	return nil
}

// Navigate применяет параметры адреса страницы (вкладка, поиск, карточка) и отрисовывает экран
// один раз, чтобы не потерять уведомление. Пустые параметры и неизвестное объявление пропускаются.
func (s *Session) Navigate(tab Tab, query, listingID string) Screen {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	s.switchTab(tab)
	if query != "" {
		s.search(query)
	}
	if listingID != "" {
		_ = s.openListing(listingID)
	}
	return s.render()
}

// Submit отправляет форму. Форма без EditingID создает новое объявление,
// с EditingID обновляет объявление, открытое через BeginEdit.
func (s *Session) Submit(ctx context.Context, form Form) (Screen, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	if s.user == nil {
		s.notification = s.locale.NotifyNoUser
		return s.render(), ErrNoUser
	}

	// форма сохраняется, чтобы пользователь мог исправить ошибку
	s.form = form

	phoneModel, okModel := validate.Required(form.PhoneModel)
	desiredPhone, okDesired := validate.Required(form.DesiredPhone)
	if !okModel || !okDesired || form.Condition == "" {
		s.notification = s.locale.NotifyFillRequired
		return s.render(), ErrValidation
	}
	condition, ok := validate.Condition(form.Condition)
	if !ok {
		s.notification = s.locale.NotifyBadCondition
		return s.render(), ErrValidation
	}
	description := validate.Description(form.Description)

	if form.EditingID != "" {
		return s.update(ctx, form.EditingID, phoneModel, condition, description, desiredPhone)
	}
	return s.create(ctx, phoneModel, condition, description, desiredPhone)
}

func (s *Session) create(ctx context.Context, phoneModel string, condition models.Condition, description, desiredPhone string) (Screen, error) {
	a := s.app
	if description == "" {
		description = s.locale.NoDescription
	}

	listing := models.Listing{
		ID:            a.opts.NewID(),
		UserID:        s.user.ID,
		UserName:      s.user.DisplayName(),
		UserHandle:    s.user.Username,
		UserRating:    models.DefaultRating,
		PhoneModel:    phoneModel,
		Condition:     condition,
		ConditionText: s.locale.ConditionText(condition),
		Description:   description,
		DesiredPhone:  desiredPhone,
		Location:      a.opts.PickCity(models.Cities),
		Status:        models.StatusActive,
		CreatedAt:     a.opts.Now(),
		IsUserCreated: true,
	}
	a.listings = append([]models.Listing{listing}, a.listings...)

	s.form = Form{}
	s.tab = TabFeed
	s.query = ""
	s.notification = s.locale.NotifyPublished

	if err := a.persist(ctx); err != nil {
		return s.render(), err
	}
	return s.render(), nil
}

func (s *Session) update(ctx context.Context, id, phoneModel string, condition models.Condition, description, desiredPhone string) (Screen, error) {
	a := s.app
	i := a.findListing(id)
	if i < 0 || !a.listings[i].IsActive() {
		return s.render(), ErrNotFound
	}
	if !a.listings[i].OwnedBy(s.user.ID) {
		return s.render(), ErrForbidden
	}
	if description == "" {
		description = s.locale.NoDescription
	}

	l := &a.listings[i]
	l.PhoneModel = phoneModel
	l.Condition = condition
	l.ConditionText = s.locale.ConditionText(condition)
	l.Description = description
	l.DesiredPhone = desiredPhone

	s.form = Form{}
	s.tab = TabFeed
	s.query = ""
	s.notification = s.locale.NotifyUpdated

	if err := a.persist(ctx); err != nil {
		return s.render(), err
	}
	return s.render(), nil
}

// BeginEdit заполняет форму данными объявления владельца и открывает вкладку создания
func (s *Session) BeginEdit(id string) (Screen, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	l, err := s.ownedListing(id)
	if err != nil {
		return s.render(), err
	}

	s.form = Form{
		EditingID:    l.ID,
		PhoneModel:   l.PhoneModel,
		Condition:    string(l.Condition),
		Description:  l.Description,
		DesiredPhone: l.DesiredPhone,
	}
	s.closeModals()
	s.tab = TabCreate
	s.notification = s.locale.NotifyEditing
	return s.render(), nil
}

// Delete снимает объявление с публикации. Запись остается в хранилище со статусом inactive.
func (s *Session) Delete(ctx context.Context, id string) (Screen, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	l, err := s.ownedListing(id)
	if err != nil {
		return s.render(), err
	}

	l.Status = models.StatusInactive
	if s.form.EditingID == id {
		s.form = Form{}
	}
	s.closeModals()
	s.notification = s.locale.NotifyDeleted

	if err := s.app.persist(ctx); err != nil {
		return s.render(), err
	}
	return s.render(), nil
}

// ownedListing ищет активное объявление текущего пользователя. Вызывается под s.app.mu.
func (s *Session) ownedListing(id string) (*models.Listing, error) {
	if s.user == nil {
		return nil, ErrNoUser
	}
	i := s.app.findListing(id)
	if i < 0 || !s.app.listings[i].IsActive() {
		return nil, ErrNotFound
	}
	if !s.app.listings[i].OwnedBy(s.user.ID) {
		return nil, ErrForbidden
	}
	return &s.app.listings[i], nil
}

// StartExchange переводит открытую карточку в окно подтверждения обмена.
// Пустой id означает объявление, открытое в карточке. Состояние не меняется.
func (s *Session) StartExchange(id string) (Screen, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	if id == "" && s.modal == ModalListing {
		id = s.modalListing
	}
	i := s.app.findListing(id)
	if i < 0 || !s.app.listings[i].IsActive() {
		return s.render(), ErrNotFound
	}
	if s.user != nil && s.app.listings[i].OwnedBy(s.user.ID) {
		return s.render(), ErrForbidden
	}

	s.modal = ModalExchange
	s.modalListing = id
	return s.render(), nil
}

// ConfirmExchange создает заявку на обмен по объявлению из окна подтверждения.
// Повторное подтверждение создает еще одну заявку.
func (s *Session) ConfirmExchange(ctx context.Context) (Screen, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	a := s.app
	if s.modal != ModalExchange {
		return s.render(), ErrNotFound
	}
	// объявление могли снять с публикации, пока было открыто окно подтверждения
	if i := a.findListing(s.modalListing); i < 0 || !a.listings[i].IsActive() {
		return s.render(), ErrNotFound
	}

	exchange := models.Exchange{
		ID:           a.opts.NewID(),
		ListingID:    s.modalListing,
		Status:       models.ExchangePending,
		CreatedAt:    a.opts.Now(),
		GuarantorFee: a.opts.GuarantorFee,
	}
	if s.user != nil {
		exchange.UserID = s.user.ID
	}
	a.exchanges = append(a.exchanges, exchange)

	s.closeModals()
	s.notification = s.locale.NotifyExchangeDone

	if err := a.persist(ctx); err != nil {
		return s.render(), err
	}
	return s.render(), nil
}

// ContactOwner передает связь с владельцем мессенджеру хоста: возвращает ссылку t.me на его профиль.
func (s *Session) ContactOwner(id string) (Screen, error) {
	s.app.mu.Lock()
	defer s.app.mu.Unlock()

	if id == "" && s.modal == ModalListing {
		id = s.modalListing
	}
	i := s.app.findListing(id)
	s.closeModals()
	if i < 0 {
		return s.render(), ErrNotFound
	}
	if s.user == nil {
		return s.render(), nil
	}

	if handle := s.app.listings[i].UserHandle; handle != "" {
		s.contactURL = "https://t.me/" + url.PathEscape(handle)
		s.notification = s.locale.NotifyContactOwner
	} else {
		s.notification = s.locale.NotifyContactNoOwner
	}
	return s.render(), nil
}
