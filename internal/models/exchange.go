package models

import (
	"encoding/json"
	"time"
)

// ExchangeStatus – статус обмена. Сейчас создаётся только pending.
type ExchangeStatus string

const ExchangePending ExchangeStatus = "pending"

// DefaultGuarantorFee – фиксированная комиссия гаранта
const DefaultGuarantorFee = 100

// Exchange представляет заявку на обмен по объявлению.
// UserID – инициатор обмена; по нему считается статистика профиля.
type Exchange struct {
	ID           string         `json:"id"`
	ListingID    string         `json:"listingId"`
	UserID       int64          `json:"userId,omitempty"`
	Status       ExchangeStatus `json:"status"`
	CreatedAt    time.Time      `json:"timestamp"`
	GuarantorFee int            `json:"guarantorFee"`
}

// MarshalJSON записывает заявку в формате веб-клиента
func (e Exchange) MarshalJSON() ([]byte, error) {
	type plain Exchange
	return json.Marshal(struct {
		plain
		ID        storedID `json:"id"`
		ListingID storedID `json:"listingId"`
	}{plain(e), storedID(e.ID), storedID(e.ListingID)})
}

// UnmarshalJSON принимает числовые идентификаторы веб-клиента
func (e *Exchange) UnmarshalJSON(b []byte) error {
	type plain Exchange
	var aux struct {
		plain
		ID        storedID `json:"id"`
		ListingID storedID `json:"listingId"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*e = Exchange(aux.plain)
	e.ID = string(aux.ID)
	e.ListingID = string(aux.ListingID)
	return nil
}
