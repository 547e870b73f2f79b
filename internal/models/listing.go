package models

import (
	"encoding/json"
	"time"
)

// Condition – заявленное состояние телефона
type Condition string

const (
	ConditionNew          Condition = "new"
	ConditionExcellent    Condition = "excellent"
	ConditionGood         Condition = "good"
	ConditionSatisfactory Condition = "satisfactory"
)

// Conditions перечисляет допустимые состояния в порядке показа в форме
var Conditions = []Condition{ConditionNew, ConditionExcellent, ConditionGood, ConditionSatisfactory}

// Valid проверяет, что состояние входит в перечисление
func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionExcellent, ConditionGood, ConditionSatisfactory:
		return true
	}
	return false
}

// ListingStatus – статус объявления. Переход возможен только active -> inactive.
type ListingStatus string

const (
	StatusActive   ListingStatus = "active"
	StatusInactive ListingStatus = "inactive"
)

// DefaultRating выставляется новым объявлениям
const DefaultRating = 5.0

// Listing представляет объявление об обмене телефона.
// JSON-теги совпадают с форматом, который хранит мини-приложение.
type Listing struct {
	ID            string        `json:"id"`
	UserID        int64         `json:"userId"`
	UserName      string        `json:"userName"`
	UserHandle    string        `json:"userUsername,omitempty"`
	UserRating    float64       `json:"userRating"`
	PhoneModel    string        `json:"phoneModel"`
	Condition     Condition     `json:"condition"`
	ConditionText string        `json:"conditionText"`
	Description   string        `json:"description"`
	DesiredPhone  string        `json:"desiredPhone"`
	Location      string        `json:"location,omitempty"`
	Status        ListingStatus `json:"status"`
	CreatedAt     time.Time     `json:"timestamp"`
	IsUserCreated bool          `json:"isUserCreated,omitempty"`
}

// IsActive сообщает, показывается ли объявление в ленте
func (l *Listing) IsActive() bool {
	return l.Status == StatusActive
}

// OwnedBy проверяет владельца объявления
func (l *Listing) OwnedBy(userID int64) bool {
	return l.UserID == userID
}

// MarshalJSON записывает запись в формате веб-клиента
func (l Listing) MarshalJSON() ([]byte, error) {
	type plain Listing
	return json.Marshal(struct {
		plain
		ID storedID `json:"id"`
	}{plain(l), storedID(l.ID)})
}

// UnmarshalJSON принимает числовые идентификаторы веб-клиента
func (l *Listing) UnmarshalJSON(b []byte) error {
	type plain Listing
	var aux struct {
		plain
		ID storedID `json:"id"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*l = Listing(aux.plain)
	l.ID = string(aux.ID)
	return nil
}

// Cities – города, из которых выбирается локация нового объявления
var Cities = []string{
	"Москва", "Санкт-Петербург", "Новосибирск", "Екатеринбург", "Казань",
	"Нижний Новгород", "Челябинск", "Самара", "Омск", "Ростов-на-Дону",
}
