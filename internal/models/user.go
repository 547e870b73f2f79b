package models

import "strings"

// User – текущий пользователь, переданный хост-платформой (Telegram).
// Не сохраняется в хранилище.
type User struct {
	ID           int64  `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name,omitempty"`
	Username     string `json:"username,omitempty"`
	LanguageCode string `json:"language_code,omitempty"`
}

// DisplayName возвращает имя и фамилию через пробел
func (u *User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
