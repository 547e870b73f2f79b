// Package auth проверяет данные запуска мини-приложения (initData),
// которые Telegram передает вместо логина и пароля.
package auth

import (
	"errors"
	"fmt"
	"time"

	initdata "github.com/telegram-mini-apps/init-data-golang"

	"github.com/rajivgeraev/phoneswap-api/internal/models"
)

var (
	// ErrInvalidInitData – подпись не сошлась, данные просрочены или повреждены
	ErrInvalidInitData = errors.New("недействительные данные Telegram")
	// ErrNoTelegramUser – данные подписаны, но пользователь в них не передан
	ErrNoTelegramUser = errors.New("в данных Telegram нет пользователя")
)

// Verifier проверяет initData токеном бота
type Verifier struct {
	botToken string
	ttl      time.Duration
}

// NewVerifier создаёт Verifier. ttl ограничивает возраст auth_date; 0 отключает проверку срока.
func NewVerifier(botToken string, ttl time.Duration) *Verifier {
	return &Verifier{botToken: botToken, ttl: ttl}
}

// Verify проверяет подпись initData и возвращает текущего пользователя
func (v *Verifier) Verify(raw string) (*models.User, error) {
	if err := initdata.Validate(raw, v.botToken, v.ttl); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInitData, err)
	}

	data, err := initdata.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInitData, err)
	}
	if data.User.ID == 0 {
		return nil, ErrNoTelegramUser
	}

	return &models.User{
		ID:           data.User.ID,
		FirstName:    data.User.FirstName,
		LastName:     data.User.LastName,
		Username:     data.User.Username,
		LanguageCode: data.User.LanguageCode,
	}, nil
}
