// Package response переводит результат команды App в HTTP-ответ
package response

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/phoneswap-api/internal/app"
	applog "github.com/rajivgeraev/phoneswap-api/internal/log"
)

// Screen отправляет экран. При ошибке команды экран тоже отправляется,
// чтобы клиент показал уведомление и сохраненную форму.
func Screen(c fiber.Ctx, screen app.Screen, err error) error {
	if err == nil {
		return c.JSON(screen)
	}

	status := Status(err)
	if status == fiber.StatusInternalServerError {
		applog.Error(c, "command.failed", err, nil)
	}

	message := screen.Notification
	if message == "" {
		message = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"error":  message,
		"screen": screen,
	})
}

// Status возвращает HTTP-код для ошибки команды
func Status(err error) int {
	switch {
	case errors.Is(err, app.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, app.ErrNoUser):
		return fiber.StatusUnauthorized
	case errors.Is(err, app.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, app.ErrNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}
