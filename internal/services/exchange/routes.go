package exchange

import (
	"github.com/gofiber/fiber/v3"
)

// SetupRoutes настраивает маршруты для API обменов
func (s *ExchangeService) SetupRoutes(app *fiber.App, authMiddleware fiber.Handler) {
	// Группа для API обменов
	api := app.Group("/api/exchanges")

	// Защищенные маршруты (требуют авторизации)
	api.Use(authMiddleware)

	api.Post("/start", s.StartExchange)
	api.Post("/confirm", s.ConfirmExchange)
	api.Get("/", s.GetMyExchanges)
}
