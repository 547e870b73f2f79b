package listing

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"

	applog "github.com/rajivgeraev/phoneswap-api/internal/log"
)

// SetupRoutes настраивает маршруты для API объявлений.
// Лента, карточка и форма доступны анонимно: создание без пользователя вернет 401 с уведомлением.
func (s *ListingService) SetupRoutes(app *fiber.App, authMiddleware, optionalAuth fiber.Handler) {
	api := app.Group("/api/listings")

	searchLimiter := limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
		LimitReached: func(c fiber.Ctx) error {
			applog.Warn(c, "rate.search.hit", nil, nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Слишком много запросов, попробуйте позже"})
		},
	})
	createLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c fiber.Ctx) error {
			applog.Warn(c, "rate.create.hit", nil, nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "Слишком много объявлений, попробуйте позже"})
		},
	})

	// Публичные маршруты
	api.Get("/", optionalAuth, searchLimiter, s.GetListings)
	api.Post("/", optionalAuth, createLimiter, s.SubmitListing)

	// Защищенные маршруты
	api.Get("/my", authMiddleware, s.GetMyListings)
	api.Get("/:id/edit", authMiddleware, s.BeginEdit)
	api.Delete("/:id", authMiddleware, s.DeleteListing)

	api.Get("/:id", optionalAuth, s.GetListing)
	api.Post("/:id/contact", optionalAuth, s.ContactOwner)
}
