// Package server собирает HTTP-приложение: middleware, сервисы и маршруты.
package server

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"github.com/rajivgeraev/phoneswap-api/internal/app"
	"github.com/rajivgeraev/phoneswap-api/internal/auth"
	"github.com/rajivgeraev/phoneswap-api/internal/config"
	applog "github.com/rajivgeraev/phoneswap-api/internal/log"
	"github.com/rajivgeraev/phoneswap-api/internal/middleware"
	authservice "github.com/rajivgeraev/phoneswap-api/internal/services/auth"
	"github.com/rajivgeraev/phoneswap-api/internal/services/exchange"
	"github.com/rajivgeraev/phoneswap-api/internal/services/listing"
	"github.com/rajivgeraev/phoneswap-api/internal/services/profile"
	"github.com/rajivgeraev/phoneswap-api/internal/services/session"
	webservice "github.com/rajivgeraev/phoneswap-api/internal/services/web"
	"github.com/rajivgeraev/phoneswap-api/internal/utils"
	"github.com/rajivgeraev/phoneswap-api/web"
)

// New создаёт экземпляр Fiber со всеми маршрутами
func New(cfg *config.Config, state *app.App) *fiber.App {
	server := fiber.New(fiber.Config{
		AppName:      "PhoneSwap API",
		ErrorHandler: errorHandler,
		Views:        web.Engine(),
		BodyLimit:    1 << 20,
	})

	// Добавляем middleware
	server.Use(recover.New())
	server.Use(requestid.New())
	if cfg.IsDevelopment() {
		server.Use(logger.New())
	}
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: false,
	}))

	// Авторизация: JWT сессии или подписанные initData
	jwtService := utils.NewJWTService(cfg.JWTSecret)
	verifier := auth.NewVerifier(cfg.TelegramBotToken, cfg.InitDataTTL)
	authMiddleware := middleware.AuthMiddleware(jwtService, verifier)
	optionalAuth := middleware.OptionalAuth(jwtService, verifier)

	// Регистрируем маршруты
	authservice.NewAuthService(verifier, jwtService).SetupRoutes(server)
	listing.NewListingService(state).SetupRoutes(server, authMiddleware, optionalAuth)
	exchange.NewExchangeService(state).SetupRoutes(server, authMiddleware)
	profile.NewProfileService(state).SetupRoutes(server, authMiddleware)
	session.NewSessionService(state).SetupRoutes(server, optionalAuth)
	webservice.NewWebService(state).SetupRoutes(server, optionalAuth)

	server.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	return server
}

// errorHandler обрабатывает ошибки Fiber
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	// Проверяем, является ли ошибка из Fiber
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	if code >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	}

	// Отправляем ошибку в JSON
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
