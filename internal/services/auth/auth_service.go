package auth

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/phoneswap-api/internal/auth"
	applog "github.com/rajivgeraev/phoneswap-api/internal/log"
	"github.com/rajivgeraev/phoneswap-api/internal/utils"
)

// AuthService – структура для обработки авторизации
type AuthService struct {
	verifier   *auth.Verifier
	jwtService *utils.JWTService
}

// NewAuthService – конструктор AuthService
func NewAuthService(verifier *auth.Verifier, jwtService *utils.JWTService) *AuthService {
	return &AuthService{
		verifier:   verifier,
		jwtService: jwtService,
	}
}

// TelegramAuthHandler проверяет initData, создает JWT и возвращает его
func (s *AuthService) TelegramAuthHandler(c fiber.Ctx) error {
	var payload struct {
		InitData string `json:"init_data"`
	}

	if err := c.Bind().Body(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request"})
	}

	// Проверяем подпись и достаем пользователя
	user, err := s.verifier.Verify(payload.InitData)
	if err != nil {
		applog.Warn(c, "auth.telegram.rejected", err, nil)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid Telegram data"})
	}

	// Генерируем JWT
	jwtToken, err := s.jwtService.GenerateToken(user)
	if err != nil {
		applog.Error(c, "auth.token", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate JWT"})
	}

	c.Locals(applog.UserIDKey, user.ID)
	applog.Info(c, "auth.telegram", nil)

	return c.JSON(fiber.Map{
		"token": jwtToken,
		"user":  user,
	})
}
