package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/phoneswap-api/internal/auth"
	applog "github.com/rajivgeraev/phoneswap-api/internal/log"
	"github.com/rajivgeraev/phoneswap-api/internal/models"
	"github.com/rajivgeraev/phoneswap-api/internal/utils"
)

// UserKey – ключ fiber.Locals с *models.User текущего запроса
const UserKey = "user"

var (
	errMissingHeader = errors.New("Missing authorization header")
	errBadHeader     = errors.New("Invalid authorization header format")
)

// AuthMiddleware создаёт middleware, которое требует пользователя.
// Принимает "Bearer <jwt>" или "tma <initData>" в заголовке Authorization.
func AuthMiddleware(jwtService *utils.JWTService, verifier *auth.Verifier) fiber.Handler {
	return func(c fiber.Ctx) error {
		user, err := resolveUser(c, jwtService, verifier)
		if err != nil {
			applog.Warn(c, "auth.rejected", err, nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		setUser(c, user)
		return c.Next()
	}
}

// OptionalAuth определяет пользователя, если заголовок есть и валиден.
// Без него запрос идет дальше анонимно: лента и поиск доступны без входа.
func OptionalAuth(jwtService *utils.JWTService, verifier *auth.Verifier) fiber.Handler {
	return func(c fiber.Ctx) error {
		user, err := resolveUser(c, jwtService, verifier)
		if err == nil {
			setUser(c, user)
		} else if !errors.Is(err, errMissingHeader) {
			applog.Warn(c, "auth.ignored", err, nil)
		}
		return c.Next()
	}
}

// CurrentUser возвращает пользователя, найденного middleware, или nil
func CurrentUser(c fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}

func setUser(c fiber.Ctx, user *models.User) {
	c.Locals(UserKey, user)
	c.Locals(applog.UserIDKey, user.ID)
}

func resolveUser(c fiber.Ctx, jwtService *utils.JWTService, verifier *auth.Verifier) (*models.User, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, errMissingHeader
	}

	// Проверяем схему: Bearer для токена сессии, tma для сырых initData
	scheme, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || credentials == "" {
		return nil, errBadHeader
	}

	switch {
	case strings.EqualFold(scheme, "Bearer"):
		user, err := jwtService.ParseUser(credentials)
		if err != nil {
			return nil, errors.New("Invalid or expired token")
		}
		return user, nil
	case strings.EqualFold(scheme, "tma") && verifier != nil:
		user, err := verifier.Verify(credentials)
		if err != nil {
			return nil, errors.New("Invalid Telegram data")
		}
		return user, nil
	}
	return nil, errBadHeader
}
