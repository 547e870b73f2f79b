package session

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/phoneswap-api/internal/app"
	"github.com/rajivgeraev/phoneswap-api/internal/middleware"
)

// SessionService управляет UI-состоянием: вкладками и модальными окнами
type SessionService struct {
	state *app.App
}

// NewSessionService создает новый экземпляр SessionService
func NewSessionService(state *app.App) *SessionService {
	return &SessionService{state: state}
}

// GetScreen возвращает текущий экран
func (s *SessionService) GetScreen(c fiber.Ctx) error {
	return c.JSON(s.state.Session(middleware.CurrentUser(c)).Screen())
}

// SwitchTab переключает вкладку
func (s *SessionService) SwitchTab(c fiber.Ctx) error {
	var requestData struct {
		Tab app.Tab `json:"tab"`
	}
	if err := c.Bind().Body(&requestData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}
	if !requestData.Tab.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неизвестная вкладка"})
	}

	return c.JSON(s.state.Session(middleware.CurrentUser(c)).SwitchTab(requestData.Tab))
}

// CloseModals закрывает карточку и окно обмена
func (s *SessionService) CloseModals(c fiber.Ctx) error {
	return c.JSON(s.state.Session(middleware.CurrentUser(c)).CloseModals())
}

// SetupRoutes регистрирует маршруты сессии
func (s *SessionService) SetupRoutes(router *fiber.App, optionalAuth fiber.Handler) {
	api := router.Group("/api/session", optionalAuth)
	api.Get("/", s.GetScreen)
	api.Post("/tab", s.SwitchTab)
	api.Post("/close", s.CloseModals)
}
