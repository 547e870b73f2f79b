package profile

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/phoneswap-api/internal/app"
	"github.com/rajivgeraev/phoneswap-api/internal/middleware"
)

// ProfileService отдает вкладку профиля
type ProfileService struct {
	state *app.App
}

// NewProfileService создает новый экземпляр ProfileService
func NewProfileService(state *app.App) *ProfileService {
	return &ProfileService{state: state}
}

// GetProfile переключает сессию на профиль и возвращает экран
func (s *ProfileService) GetProfile(c fiber.Ctx) error {
	screen := s.state.Session(middleware.CurrentUser(c)).SwitchTab(app.TabProfile)
	return c.JSON(screen)
}

// SetupRoutes регистрирует маршруты профиля
func (s *ProfileService) SetupRoutes(router *fiber.App, authMiddleware fiber.Handler) {
	router.Get("/api/profile", authMiddleware, s.GetProfile)
}
