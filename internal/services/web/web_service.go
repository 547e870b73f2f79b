package web

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/phoneswap-api/internal/app"
	"github.com/rajivgeraev/phoneswap-api/internal/middleware"
)

// WebService отдает HTML-страницу мини-приложения
type WebService struct {
	state *app.App
}

// NewWebService создает новый экземпляр WebService
func NewWebService(state *app.App) *WebService {
	return &WebService{state: state}
}

// Page отрисовывает страницу целиком
func (s *WebService) Page(c fiber.Ctx) error {
	return s.render(c, "index")
}

// Screen отрисовывает только содержимое экрана, скрипт страницы подставляет его после команд
func (s *WebService) Screen(c fiber.Ctx) error {
	return s.render(c, "screen")
}

// render применяет параметры навигации из запроса: tab, q и listing
func (s *WebService) render(c fiber.Ctx, name string) error {
	session := s.state.Session(middleware.CurrentUser(c))

	screen := session.Navigate(app.Tab(c.Query("tab")), c.Query("q"), c.Query("listing"))

	locale := session.Locale()
	return c.Render(name, fiber.Map{
		"Screen": screen,
		"L":      locale,
		"Lang":   locale.Tag.String(),
	})
}

// SetupRoutes регистрирует страницы
func (s *WebService) SetupRoutes(router *fiber.App, optionalAuth fiber.Handler) {
	router.Get("/", optionalAuth, s.Page)
	router.Get("/screen", optionalAuth, s.Screen)
}
