package exchange

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/phoneswap-api/internal/app"
	applog "github.com/rajivgeraev/phoneswap-api/internal/log"
	"github.com/rajivgeraev/phoneswap-api/internal/middleware"
	"github.com/rajivgeraev/phoneswap-api/internal/services/response"
)

// ExchangeService представляет сервис для работы с обменами
type ExchangeService struct {
	state *app.App
}

// NewExchangeService создает новый экземпляр ExchangeService
func NewExchangeService(state *app.App) *ExchangeService {
	return &ExchangeService{state: state}
}

// StartExchange открывает окно подтверждения обмена.
// Без listing_id используется объявление, открытое в карточке.
func (s *ExchangeService) StartExchange(c fiber.Ctx) error {
	var requestData struct {
		ListingID string `json:"listing_id"`
	}
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(&requestData); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
		}
	}

	screen, err := s.state.Session(middleware.CurrentUser(c)).StartExchange(requestData.ListingID)
	return response.Screen(c, screen, err)
}

// ConfirmExchange оформляет заявку на обмен со статусом pending
func (s *ExchangeService) ConfirmExchange(c fiber.Ctx) error {
	session := s.state.Session(middleware.CurrentUser(c))
	screen, err := session.ConfirmExchange(c)
	if err == nil {
		applog.Audit(c, "exchange.confirm", nil)
	}
	return response.Screen(c, screen, err)
}

// GetMyExchanges возвращает заявки пользователя
func (s *ExchangeService) GetMyExchanges(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"exchanges": s.state.Session(middleware.CurrentUser(c)).MyExchanges(),
	})
}
