package listing

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rajivgeraev/phoneswap-api/internal/app"
	applog "github.com/rajivgeraev/phoneswap-api/internal/log"
	"github.com/rajivgeraev/phoneswap-api/internal/middleware"
	"github.com/rajivgeraev/phoneswap-api/internal/services/response"
)

// ListingService представляет сервис для работы с объявлениями
type ListingService struct {
	state *app.App
}

// NewListingService создает новый экземпляр ListingService
func NewListingService(state *app.App) *ListingService {
	return &ListingService{state: state}
}

func (s *ListingService) session(c fiber.Ctx) *app.Session {
	return s.state.Session(middleware.CurrentUser(c))
}

// GetListings возвращает ленту. Параметр q включает поиск.
func (s *ListingService) GetListings(c fiber.Ctx) error {
	screen := s.session(c).Search(c.Query("q"))
	return c.JSON(screen)
}

// GetMyListings возвращает активные объявления пользователя
func (s *ListingService) GetMyListings(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"listings": s.session(c).MyCards(),
	})
}

// GetListing открывает карточку объявления
func (s *ListingService) GetListing(c fiber.Ctx) error {
	screen, err := s.session(c).OpenListing(c.Params("id"))
	return response.Screen(c, screen, err)
}

// SubmitListing создает объявление или сохраняет редактирование, если указан editing_id
func (s *ListingService) SubmitListing(c fiber.Ctx) error {
	var form app.Form
	if err := c.Bind().Body(&form); err != nil {
		applog.Warn(c, "listing.submit.bind", err, nil)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Неверный формат данных"})
	}

	screen, err := s.session(c).Submit(c, form)
	if err == nil {
		action := "listing.create"
		if form.EditingID != "" {
			action = "listing.update"
		}
		applog.Audit(c, action, map[string]any{"listing_id": form.EditingID, "phone_model": form.PhoneModel})
	}
	return response.Screen(c, screen, err)
}

// BeginEdit заполняет форму данными объявления
func (s *ListingService) BeginEdit(c fiber.Ctx) error {
	screen, err := s.session(c).BeginEdit(c.Params("id"))
	return response.Screen(c, screen, err)
}

// DeleteListing снимает объявление с публикации
func (s *ListingService) DeleteListing(c fiber.Ctx) error {
	id := c.Params("id")
	screen, err := s.session(c).Delete(c, id)
	if err == nil {
		applog.Audit(c, "listing.delete", map[string]any{"listing_id": id})
	}
	return response.Screen(c, screen, err)
}

// ContactOwner возвращает ссылку на профиль владельца в Telegram
func (s *ListingService) ContactOwner(c fiber.Ctx) error {
	screen, err := s.session(c).ContactOwner(c.Params("id"))
	return response.Screen(c, screen, err)
}
