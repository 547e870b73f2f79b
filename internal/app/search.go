package app

import (
	"strings"

	"github.com/rajivgeraev/phoneswap-api/internal/models"
)

// Search отбирает активные объявления, у которых модель, желаемый телефон
// или описание содержат запрос без учета регистра. Пустой запрос возвращает все активные.
func Search(listings []models.Listing, query string) []models.Listing {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Listing, 0, len(listings))
	for _, l := range listings {
		if !l.IsActive() {
			continue
		}
		if q == "" || matches(l, q) {
			out = append(out, l)
		}
	}
	return out
}

func matches(l models.Listing, q string) bool {
	for _, field := range []string{l.PhoneModel, l.DesiredPhone, l.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
