package validate

import (
	"strings"
	"unicode/utf8"

	"github.com/rajivgeraev/phoneswap-api/internal/models"
)

const (
	maxFieldLen       = 100
	maxDescriptionLen = 1000
	maxQueryLen       = 50
)

// Required обрезает пробелы и проверяет, что поле не пустое.
// Слишком длинное значение обрезается до maxFieldLen символов.
func Required(s string) (string, bool) {
	s = clip(strings.TrimSpace(s), maxFieldLen)
	return s, s != ""
}

// Description обрезает пробелы и длину описания; пустое описание допустимо
func Description(s string) string {
	return clip(strings.TrimSpace(s), maxDescriptionLen)
}

// Condition проверяет значение из перечисления состояний
func Condition(s string) (models.Condition, bool) {
	c := models.Condition(strings.TrimSpace(s))
	return c, c.Valid()
}

// Query нормализует поисковый запрос. Пустой запрос означает всю ленту.
func Query(s string) string {
	return clip(strings.TrimSpace(s), maxQueryLen)
}

func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
