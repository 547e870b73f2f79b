package view

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/rajivgeraev/phoneswap-api/internal/models"
)

// Locale – набор строк интерфейса для одного языка
type Locale struct {
	Tag        language.Tag
	DateLayout string
	Conditions map[models.Condition]string

	JustNow  string
	hoursAgo func(n int) string
	daysAgo  func(n int) string

	ExchangeFor     string
	MyListingBadge  string
	NoDescription   string
	EmptyFeedTitle  string
	EmptyFeedText   string
	EmptyFeedAction string
	NothingFound    string

	ActionEdit          string
	ActionDelete        string
	ActionStartExchange string
	ActionContactOwner  string

	NotifyPublished      string
	NotifyUpdated        string
	NotifyFillRequired   string
	NotifyBadCondition   string
	NotifyNoUser         string
	NotifyEditing        string
	NotifyDeleted        string
	NotifyExchangeDone   string
	NotifyContactOwner   string
	NotifyContactNoOwner string

	// подписи страницы
	TabFeed           string
	TabCreate         string
	TabProfile        string
	SearchPlaceholder string
	FormPhoneModel    string
	FormCondition     string
	FormDescription   string
	FormDesiredPhone  string
	FormPublish       string
	FormSave          string
	ProfileListings   string
	ProfileExchanges  string
	ProfileNoUser     string
	ExchangeTitle     string
	ExchangeFee       string
	ExchangeConfirm   string
	Close             string
}

var russian = &Locale{
	Tag:        language.Russian,
	DateLayout: "02.01.2006",
	Conditions: map[models.Condition]string{
		models.ConditionNew:          "Новый",
		models.ConditionExcellent:    "Отличное",
		models.ConditionGood:         "Хорошее",
		models.ConditionSatisfactory: "Удовлетворительное",
	},
	JustNow:  "только что",
	hoursAgo: func(n int) string { return fmt.Sprintf("%d ч назад", n) },
	daysAgo:  func(n int) string { return fmt.Sprintf("%d д назад", n) },

	ExchangeFor:     "Обмен на",
	MyListingBadge:  "Ваше объявление",
	NoDescription:   "Описание не указано",
	EmptyFeedTitle:  "📱 Пока нет объявлений",
	EmptyFeedText:   "Будьте первым, кто создаст объявление!",
	EmptyFeedAction: "➕ Создать первое объявление",
	NothingFound:    "🔍 Ничего не найдено",

	ActionEdit:          "✏️ Редактировать",
	ActionDelete:        "🗑️ Удалить",
	ActionStartExchange: "🔄 Начать обмен",
	ActionContactOwner:  "💌 Написать продавцу",

	NotifyPublished:      "✅ Объявление успешно опубликовано!",
	NotifyUpdated:        "✅ Объявление обновлено!",
	NotifyFillRequired:   "❌ Заполните все обязательные поля",
	NotifyBadCondition:   "❌ Выберите состояние телефона",
	NotifyNoUser:         "❌ Ошибка: пользователь не определен",
	NotifyEditing:        "✏️ Редактируйте ваше объявление",
	NotifyDeleted:        "🗑️ Объявление удалено",
	NotifyExchangeDone:   "🔄 Обмен оформлен! С вами свяжется гарант в течение 24 часов.",
	NotifyContactOwner:   "💌 Напишите пользователю в Telegram для обсуждения обмена",
	NotifyContactNoOwner: "💌 Продавец не указал имя пользователя в Telegram",

	TabFeed:           "📱 Лента",
	TabCreate:         "➕ Создать",
	TabProfile:        "👤 Профиль",
	SearchPlaceholder: "Поиск по модели или описанию",
	FormPhoneModel:    "Модель телефона",
	FormCondition:     "Состояние",
	FormDescription:   "Описание",
	FormDesiredPhone:  "На что хотите обменять",
	FormPublish:       "Опубликовать",
	FormSave:          "Сохранить изменения",
	ProfileListings:   "Активных объявлений",
	ProfileExchanges:  "Обменов",
	ProfileNoUser:     "Откройте приложение из Telegram, чтобы увидеть профиль",
	ExchangeTitle:     "🔄 Безопасный обмен",
	ExchangeFee:       "Комиссия гаранта",
	ExchangeConfirm:   "Подтвердить обмен",
	Close:             "Закрыть",
}

var english = &Locale{
	Tag:        language.English,
	DateLayout: "1/2/2006",
	Conditions: map[models.Condition]string{
		models.ConditionNew:          "New",
		models.ConditionExcellent:    "Excellent",
		models.ConditionGood:         "Good",
		models.ConditionSatisfactory: "Satisfactory",
	},
	JustNow: "just now",
	hoursAgo: func(n int) string {
		if n == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", n)
	},
	daysAgo: func(n int) string {
		if n == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", n)
	},

	ExchangeFor:     "Swap for",
	MyListingBadge:  "Your listing",
	NoDescription:   "No description",
	EmptyFeedTitle:  "📱 No listings yet",
	EmptyFeedText:   "Be the first to post one!",
	EmptyFeedAction: "➕ Create the first listing",
	NothingFound:    "🔍 Nothing found",

	ActionEdit:          "✏️ Edit",
	ActionDelete:        "🗑️ Delete",
	ActionStartExchange: "🔄 Start exchange",
	ActionContactOwner:  "💌 Message the owner",

	NotifyPublished:      "✅ Listing published!",
	NotifyUpdated:        "✅ Listing updated!",
	NotifyFillRequired:   "❌ Fill in all required fields",
	NotifyBadCondition:   "❌ Choose the phone condition",
	NotifyNoUser:         "❌ Error: user is not defined",
	NotifyEditing:        "✏️ Edit your listing",
	NotifyDeleted:        "🗑️ Listing deleted",
	NotifyExchangeDone:   "🔄 Exchange arranged! A guarantor will contact you within 24 hours.",
	NotifyContactOwner:   "💌 Message the user on Telegram to discuss the exchange",
	NotifyContactNoOwner: "💌 The owner has no Telegram username",

	TabFeed:           "📱 Feed",
	TabCreate:         "➕ Create",
	TabProfile:        "👤 Profile",
	SearchPlaceholder: "Search by model or description",
	FormPhoneModel:    "Phone model",
	FormCondition:     "Condition",
	FormDescription:   "Description",
	FormDesiredPhone:  "What do you want in exchange",
	FormPublish:       "Publish",
	FormSave:          "Save changes",
	ProfileListings:   "Active listings",
	ProfileExchanges:  "Exchanges",
	ProfileNoUser:     "Open the app from Telegram to see your profile",
	ExchangeTitle:     "🔄 Safe exchange",
	ExchangeFee:       "Guarantor fee",
	ExchangeConfirm:   "Confirm exchange",
	Close:             "Close",
}

var (
	locales = []*Locale{russian, english}
	matcher = language.NewMatcher([]language.Tag{language.Russian, language.English})
)

// LocaleFor подбирает локаль по коду языка Telegram (language_code).
// Если код пустой или не распознан, используется fallback, а затем русский.
func LocaleFor(code, fallback string) *Locale {
	for _, c := range []string{code, fallback} {
		if c == "" {
			continue
		}
		tag, err := language.Parse(c)
		if err != nil {
			continue
		}
		_, idx, conf := matcher.Match(tag)
		if conf == language.No {
			continue
		}
		return locales[idx]
	}
	return russian
}

// HoursAgo форматирует "N часов назад"
func (l *Locale) HoursAgo(n int) string { return l.hoursAgo(n) }

// DaysAgo форматирует "N дней назад"
func (l *Locale) DaysAgo(n int) string { return l.daysAgo(n) }

// ConditionText переводит состояние в текст для показа
func (l *Locale) ConditionText(c models.Condition) string {
	if text, ok := l.Conditions[c]; ok {
		return text
	}
	return string(c)
}
