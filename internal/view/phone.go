package view

import "strings"

type brandRule struct {
	brand    string
	emoji    string
	keywords []string
}

var brandRules = []brandRule{
	{"iphone", "📱", []string{"iphone"}},
	{"samsung", "📲", []string{"samsung"}},
	{"xiaomi", "⚡", []string{"xiaomi", "redmi", "poco"}},
	{"google", "🔷", []string{"pixel"}},
	{"huawei", "🇨🇳", []string{"huawei", "honor"}},
}

func matchBrand(model string) brandRule {
	lower := strings.ToLower(model)
	for _, rule := range brandRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule
			}
		}
	}
	return brandRules[0]
}

// PhoneBrand определяет CSS-класс бренда по названию модели
func PhoneBrand(model string) string {
	return matchBrand(model).brand
}

// PhoneEmoji подбирает иконку бренда
func PhoneEmoji(model string) string {
	return matchBrand(model).emoji
}
