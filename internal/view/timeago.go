package view

import "time"

// TimeAgo возвращает относительную метку времени создания объявления:
// до часа "только что", до суток часы, до недели дни, дальше дата.
func TimeAgo(created, now time.Time, loc *Locale) string {
	hours := int(now.Sub(created) / time.Hour)

	switch {
	case hours < 1:
		return loc.JustNow
	case hours < 24:
		return loc.HoursAgo(hours)
	case hours < 24*7:
		return loc.DaysAgo(hours / 24)
	default:
		return created.In(now.Location()).Format(loc.DateLayout)
	}
}
