package locale

import (
	"time"
)

// PublicHolidays returns all Polish public holidays for the given year,
// keyed by ISO date. Hosts use this to flag collection dates that land on a
// holiday, which usually means the recognition step misread a day number.
func PublicHolidays(year int) map[string]string {
	holidays := make(map[string]string)

	// Fixed holidays
	holidays[formatDate(year, 1, 1)] = "Nowy Rok"
	holidays[formatDate(year, 1, 6)] = "Trzech Króli"
	holidays[formatDate(year, 5, 1)] = "Święto Pracy"
	holidays[formatDate(year, 5, 3)] = "Święto Konstytucji 3 Maja"
	holidays[formatDate(year, 8, 15)] = "Wniebowzięcie NMP"
	holidays[formatDate(year, 11, 1)] = "Wszystkich Świętych"
	holidays[formatDate(year, 11, 11)] = "Święto Niepodległości"
	holidays[formatDate(year, 12, 25)] = "Boże Narodzenie (1. dzień)"
	holidays[formatDate(year, 12, 26)] = "Boże Narodzenie (2. dzień)"

	// Easter-based holidays (movable)
	easter := calculateEaster(year)

	holidays[formatDateFromTime(easter)] = "Wielkanoc"
	holidays[formatDateFromTime(easter.AddDate(0, 0, 1))] = "Poniedziałek Wielkanocny"
	holidays[formatDateFromTime(easter.AddDate(0, 0, 49))] = "Zielone Świątki"
	holidays[formatDateFromTime(easter.AddDate(0, 0, 60))] = "Boże Ciało"

	return holidays
}

// calculateEaster calculates Easter Sunday using the Meeus/Jones/Butcher algorithm
func calculateEaster(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	// Use noon to avoid timezone issues when formatting to YYYY-MM-DD
	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
}

// formatDate formats a date as YYYY-MM-DD
func formatDate(year, month, day int) string {
	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// formatDateFromTime formats a time.Time as YYYY-MM-DD
func formatDateFromTime(t time.Time) string {
	return t.Format("2006-01-02")
}
