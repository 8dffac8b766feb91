package ocr

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/szyszomat/KiedySmieciKRK/internal/locale"
)

// Reconstructor infers plausible dates for schedule entries whose day number
// the recognition engine lost: spans shaped like
// "<weekday>, <month> <street> [<number>] <category>". It is a bounded
// mechanism by design: only months present in the locale pack's
// plausible-day table are covered, and a day absent from the table is never
// emitted.
type Reconstructor struct {
	pack *locale.Pack
	re   *regexp.Regexp
	Now  func() time.Time
}

// NewReconstructor builds a reconstructor for the given locale pack.
func NewReconstructor(pack *locale.Pack) *Reconstructor {
	pattern := `(?i)(` + pack.WeekdayAlternation() + `)[;,]\s*(` +
		pack.MonthAlternation() + `)\s+\p{L}+\s*\d*\s*(` +
		pack.CategoryAlternation() + `)`
	return &Reconstructor{
		pack: pack,
		re:   regexp.MustCompile(pattern),
		Now:  time.Now,
	}
}

type scheduleGroup struct {
	weekday time.Weekday
	month   time.Month
}

// ReconstructMissingDates scans normalized text for day-less schedule
// entries, groups them by (weekday, month) and assigns the first N plausible
// days to the N category mentions of each group. Groups with an unknown
// weekday or an uncovered month are skipped silently.
func (r *Reconstructor) ReconstructMissingDates(text string) []CollectionDate {
	groups := make(map[scheduleGroup][]string)
	var order []scheduleGroup

	for _, m := range r.re.FindAllStringSubmatch(text, -1) {
		weekday, ok := r.pack.Weekdays[strings.ToLower(m[1])]
		if !ok {
			continue
		}
		month, ok := r.pack.Months[strings.ToLower(m[2])]
		if !ok {
			continue
		}
		g := scheduleGroup{weekday: weekday, month: month}
		if _, exists := groups[g]; !exists {
			order = append(order, g)
		}
		groups[g] = append(groups[g], strings.ToLower(m[3]))
	}

	var dates []CollectionDate
	for _, g := range order {
		table, ok := r.pack.PlausibleDays[g.month]
		if !ok {
			continue
		}
		days := table[g.weekday]
		categories := groups[g]
		// One plausible day per category mention; mentions past the table's
		// length are dropped.
		n := len(categories)
		if n > len(days) {
			n = len(days)
		}
		year := r.inferYear(g.month)
		for i := 0; i < n; i++ {
			d, ok := newCollectionDate(year, g.month, days[i], fmt.Sprintf("%d %s", days[i], monthToken(g.month)))
			if !ok {
				continue
			}
			d.Inferred = true
			d.Category = categories[i]
			dates = append(dates, d)
		}
	}
	return dates
}

func (r *Reconstructor) inferYear(month time.Month) int {
	now := r.Now()
	if month <= time.March && now.Month() >= time.October {
		return now.Year() + 1
	}
	return now.Year()
}

func monthToken(m time.Month) string {
	return strings.ToLower(m.String())
}
