package ocr

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/szyszomat/KiedySmieciKRK/internal/locale"
)

// CollectionDate is one waste-collection date extracted from the schedule.
// ISODate is the identity: records deduplicate on it.
type CollectionDate struct {
	ISODate   string `json:"date"`
	Formatted string `json:"formatted"`
	Weekday   string `json:"weekday"`
	RawText   string `json:"raw_text"`
	Inferred  bool   `json:"inferred,omitempty"`
	Category  string `json:"waste_type,omitempty"`
}

// dateForm tags the syntactic shape a date was matched in. Every form
// normalizes to a (day, month, year) triple.
type dateForm int

const (
	monthNameForm dateForm = iota
	numericLongYear
	numericShortYear
	spacedNumeric
)

type datePattern struct {
	form dateForm
	re   *regexp.Regexp
}

// Extractor finds explicit calendar dates in normalized text. Now is the
// clock used for year inference; tests pin it.
type Extractor struct {
	pack     *locale.Pack
	patterns []datePattern
	Now      func() time.Time
}

// NewExtractor builds an extractor for the given locale pack.
func NewExtractor(pack *locale.Pack) *Extractor {
	months := pack.MonthAlternation()
	return &Extractor{
		pack: pack,
		// Precedence order: month-name form wins the first-seen slot for a
		// date that several patterns match; dedup by ISO date is the
		// backstop, not pattern exclusivity.
		patterns: []datePattern{
			{monthNameForm, regexp.MustCompile(`(?i)\b(\d{1,2})\s+(` + months + `)\b`)},
			{numericLongYear, regexp.MustCompile(`\b(\d{1,2})[./-](\d{1,2})[./-](\d{4})\b`)},
			{numericShortYear, regexp.MustCompile(`\b(\d{1,2})[./-](\d{1,2})[./-](\d{2})\b`)},
			{spacedNumeric, regexp.MustCompile(`\b(\d{1,2})\s+(\d{1,2})\s+(\d{4})\b`)},
		},
		Now: time.Now,
	}
}

// ExtractDates returns all explicit dates found in text, ascending by ISO
// date and deduplicated. Matches that do not form a valid calendar date are
// dropped silently; one corrupt line never invalidates the rest.
func (e *Extractor) ExtractDates(text string) []CollectionDate {
	var dates []CollectionDate
	seen := make(map[string]bool)

	for _, p := range e.patterns {
		for _, m := range p.re.FindAllStringSubmatch(text, -1) {
			day, month, year, ok := e.resolve(p.form, m)
			if !ok {
				continue
			}
			t, ok := makeDate(year, month, day)
			if !ok {
				continue
			}
			iso := t.Format("2006-01-02")
			if seen[iso] {
				continue
			}
			seen[iso] = true
			dates = append(dates, CollectionDate{
				ISODate:   iso,
				Formatted: t.Format("02.01.2006"),
				Weekday:   t.Weekday().String(),
				RawText:   m[0],
			})
		}
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].ISODate < dates[j].ISODate
	})
	return dates
}

// resolve normalizes one pattern match to a (day, month, year) triple.
func (e *Extractor) resolve(form dateForm, m []string) (day int, month time.Month, year int, ok bool) {
	day, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, 0, 0, false
	}

	switch form {
	case monthNameForm:
		month, ok = e.pack.Months[strings.ToLower(m[2])]
		if !ok {
			return 0, 0, 0, false
		}
		return day, month, e.inferYear(month), true

	case numericLongYear, numericShortYear, spacedNumeric:
		mn, err := strconv.Atoi(m[2])
		if err != nil || mn < 1 || mn > 12 {
			return 0, 0, 0, false
		}
		ys := m[3]
		if form == numericShortYear {
			ys = "20" + ys
		}
		year, err = strconv.Atoi(ys)
		if err != nil {
			return 0, 0, 0, false
		}
		return day, time.Month(mn), year, true
	}
	return 0, 0, 0, false
}

// inferYear picks the schedule year for dates written without one. Early
// months seen late in the real year belong to next year's schedule.
func (e *Extractor) inferYear(month time.Month) int {
	now := e.Now()
	if month <= time.March && now.Month() >= time.October {
		return now.Year() + 1
	}
	return now.Year()
}

// makeDate validates a calendar triple. time.Date normalizes overflow
// (Feb 31 becomes Mar 2), so the round-trip check catches invalid days.
func makeDate(year int, month time.Month, day int) (time.Time, bool) {
	if day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// newCollectionDate builds a validated CollectionDate for a triple, or
// reports that the triple is not a real calendar date.
func newCollectionDate(year int, month time.Month, day int, raw string) (CollectionDate, bool) {
	t, ok := makeDate(year, month, day)
	if !ok {
		return CollectionDate{}, false
	}
	if raw == "" {
		raw = fmt.Sprintf("%d.%d.%d", day, month, year)
	}
	return CollectionDate{
		ISODate:   t.Format("2006-01-02"),
		Formatted: t.Format("02.01.2006"),
		Weekday:   t.Weekday().String(),
		RawText:   raw,
	}, true
}
