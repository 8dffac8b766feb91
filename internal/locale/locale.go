// Package locale bundles everything language- and deployment-specific the
// schedule engine needs: month and weekday lexicons, the OCR correction
// table, the waste category lexicon, plausible-day tables and display names.
// The engine itself is locale-agnostic; it only ever sees a Pack.
package locale

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Canonical waste category labels.
const (
	CategoryMixed     = "Mixed Waste"
	CategoryBio       = "Bio/Organic"
	CategoryGlass     = "Glass"
	CategoryPaper     = "Paper"
	CategoryPlastic   = "Plastic"
	CategoryMetal     = "Metal"
	CategoryLarge     = "Large Items"
	CategoryGarden    = "Garden Waste"
	CategorySelective = "Selective/Recycling"
	CategoryOther     = "Other"
)

// Correction rewrites one known OCR misreading. Corrections run in order
// against the raw recognized text, before diacritic folding, so patterns may
// be diacritic-aware. When is optional: if set, the replacement applies only
// when the whole text also matches it (day-of-week context fixes).
type Correction struct {
	Pattern     *regexp.Regexp
	Replacement string
	When        *regexp.Regexp
}

// Pack is an injected locale configuration for the schedule engine.
type Pack struct {
	// Months maps every accepted spelling (inflected, folded, truncated)
	// to its month.
	Months map[string]time.Month

	// Weekdays maps accepted weekday spellings to time.Weekday.
	Weekdays map[string]time.Weekday

	// Corrections is the ordered OCR error correction table.
	Corrections []Correction

	// Categories maps waste tokens to canonical labels. SubstringCategories
	// match when a token merely contains the key.
	Categories          map[string]string
	SubstringCategories map[string]string

	// CategoryTokens are the waste tokens recognized inside schedule spans.
	CategoryTokens []string

	// PlausibleDays lists, per covered month and weekday, the days a
	// collection can plausibly fall on. The reconstructor never emits a day
	// absent from this table; months absent here are skipped entirely.
	PlausibleDays map[time.Month]map[time.Weekday][]int

	// AddressHint anchors the cosmetic address extraction (optional).
	AddressHint *regexp.Regexp

	// Display names for presentation layers.
	WeekdayNames  map[time.Weekday]string
	CategoryNames map[string]string
}

// Canonical maps a waste token to its canonical category label.
// Unrecognized tokens map to CategoryOther.
func (p *Pack) Canonical(token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if c, ok := p.Categories[token]; ok {
		return c
	}
	for sub, c := range p.SubstringCategories {
		if strings.Contains(token, sub) {
			return c
		}
	}
	return CategoryOther
}

// MonthAlternation returns a regexp alternation over all accepted month
// spellings, longest first so inflected forms win over truncations.
func (p *Pack) MonthAlternation() string {
	return alternation(keys(p.Months))
}

// WeekdayAlternation returns a regexp alternation over all accepted weekday
// spellings.
func (p *Pack) WeekdayAlternation() string {
	return alternation(keys(p.Weekdays))
}

// CategoryAlternation returns a regexp alternation over the waste tokens.
func (p *Pack) CategoryAlternation() string {
	return alternation(p.CategoryTokens)
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// alternation sorts longest-first: Go regexps use leftmost-first alternation,
// so a short form would otherwise shadow its longer inflections.
func alternation(words []string) string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	quoted := make([]string, len(sorted))
	for i, w := range sorted {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return strings.Join(quoted, "|")
}
