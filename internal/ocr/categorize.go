package ocr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/szyszomat/KiedySmieciKRK/internal/locale"
)

// Categorizer maps collection dates to canonical waste categories. The
// primary path re-matches "<weekday>, <day> <month> <address> <category>"
// spans on its own rather than reusing the extractor's output; the secondary
// path folds in dates the reconstructor inferred. The two paths can disagree
// on a category for the same date and no merge rule reconciles them; a date
// legitimately appears under several categories on multi-type days.
type Categorizer struct {
	pack *locale.Pack
	re   *regexp.Regexp
	Now  func() time.Time
}

// NewCategorizer builds a categorizer for the given locale pack.
func NewCategorizer(pack *locale.Pack) *Categorizer {
	pattern := `(?i)(\p{L}+)[,;]\s*(\d{1,2})\s+(\p{L}+)\s+([^,;]+?)\s+(` +
		pack.CategoryAlternation() + `)`
	return &Categorizer{
		pack: pack,
		re:   regexp.MustCompile(pattern),
		Now:  time.Now,
	}
}

// Categorize returns canonical category -> collection dates for the given
// normalized text plus the reconstructor's inferred dates. Spans whose month
// token is unknown or whose day is out of range are dropped silently.
func (c *Categorizer) Categorize(text string, inferred []CollectionDate) map[string][]CollectionDate {
	categorized := make(map[string][]CollectionDate)

	for _, m := range c.re.FindAllStringSubmatch(text, -1) {
		day, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		month, ok := c.pack.Months[strings.ToLower(m[3])]
		if !ok {
			continue
		}
		d, ok := newCollectionDate(c.inferYear(month), month, day, fmt.Sprintf("%s %s", m[2], m[3]))
		if !ok {
			continue
		}
		category := c.pack.Canonical(m[5])
		categorized[category] = append(categorized[category], d)
	}

	for _, d := range inferred {
		if d.Category == "" {
			continue
		}
		category := c.pack.Canonical(d.Category)
		entry := d
		entry.Category = ""
		categorized[category] = append(categorized[category], entry)
	}

	return categorized
}

func (c *Categorizer) inferYear(month time.Month) int {
	now := c.Now()
	if month <= time.March && now.Month() >= time.October {
		return now.Year() + 1
	}
	return now.Year()
}
