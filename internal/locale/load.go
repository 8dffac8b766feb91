package locale

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// packFile is the YAML shape of a locale pack. Regexes are plain strings and
// get compiled on load; weekdays are English names so packs stay readable.
type packFile struct {
	Months      map[string]int    `yaml:"months"`
	Weekdays    map[string]string `yaml:"weekdays"`
	Corrections []struct {
		Pattern     string `yaml:"pattern"`
		Replacement string `yaml:"replacement"`
		When        string `yaml:"when"`
	} `yaml:"corrections"`
	Categories          map[string]string        `yaml:"categories"`
	SubstringCategories map[string]string        `yaml:"substring_categories"`
	CategoryTokens      []string                 `yaml:"category_tokens"`
	PlausibleDays       map[int]map[string][]int `yaml:"plausible_days"`
	AddressHint         string                   `yaml:"address_hint"`
	WeekdayNames        map[string]string        `yaml:"weekday_names"`
	CategoryNames       map[string]string        `yaml:"category_names"`
}

var weekdayByName = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Load reads a locale pack from a YAML file. Fixture packs let the engine be
// tested against synthetic locales instead of the built-in Polish tables.
func Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read locale pack: %w", err)
	}
	var pf packFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("decode locale pack %s: %w", path, err)
	}
	return pf.compile()
}

func (pf *packFile) compile() (*Pack, error) {
	if len(pf.Months) == 0 {
		return nil, fmt.Errorf("locale pack has no months")
	}
	p := &Pack{
		Months:              make(map[string]time.Month, len(pf.Months)),
		Weekdays:            make(map[string]time.Weekday, len(pf.Weekdays)),
		Categories:          pf.Categories,
		SubstringCategories: pf.SubstringCategories,
		CategoryTokens:      pf.CategoryTokens,
		PlausibleDays:       make(map[time.Month]map[time.Weekday][]int, len(pf.PlausibleDays)),
		WeekdayNames:        make(map[time.Weekday]string, len(pf.WeekdayNames)),
		CategoryNames:       pf.CategoryNames,
	}
	for name, m := range pf.Months {
		if m < 1 || m > 12 {
			return nil, fmt.Errorf("month %q out of range: %d", name, m)
		}
		p.Months[strings.ToLower(name)] = time.Month(m)
	}
	for name, wd := range pf.Weekdays {
		day, ok := weekdayByName[strings.ToLower(wd)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q for %q", wd, name)
		}
		p.Weekdays[strings.ToLower(name)] = day
	}
	for _, c := range pf.Corrections {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("correction pattern %q: %w", c.Pattern, err)
		}
		corr := Correction{Pattern: re, Replacement: c.Replacement}
		if c.When != "" {
			when, err := regexp.Compile(c.When)
			if err != nil {
				return nil, fmt.Errorf("correction guard %q: %w", c.When, err)
			}
			corr.When = when
		}
		p.Corrections = append(p.Corrections, corr)
	}
	for m, table := range pf.PlausibleDays {
		if m < 1 || m > 12 {
			return nil, fmt.Errorf("plausible-day month out of range: %d", m)
		}
		byWeekday := make(map[time.Weekday][]int, len(table))
		for wd, days := range table {
			day, ok := weekdayByName[strings.ToLower(wd)]
			if !ok {
				return nil, fmt.Errorf("unknown weekday %q in plausible-day table", wd)
			}
			byWeekday[day] = days
		}
		p.PlausibleDays[time.Month(m)] = byWeekday
	}
	if pf.AddressHint != "" {
		re, err := regexp.Compile(pf.AddressHint)
		if err != nil {
			return nil, fmt.Errorf("address hint %q: %w", pf.AddressHint, err)
		}
		p.AddressHint = re
	}
	for wd, name := range pf.WeekdayNames {
		day, ok := weekdayByName[strings.ToLower(wd)]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q in weekday names", wd)
		}
		p.WeekdayNames[day] = name
	}
	return p, nil
}
