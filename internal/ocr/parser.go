package ocr

import (
	"errors"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/szyszomat/KiedySmieciKRK/internal/locale"
)

var (
	// ErrUnsupportedInput is returned for empty recognized text.
	ErrUnsupportedInput = errors.New("recognized text is empty")
	// ErrUnparseable is returned when no collection dates were found.
	ErrUnparseable = errors.New("no collection dates found in recognized text")
)

// ScheduleRecord is the finished, immutable result of one parse: all
// collection dates (ascending, deduplicated by ISO date) and the same dates
// grouped by canonical waste category.
type ScheduleRecord struct {
	Address          string                      `json:"address"`
	HouseNumber      string                      `json:"house_number"`
	Dates            []CollectionDate            `json:"dates"`
	Categories       map[string][]CollectionDate `json:"categorized_schedule"`
	TotalCollections int                         `json:"total_collections"`
}

// Parser orchestrates the pipeline: normalize, extract and reconstruct
// dates, categorize, assemble. Every stage is a pure function over the text;
// a record is built fresh per call and never mutated afterwards.
type Parser struct {
	pack          *locale.Pack
	normalizer    *Normalizer
	extractor     *Extractor
	reconstructor *Reconstructor
	categorizer   *Categorizer

	// Threshold is the minimum token confidence for ParseTokens.
	Threshold float64

	addressFallback *regexp.Regexp
}

// NewParser builds the full pipeline for a locale pack.
func NewParser(pack *locale.Pack) *Parser {
	return &Parser{
		pack:            pack,
		normalizer:      NewNormalizer(pack),
		extractor:       NewExtractor(pack),
		reconstructor:   NewReconstructor(pack),
		categorizer:     NewCategorizer(pack),
		Threshold:       DefaultConfidenceThreshold,
		addressFallback: regexp.MustCompile(`(\p{L}+)\s+(\d+[a-z]*)\b`),
	}
}

// SetClock pins the clock used for year inference across all stages.
func (p *Parser) SetClock(now func() time.Time) {
	p.extractor.Now = now
	p.reconstructor.Now = now
	p.categorizer.Now = now
}

// ParseTokens joins the trusted recognized tokens and parses the result.
func (p *Parser) ParseTokens(tokens []Token) (*ScheduleRecord, error) {
	return p.Parse(JoinTokens(tokens, p.Threshold))
}

// Parse turns recognized text into a schedule record. Empty input returns
// ErrUnsupportedInput; text with no recognizable dates returns
// ErrUnparseable. Both are per-call outcomes, never faults.
func (p *Parser) Parse(text string) (*ScheduleRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrUnsupportedInput
	}

	clean := p.normalizer.Normalize(text)

	explicit := p.extractor.ExtractDates(clean)
	inferred := p.reconstructor.ReconstructMissingDates(clean)
	if len(explicit) == 0 && len(inferred) == 0 {
		return nil, ErrUnparseable
	}

	categories := p.categorizer.Categorize(clean, inferred)

	dates := p.mergeDates(explicit, inferred)
	address, houseNumber := p.extractAddress(clean)

	return &ScheduleRecord{
		Address:          address,
		HouseNumber:      houseNumber,
		Dates:            dates,
		Categories:       categories,
		TotalCollections: len(dates),
	}, nil
}

// mergeDates merges explicit and inferred dates, deduplicating by ISO date
// with explicit matches winning. Inferred category tokens are canonicalized
// for the record.
func (p *Parser) mergeDates(explicit, inferred []CollectionDate) []CollectionDate {
	dates := make([]CollectionDate, 0, len(explicit)+len(inferred))
	seen := make(map[string]bool, len(explicit))
	for _, d := range explicit {
		seen[d.ISODate] = true
		dates = append(dates, d)
	}
	for _, d := range inferred {
		if seen[d.ISODate] {
			continue
		}
		seen[d.ISODate] = true
		if d.Category != "" {
			d.Category = p.pack.Canonical(d.Category)
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].ISODate < dates[j].ISODate
	})
	return dates
}

// extractAddress pulls a best-effort address label out of the text. Cosmetic
// only: the hint pattern from the pack first, a generic word-plus-number
// fallback second, "Unknown" when neither hits.
func (p *Parser) extractAddress(text string) (string, string) {
	if p.pack.AddressHint != nil {
		if m := p.pack.AddressHint.FindStringSubmatch(text); m != nil {
			return capitalize(m[1]), m[2]
		}
	}
	if m := p.addressFallback.FindStringSubmatch(text); m != nil {
		return capitalize(m[1]), m[2]
	}
	return "Unknown", "Unknown"
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
