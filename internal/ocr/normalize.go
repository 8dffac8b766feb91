package ocr

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/szyszomat/KiedySmieciKRK/internal/locale"
)

// Normalizer cleans recognized text before extraction. The pipeline order is
// fixed: corrections first (patterns are diacritic-aware), then diacritic
// folding, then lower-casing. Downstream stages still tolerate residual
// unfolded forms since the correction table reintroduces some.
type Normalizer struct {
	pack *locale.Pack
	fold transform.Transformer
}

// NewNormalizer builds a normalizer for the given locale pack.
func NewNormalizer(pack *locale.Pack) *Normalizer {
	return &Normalizer{
		pack: pack,
		// NFD + mark stripping folds most Polish diacritics; ł has no
		// combining-mark decomposition and needs its own mapping.
		fold: transform.Chain(
			runes.Map(func(r rune) rune {
				switch r {
				case 'ł':
					return 'l'
				case 'Ł':
					return 'L'
				}
				return r
			}),
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		),
	}
}

// Normalize applies the OCR correction table, folds diacritics and
// lower-cases the result.
func (n *Normalizer) Normalize(raw string) string {
	text := raw
	for _, c := range n.pack.Corrections {
		if c.When != nil && !c.When.MatchString(text) {
			continue
		}
		text = c.Pattern.ReplaceAllString(text, c.Replacement)
	}
	if folded, _, err := transform.String(n.fold, text); err == nil {
		text = folded
	}
	return strings.ToLower(text)
}
