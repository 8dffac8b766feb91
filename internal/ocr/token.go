// Package ocr turns text recognized from a rasterized schedule image into
// dated, categorized waste-collection records. The recognition engine itself
// lives outside: this package consumes its confidence-scored token stream as
// plain data and performs no I/O.
package ocr

import "strings"

// DefaultConfidenceThreshold is the minimum recognition confidence for a
// token to be trusted.
const DefaultConfidenceThreshold = 0.3

// Token is one recognized text fragment with its confidence (0.0-1.0).
type Token struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// JoinTokens drops tokens at or below the confidence threshold and joins the
// rest, in upstream order, with single spaces.
func JoinTokens(tokens []Token, threshold float64) string {
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t.Confidence > threshold && t.Text != "" {
			parts = append(parts, t.Text)
		}
	}
	return strings.Join(parts, " ")
}
