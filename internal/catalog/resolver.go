package catalog

import (
	"context"
	"strings"
	"unicode"
)

// Resolver matches free-text queries against the street and house-number
// catalogs. Catalogs are fetched lazily and memoized for the process
// lifetime; they change rarely enough that no TTL exists. The cache is a
// plain write-once map: callers that resolve concurrently own the locking.
type Resolver struct {
	source Source

	streets       []Entry
	streetsLoaded bool
	houseNumbers  map[string][]Entry
}

// NewResolver creates a resolver over the given catalog source.
func NewResolver(source Source) *Resolver {
	return &Resolver{
		source:       source,
		houseNumbers: make(map[string][]Entry),
	}
}

// ResolveStreet finds a street by name: case-insensitive exact match first,
// then the first entry (in upstream order) whose name contains the query.
func (r *Resolver) ResolveStreet(ctx context.Context, query string) (Entry, error) {
	streets, err := r.streetCatalog(ctx)
	if err != nil {
		return Entry{}, err
	}
	query = strings.TrimSpace(query)
	for _, s := range streets {
		if strings.EqualFold(s.Name, query) {
			return s, nil
		}
	}
	lower := strings.ToLower(query)
	for _, s := range streets {
		if strings.Contains(strings.ToLower(s.Name), lower) {
			return s, nil
		}
	}
	return Entry{}, ErrNotFound
}

// ResolveHouseNumber finds the best-scoring house number on a street.
// Ties keep the earlier catalog entry; an exact match stops the scan.
func (r *Resolver) ResolveHouseNumber(ctx context.Context, streetID, query string) (Entry, error) {
	numbers, err := r.houseNumberCatalog(ctx, streetID)
	if err != nil {
		return Entry{}, err
	}

	best := Candidate{}
	for _, h := range numbers {
		score := ScoreHouseNumber(query, h.Name)
		if score > best.Score {
			best = Candidate{Entry: h, Score: score}
			if score >= 100 {
				break
			}
		}
	}
	if best.Score > 0 {
		return best.Entry, nil
	}
	return Entry{}, ErrNotFound
}

func (r *Resolver) streetCatalog(ctx context.Context) ([]Entry, error) {
	if r.streetsLoaded {
		return r.streets, nil
	}
	streets, err := r.source.Streets(ctx)
	if err != nil {
		return nil, err
	}
	r.streets = streets
	r.streetsLoaded = true
	return streets, nil
}

func (r *Resolver) houseNumberCatalog(ctx context.Context, streetID string) ([]Entry, error) {
	if numbers, ok := r.houseNumbers[streetID]; ok {
		return numbers, nil
	}
	numbers, err := r.source.HouseNumbers(ctx, streetID)
	if err != nil {
		return nil, err
	}
	r.houseNumbers[streetID] = numbers
	return numbers, nil
}

// scoreRule is one step of the house-number scoring ladder. Rules run in
// order, first match wins, which keeps the tie-break semantics explicit.
type scoreRule struct {
	name  string
	score int
	match func(query, name string) bool
}

var houseNumberRules = []scoreRule{
	{"exact", 100, func(q, c string) bool {
		return q == c
	}},
	// Prefix rules inspect the remainder after stripping the query and
	// leading spaces. They encode real suffix shapes like "3 CA" or "1 DJ".
	{"prefix-letter-suffix", 97, func(q, c string) bool {
		r, ok := prefixRemainder(q, c)
		return ok && len(r) <= 2 && isLetters(r)
	}},
	{"prefix-spaced-suffix", 95, func(q, c string) bool {
		r, ok := prefixRemainder(q, c)
		if !ok {
			return false
		}
		i := strings.IndexByte(r, ' ')
		return i > 0 && isAlnum(r[i+1:])
	}},
	{"prefix-long-letter-suffix", 92, func(q, c string) bool {
		r, ok := prefixRemainder(q, c)
		return ok && isLetters(r)
	}},
	{"prefix-digit-suffix", 80, func(q, c string) bool {
		r, ok := prefixRemainder(q, c)
		return ok && strings.ContainsAny(r, "0123456789")
	}},
	{"prefix-other", 85, func(q, c string) bool {
		_, ok := prefixRemainder(q, c)
		return ok
	}},
	{"word-start", 75, func(q, c string) bool {
		if !strings.Contains(c, q) {
			return false
		}
		for _, word := range strings.Fields(c) {
			if strings.HasPrefix(word, q) {
				return true
			}
		}
		return false
	}},
	{"substring", 50, func(q, c string) bool {
		return strings.Contains(c, q)
	}},
}

// ScoreHouseNumber scores a candidate house-number name against the query.
// Both are compared upper-cased and trimmed; 0 means no match.
func ScoreHouseNumber(query, name string) int {
	q := strings.ToUpper(strings.TrimSpace(query))
	c := strings.ToUpper(strings.TrimSpace(name))
	if q == "" || c == "" {
		return 0
	}
	for _, rule := range houseNumberRules {
		if rule.match(q, c) {
			return rule.score
		}
	}
	return 0
}

// prefixRemainder returns the candidate with the query prefix stripped and
// left-trimmed. ok is false when the query is not a proper prefix.
func prefixRemainder(q, c string) (string, bool) {
	if !strings.HasPrefix(c, q) || c == q {
		return "", false
	}
	r := strings.TrimLeft(c[len(q):], " ")
	if r == "" {
		return "", false
	}
	return r, true
}

func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
