// Package catalog resolves free-text street and house-number queries against
// the upstream catalogs. Entry order is preserved end to end: the street
// substring match is first-hit, not best-hit, so upstream ordering is part of
// the matching semantics.
package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no catalog entry matches a query. It is a
// recoverable per-call outcome, not a fault.
var ErrNotFound = errors.New("no matching catalog entry")

// Entry is one upstream catalog row with its opaque id.
type Entry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Candidate pairs an entry with its match score (0-100). A score of 100
// means an exact match and terminates the search.
type Candidate struct {
	Entry Entry
	Score int
}

// Source supplies the upstream catalogs, in upstream order.
type Source interface {
	Streets(ctx context.Context) ([]Entry, error)
	HouseNumbers(ctx context.Context, streetID string) ([]Entry, error)
}
