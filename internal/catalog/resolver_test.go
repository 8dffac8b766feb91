package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	streets      []Entry
	houseNumbers map[string][]Entry

	streetCalls      int
	houseNumberCalls int
}

func (f *fakeSource) Streets(context.Context) ([]Entry, error) {
	f.streetCalls++
	return f.streets, nil
}

func (f *fakeSource) HouseNumbers(_ context.Context, streetID string) ([]Entry, error) {
	f.houseNumberCalls++
	return f.houseNumbers[streetID], nil
}

func TestResolveStreet(t *testing.T) {
	src := &fakeSource{streets: []Entry{
		{ID: "1", Name: "Zakrakowska"},
		{ID: "2", Name: "Krakowska"},
		{ID: "3", Name: "Wielicka"},
	}}
	r := NewResolver(src)
	ctx := context.Background()

	t.Run("Should prefer a case-insensitive exact match over substring hits", func(t *testing.T) {
		got, err := r.ResolveStreet(ctx, "kRakoWska")
		require.NoError(t, err)
		assert.Equal(t, "2", got.ID)
	})

	t.Run("Should take the first substring hit in catalog order", func(t *testing.T) {
		got, err := r.ResolveStreet(ctx, "krakow")
		require.NoError(t, err)
		assert.Equal(t, "1", got.ID)
	})

	t.Run("Should return ErrNotFound for an unknown street", func(t *testing.T) {
		_, err := r.ResolveStreet(ctx, "Florianska")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Should fetch the street catalog only once", func(t *testing.T) {
		before := src.streetCalls
		_, err := r.ResolveStreet(ctx, "Wielicka")
		require.NoError(t, err)
		_, err = r.ResolveStreet(ctx, "Wielicka")
		require.NoError(t, err)
		assert.Equal(t, before, src.streetCalls)
	})
}

func TestScoreHouseNumber(t *testing.T) {
	tests := []struct {
		query string
		name  string
		want  int
	}{
		{"1", "1", 100},
		{"3", "3CA", 97},
		{"3", "3 CA", 97},
		{"3", "3C DJ", 95},
		{"3", "3CAB", 92},
		{"3", "3C1", 80},
		{"3", "31", 80},
		{"3", "3/A", 85},
		{"3", "A3B", 50},
		{"C", "3 CA", 75},
		{"9", "1 DJ", 0},
		{"1", "1 dj", 97},
	}
	for _, tt := range tests {
		t.Run(tt.query+"_vs_"+tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScoreHouseNumber(tt.query, tt.name))
		})
	}
}

func TestResolveHouseNumber(t *testing.T) {
	src := &fakeSource{houseNumbers: map[string][]Entry{
		"39936": {
			{ID: "1", Name: "1 DJ"},
			{ID: "2", Name: "3 CA"},
		},
		"7": {
			{ID: "a", Name: "2A"},
			{ID: "b", Name: "2B"},
		},
		"8": {
			{ID: "x", Name: "5 DJ"},
			{ID: "y", Name: "5"},
		},
	}}
	r := NewResolver(src)
	ctx := context.Background()

	t.Run("Should pick the highest-scoring candidate", func(t *testing.T) {
		got, err := r.ResolveHouseNumber(ctx, "39936", "3")
		require.NoError(t, err)
		assert.Equal(t, "2", got.ID)
	})

	t.Run("Should break score ties by catalog order", func(t *testing.T) {
		got, err := r.ResolveHouseNumber(ctx, "7", "2")
		require.NoError(t, err)
		assert.Equal(t, "a", got.ID)
	})

	t.Run("Should stop the scan on an exact match", func(t *testing.T) {
		got, err := r.ResolveHouseNumber(ctx, "8", "5")
		require.NoError(t, err)
		assert.Equal(t, "y", got.ID)
	})

	t.Run("Should return ErrNotFound when nothing scores above zero", func(t *testing.T) {
		_, err := r.ResolveHouseNumber(ctx, "39936", "9")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Should memoize house numbers per street", func(t *testing.T) {
		before := src.houseNumberCalls
		_, err := r.ResolveHouseNumber(ctx, "7", "2A")
		require.NoError(t, err)
		_, err = r.ResolveHouseNumber(ctx, "7", "2B")
		require.NoError(t, err)
		assert.Equal(t, before, src.houseNumberCalls)
	})
}
