package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicHolidays(t *testing.T) {
	t.Run("Should list fixed holidays", func(t *testing.T) {
		h := PublicHolidays(2025)
		assert.Equal(t, "Nowy Rok", h["2025-01-01"])
		assert.Equal(t, "Święto Niepodległości", h["2025-11-11"])
		assert.Equal(t, "Boże Narodzenie (1. dzień)", h["2025-12-25"])
	})

	t.Run("Should place the movable holidays of 2025", func(t *testing.T) {
		h := PublicHolidays(2025)
		assert.Equal(t, "Wielkanoc", h["2025-04-20"])
		assert.Equal(t, "Poniedziałek Wielkanocny", h["2025-04-21"])
		assert.Equal(t, "Zielone Świątki", h["2025-06-08"])
		assert.Equal(t, "Boże Ciało", h["2025-06-19"])
		assert.Len(t, h, 13)
	})

	t.Run("Should place the movable holidays of 2024", func(t *testing.T) {
		h := PublicHolidays(2024)
		assert.Equal(t, "Wielkanoc", h["2024-03-31"])
		assert.Equal(t, "Poniedziałek Wielkanocny", h["2024-04-01"])
		assert.Equal(t, "Boże Ciało", h["2024-05-30"])
	})
}

func TestCalculateEaster(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2024, "2024-03-31"},
		{2025, "2025-04-20"},
		{2026, "2026-04-05"},
		{2027, "2027-03-28"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, calculateEaster(tt.year).Format("2006-01-02"), tt.year)
	}
}
