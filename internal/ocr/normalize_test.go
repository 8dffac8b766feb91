package ocr

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/szyszomat/KiedySmieciKRK/internal/locale"
)

func TestNormalize(t *testing.T) {
	n := NewNormalizer(locale.Polish())

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Should fold diacritics and lower-case",
			in:   "Środa ŁĄKA żółć",
			want: "sroda laka zolc",
		},
		{
			name: "Should restore the lost leading digit of 16 września",
			in:   "Wtorek, 6 Września Krakowska 1",
			want: "wtorek, 16 wrzesnia krakowska 1",
		},
		{
			name: "Should leave a real 16 września alone",
			in:   "wtorek, 16 września",
			want: "wtorek, 16 wrzesnia",
		},
		{
			name: "Should fix a dotted pazdziernika misreading",
			in:   "3 pa.zdziernika",
			want: "3 pazdziernika",
		},
		{
			name: "Should fix pażdziernika",
			in:   "10 pażdziernika",
			want: "10 pazdziernika",
		},
		{
			name: "Should fix poździernika",
			in:   "17 poździernika",
			want: "17 pazdziernika",
		},
		{
			name: "Should pass clean text through unchanged",
			in:   "5 pazdziernika 2025",
			want: "5 pazdziernika 2025",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Normalize(tt.in))
		})
	}
}

func TestNormalizeGuardedCorrection(t *testing.T) {
	n := NewNormalizer(locale.Polish())

	t.Run("Should rewrite 1 września when a Tuesday is mentioned", func(t *testing.T) {
		got := n.Normalize("wtorek, 1 września zielone")
		assert.Equal(t, "wtorek, 16 wrzesnia zielone", got)
	})

	t.Run("Should keep 1 września without the Tuesday context", func(t *testing.T) {
		got := n.Normalize("poniedziałek, 1 września zielone")
		assert.Equal(t, "poniedzialek, 1 wrzesnia zielone", got)
	})
}
