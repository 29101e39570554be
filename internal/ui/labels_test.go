package ui

import (
	"testing"

	"doomfire/internal/palette"
)

func TestLabelAndGlyph(t *testing.T) {
	cases := []struct {
		in    uint8
		label string
		glyph rune
	}{
		{0, "0", '0'},
		{9, "9", '9'},
		{10, "10", 'a'},
		{35, "35", 'z'},
		{36, "36", '#'},
	}
	for _, tc := range cases {
		if got := Label(tc.in); got != tc.label {
			t.Fatalf("Label(%d) = %q, want %q", tc.in, got, tc.label)
		}
		if got := Glyph(tc.in); got != tc.glyph {
			t.Fatalf("Glyph(%d) = %q, want %q", tc.in, got, tc.glyph)
		}
	}
}

func TestGlyphsAreDistinct(t *testing.T) {
	seen := map[rune]uint8{}
	for i := 0; i <= palette.MaxIntensity; i++ {
		g := Glyph(uint8(i))
		if prev, ok := seen[g]; ok {
			t.Fatalf("intensities %d and %d share glyph %q", prev, i, g)
		}
		seen[g] = uint8(i)
	}
}
