package ui

import (
	"strconv"

	"doomfire/internal/palette"
)

// Label is the decimal intensity drawn inside a cell by the debug overlay.
func Label(intensity uint8) string {
	return strconv.Itoa(int(intensity))
}

// Glyph packs an intensity into a single base-36 digit for hosts that only
// have one character per cell. The hottest intensity is '#'.
func Glyph(intensity uint8) rune {
	if intensity >= palette.MaxIntensity {
		return '#'
	}
	return rune(strconv.FormatInt(int64(intensity), 36)[0])
}
