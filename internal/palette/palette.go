// Package palette holds the fixed color ramp used to render fire intensities.
package palette

import (
	"fmt"
	"image/color"
)

const (
	// Size is the number of entries in the ramp.
	Size = 37
	// MaxIntensity is the hottest intensity and maps to white.
	MaxIntensity = Size - 1
)

// Blackbody approximation from black through red, orange and yellow to white.
var rampHex = [Size]uint32{
	0x070707, 0x1F0707, 0x2F0F07, 0x470F07, 0x571707, 0x671F07, 0x771F07, 0x8F2707,
	0x9F2F07, 0xAF3F07, 0xBF4707, 0xC74707, 0xDF4F07, 0xDF5707, 0xDF5707, 0xD75F07,
	0xD75F07, 0xD7670F, 0xCF6F0F, 0xCF770F, 0xCF7F0F, 0xCF8717, 0xC78717, 0xC78F17,
	0xC7971F, 0xBF9F1F, 0xBF9F1F, 0xBFA727, 0xBFA727, 0xBFAF2F, 0xB7AF2F, 0xB7B72F,
	0xB7B737, 0xCFCF6F, 0xDFDF9F, 0xEFEFC7, 0xFFFFFF,
}

var ramp = buildRamp()

func buildRamp() [Size]color.RGBA {
	var out [Size]color.RGBA
	for i, hex := range rampHex {
		out[i] = color.RGBA{
			R: uint8(hex >> 16),
			G: uint8(hex >> 8),
			B: uint8(hex),
			A: 0xff,
		}
	}
	return out
}

// ColorOf returns the ramp entry for intensity. Intensities above
// MaxIntensity mean the grid is corrupt, so ColorOf panics on them.
func ColorOf(intensity uint8) color.RGBA {
	if int(intensity) > MaxIntensity {
		panic(fmt.Sprintf("palette: intensity %d outside [0, %d]", intensity, MaxIntensity))
	}
	return ramp[intensity]
}

// Inverse returns the contrasting color used for debug outlines and labels.
func Inverse(c color.RGBA) color.RGBA {
	return color.RGBA{R: 0xff - c.R, G: 0xff - c.G, B: 0xff - c.B, A: c.A}
}
