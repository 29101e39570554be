package render

import "doomfire/internal/palette"

// fillPaletteRGBA converts intensities into RGBA pixels in buf using the fire
// ramp. buf must hold four bytes per cell.
func fillPaletteRGBA(buf []byte, cells []uint8) {
	for i, c := range cells {
		col := palette.ColorOf(c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
