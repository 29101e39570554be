//go:build ebiten

package render

import (
	"doomfire/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads fire intensities into an image with one pixel per cell
// and draws it scaled up by the cell size.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter returns a painter that allocates on first use.
func NewGridPainter() *GridPainter {
	return &GridPainter{}
}

func (gp *GridPainter) ensure(size core.Size) {
	if gp.img != nil && gp.w == size.W && gp.h == size.H {
		return
	}
	if gp.img != nil {
		gp.img.Dispose()
	}
	gp.w, gp.h = size.W, size.H
	gp.img = ebiten.NewImage(size.W, size.H)
	gp.buf = make([]byte, 4*size.W*size.H)
}

// Blit paints the cells onto dst. Cell (col, row) covers the square of side
// cellSize at pixel (col*cellSize, row*cellSize).
func (gp *GridPainter) Blit(dst *ebiten.Image, size core.Size, cells []uint8, cellSize int) {
	if size.W <= 0 || size.H <= 0 || len(cells) != size.W*size.H {
		return
	}
	if cellSize <= 0 {
		cellSize = 1
	}
	gp.ensure(size)
	fillPaletteRGBA(gp.buf, cells)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize), float64(cellSize))
	dst.DrawImage(gp.img, op)
}
