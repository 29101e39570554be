//go:build ebiten

package ui

import (
	"image/color"

	"doomfire/internal/core"
	"doomfire/internal/palette"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Labels are skipped when a cell is too small to hold the glyphs.
const minLabelCell = 14

// Overlay outlines every cell and prints its intensity in the inverse of the
// cell color.
type Overlay struct {
	sim     core.Sim
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a hidden overlay for sim.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Toggle flips overlay visibility.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, cellSize int) {
	if !o.visible || cellSize <= 0 {
		return
	}
	size := o.sim.Size()
	cells := o.sim.Cells()
	if len(cells) != size.W*size.H {
		return
	}
	face := basicfont.Face7x13
	cs := float64(cellSize)
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			v := cells[row*size.W+col]
			ink := palette.Inverse(palette.ColorOf(v))
			x := float64(col * cellSize)
			y := float64(row * cellSize)
			o.strokeRect(screen, x, y, cs, ink)

			if cellSize < minLabelCell {
				continue
			}
			label := Label(v)
			bounds := text.BoundString(face, label)
			tx := col*cellSize + (cellSize-bounds.Dx())/2
			ty := row*cellSize + (cellSize+bounds.Dy())/2
			text.Draw(screen, label, face, tx, ty, ink)
		}
	}
}

func (o *Overlay) strokeRect(screen *ebiten.Image, x, y, side float64, col color.RGBA) {
	o.fillRect(screen, x, y, side, 1, col)
	o.fillRect(screen, x, y+side-1, side, 1, col)
	o.fillRect(screen, x, y, 1, side, col)
	o.fillRect(screen, x+side-1, y, 1, side, col)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
