// Package fire implements the classic Doom fire effect: a bottom-row heat
// source whose intensity drifts upward and leftward while decaying.
package fire

import (
	"fmt"
	"image/color"
	"time"

	"doomfire/internal/core"
	"doomfire/internal/palette"
)

// Grid is the fire simulation state. It is not safe for concurrent use;
// hosts must serialize Step with reads.
type Grid struct {
	cfg   Config
	cells *core.ByteGrid
	decay DecaySource
	lit   bool
}

var _ core.Sim = (*Grid)(nil)

// Option customizes a Grid at construction.
type Option func(*Grid)

// WithDecaySource replaces the default random decay draw.
func WithDecaySource(src DecaySource) Option {
	return func(g *Grid) { g.decay = src }
}

// New allocates an all-zero grid for cfg. Call Seed before stepping.
func New(cfg Config, opts ...Option) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	columns, rows := cfg.Dimensions()
	g := &Grid{cfg: cfg, cells: core.NewByteGrid(columns, rows), lit: true}
	for _, opt := range opts {
		opt(g)
	}
	if g.decay == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.decay = NewRandomDecay(seed)
	}
	return g, nil
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "fire" }

// Size reports the grid dimensions in cells.
func (g *Grid) Size() core.Size { return g.cells.Size() }

// Cells exposes the intensity buffer in row-major order.
func (g *Grid) Cells() []uint8 { return g.cells.Cells() }

// Config returns the active configuration.
func (g *Grid) Config() Config { return g.cfg }

// CellSize is the edge length of one cell in pixels.
func (g *Grid) CellSize() int { return g.cfg.CellSize }

// Viewport returns the pixel dimensions the grid covers.
func (g *Grid) Viewport() (width, height int) { return g.cfg.Width, g.cfg.Height }

// Dimensions returns the grid shape in cells.
func (g *Grid) Dimensions() (columns, rows int) { return g.cells.W, g.cells.H }

// Lit reports whether the bottom-row source is burning.
func (g *Grid) Lit() bool { return g.lit }

// Resize reshapes the grid for a new viewport and zeroes every cell. It does
// not reseed. Invalid input leaves the grid untouched.
func (g *Grid) Resize(width, height, cellSize int) error {
	next := g.cfg
	next.Width, next.Height, next.CellSize = width, height, cellSize
	if err := next.Validate(); err != nil {
		return fmt.Errorf("resize fire grid: %w", err)
	}
	g.cfg = next
	g.cells.Resize(next.Dimensions())
	return nil
}

// Seed clears the grid and sets the bottom row to the hottest intensity.
func (g *Grid) Seed() {
	g.cells.Clear()
	g.lit = true
	g.cells.Fill(g.cells.H-1, palette.MaxIntensity)
}

// Reset reseeds the decay source, when it supports that, and then the grid.
// A zero seed keeps the current draw sequence.
func (g *Grid) Reset(seed int64) {
	if r, ok := g.decay.(reseeder); ok && seed != 0 {
		r.Reseed(seed)
	}
	g.Seed()
}

// Reconfigure resizes, reseeds and advances one step, which is what a host
// does whenever the viewport or cell size changes.
func (g *Grid) Reconfigure(width, height, cellSize int) error {
	if err := g.Resize(width, height, cellSize); err != nil {
		return err
	}
	g.Seed()
	g.Step()
	return nil
}

// FitViewport reconfigures the grid for a new window size, shrinking the cell
// size when it no longer fits. It reports false when the size is unchanged.
func (g *Grid) FitViewport(width, height int) (bool, error) {
	if width == g.cfg.Width && height == g.cfg.Height {
		return false, nil
	}
	cellSize := min(g.cfg.CellSize, width, height)
	if err := g.Reconfigure(width, height, cellSize); err != nil {
		return false, err
	}
	return true, nil
}

// SetCellSize changes the cell size within [1, min(width, height)].
func (g *Grid) SetCellSize(cellSize int) error {
	if limit := g.cfg.MaxCellSize(); cellSize < 1 || cellSize > limit {
		return fmt.Errorf("%w: cell size %d outside [1, %d]", ErrInvalidConfig, cellSize, limit)
	}
	return g.Reconfigure(g.cfg.Width, g.cfg.Height, cellSize)
}

// Extinguish cools the source row so the fire dies out over the next steps.
func (g *Grid) Extinguish() {
	g.lit = false
	g.cells.Fill(g.cells.H-1, 0)
}

// Ignite restores the source row to the hottest intensity.
func (g *Grid) Ignite() {
	g.lit = true
	g.cells.Fill(g.cells.H-1, palette.MaxIntensity)
}

// Step advances the fire by one tick. Each cell above the bottom row takes
// the intensity of the cell below, minus a random decay, and writes it up to
// decay cells to the left. Updates happen in place during a single forward
// scan, so a write can land on a cell the scan already passed.
func (g *Grid) Step() {
	fire := g.cells.Cells()
	columns, rows := g.cells.W, g.cells.H
	for row := 0; row < rows-1; row++ {
		for col := 0; col < columns; col++ {
			index := col + columns*row
			target, intensity := spread(index, fire[index+columns], checkedDecay(g.decay))
			fire[target] = intensity
		}
	}
}

// spread returns the cell that receives heat from the cell below index and
// the intensity it receives.
func spread(index int, below, decay uint8) (target int, intensity uint8) {
	if below > decay {
		intensity = below - decay
	}
	target = index - int(decay)
	if target < 0 {
		target = index
	}
	return target, intensity
}

// IntensityAt returns the intensity of cell (col, row). It panics when the
// coordinates fall outside the grid.
func (g *Grid) IntensityAt(col, row int) uint8 {
	if !g.cells.Contains(col, row) {
		panic(fmt.Sprintf("fire: cell (%d,%d) outside %dx%d grid", col, row, g.cells.W, g.cells.H))
	}
	return g.cells.Cells()[g.cells.Index(col, row)]
}

// ColorAt returns the palette color of cell (col, row).
func (g *Grid) ColorAt(col, row int) color.RGBA {
	return palette.ColorOf(g.IntensityAt(col, row))
}
