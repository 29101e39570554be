//go:build ebiten

package app

import (
	"image/color"
	"log"

	"doomfire/internal/core"
	"doomfire/internal/render"
	"doomfire/internal/sims/fire"
	"doomfire/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the fire grid to the ebiten.Game interface.
type Game struct {
	grid    *fire.Grid
	painter *render.GridPainter
	overlay *ui.Overlay
	clock   *core.FixedStep

	paused   bool
	tickOnce bool
	seed     int64

	outsideW, outsideH int
}

// New constructs a Game for the provided grid.
func New(grid *fire.Grid, cfg *Config) *Game {
	g := &Game{
		grid:    grid,
		painter: render.NewGridPainter(),
		overlay: ui.NewOverlay(grid),
		clock:   core.NewFixedStep(cfg.TPS),
		seed:    cfg.Seed,
	}
	g.outsideW, g.outsideH = grid.Viewport()
	if cfg.Debug {
		g.overlay.Toggle()
	}
	return g
}

// Reset reseeds the fire.
func (g *Game) Reset() {
	g.grid.Reset(g.seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.overlay.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		if g.grid.Lit() {
			g.grid.Extinguish()
		} else {
			g.grid.Ignite()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.adjustCellSize(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.adjustCellSize(-1)
	}

	g.syncViewport()

	if (g.clock.ShouldStep() && !g.paused) || g.tickOnce {
		g.grid.Step()
		g.tickOnce = false
	}
	return nil
}

// adjustCellSize ignores requests outside [1, min(width, height)].
func (g *Game) adjustCellSize(delta int) {
	_ = g.grid.SetCellSize(g.grid.CellSize() + delta)
}

func (g *Game) syncViewport() {
	// Minimized windows report an empty layout.
	if g.outsideW <= 0 || g.outsideH <= 0 {
		return
	}
	if _, err := g.grid.FitViewport(g.outsideW, g.outsideH); err != nil {
		log.Printf("ignoring window size %dx%d: %v", g.outsideW, g.outsideH, err)
		g.outsideW, g.outsideH = g.grid.Viewport()
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.grid.Size(), g.grid.Cells(), g.grid.CellSize())
	g.overlay.Draw(screen, g.grid.CellSize())
}

// Layout records the window size; Update applies it so the grid has a single
// writer.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outsideW, g.outsideH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
