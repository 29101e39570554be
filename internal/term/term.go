// Package term drives the fire in a terminal. Each text cell shows two
// vertically stacked pixels using an upper half block.
package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"doomfire/internal/core"
	"doomfire/internal/palette"
	"doomfire/internal/sims/fire"
	"doomfire/internal/ui"

	"github.com/gdamore/tcell/v2"
)

const halfBlock = '▀'

// Options configures a terminal session.
type Options struct {
	CellSize int
	TPS      int
	Seed     int64
	Debug    bool
}

// Host owns the screen and the grid. All grid access happens on the goroutine
// running Loop.
type Host struct {
	screen tcell.Screen
	grid   *fire.Grid
	clock  *core.FixedStep

	debug  bool
	paused bool
}

// Run opens the terminal, plays the fire until ctx is done or the user quits,
// and restores the terminal.
func Run(ctx context.Context, opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	host, err := NewHost(screen, opts)
	if err != nil {
		return err
	}
	return host.Loop(ctx)
}

// NewHost sizes a grid to the screen and seeds it.
func NewHost(screen tcell.Screen, opts Options) (*Host, error) {
	w, h := pixelSize(screen)
	cellSize := opts.CellSize
	if cellSize > min(w, h) {
		cellSize = min(w, h)
	}
	grid, err := fire.New(fire.Config{Width: w, Height: h, CellSize: cellSize, Seed: opts.Seed})
	if err != nil {
		return nil, fmt.Errorf("size fire to terminal: %w", err)
	}
	grid.Seed()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	return &Host{
		screen: screen,
		grid:   grid,
		clock:  core.NewFixedStep(opts.TPS),
		debug:  opts.Debug,
	}, nil
}

// Grid exposes the simulated fire.
func (h *Host) Grid() *fire.Grid { return h.grid }

// Loop pumps screen events and ticks until ctx is cancelled or a quit key is
// pressed.
func (h *Host) Loop(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go h.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(h.clock.Interval())
	defer ticker.Stop()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.Handle(ev) {
				return nil
			}
			h.Draw()
		case <-ticker.C:
			if !h.paused {
				h.grid.Step()
			}
			h.Draw()
		}
	}
}

// Handle applies one event and reports whether the session should end.
func (h *Host) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	case *tcell.EventKey:
		return h.handleKey(ev)
	}
	return false
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		h.adjustCellSize(1)
	case tcell.KeyDown:
		h.adjustCellSize(-1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'd':
			h.debug = !h.debug
		case ' ':
			h.paused = !h.paused
		case 'n':
			h.grid.Step()
		case 'r':
			h.grid.Reset(h.grid.Config().Seed)
		case 'x':
			if h.grid.Lit() {
				h.grid.Extinguish()
			} else {
				h.grid.Ignite()
			}
		case '+':
			h.adjustCellSize(1)
		case '-':
			h.adjustCellSize(-1)
		}
	}
	return false
}

// adjustCellSize ignores requests outside [1, min(width, height)].
func (h *Host) adjustCellSize(delta int) {
	_ = h.grid.SetCellSize(h.grid.CellSize() + delta)
}

func (h *Host) resize() {
	// pixelSize never reports a non-positive size, so this cannot fail.
	_, _ = h.grid.FitViewport(pixelSize(h.screen))
}

// Draw paints the grid. Terminal cell (x, y) shows pixel rows 2y and 2y+1;
// pixel (px, py) belongs to fire cell (px/cellSize, py/cellSize). The grid's
// viewport bounds the loop, so a resize that has not been handled yet cannot
// index past the grid.
func (h *Host) Draw() {
	cols, pixelRows := h.grid.Viewport()
	rows := pixelRows / 2
	cs := h.grid.CellSize()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			col := x / cs
			upper := h.grid.IntensityAt(col, (2*y)/cs)
			lower := h.grid.IntensityAt(col, (2*y+1)/cs)
			style := tcell.StyleDefault.
				Foreground(toColor(palette.ColorOf(upper))).
				Background(toColor(palette.ColorOf(lower)))
			glyph := halfBlock
			if h.debug {
				glyph = ui.Glyph(upper)
				style = style.Foreground(toColor(palette.Inverse(palette.ColorOf(upper))))
			}
			h.screen.SetContent(x, y, glyph, nil, style)
		}
	}
	h.screen.Show()
}

func pixelSize(screen tcell.Screen) (w, h int) {
	cols, rows := screen.Size()
	return max(cols, 1), max(2*rows, 1)
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
