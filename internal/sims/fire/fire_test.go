package fire

import (
	"errors"
	"image/color"
	"slices"
	"testing"

	"doomfire/internal/palette"
)

func newGrid(t *testing.T, cfg Config, src DecaySource) *Grid {
	t.Helper()
	g, err := New(cfg, WithDecaySource(src))
	if err != nil {
		t.Fatalf("New(%+v): %v", cfg, err)
	}
	return g
}

func TestEndToEndTwoByTwo(t *testing.T) {
	g := newGrid(t, Config{Width: 3, Height: 3, CellSize: 2}, FixedDecay(1))
	if c, r := g.Dimensions(); c != 2 || r != 2 {
		t.Fatalf("Dimensions = %dx%d, want 2x2", c, r)
	}

	g.Seed()
	if !slices.Equal(g.Cells(), []uint8{0, 0, 36, 36}) {
		t.Fatalf("seeded grid = %v", g.Cells())
	}

	g.Step()
	// Both top cells decay 36 -> 35 and drift one cell left; the first is
	// clamped at index 0, so index 0 receives both writes.
	if !slices.Equal(g.Cells(), []uint8{35, 0, 36, 36}) {
		t.Fatalf("after step = %v, want [35 0 36 36]", g.Cells())
	}
}

func TestStepWriteDriftsIntoPreviousRow(t *testing.T) {
	g := newGrid(t, Config{Width: 2, Height: 4, CellSize: 2}, FixedDecay(1))
	g.Seed()
	if !slices.Equal(g.Cells(), []uint8{0, 0, 0, 0, 36, 36}) {
		t.Fatalf("seeded grid = %v", g.Cells())
	}

	g.Step()
	// Cell 2 (start of row 1) writes to index 1, the end of row 0, which the
	// scan has already passed.
	want := []uint8{0, 35, 35, 0, 36, 36}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("after step = %v, want %v", g.Cells(), want)
	}
}

func TestZeroDecayCopiesRowsUp(t *testing.T) {
	g := newGrid(t, Config{Width: 4, Height: 4, CellSize: 1}, FixedDecay(0))
	g.Seed()
	_, rows := g.Dimensions()
	for i := 0; i < rows-1; i++ {
		g.Step()
	}
	for i, v := range g.Cells() {
		if v != palette.MaxIntensity {
			t.Fatalf("cell %d = %d after %d lossless steps, want %d", i, v, rows-1, palette.MaxIntensity)
		}
	}
}

func TestSeedIsDeterministicAndIdempotent(t *testing.T) {
	g := newGrid(t, Config{Width: 40, Height: 30, CellSize: 4}, NewRandomDecay(7))
	g.Seed()
	for i := 0; i < 25; i++ {
		g.Step()
	}
	g.Seed()
	first := slices.Clone(g.Cells())
	g.Seed()
	if !slices.Equal(first, g.Cells()) {
		t.Fatal("Seed is not idempotent")
	}

	columns, rows := g.Dimensions()
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			want := uint8(0)
			if row == rows-1 {
				want = palette.MaxIntensity
			}
			if got := g.IntensityAt(col, row); got != want {
				t.Fatalf("cell (%d,%d) = %d after seed, want %d", col, row, got, want)
			}
		}
	}
}

func TestStepKeepsInvariants(t *testing.T) {
	g := newGrid(t, Config{Width: 64, Height: 48, CellSize: 3}, NewRandomDecay(1337))
	g.Seed()
	columns, rows := g.Dimensions()
	for step := 0; step < 200; step++ {
		g.Step()
		for i, v := range g.Cells() {
			if v > palette.MaxIntensity {
				t.Fatalf("step %d: cell %d = %d exceeds ramp", step, i, v)
			}
		}
		for col := 0; col < columns; col++ {
			if v := g.IntensityAt(col, rows-1); v != palette.MaxIntensity {
				t.Fatalf("step %d: source cell %d changed to %d", step, col, v)
			}
		}
	}
}

func TestSpread(t *testing.T) {
	for below := 0; below <= palette.MaxIntensity; below++ {
		for d := uint8(0); d <= MaxDecay; d++ {
			for _, index := range []int{0, 1, 2, 10} {
				target, v := spread(index, uint8(below), d)
				if int(v) > below {
					t.Fatalf("spread(%d,%d,%d) raised intensity to %d", index, below, d, v)
				}
				if below == 0 && v != 0 {
					t.Fatalf("spread from cold cell produced %d", v)
				}
				if below >= int(d) && int(v) != below-int(d) {
					t.Fatalf("spread(%d,%d,%d) = %d, want %d", index, below, d, v, below-int(d))
				}
				switch {
				case index < int(d) && target != index:
					t.Fatalf("index %d decay %d: target %d, want clamp to %d", index, d, target, index)
				case index >= int(d) && target != index-int(d):
					t.Fatalf("index %d decay %d: target %d, want %d", index, d, target, index-int(d))
				}
			}
		}
	}
}

func TestResizeResetsCleanly(t *testing.T) {
	g := newGrid(t, Config{Width: 30, Height: 30, CellSize: 5}, NewRandomDecay(3))
	g.Seed()
	g.Step()

	if err := g.Resize(50, 20, 4); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	columns, rows := g.Dimensions()
	if columns != 13 || rows != 6 {
		t.Fatalf("Dimensions = %dx%d, want 13x6", columns, rows)
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			if v := g.IntensityAt(col, row); v != 0 {
				t.Fatalf("cell (%d,%d) = %d after resize, want 0", col, row, v)
			}
		}
	}
}

func TestResizeRejectsInvalidInput(t *testing.T) {
	g := newGrid(t, Config{Width: 10, Height: 10, CellSize: 2}, FixedDecay(0))
	g.Seed()
	before := slices.Clone(g.Cells())

	cases := []struct {
		name                  string
		width, height, cellSz int
	}{
		{"zero cell", 10, 10, 0},
		{"negative cell", 10, 10, -2},
		{"zero width", 0, 10, 2},
		{"negative height", 10, -1, 2},
	}
	for _, tc := range cases {
		err := g.Resize(tc.width, tc.height, tc.cellSz)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: err = %v, want ErrInvalidConfig", tc.name, err)
		}
	}
	if !slices.Equal(before, g.Cells()) || g.CellSize() != 2 {
		t.Fatal("rejected resize modified the grid")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{Width: 10, Height: 10}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("New with zero cell size: err = %v", err)
	}
}

func TestSetCellSizeGuards(t *testing.T) {
	g := newGrid(t, Config{Width: 20, Height: 10, CellSize: 2}, FixedDecay(0))
	g.Seed()

	for _, size := range []int{0, 11} {
		if err := g.SetCellSize(size); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("SetCellSize(%d): err = %v, want ErrInvalidConfig", size, err)
		}
	}
	if g.CellSize() != 2 {
		t.Fatalf("rejected cell size changed state to %d", g.CellSize())
	}

	if err := g.SetCellSize(10); err != nil {
		t.Fatalf("SetCellSize(10): %v", err)
	}
	columns, rows := g.Dimensions()
	if columns != 3 || rows != 2 {
		t.Fatalf("Dimensions = %dx%d, want 3x2", columns, rows)
	}
	// Reconfigure reseeds and steps once; with no decay the source copies up.
	if !slices.Equal(g.Cells(), []uint8{36, 36, 36, 36, 36, 36}) {
		t.Fatalf("cells after reconfigure = %v", g.Cells())
	}
}

func TestExtinguishAndIgnite(t *testing.T) {
	g := newGrid(t, Config{Width: 6, Height: 6, CellSize: 2}, FixedDecay(1))
	g.Seed()
	g.Step()

	g.Extinguish()
	if g.Lit() {
		t.Fatal("Lit after Extinguish")
	}
	_, rows := g.Dimensions()
	for i := 0; i < rows; i++ {
		g.Step()
	}
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after the fire died out", i, v)
		}
	}

	g.Ignite()
	columns, _ := g.Dimensions()
	for col := 0; col < columns; col++ {
		if g.IntensityAt(col, rows-1) != palette.MaxIntensity {
			t.Fatalf("source cell %d not relit", col)
		}
	}
	g.Extinguish()
	g.Seed()
	if !g.Lit() {
		t.Fatal("Seed must relight the source")
	}
}

func TestResetReplaysDecaySequence(t *testing.T) {
	g := newGrid(t, Config{Width: 40, Height: 40, CellSize: 2}, NewRandomDecay(1))
	run := func() []uint8 {
		g.Reset(99)
		for i := 0; i < 10; i++ {
			g.Step()
		}
		return slices.Clone(g.Cells())
	}
	if !slices.Equal(run(), run()) {
		t.Fatal("Reset with the same seed produced different fires")
	}
}

func TestStepPanicsOnBadDecay(t *testing.T) {
	g := newGrid(t, Config{Width: 4, Height: 4, CellSize: 2}, DecayFunc(func() uint8 { return 3 }))
	g.Seed()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range decay")
		}
	}()
	g.Step()
}

func TestIntensityAtPanicsOutsideGrid(t *testing.T) {
	g := newGrid(t, Config{Width: 4, Height: 4, CellSize: 2}, FixedDecay(0))
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range cell")
		}
	}()
	g.IntensityAt(3, 0)
}

func TestColorAtUsesPalette(t *testing.T) {
	g := newGrid(t, Config{Width: 4, Height: 4, CellSize: 2}, FixedDecay(0))
	g.Seed()
	_, rows := g.Dimensions()
	if got := g.ColorAt(0, rows-1); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("source color = %v, want white", got)
	}
	if got := g.ColorAt(0, 0); got != palette.ColorOf(0) {
		t.Fatalf("background color = %v", got)
	}
}

func TestFitViewport(t *testing.T) {
	g := newGrid(t, Config{Width: 40, Height: 30, CellSize: 10}, FixedDecay(0))
	g.Seed()

	changed, err := g.FitViewport(40, 30)
	if err != nil || changed {
		t.Fatalf("same viewport: changed=%v err=%v, want no-op", changed, err)
	}

	changed, err = g.FitViewport(12, 6)
	if err != nil || !changed {
		t.Fatalf("FitViewport(12, 6): changed=%v err=%v", changed, err)
	}
	if g.CellSize() != 6 {
		t.Fatalf("CellSize = %d, want clamp to 6", g.CellSize())
	}
	if w, h := g.Viewport(); w != 12 || h != 6 {
		t.Fatalf("Viewport = %dx%d, want 12x6", w, h)
	}
	// Resize, reseed, then one lossless step lifts the source into row 0.
	if !slices.Equal(g.Cells(), []uint8{36, 36, 36, 36, 36, 36}) {
		t.Fatalf("cells after fit = %v", g.Cells())
	}

	if _, err := g.FitViewport(0, 6); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("FitViewport(0, 6): err = %v, want ErrInvalidConfig", err)
	}
	if w, h := g.Viewport(); w != 12 || h != 6 {
		t.Fatalf("rejected fit changed viewport to %dx%d", w, h)
	}
}
