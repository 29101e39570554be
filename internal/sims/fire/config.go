package fire

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig reports dimensions or a cell size that cannot produce a
// usable grid.
var ErrInvalidConfig = errors.New("invalid fire config")

// Config holds the viewport and cell size that determine the grid shape.
type Config struct {
	Width    int
	Height   int
	CellSize int

	// Seed seeds the default random decay source. Zero seeds from the clock.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 800, Height: 600, CellSize: 12}
}

// Validate rejects non-positive dimensions and cell sizes.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width %d must be positive", ErrInvalidConfig, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height %d must be positive", ErrInvalidConfig, c.Height)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidConfig, c.CellSize)
	}
	return nil
}

// Dimensions returns the grid shape in cells. One extra column and row cover
// the partial cell at the right and bottom edges.
func (c Config) Dimensions() (columns, rows int) {
	return c.Width/c.CellSize + 1, c.Height/c.CellSize + 1
}

// MaxCellSize is the largest cell size the viewport accepts.
func (c Config) MaxCellSize() int {
	return min(c.Width, c.Height)
}
