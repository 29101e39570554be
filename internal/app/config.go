package app

import (
	"flag"
	"fmt"

	"doomfire/internal/core"
	"doomfire/internal/sims/fire"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces the environment overrides.
const EnvPrefix = "DOOMFIRE_"

// Config represents the command-line parameters for the application.
// Precedence is defaults, then environment, then flags.
type Config struct {
	Width    int   `env:"WIDTH"`
	Height   int   `env:"HEIGHT"`
	CellSize int   `env:"CELL"`
	TPS      int   `env:"TPS"`
	Seed     int64 `env:"SEED"`
	Debug    bool  `env:"DEBUG"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := fire.DefaultConfig()
	return &Config{Width: d.Width, Height: d.Height, CellSize: d.CellSize, TPS: core.DefaultTPS}
}

// LoadEnv applies DOOMFIRE_* environment overrides. Unset variables keep the
// current values.
func (c *Config) LoadEnv() error {
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	c.BindRun(fs)
}

// BindRun attaches only the settings that do not depend on a window, for
// hosts that size the fire from their own display.
func (c *Config) BindRun(fs *flag.FlagSet) {
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "edge length of one fire cell in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the decay source (0 = clock)")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "start with the debug overlay visible")
}

// Fire returns the simulation part of the configuration.
func (c *Config) Fire() fire.Config {
	return fire.Config{Width: c.Width, Height: c.Height, CellSize: c.CellSize, Seed: c.Seed}
}

// Validate rejects configurations the windowed host cannot run.
func (c *Config) Validate() error {
	if err := c.Fire().Validate(); err != nil {
		return err
	}
	return c.ValidateRun()
}

// ValidateRun checks the settings bound by BindRun.
func (c *Config) ValidateRun() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", fire.ErrInvalidConfig, c.CellSize)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("%w: tps %d must be positive", fire.ErrInvalidConfig, c.TPS)
	}
	return nil
}
