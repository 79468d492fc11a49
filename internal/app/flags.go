package app

import (
	"flag"
	"slices"
	"strings"

	"vitality-ca/internal/core"
	"vitality-ca/internal/sim"
)

// Config represents the command-line parameters for the application.
type Config struct {
	ConfigPath string
	Width      int
	Height     int

	// Sim is filled in by Resolve.
	Sim sim.Config

	fs *flag.FlagSet
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 960, Height: 720, Sim: sim.DefaultConfig()}
}

// Bind attaches the configuration to the provided FlagSet. Engine options use
// the same names as the JSON configuration keys.
func (c *Config) Bind(fs *flag.FlagSet) {
	c.fs = fs
	d := c.Sim
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON configuration file")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")

	fs.String("rule", d.Rule.String(), "transition rule: discrete or smoothed")
	fs.String("neighborhood", d.Neighborhood.String(), "neighbor offsets: full_neighborhood or small_star")
	fs.Bool("include_self", d.IncludeSelf, "add a cell's own vitality to its aggregate")
	fs.Bool("border_growth", d.BorderGrowth, "materialize borders around live cells after each tick")
	fs.Float64("growth_threshold", d.GrowthThreshold, "minimum vitality that grows a border")
	fs.Int("cell_width", d.CellWidth, "lattice spacing in pixels")
	fs.Duration("tick_period", d.TickPeriod, "time between ticks")
	fs.String("pattern", d.Pattern, "seed pattern ("+strings.Join(core.PatternNames(), ", ")+")")
	fs.Int64("seed", d.Seed, "seed for simulation reset")
	fs.Int("seed_radius", d.SeedRadius, "radius in cells of the random pattern")
	fs.Float64("seed_density", d.SeedDensity, "live chance per cell of the random pattern")
	fs.Bool("verbose", d.Verbose, "log population after every tick")
}

// Resolve loads the configuration file, if any, then applies every engine
// flag that was set explicitly on the command line.
func (c *Config) Resolve() error {
	base := sim.DefaultConfig()
	if c.ConfigPath != "" {
		loaded, err := sim.LoadConfig(c.ConfigPath)
		if err != nil {
			return err
		}
		base = loaded
	}
	overrides := map[string]string{}
	if c.fs != nil {
		c.fs.Visit(func(f *flag.Flag) {
			if slices.Contains(sim.Keys, f.Name) {
				overrides[f.Name] = f.Value.String()
			}
		})
	}
	resolved, err := base.With(overrides)
	if err != nil {
		return err
	}
	c.Sim = resolved
	return nil
}
