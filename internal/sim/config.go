package sim

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"vitality-ca/internal/core"
	"vitality-ca/internal/rules"
)

// Config controls the engine behavior.
type Config struct {
	Neighborhood core.Neighborhood
	Rule         rules.Rule
	// IncludeSelf adds a cell's own pre-tick vitality to its aggregate.
	IncludeSelf bool

	// BorderGrowth materializes the neighborhood of every cell whose vitality
	// reaches GrowthThreshold after a tick.
	BorderGrowth    bool
	GrowthThreshold float64

	CellWidth int
	// TickPeriod is advisory; the driving loop owns the schedule.
	TickPeriod time.Duration

	Pattern     string
	Seed        int64
	SeedRadius  int
	SeedDensity float64

	// Verbose logs population after every tick.
	Verbose bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Neighborhood:    core.FullNeighborhood,
		Rule:            rules.Discrete,
		BorderGrowth:    true,
		GrowthThreshold: 1,
		CellWidth:       core.DefaultCellWidth,
		TickPeriod:      core.DefaultTickPeriod,
		Seed:            42,
		SeedRadius:      8,
		SeedDensity:     0.3,
	}
}

// Validate checks that the configuration values are usable.
func (c Config) Validate() error {
	if _, err := c.Neighborhood.MarshalText(); err != nil {
		return err
	}
	if _, err := c.Rule.MarshalText(); err != nil {
		return err
	}
	if c.CellWidth <= 0 {
		return fmt.Errorf("cell_width must be positive, got %d: %w", c.CellWidth, core.ErrInvalidConfiguration)
	}
	if c.GrowthThreshold < 0 {
		return fmt.Errorf("growth_threshold must be non-negative, got %g: %w", c.GrowthThreshold, core.ErrInvalidConfiguration)
	}
	if c.TickPeriod < 0 {
		return fmt.Errorf("tick_period must be non-negative, got %v: %w", c.TickPeriod, core.ErrInvalidConfiguration)
	}
	if c.SeedRadius < 0 {
		return fmt.Errorf("seed_radius must be non-negative, got %d: %w", c.SeedRadius, core.ErrInvalidConfiguration)
	}
	if c.SeedDensity < 0 || c.SeedDensity > 1 {
		return fmt.Errorf("seed_density must be between 0 and 1, got %g: %w", c.SeedDensity, core.ErrInvalidConfiguration)
	}
	if c.Pattern != "" {
		if _, ok := core.LookupPattern(c.Pattern); !ok {
			return fmt.Errorf("pattern %q: %w", c.Pattern, core.ErrInvalidConfiguration)
		}
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs)
// over the defaults.
func FromMap(cfg map[string]string) (Config, error) {
	return DefaultConfig().With(cfg)
}

// Keys lists the option names understood by With.
var Keys = []string{
	"neighborhood", "rule", "include_self", "border_growth", "growth_threshold",
	"cell_width", "tick_period", "pattern", "seed", "seed_radius", "seed_density", "verbose",
}

// With returns a copy of c with the given options applied. Unparsable numeric
// values keep their previous setting, but an unrecognized neighborhood or rule
// name is an error.
func (c Config) With(cfg map[string]string) (Config, error) {
	if len(cfg) == 0 {
		return c, c.Validate()
	}
	if v, ok := cfg["neighborhood"]; ok {
		n, err := core.ParseNeighborhood(v)
		if err != nil {
			return c, err
		}
		c.Neighborhood = n
	}
	if v, ok := cfg["rule"]; ok {
		r, err := rules.Parse(v)
		if err != nil {
			return c, err
		}
		c.Rule = r
	}
	if v, ok := cfg["include_self"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.IncludeSelf = parsed
		}
	}
	if v, ok := cfg["border_growth"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.BorderGrowth = parsed
		}
	}
	if v, ok := cfg["growth_threshold"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.GrowthThreshold = parsed
		}
	}
	if v, ok := cfg["cell_width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.CellWidth = parsed
		}
	}
	if v, ok := cfg["tick_period"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed > 0 {
			c.TickPeriod = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok {
		c.Pattern = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SeedRadius = parsed
		}
	}
	if v, ok := cfg["seed_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SeedDensity = parsed
		}
	}
	if v, ok := cfg["verbose"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Verbose = parsed
		}
	}
	return c, c.Validate()
}

// fileConfig is the JSON schema of a configuration file. Omitted fields keep
// their defaults.
type fileConfig struct {
	Neighborhood    *core.Neighborhood `json:"neighborhood,omitempty"`
	Rule            *rules.Rule        `json:"rule,omitempty"`
	IncludeSelf     *bool              `json:"include_self,omitempty"`
	BorderGrowth    *bool              `json:"border_growth,omitempty"`
	GrowthThreshold *float64           `json:"growth_threshold,omitempty"`
	CellWidth       *int               `json:"cell_width,omitempty"`
	TickPeriod      *string            `json:"tick_period,omitempty"` // duration string like "32ms"
	Pattern         *string            `json:"pattern,omitempty"`
	Seed            *int64             `json:"seed,omitempty"`
	SeedRadius      *int               `json:"seed_radius,omitempty"`
	SeedDensity     *float64           `json:"seed_density,omitempty"`
	Verbose         *bool              `json:"verbose,omitempty"`
}

const maxConfigFileSize = 1 << 20

// LoadConfig reads a JSON configuration file and applies it over the
// defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return c, fmt.Errorf("config file must have .json extension, got %q", ext)
	}
	info, err := os.Stat(cleanPath)
	if err != nil {
		return c, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxConfigFileSize {
		return c, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return c, fmt.Errorf("failed to read config file: %w", err)
	}
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return c, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := fc.apply(&c); err != nil {
		return c, err
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func (fc fileConfig) apply(c *Config) error {
	if fc.Neighborhood != nil {
		c.Neighborhood = *fc.Neighborhood
	}
	if fc.Rule != nil {
		c.Rule = *fc.Rule
	}
	if fc.IncludeSelf != nil {
		c.IncludeSelf = *fc.IncludeSelf
	}
	if fc.BorderGrowth != nil {
		c.BorderGrowth = *fc.BorderGrowth
	}
	if fc.GrowthThreshold != nil {
		c.GrowthThreshold = *fc.GrowthThreshold
	}
	if fc.CellWidth != nil {
		c.CellWidth = *fc.CellWidth
	}
	if fc.TickPeriod != nil && *fc.TickPeriod != "" {
		d, err := time.ParseDuration(*fc.TickPeriod)
		if err != nil {
			return fmt.Errorf("invalid tick_period '%s': %w", *fc.TickPeriod, err)
		}
		c.TickPeriod = d
	}
	if fc.Pattern != nil {
		c.Pattern = *fc.Pattern
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	if fc.SeedRadius != nil {
		c.SeedRadius = *fc.SeedRadius
	}
	if fc.SeedDensity != nil {
		c.SeedDensity = *fc.SeedDensity
	}
	if fc.Verbose != nil {
		c.Verbose = *fc.Verbose
	}
	return nil
}
