package sim

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitality-ca/internal/core"
	"vitality-ca/internal/rules"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, core.FullNeighborhood, cfg.Neighborhood)
	assert.Equal(t, rules.Discrete, cfg.Rule)
	assert.False(t, cfg.IncludeSelf)
	assert.Equal(t, core.DefaultCellWidth, cfg.CellWidth)
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"neighborhood":     "small_star",
		"rule":             "smoothed",
		"include_self":     "true",
		"border_growth":    "false",
		"growth_threshold": "0.5",
		"cell_width":       "10",
		"tick_period":      "50ms",
		"pattern":          "glider",
		"seed":             "7",
	})
	require.NoError(t, err)
	assert.Equal(t, core.SmallStar, cfg.Neighborhood)
	assert.Equal(t, rules.Smoothed, cfg.Rule)
	assert.True(t, cfg.IncludeSelf)
	assert.False(t, cfg.BorderGrowth)
	assert.Equal(t, 0.5, cfg.GrowthThreshold)
	assert.Equal(t, 10, cfg.CellWidth)
	assert.Equal(t, 50*time.Millisecond, cfg.TickPeriod)
	assert.Equal(t, "glider", cfg.Pattern)
	assert.Equal(t, int64(7), cfg.Seed)
}

func TestFromMapRejectsUnknownNames(t *testing.T) {
	_, err := FromMap(map[string]string{"neighborhood": "hexagonal"})
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)

	_, err = FromMap(map[string]string{"rule": "lenia"})
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)

	_, err = FromMap(map[string]string{"pattern": "no-such-pattern"})
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestFromMapIgnoresUnparsableNumbers(t *testing.T) {
	cfg, err := FromMap(map[string]string{"cell_width": "wide", "seed_density": "2"})
	require.NoError(t, err)
	def := DefaultConfig()
	assert.Equal(t, def.CellWidth, cfg.CellWidth)
	assert.Equal(t, def.SeedDensity, cfg.SeedDensity)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"cell width":   func(c *Config) { c.CellWidth = -1 },
		"threshold":    func(c *Config) { c.GrowthThreshold = -0.1 },
		"tick period":  func(c *Config) { c.TickPeriod = -time.Second },
		"radius":       func(c *Config) { c.SeedRadius = -1 },
		"density":      func(c *Config) { c.SeedDensity = 1.5 },
		"neighborhood": func(c *Config) { c.Neighborhood = core.Neighborhood(5) },
		"rule":         func(c *Config) { c.Rule = rules.Rule(5) },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidConfiguration)
		})
	}
}

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "vitality.json", `{
		"neighborhood": "small_star",
		"rule": "smoothed",
		"include_self": true,
		"tick_period": "16ms",
		"pattern": "blinker"
	}`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, core.SmallStar, cfg.Neighborhood)
	assert.Equal(t, rules.Smoothed, cfg.Rule)
	assert.True(t, cfg.IncludeSelf)
	assert.Equal(t, 16*time.Millisecond, cfg.TickPeriod)
	assert.Equal(t, "blinker", cfg.Pattern)
	assert.Equal(t, DefaultConfig().CellWidth, cfg.CellWidth, "omitted fields keep defaults")
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "vitality.yaml", `{}`))
	assert.ErrorContains(t, err, ".json extension")

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "broken.json", `{"rule":`))
	assert.ErrorContains(t, err, "parse config JSON")

	_, err = LoadConfig(writeConfig(t, "rule.json", `{"rule":"lenia"}`))
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)

	_, err = LoadConfig(writeConfig(t, "tick.json", `{"tick_period":"soon"}`))
	assert.ErrorContains(t, err, "tick_period")

	_, err = LoadConfig(writeConfig(t, "width.json", `{"cell_width":0}`))
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}
