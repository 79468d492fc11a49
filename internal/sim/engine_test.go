package sim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitality-ca/internal/core"
	"vitality-ca/internal/monitoring"
	_ "vitality-ca/internal/patterns"
	"vitality-ca/internal/rules"
	pcore "vitality-ca/pkg/core"
	"vitality-ca/pkg/sims/life"
)

// newTestEngine builds an engine on a unit lattice so coordinates read as
// cell indices.
func newTestEngine(t *testing.T, mutate func(*Config)) *Engine {
	t.Helper()
	t.Cleanup(monitoring.Swap(nil))
	cfg := DefaultConfig()
	cfg.CellWidth = 1
	if mutate != nil {
		mutate(&cfg)
	}
	e, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, e.Reset(0))
	return e
}

func spawnAll(e *Engine, pts ...[2]int) {
	for _, p := range pts {
		e.Spawn(core.Coord{X: p[0], Y: p[1]})
	}
}

func liveSet(e *Engine) []core.Coord {
	var out []core.Coord
	for _, s := range e.Snapshot() {
		if s.Alive() {
			out = append(out, s.Pos)
		}
	}
	return out
}

func coords(pts ...[2]int) []core.Coord {
	out := make([]core.Coord, len(pts))
	for i, p := range pts {
		out[i] = core.Coord{X: p[0], Y: p[1]}
	}
	return out
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CellWidth = 0
	_, err := New(cfg)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestResetWithoutPatternIsEmpty(t *testing.T) {
	e := newTestEngine(t, nil)
	assert.Zero(t, e.Len())
	assert.Zero(t, e.Tick())
}

func TestSmallStarAggregationUsesPreTickVitality(t *testing.T) {
	e := newTestEngine(t, func(c *Config) {
		c.Neighborhood = core.SmallStar
		c.Rule = rules.Smoothed
		c.BorderGrowth = false
	})
	spawnAll(e, [2]int{-1, 0}, [2]int{1, 0})
	before := e.Len()

	assert.Equal(t, 2.0, e.Aggregate(core.Coord{}))
	assert.Equal(t, 0.0, e.Aggregate(core.Coord{X: -1}))
	assert.Equal(t, before, e.Len(), "aggregation must not create cells")

	require.NoError(t, e.Step())

	centre, ok := e.Cell(core.Coord{})
	require.True(t, ok)
	assert.Equal(t, 2.0, centre.Neighbors)
	assert.InDelta(t, 0.175, centre.Vitality, 1e-12)

	for _, x := range []int{-1, 1} {
		side, ok := e.Cell(core.Coord{X: x})
		require.True(t, ok)
		assert.Zero(t, side.Neighbors, "neighbor sum at x=%d must see the pre-tick centre", x)
		assert.Zero(t, side.Vitality)
	}
	assert.Equal(t, before, e.Len())
}

func TestIncludeSelf(t *testing.T) {
	e := newTestEngine(t, func(c *Config) {
		c.Neighborhood = core.SmallStar
		c.IncludeSelf = true
	})
	spawnAll(e, [2]int{-1, 0}, [2]int{1, 0})
	assert.Equal(t, 1.0, e.Aggregate(core.Coord{X: -1}))
	assert.Equal(t, 2.0, e.Aggregate(core.Coord{}))
}

func TestBlinkerOscillates(t *testing.T) {
	e := newTestEngine(t, nil)
	spawnAll(e, [2]int{0, -1}, [2]int{0, 0}, [2]int{0, 1})
	vertical := liveSet(e)

	require.NoError(t, e.Step())
	if diff := cmp.Diff(coords([2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0}), liveSet(e)); diff != "" {
		t.Fatalf("after one tick (-want +got):\n%s", diff)
	}

	require.NoError(t, e.Step())
	if diff := cmp.Diff(vertical, liveSet(e)); diff != "" {
		t.Fatalf("after two ticks (-want +got):\n%s", diff)
	}
	assert.Equal(t, uint64(2), e.Tick())
}

func TestGliderTranslatesEveryFourTicks(t *testing.T) {
	e := newTestEngine(t, func(c *Config) { c.Pattern = "glider" })
	start := liveSet(e)
	require.Len(t, start, 5)

	for cycle := 1; cycle <= 3; cycle++ {
		for i := 0; i < 4; i++ {
			require.NoError(t, e.Step())
		}
		want := make([]core.Coord, len(start))
		for i, c := range start {
			want[i] = core.Coord{X: c.X + cycle, Y: c.Y - cycle}
		}
		if diff := cmp.Diff(want, liveSet(e)); diff != "" {
			t.Fatalf("cycle %d (-want +got):\n%s", cycle, diff)
		}
	}
}

func TestGliderStallsWithoutBorderGrowth(t *testing.T) {
	e := newTestEngine(t, func(c *Config) {
		c.Pattern = "glider"
		c.BorderGrowth = false
	})
	size := e.Len()
	for i := 0; i < 12; i++ {
		require.NoError(t, e.Step())
	}
	assert.Equal(t, size, e.Len(), "ticks never create cells on their own")
}

func TestGrowthPassBordersLiveCells(t *testing.T) {
	e := newTestEngine(t, func(c *Config) { c.Pattern = "rpentomino" })
	for i := 0; i < 10; i++ {
		require.NoError(t, e.Step())
	}
	offsets := core.FullNeighborhood.Offsets(1)
	for _, c := range liveSet(e) {
		for _, o := range offsets {
			_, ok := e.Cell(c.Add(o))
			require.True(t, ok, "neighbor %v of live cell %v missing", c.Add(o), c)
		}
	}
}

func TestGrowthThresholdLimitsSmoothedGrowth(t *testing.T) {
	e := newTestEngine(t, func(c *Config) {
		c.Rule = rules.Smoothed
		c.Pattern = "block"
	})
	size := e.Len()
	for i := 0; i < 5; i++ {
		require.NoError(t, e.Step())
	}
	// Smoothed vitality never reaches 1 again, so nothing grows.
	assert.Equal(t, size, e.Len())
}

func TestDiscreteMatchesDenseBoard(t *testing.T) {
	const radius = 40
	rng := pcore.NewRNG(11)
	board := life.New(radius)
	e := newTestEngine(t, nil)
	for y := -5; y <= 5; y++ {
		for x := -5; x <= 5; x++ {
			if rng.Chance(0.35) {
				board.Set(x, y)
				e.Spawn(core.Coord{X: x, Y: y})
			}
		}
	}
	require.Equal(t, board.Live(), liveSet(e))

	for tick := 1; tick <= 25; tick++ {
		board.Step()
		require.NoError(t, e.Step())
		if diff := cmp.Diff(board.Live(), liveSet(e)); diff != "" {
			t.Fatalf("tick %d (-dense +sparse):\n%s", tick, diff)
		}
	}
}

func TestResetIsDeterministic(t *testing.T) {
	e := newTestEngine(t, func(c *Config) {
		c.Pattern = "random"
		c.SeedRadius = 4
	})
	first := e.Snapshot()
	require.NotEmpty(t, first)

	require.NoError(t, e.Step())
	require.NoError(t, e.Reset(0))
	if diff := cmp.Diff(first, e.Snapshot()); diff != "" {
		t.Fatalf("reset with the same seed diverged (-first +second):\n%s", diff)
	}
	assert.Zero(t, e.Tick())
}

func TestSwitchRuleAndNeighborhood(t *testing.T) {
	e := newTestEngine(t, nil)
	require.NoError(t, e.SetRule(rules.Smoothed))
	assert.Equal(t, "vitality/smoothed", e.Name())
	assert.ErrorIs(t, e.SetRule(rules.Rule(9)), core.ErrInvalidConfiguration)

	require.NoError(t, e.SetNeighborhood(core.SmallStar))
	touched := e.Spawn(core.Coord{})
	assert.Len(t, touched, 5)
	assert.ErrorIs(t, e.SetNeighborhood(core.Neighborhood(9)), core.ErrInvalidConfiguration)
}

func TestStats(t *testing.T) {
	e := newTestEngine(t, nil)
	spawnAll(e, [2]int{0, 0}, [2]int{5, 5})
	st := e.Stats()
	assert.Equal(t, 18, st.Cells)
	assert.Equal(t, 2, st.Alive)
	assert.Equal(t, 16, st.Dead)
	assert.Equal(t, 2.0, st.TotalVitality)
	assert.Equal(t, 1.0, st.MeanVitality)
	assert.Equal(t, 1.0, st.MaxVitality)

	empty := Summarize(3, nil)
	assert.Equal(t, Stats{Tick: 3}, empty)
}
