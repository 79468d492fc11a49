// Package sweep runs batches of headless scenarios across every rule and
// neighborhood combination and summarizes how their populations evolve.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"slices"
	"sync"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"vitality-ca/internal/core"
	"vitality-ca/internal/rules"
	"vitality-ca/internal/sim"
)

// Scenario is one point of the sweep grid.
type Scenario struct {
	Rule         rules.Rule
	Neighborhood core.Neighborhood
	IncludeSelf  bool
}

func (s Scenario) String() string {
	return fmt.Sprintf("%s/%s/self=%t", s.Rule, s.Neighborhood, s.IncludeSelf)
}

// Scenarios enumerates every rule × neighborhood × include-self combination.
func Scenarios() []Scenario {
	var out []Scenario
	for _, r := range []rules.Rule{rules.Discrete, rules.Smoothed} {
		for _, n := range []core.Neighborhood{core.FullNeighborhood, core.SmallStar} {
			for _, self := range []bool{false, true} {
				out = append(out, Scenario{Rule: r, Neighborhood: n, IncludeSelf: self})
			}
		}
	}
	return out
}

// Options configures a sweep.
type Options struct {
	// Base supplies everything a Scenario does not override.
	Base    sim.Config
	Steps   int
	Workers int
}

// Result records one scenario run.
type Result struct {
	RunID    uuid.UUID
	Scenario Scenario

	// Alive holds the live population before the first tick and after each
	// completed tick.
	Alive []int
	Final sim.Stats

	MeanAlive   float64
	StdDevAlive float64
	PeakAlive   int
	PeakTick    int

	Err error
}

type job struct {
	index    int
	scenario Scenario
}

type indexed struct {
	index  int
	result Result
}

// Run executes every scenario on its own engine using a pool of workers.
// Results come back in scenario order. Cancelling ctx stops the remaining
// scenarios between ticks and returns ctx.Err().
func Run(ctx context.Context, opts Options, scenarios []Scenario) ([]Result, error) {
	if opts.Steps < 0 {
		return nil, fmt.Errorf("steps must be non-negative, got %d: %w", opts.Steps, core.ErrInvalidConfiguration)
	}
	if err := opts.Base.Validate(); err != nil {
		return nil, err
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, max(len(scenarios), 1))

	jobs := make(chan job)
	results := make(chan indexed)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- indexed{index: j.index, result: runScenario(ctx, opts.Base, j.scenario, opts.Steps)}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		defer close(jobs)
		for i, sc := range scenarios {
			select {
			case jobs <- job{index: i, scenario: sc}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var all []indexed
	for res := range results {
		all = append(all, res)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slices.SortFunc(all, func(a, b indexed) int { return a.index - b.index })

	out := make([]Result, len(all))
	for i, r := range all {
		out[i] = r.result
	}
	return out, nil
}

func runScenario(ctx context.Context, base sim.Config, sc Scenario, steps int) Result {
	res := Result{RunID: uuid.New(), Scenario: sc}

	cfg := base
	cfg.Rule = sc.Rule
	cfg.Neighborhood = sc.Neighborhood
	cfg.IncludeSelf = sc.IncludeSelf
	cfg.Verbose = false

	engine, err := sim.New(cfg)
	if err != nil {
		res.Err = err
		return res
	}
	if err := engine.Reset(0); err != nil {
		res.Err = err
		return res
	}

	res.Alive = make([]int, 0, steps+1)
	res.Alive = append(res.Alive, engine.Stats().Alive)
	for step := 0; step < steps; step++ {
		if ctx.Err() != nil {
			res.Err = ctx.Err()
			break
		}
		if err := engine.Step(); err != nil {
			res.Err = err
			break
		}
		res.Alive = append(res.Alive, engine.Stats().Alive)
	}
	res.Final = engine.Stats()
	summarize(&res)
	return res
}

func summarize(res *Result) {
	if len(res.Alive) == 0 {
		return
	}
	vals := make([]float64, len(res.Alive))
	for i, n := range res.Alive {
		vals[i] = float64(n)
		if n > res.PeakAlive {
			res.PeakAlive = n
			res.PeakTick = i
		}
	}
	if len(vals) < 2 {
		res.MeanAlive = vals[0]
		return
	}
	res.MeanAlive, res.StdDevAlive = stat.MeanStdDev(vals, nil)
}
