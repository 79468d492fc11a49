package patterns

import (
	"math/rand/v2"
	"testing"

	"vitality-ca/internal/core"
)

func TestRegistered(t *testing.T) {
	for _, name := range []string{"glider", "blinker", "block", "rpentomino", "random"} {
		if _, ok := core.LookupPattern(name); !ok {
			t.Fatalf("pattern %q not registered", name)
		}
	}
}

func TestRandomDeterministicAndBounded(t *testing.T) {
	params := func() core.PatternParams {
		return core.PatternParams{Rand: rand.New(rand.NewPCG(7, 0)), Radius: 4, Density: 0.5}
	}
	a := Random(params())
	b := Random(params())
	if len(a) == 0 {
		t.Fatal("expected some live cells at density 0.5")
	}
	if len(a) != len(b) {
		t.Fatalf("same seed produced %d and %d cells", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs: %v vs %v", i, a[i], b[i])
		}
		if a[i].DX < -4 || a[i].DX > 4 || a[i].DY < -4 || a[i].DY > 4 {
			t.Fatalf("cell %v outside radius", a[i])
		}
	}
}

func TestRandomZeroDensity(t *testing.T) {
	got := Random(core.PatternParams{Rand: rand.New(rand.NewPCG(1, 0)), Radius: 3})
	if len(got) != 0 {
		t.Fatalf("expected no cells, got %d", len(got))
	}
}
