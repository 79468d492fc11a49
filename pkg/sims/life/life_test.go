package life

import "testing"

func TestBlinkerOscillation(t *testing.T) {
	b := New(2)
	b.Set(0, -1)
	b.Set(0, 0)
	b.Set(0, 1)

	b.Step()

	expects := map[[2]int]bool{
		{-1, 0}: true,
		{0, 0}:  true,
		{1, 0}:  true,
	}
	for y := -2; y <= 2; y++ {
		for x := -2; x <= 2; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if alive := b.Alive(x, y); shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	b.Step()

	expects = map[[2]int]bool{
		{0, -1}: true,
		{0, 0}:  true,
		{0, 1}:  true,
	}
	for y := -2; y <= 2; y++ {
		for x := -2; x <= 2; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if alive := b.Alive(x, y); shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestSetOutsideBoard(t *testing.T) {
	b := New(1)
	if b.Set(2, 0) {
		t.Fatalf("expected Set outside the board to fail")
	}
	if b.Alive(2, 0) {
		t.Fatalf("cells outside the board are never alive")
	}
}

func TestLiveRowMajor(t *testing.T) {
	b := New(3)
	b.Set(1, 1)
	b.Set(-1, 1)
	b.Set(0, -2)
	live := b.Live()
	if len(live) != 3 {
		t.Fatalf("expected 3 live cells, got %d", len(live))
	}
	if live[0].Y != -2 || live[1].X != -1 || live[2].X != 1 {
		t.Fatalf("unexpected order %v", live)
	}
}
