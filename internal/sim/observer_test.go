package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitality-ca/internal/core"
)

func TestObserverFrames(t *testing.T) {
	e := newTestEngine(t, nil)
	var frames []Frame
	unsubscribe := e.Subscribe(ObserverFunc(func(f Frame) { frames = append(frames, f) }))

	e.Spawn(core.Coord{})
	require.Len(t, frames, 1)
	assert.False(t, frames[0].Full)
	assert.Len(t, frames[0].Cells, 9)

	e.Spawn(core.Coord{})
	assert.Len(t, frames, 1, "no-op spawns emit nothing")

	require.NoError(t, e.Step())
	require.Len(t, frames, 2)
	assert.True(t, frames[1].Full)
	assert.Equal(t, uint64(1), frames[1].Tick)
	assert.Equal(t, e.Snapshot(), frames[1].Cells)

	unsubscribe()
	require.NoError(t, e.Step())
	assert.Len(t, frames, 2)
}

func TestObserverFramesAreCopies(t *testing.T) {
	e := newTestEngine(t, nil)
	var got Frame
	e.Subscribe(ObserverFunc(func(f Frame) { got = f }))
	e.Spawn(core.Coord{})

	got.Cells[0].Vitality = 42
	for _, s := range e.Snapshot() {
		assert.NotEqual(t, 42.0, s.Vitality)
	}
}

func TestSubscribeNil(t *testing.T) {
	e := newTestEngine(t, nil)
	unsubscribe := e.Subscribe(nil)
	unsubscribe()
	e.Spawn(core.Coord{})
}
