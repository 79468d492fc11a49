package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vitality-ca/internal/rules"
)

func TestShade(t *testing.T) {
	dead := Shade(0, rules.Discrete)
	assert.Equal(t, uint8(8), dead.A)

	alive := Shade(1, rules.Discrete)
	assert.Equal(t, uint8(255), alive.A)
	assert.Equal(t, uint8(255), alive.G)

	full := Shade(1, rules.Smoothed)
	assert.Equal(t, uint8(255), full.A)
	assert.Equal(t, uint8(0), full.G, "full vitality is pure red")

	faint := Shade(0.01, rules.Smoothed)
	assert.Equal(t, uint8(8), faint.A, "alpha never drops below the dead level")

	half := Shade(0.5, rules.Smoothed)
	assert.Equal(t, uint8(128), half.A)
	assert.Equal(t, half.G, half.B)

	assert.Equal(t, full, Shade(3, rules.Smoothed), "vitality saturates")
}
