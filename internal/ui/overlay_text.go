package ui

import (
	"fmt"

	"vitality-ca/internal/sim"
)

var helpLines = []string{
	"left drag: spawn   right drag: clear",
	"middle/T: toggle   space: run while held",
	"enter: run/pause   N: single tick",
	"R: reset   S: reseed   arrows: pan",
	"G: grid   I: stats   H: help   Q: quit",
}

func statsLines(st sim.Stats) []string {
	return []string{
		fmt.Sprintf("tick %d", st.Tick),
		fmt.Sprintf("cells %d  alive %d  dead %d", st.Cells, st.Alive, st.Dead),
		fmt.Sprintf("vitality total %.2f  mean %.3f", st.TotalVitality, st.MeanVitality),
	}
}
