package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedistributeSlack(t *testing.T) {
	tests := map[string]struct {
		padding, spacing float64
		dynPad, dynSpace bool
		rest             float64
		count            int
		wantPad, wantSp  float64
	}{
		"static":               {5, 10, false, false, 100, 2, 5, 10},
		"padding only":         {5, 10, true, false, 100, 2, 45, 10},
		"spacing only":         {0, 0, false, true, 60, 3, 0, 30},
		"both":                 {0, 0, true, true, 60, 2, 20, 20},
		"no slack":             {10, 10, true, true, 20, 2, 10, 10},
		"single child spacing": {0, 0, false, true, 60, 1, 0, 0},
		"single child padding": {0, 0, true, true, 60, 1, 30, 0},
		"no children":          {3, 4, true, true, 60, 0, 3, 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			p, s := redistributeSlack(tt.padding, tt.spacing, tt.dynPad, tt.dynSpace, tt.rest, tt.count)
			assert.InDelta(t, tt.wantPad, p, 1e-9)
			assert.InDelta(t, tt.wantSp, s, 1e-9)
		})
	}
}

// After redistribution the children, padding and spacing span the container.
func TestRedistributeSlack_FillsContainer(t *testing.T) {
	const size = 250.0
	children := []float64{12, 40, 7.5, 31}
	used := 0.0
	for _, c := range children {
		used += c
	}

	for _, flags := range [][2]bool{{true, false}, {false, true}, {true, true}} {
		p, s := redistributeSlack(3, 2, flags[0], flags[1], size-used, len(children))
		span := used + 2*p + s*float64(len(children)-1)
		assert.InDelta(t, size, span, epsilon, "dynamic padding=%v spacing=%v", flags[0], flags[1])
	}
}
