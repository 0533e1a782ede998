package schedule

import (
	"strings"

	"github.com/S0Ulle33/Advent-of-Code-2018/internal/graph"
)

// Resolve returns the order in which steps complete when the alphabetically
// smallest available step is always done next and durations are ignored.
func Resolve(edges []graph.Edge) (string, error) {
	t := newTracker(edges)

	var order strings.Builder
	for len(t.pending) > 0 {
		ready := t.available()
		if len(ready) == 0 {
			return "", t.cycleError()
		}

		step := ready[0]
		order.WriteString(step)
		t.take(step)
		t.complete(step)
	}
	return order.String(), nil
}
