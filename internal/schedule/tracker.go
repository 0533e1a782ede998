package schedule

import (
	"github.com/S0Ulle33/Advent-of-Code-2018/internal/graph"
)

// tracker owns the mutable bookkeeping for one scheduling run: the pending
// set and, per step, how many of its incoming edges are still outstanding.
type tracker struct {
	g        *graph.StepGraph
	pending  map[string]bool
	blockers map[string]int
}

func newTracker(edges []graph.Edge) *tracker {
	g := graph.Build(edges)
	t := &tracker{
		g:        g,
		pending:  make(map[string]bool, g.StepCount()),
		blockers: make(map[string]int, g.StepCount()),
	}
	for id := range g.Steps {
		t.pending[id] = true
		t.blockers[id] = len(g.RevAdj[id])
	}
	return t
}

// available returns pending steps with no outstanding incoming edge, sorted.
func (t *tracker) available() []string {
	ready := make(map[string]bool)
	for id := range t.pending {
		if t.blockers[id] == 0 {
			ready[id] = true
		}
	}
	return graph.Sorted(ready)
}

// take removes a step from the pending set. Called on assignment, so a
// step in progress can never be handed out twice.
func (t *tracker) take(step string) {
	delete(t.pending, step)
}

// complete drops every edge whose predecessor is step.
func (t *tracker) complete(step string) {
	for _, succ := range t.g.Adj[step] {
		t.blockers[succ]--
	}
}

func (t *tracker) cycleError() *CycleError {
	return &CycleError{
		Pending: graph.Sorted(t.pending),
		Path:    t.g.DetectCycle(),
	}
}
