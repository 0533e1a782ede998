package cpm

import (
	"errors"
	"strings"
	"testing"

	"github.com/S0Ulle33/Advent-of-Code-2018/internal/graph"
	"github.com/S0Ulle33/Advent-of-Code-2018/internal/schedule"
)

func canonicalEdges() []graph.Edge {
	return []graph.Edge{
		{Before: "C", After: "A"},
		{Before: "C", After: "F"},
		{Before: "A", After: "B"},
		{Before: "A", After: "D"},
		{Before: "B", After: "E"},
		{Before: "D", After: "E"},
		{Before: "F", After: "E"},
	}
}

func TestAnalyze_LinearChain(t *testing.T) {
	// A -> B -> C with base 0: durations 1, 2, 3
	g := graph.Build([]graph.Edge{
		{Before: "A", After: "B"},
		{Before: "B", After: "C"},
	})

	result, err := Analyze(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalDuration != 6 {
		t.Errorf("expected total duration 6, got %d", result.TotalDuration)
	}

	// All steps should be on critical path
	if len(result.CriticalPath) != 3 {
		t.Errorf("expected 3 steps on critical path, got %d: %v", len(result.CriticalPath), result.CriticalPath)
	}

	// No parallelism in a chain
	if len(result.Waves) != 3 {
		t.Errorf("expected 3 waves, got %d", len(result.Waves))
	}

	assertSchedule(t, result.Steps["A"], 0, 1, 0, 1, 0, true)
	assertSchedule(t, result.Steps["B"], 1, 3, 1, 3, 0, true)
	assertSchedule(t, result.Steps["C"], 3, 6, 3, 6, 0, true)
}

func TestAnalyze_Canonical(t *testing.T) {
	g := graph.Build(canonicalEdges())

	result, err := Analyze(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// C(3) + F(6) + E(5)
	if result.TotalDuration != 14 {
		t.Errorf("expected total duration 14, got %d", result.TotalDuration)
	}
	if got := strings.Join(result.CriticalPath, ""); got != "CFE" {
		t.Errorf("expected critical path CFE, got %s", got)
	}
	if got := strings.Join(result.TopoOrder, ""); got != "CABDFE" {
		t.Errorf("expected topo order CABDFE, got %s", got)
	}

	assertSchedule(t, result.Steps["A"], 3, 4, 4, 5, 1, false)
	assertSchedule(t, result.Steps["B"], 4, 6, 7, 9, 3, false)
	assertSchedule(t, result.Steps["D"], 4, 8, 5, 9, 1, false)
	assertSchedule(t, result.Steps["E"], 9, 14, 9, 14, 0, true)

	// [C] [F A] [B D] [E]
	if len(result.Waves) != 4 {
		t.Fatalf("expected 4 waves, got %d", len(result.Waves))
	}
	wave1 := result.Waves[1]
	if wave1.Start != 3 || strings.Join(wave1.Steps, "") != "FA" {
		t.Errorf("expected wave 1 at 3 with critical F first, got %d %v", wave1.Start, wave1.Steps)
	}
	if !wave1.IsCritical {
		t.Error("expected wave 1 to be critical")
	}
	if result.Waves[2].IsCritical {
		t.Error("expected wave 2 to have no critical steps")
	}
	if result.Steps["E"].Wave != 3 {
		t.Errorf("expected E in wave 3, got %d", result.Steps["E"].Wave)
	}
}

func TestAnalyze_TopoOrderMatchesResolve(t *testing.T) {
	edges := []graph.Edge{
		{Before: "X", After: "B"},
		{Before: "Q", After: "B"},
		{Before: "B", After: "A"},
		{Before: "Q", After: "Z"},
		{Before: "M", After: "A"},
	}

	result, err := Analyze(graph.Build(edges), 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	order, err := schedule.Resolve(edges)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Join(result.TopoOrder, ""); got != order {
		t.Errorf("expected topo order %s, got %s", order, got)
	}
}

func TestAnalyze_LowerBoundsSimulation(t *testing.T) {
	edges := canonicalEdges()
	result, err := Analyze(graph.Build(edges), 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, w := range []int{1, 2, 5} {
		sim, err := schedule.Simulate(edges, schedule.Config{Workers: w, BaseDuration: 60})
		if err != nil {
			t.Fatalf("workers=%d: unexpected error: %v", w, err)
		}
		if sim.Elapsed < result.TotalDuration {
			t.Errorf("workers=%d: simulation %d beat critical path %d", w, sim.Elapsed, result.TotalDuration)
		}
	}

	// Enough workers for every step reaches the bound exactly.
	sim, err := schedule.Simulate(edges, schedule.Config{Workers: 26, BaseDuration: 60})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sim.Elapsed != result.TotalDuration {
		t.Errorf("expected unbounded simulation %d to equal critical path %d", sim.Elapsed, result.TotalDuration)
	}
}

func TestAnalyze_Cycle(t *testing.T) {
	g := graph.Build([]graph.Edge{
		{Before: "A", After: "B"},
		{Before: "B", After: "A"},
	})

	_, err := Analyze(g, 60)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	result, err := Analyze(graph.Build(nil), 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TotalDuration != 0 || len(result.Waves) != 0 {
		t.Errorf("expected empty analysis, got duration %d and %d waves", result.TotalDuration, len(result.Waves))
	}
}

func assertSchedule(t *testing.T, ss *StepSchedule, es, ef, ls, lf, slack int, critical bool) {
	t.Helper()
	if ss == nil {
		t.Fatal("step schedule is nil")
	}
	if ss.ES != es || ss.EF != ef || ss.LS != ls || ss.LF != lf || ss.Slack != slack || ss.IsCritical != critical {
		t.Errorf("step %s: expected ES=%d EF=%d LS=%d LF=%d Slack=%d Critical=%v, got ES=%d EF=%d LS=%d LF=%d Slack=%d Critical=%v",
			ss.Step, es, ef, ls, lf, slack, critical,
			ss.ES, ss.EF, ss.LS, ss.LF, ss.Slack, ss.IsCritical)
	}
}
