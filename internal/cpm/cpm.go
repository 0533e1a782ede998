package cpm

import (
	"errors"
	"fmt"
	"sort"

	"github.com/S0Ulle33/Advent-of-Code-2018/internal/graph"
)

var ErrCycle = errors.New("graph has a cycle")

// Analyze performs critical path analysis on a step graph, using
// graph.Duration(step, base) as each step's duration.
//
// TotalDuration is the completion time with as many workers as there are
// steps, so it is a lower bound for any schedule.Simulate run.
func Analyze(g *graph.StepGraph, base int) (*Result, error) {
	order, err := topoSort(g)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Steps:     make(map[string]*StepSchedule),
		TopoOrder: order,
	}

	for _, id := range order {
		result.Steps[id] = &StepSchedule{Step: id, Duration: graph.Duration(id, base)}
	}

	// Forward pass: ES = max(EF of all predecessors)
	for _, id := range order {
		ss := result.Steps[id]
		es := 0
		for _, pred := range g.RevAdj[id] {
			if ef := result.Steps[pred].EF; ef > es {
				es = ef
			}
		}
		ss.ES = es
		ss.EF = es + ss.Duration
	}

	for _, ss := range result.Steps {
		if ss.EF > result.TotalDuration {
			result.TotalDuration = ss.EF
		}
	}

	// Backward pass in reverse topological order. Leaves finish at the end
	// of the project; everything else by the earliest LS of its successors.
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		ss := result.Steps[id]

		lf := result.TotalDuration
		for _, succ := range g.Adj[id] {
			if ls := result.Steps[succ].LS; ls < lf {
				lf = ls
			}
		}
		ss.LF = lf
		ss.LS = lf - ss.Duration
		ss.Slack = ss.LS - ss.ES
		ss.IsCritical = ss.Slack == 0
	}

	for _, id := range order {
		if result.Steps[id].IsCritical {
			result.CriticalPath = append(result.CriticalPath, id)
		}
	}

	result.Waves = computeWaves(result)

	return result, nil
}

// topoSort performs Kahn's algorithm, always taking the alphabetically
// smallest ready step.
func topoSort(g *graph.StepGraph) ([]string, error) {
	inDegree := make(map[string]int)
	for id := range g.Steps {
		inDegree[id] = len(g.RevAdj[id])
	}

	queue := append([]string(nil), g.Roots...)

	var order []string
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		for _, succ := range g.Adj[node] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				queue = append(queue, succ)
			}
		}
		sort.Strings(queue)
	}

	if len(order) != g.StepCount() {
		return nil, fmt.Errorf("topological sort failed: %w (%d of %d steps sorted)", ErrCycle, len(order), g.StepCount())
	}

	return order, nil
}

// computeWaves groups steps by their earliest start time.
func computeWaves(result *Result) []Wave {
	esGroups := make(map[int][]string)
	for _, id := range result.TopoOrder {
		es := result.Steps[id].ES
		esGroups[es] = append(esGroups[es], id)
	}

	esValues := make([]int, 0, len(esGroups))
	for es := range esGroups {
		esValues = append(esValues, es)
	}
	sort.Ints(esValues)

	waves := make([]Wave, len(esValues))
	for i, es := range esValues {
		steps := esGroups[es]
		sort.Strings(steps)

		hasCritical := false
		for _, id := range steps {
			result.Steps[id].Wave = i
			if result.Steps[id].IsCritical {
				hasCritical = true
			}
		}

		// Critical steps first within a wave
		sort.SliceStable(steps, func(a, b int) bool {
			return result.Steps[steps[a]].IsCritical && !result.Steps[steps[b]].IsCritical
		})

		waves[i] = Wave{
			Index:      i,
			Start:      es,
			Steps:      steps,
			IsCritical: hasCritical,
		}
	}

	return waves
}
