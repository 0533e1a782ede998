package graph

import (
	"sort"
)

// Build constructs a StepGraph from precedence edges. The step set is the
// union of every letter named on either side of an edge. Duplicate edges are
// collapsed.
func Build(edges []Edge) *StepGraph {
	g := &StepGraph{
		Steps:  make(map[string]bool),
		Adj:    make(map[string][]string),
		RevAdj: make(map[string][]string),
	}

	edgeSet := make(map[Edge]bool)
	for _, e := range edges {
		g.Steps[e.Before] = true
		g.Steps[e.After] = true
		if edgeSet[e] {
			continue
		}
		edgeSet[e] = true
		g.Adj[e.Before] = append(g.Adj[e.Before], e.After)
		g.RevAdj[e.After] = append(g.RevAdj[e.After], e.Before)
	}

	// Sort adjacency lists for deterministic ordering
	for k := range g.Adj {
		sort.Strings(g.Adj[k])
	}
	for k := range g.RevAdj {
		sort.Strings(g.RevAdj[k])
	}

	for _, id := range g.StepIDs() {
		if len(g.RevAdj[id]) == 0 {
			g.Roots = append(g.Roots, id)
		}
		if len(g.Adj[id]) == 0 {
			g.Leaves = append(g.Leaves, id)
		}
	}

	return g
}

// DetectCycle returns the cycle path if one exists, or nil if the graph is acyclic.
// Uses DFS with coloring: white (unvisited), gray (in progress), black (done).
func (g *StepGraph) DetectCycle() []string {
	const (
		white = 0
		gray  = 1
		black = 2
	)

	color := make(map[string]int)
	parent := make(map[string]string)

	var dfs func(node string) []string
	dfs = func(node string) []string {
		color[node] = gray
		for _, next := range g.Adj[node] {
			if color[next] == gray {
				// Walk parents back to next, then reverse into forward order
				cycle := []string{next, node}
				cur := node
				for cur != next {
					cur = parent[cur]
					cycle = append(cycle, cur)
				}
				for i, j := 0, len(cycle)-1; i < j; i, j = i+1, j-1 {
					cycle[i], cycle[j] = cycle[j], cycle[i]
				}
				return cycle
			}
			if color[next] == white {
				parent[next] = node
				if cycle := dfs(next); cycle != nil {
					return cycle
				}
			}
		}
		color[node] = black
		return nil
	}

	for _, id := range g.StepIDs() {
		if color[id] == white {
			if cycle := dfs(id); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}

// StepCount returns the number of steps in the graph.
func (g *StepGraph) StepCount() int {
	return len(g.Steps)
}

// StepIDs returns every step in alphabetical order.
func (g *StepGraph) StepIDs() []string {
	return Sorted(g.Steps)
}

// Sorted returns the members of a step set in alphabetical order.
// Map iteration order is random, so every tie-break goes through here.
func Sorted(set map[string]bool) []string {
	ids := make([]string, 0, len(set))
	for id, ok := range set {
		if ok {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Duration is the time a step takes to execute: base plus its 1-based
// alphabetical rank ('A' is 1, 'Z' is 26).
func Duration(step string, base int) int {
	if step == "" {
		return base
	}
	return base + int(step[0]) - int('A') + 1
}
