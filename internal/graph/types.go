package graph

// Edge is a single precedence constraint: Before must finish before After can begin.
type Edge struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// StepGraph is a directed graph of steps built from precedence edges.
// It may contain cycles; callers decide how to report them.
type StepGraph struct {
	Steps  map[string]bool
	Adj    map[string][]string // step -> steps it blocks
	RevAdj map[string][]string // step -> steps that block it
	Roots  []string            // steps with no blockers
	Leaves []string            // steps that block nothing
}
