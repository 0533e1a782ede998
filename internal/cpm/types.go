package cpm

// Result holds the complete critical path analysis.
type Result struct {
	Steps         map[string]*StepSchedule `json:"steps"`
	CriticalPath  []string                 `json:"critical_path"` // ordered step IDs on critical path
	TotalDuration int                      `json:"total_duration"`
	Waves         []Wave                   `json:"waves"` // steps sharing an earliest start
	TopoOrder     []string                 `json:"topo_order"`
}

// StepSchedule holds the scheduling info for a single step.
type StepSchedule struct {
	Step       string `json:"step"`
	Duration   int    `json:"duration"`
	ES         int    `json:"es"` // earliest start
	EF         int    `json:"ef"` // earliest finish
	LS         int    `json:"ls"` // latest start
	LF         int    `json:"lf"` // latest finish
	Slack      int    `json:"slack"`
	IsCritical bool   `json:"is_critical"`
	Wave       int    `json:"wave"`
}

// Wave represents a group of steps that could start at the same tick
// given unlimited workers.
type Wave struct {
	Index      int      `json:"index"`
	Start      int      `json:"start"`
	Steps      []string `json:"steps"`
	IsCritical bool     `json:"is_critical"`
}
