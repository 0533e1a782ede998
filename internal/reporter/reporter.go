package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/S0Ulle33/Advent-of-Code-2018/internal/cpm"
	"github.com/S0Ulle33/Advent-of-Code-2018/internal/schedule"
	"github.com/S0Ulle33/Advent-of-Code-2018/internal/ui"
)

// Reporter renders solver results for the terminal or as JSON.
type Reporter struct {
	Order  string           // part one
	Sim    *schedule.Result // part two
	Plan   *cpm.Result      // optional critical path analysis
	Config schedule.Config
}

// New creates a new Reporter.
func New(order string, sim *schedule.Result, cfg schedule.Config) *Reporter {
	return &Reporter{Order: order, Sim: sim, Config: cfg}
}

// PrintAnswers writes the two answer lines.
func (r *Reporter) PrintAnswers(w io.Writer) {
	fmt.Fprintf(w, "Part One: %s\n", ui.Bold(r.Order))
	fmt.Fprintf(w, "Part Two: %s\n", ui.Bold(r.Sim.Elapsed))
}

// PrintTimeline writes one line per assignment in start order, followed by
// a per-worker utilisation footer.
func (r *Reporter) PrintTimeline(w io.Writer) {
	fmt.Fprintf(w, "⏱  %s %d workers, base %d, %s-first\n",
		ui.BoldCyan("Simulation:"), r.Config.Workers, r.Config.BaseDuration, r.Config.TieBreak)

	critical := make(map[string]bool)
	if r.Plan != nil {
		for _, id := range r.Plan.CriticalPath {
			critical[id] = true
		}
	}

	for _, a := range r.Sim.Timeline {
		fmt.Fprintf(w, "  %s %s %s %s\n",
			ui.WorkerPrefix(a.Worker),
			ui.BoldMagenta(a.Step),
			ui.CriticalMark(critical[a.Step]),
			ui.Dim(fmt.Sprintf("[%d → %d]", a.Start, a.Finish)))
	}

	busy := make(map[int]int)
	for _, a := range r.Sim.Timeline {
		busy[a.Worker] += a.Finish - a.Start
	}
	workers := make([]int, 0, len(busy))
	for wk := range busy {
		workers = append(workers, wk)
	}
	sort.Ints(workers)

	fmt.Fprintf(w, "%s\n", ui.Cyan("──────────────────────────"))
	for _, wk := range workers {
		pct := 0
		if r.Sim.Elapsed > 0 {
			pct = busy[wk] * 100 / r.Sim.Elapsed
		}
		fmt.Fprintf(w, "  %s busy %d/%d ticks (%d%%)\n", ui.WorkerPrefix(wk), busy[wk], r.Sim.Elapsed, pct)
	}
	fmt.Fprintf(w, "Peak:      %d of %d workers\n", r.Sim.MaxBusy, r.Config.Workers)
	fmt.Fprintf(w, "Elapsed:   %s ticks\n", ui.Bold(r.Sim.Elapsed))
}

// PrintPlan writes the critical path analysis as waves of steps that could
// start together given unlimited workers.
func (r *Reporter) PrintPlan(w io.Writer) {
	if r.Plan == nil {
		return
	}

	fmt.Fprintf(w, "🧵 %s %d steps, %d waves, lower bound %s ticks\n\n",
		ui.BoldCyan("Plan:"), len(r.Plan.Steps), len(r.Plan.Waves), ui.Bold(r.Plan.TotalDuration))

	for _, wave := range r.Plan.Waves {
		fmt.Fprintf(w, "  🌊 %s %d %s\n", ui.BoldWhite("WAVE"), wave.Index+1, ui.Dim(fmt.Sprintf("(t=%d)", wave.Start)))
		for _, id := range wave.Steps {
			ss := r.Plan.Steps[id]
			fmt.Fprintf(w, "    %s %s  %s\n",
				ui.BoldMagenta(id),
				ui.CriticalMark(ss.IsCritical),
				ui.Dim(fmt.Sprintf("[%d → %d, slack %d]", ss.ES, ss.EF, ss.Slack)))
		}
		fmt.Fprintln(w)
	}

	if len(r.Plan.CriticalPath) > 0 {
		fmt.Fprintf(w, "Critical:  %s\n", ui.BoldYellow("⚡ "+strings.Join(r.Plan.CriticalPath, " → ")))
	}
	if r.Sim != nil && r.Plan.TotalDuration > 0 {
		fmt.Fprintf(w, "Workers:   %d finish in %d ticks (%s over the bound)\n",
			r.Config.Workers, r.Sim.Elapsed, ui.Yellow(fmt.Sprintf("+%d", r.Sim.Elapsed-r.Plan.TotalDuration)))
	}
}

// JSON returns machine-readable results.
func (r *Reporter) JSON() ([]byte, error) {
	type output struct {
		PartOne      string                `json:"part_one"`
		PartTwo      int                   `json:"part_two"`
		Workers      int                   `json:"workers"`
		BaseDuration int                   `json:"base_duration"`
		TieBreak     string                `json:"tie_break"`
		Timeline     []schedule.Assignment `json:"timeline,omitempty"`
		LowerBound   int                   `json:"lower_bound,omitempty"`
		CriticalPath []string              `json:"critical_path,omitempty"`
		Waves        []cpm.Wave            `json:"waves,omitempty"`
	}

	o := output{
		PartOne:      r.Order,
		Workers:      r.Config.Workers,
		BaseDuration: r.Config.BaseDuration,
		TieBreak:     string(r.Config.TieBreak),
	}
	if r.Sim != nil {
		o.PartTwo = r.Sim.Elapsed
		o.Timeline = r.Sim.Timeline
	}
	if r.Plan != nil {
		o.LowerBound = r.Plan.TotalDuration
		o.CriticalPath = r.Plan.CriticalPath
		o.Waves = r.Plan.Waves
	}

	return json.MarshalIndent(o, "", "  ")
}
