package schedule

import (
	"github.com/S0Ulle33/Advent-of-Code-2018/internal/graph"
)

// Simulate runs the steps on a fixed pool of workers, one tick at a time,
// and reports how many ticks pass until every step is complete.
//
// Each tick: busy workers count down and release finished steps, then the
// available steps are handed to idle workers in worker order. With the
// default GreatestFirst tie-break the alphabetically greatest step is handed
// out first, which is the opposite of Resolve's rule.
func Simulate(edges []graph.Edge, cfg Config) (*Result, error) {
	if cfg.TieBreak == "" {
		cfg.TieBreak = GreatestFirst
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	t := newTracker(edges)
	for _, id := range t.g.StepIDs() {
		if !isStep(id) {
			return nil, invalidf("step %q is not a single uppercase letter", id)
		}
	}

	workers := make([]Worker, cfg.Workers)
	result := &Result{}
	busy := 0

	for tick := 0; ; tick++ {
		for i := range workers {
			if workers[i].Idle() {
				continue
			}
			workers[i].Remaining--
			if workers[i].Remaining == 0 {
				t.complete(workers[i].Step)
				workers[i] = Worker{}
				busy--
			}
		}

		if len(t.pending) == 0 && busy == 0 {
			result.Elapsed = tick
			return result, nil
		}

		ready := t.available()
		if len(ready) == 0 && busy == 0 {
			return nil, t.cycleError()
		}
		if cfg.TieBreak == GreatestFirst {
			for i, j := 0, len(ready)-1; i < j; i, j = i+1, j-1 {
				ready[i], ready[j] = ready[j], ready[i]
			}
		}

		for i := range workers {
			if len(ready) == 0 {
				break
			}
			if !workers[i].Idle() {
				continue
			}
			step := ready[0]
			ready = ready[1:]

			d := graph.Duration(step, cfg.BaseDuration)
			t.take(step)
			workers[i] = Worker{Step: step, Remaining: d}
			busy++
			result.Timeline = append(result.Timeline, Assignment{
				Step:   step,
				Worker: i,
				Start:  tick,
				Finish: tick + d,
			})
		}

		if busy > result.MaxBusy {
			result.MaxBusy = busy
		}
	}
}

func validate(cfg Config) error {
	if cfg.Workers < 1 {
		return invalidf("workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.BaseDuration < 0 {
		return invalidf("base duration must not be negative, got %d", cfg.BaseDuration)
	}
	switch cfg.TieBreak {
	case GreatestFirst, SmallestFirst:
	default:
		return invalidf("unknown tie-break %q", cfg.TieBreak)
	}
	return nil
}

func isStep(id string) bool {
	return len(id) == 1 && id[0] >= 'A' && id[0] <= 'Z'
}
