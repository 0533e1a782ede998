package schedule

// TieBreak selects which available step a free worker picks up first.
type TieBreak string

const (
	// GreatestFirst hands out the alphabetically greatest available step
	// first. This is what produced the accepted puzzle answers and stays
	// the default; do not change it without re-checking those answers.
	GreatestFirst TieBreak = "greatest"
	// SmallestFirst mirrors the ordering rule of the sequential resolver.
	SmallestFirst TieBreak = "smallest"
)

const (
	DefaultWorkers      = 5
	DefaultBaseDuration = 60
)

// Config holds the timed scheduler parameters.
type Config struct {
	Workers      int
	BaseDuration int
	TieBreak     TieBreak
}

// DefaultConfig returns the puzzle parameters: five workers, 60 tick base.
func DefaultConfig() Config {
	return Config{
		Workers:      DefaultWorkers,
		BaseDuration: DefaultBaseDuration,
		TieBreak:     GreatestFirst,
	}
}

// Worker is a simulated executor. A zero Worker is idle; a busy worker
// always has Remaining > 0.
type Worker struct {
	Step      string
	Remaining int
}

// Idle reports whether the worker has no step in progress.
func (w Worker) Idle() bool {
	return w.Remaining <= 0
}

// Assignment records one step handed to one worker.
type Assignment struct {
	Step   string `json:"step"`
	Worker int    `json:"worker"`
	Start  int    `json:"start"`
	Finish int    `json:"finish"`
}

// Result is the outcome of a timed simulation.
type Result struct {
	Elapsed  int          `json:"elapsed"`
	Timeline []Assignment `json:"timeline"`
	MaxBusy  int          `json:"max_busy"` // peak number of simultaneously busy workers
}
