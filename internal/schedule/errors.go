package schedule

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCycleDetected = errors.New("cycle detected")
	ErrInvalidConfig = errors.New("invalid scheduler config")
)

// CycleError reports steps that can never become available.
type CycleError struct {
	Pending []string // steps still waiting when no progress was possible
	Path    []string // one offending cycle, closed (first == last), if found
}

func (e *CycleError) Error() string {
	msg := fmt.Sprintf("%s: %d steps blocked (%s)", ErrCycleDetected, len(e.Pending), strings.Join(e.Pending, ""))
	if len(e.Path) > 0 {
		msg += ": " + strings.Join(e.Path, " -> ")
	}
	return msg
}

func (e *CycleError) Unwrap() error { return ErrCycleDetected }

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
