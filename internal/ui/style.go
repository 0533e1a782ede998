package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Sprint color functions for building styled strings.
var (
	Bold        = color.New(color.Bold).SprintFunc()
	Dim         = color.New(color.Faint).SprintFunc()
	Cyan        = color.New(color.FgCyan).SprintFunc()
	Red         = color.New(color.FgRed).SprintFunc()
	Yellow      = color.New(color.FgYellow).SprintFunc()
	BoldCyan    = color.New(color.Bold, color.FgCyan).SprintFunc()
	BoldGreen   = color.New(color.Bold, color.FgGreen).SprintFunc()
	BoldYellow  = color.New(color.Bold, color.FgYellow).SprintFunc()
	BoldMagenta = color.New(color.Bold, color.FgMagenta).SprintFunc()
	BoldWhite   = color.New(color.Bold, color.FgWhite).SprintFunc()
)

// PrintBanner renders the day header to w.
func PrintBanner(w io.Writer, day int, title string) {
	rule := color.New(color.FgGreen)
	star := color.New(color.Bold, color.FgYellow)

	rule.Fprintf(w, "--- ")
	star.Fprintf(w, "Day %d", day)
	rule.Fprintf(w, ": %s ---\n", title)
}

// workerColors is a palette of distinct bold colors for differentiating workers.
var workerColors = []func(a ...interface{}) string{
	BoldMagenta,
	BoldCyan,
	BoldYellow,
	BoldGreen,
	color.New(color.Bold, color.FgHiBlue).SprintFunc(),
	color.New(color.Bold, color.FgHiRed).SprintFunc(),
}

// WorkerPrefix returns a colored [w0] prefix string. Workers cycle through
// the palette by index.
func WorkerPrefix(worker int) string {
	c := workerColors[worker%len(workerColors)]
	return Dim("[") + c(fmt.Sprintf("w%d", worker)) + Dim("]")
}

// CriticalMark returns a marker for steps on the critical path.
func CriticalMark(critical bool) string {
	if critical {
		return BoldYellow("⚡")
	}
	return " "
}

// Error renders a fatal error line.
func Error(err error) string {
	return fmt.Sprintf("%s %v", Red("❌ Error:"), err)
}
