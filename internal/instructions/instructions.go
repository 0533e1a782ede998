// Package instructions loads precedence instructions of the form
// "Step C must be finished before step A can begin." into graph edges.
package instructions

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/S0Ulle33/Advent-of-Code-2018/internal/graph"
)

var ErrMalformedInstruction = errors.New("malformed instruction")

// ParseError describes an input line that does not look like an instruction.
type ParseError struct {
	Line   int // 1-based, 0 when unknown
	Text   string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s: %s (%q)", e.Line, ErrMalformedInstruction, e.Reason, e.Text)
	}
	return fmt.Sprintf("%s: %s (%q)", ErrMalformedInstruction, e.Reason, e.Text)
}

func (e *ParseError) Unwrap() error { return ErrMalformedInstruction }

// ParseLine turns one instruction into an edge. The predecessor is the 2nd
// word and the successor the 3rd from last.
func ParseLine(line string) (graph.Edge, error) {
	words := strings.Fields(line)
	if len(words) != 10 ||
		words[0] != "Step" ||
		strings.Join(words[2:6], " ") != "must be finished before" ||
		words[6] != "step" ||
		strings.Join(words[8:], " ") != "can begin." {
		return graph.Edge{}, &ParseError{Text: line, Reason: "unexpected shape"}
	}

	before, after := words[1], words[len(words)-3]
	if !isStep(before) {
		return graph.Edge{}, &ParseError{Text: line, Reason: fmt.Sprintf("bad step %q", before)}
	}
	if !isStep(after) {
		return graph.Edge{}, &ParseError{Text: line, Reason: fmt.Sprintf("bad step %q", after)}
	}
	return graph.Edge{Before: before, After: after}, nil
}

// Loader reads instruction files. The zero Loader is silent; set Logger to
// receive warnings about skipped input.
type Loader struct {
	Logger *log.Logger
}

func (l Loader) warnf(format string, args ...any) {
	if l.Logger != nil {
		l.Logger.Printf("warning: "+format, args...)
	}
}

// Read parses instructions with a silent Loader.
func Read(r io.Reader) ([]graph.Edge, error) {
	return Loader{}.Read(r)
}

// Load reads path with a silent Loader.
func Load(path string) ([]graph.Edge, error) {
	return Loader{}.Load(path)
}

// Read parses one instruction per line. Lines are trimmed and blank lines
// skipped.
func (l Loader) Read(r io.Reader) ([]graph.Edge, error) {
	var edges []graph.Edge
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			l.warnf("skipping blank line %d", lineNo)
			continue
		}
		edge, err := ParseLine(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = lineNo
			}
			return nil, err
		}
		edges = append(edges, edge)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read instructions: %w", err)
	}
	return edges, nil
}

// ReadJSON parses edges from either a bare array or an object with an
// "edges" array, each element shaped {"before": "C", "after": "A"}.
func ReadJSON(data []byte) ([]graph.Edge, error) {
	if !gjson.ValidBytes(data) {
		return nil, &ParseError{Text: abbreviate(data), Reason: "invalid JSON"}
	}

	list := gjson.ParseBytes(data)
	if list.IsObject() {
		list = list.Get("edges")
	}
	if !list.IsArray() {
		return nil, &ParseError{Text: abbreviate(data), Reason: "expected an array of edges"}
	}

	var edges []graph.Edge
	var parseErr error
	n := 0
	list.ForEach(func(_, item gjson.Result) bool {
		n++
		before := item.Get("before").String()
		after := item.Get("after").String()
		if !isStep(before) || !isStep(after) {
			parseErr = &ParseError{
				Line:   n,
				Text:   item.Raw,
				Reason: "edge needs single-letter before and after",
			}
			return false
		}
		edges = append(edges, graph.Edge{Before: before, After: after})
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return edges, nil
}

// Load reads instructions from path. Files ending in .json go through
// ReadJSON, everything else through Read.
func (l Loader) Load(path string) ([]graph.Edge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		edges, err := ReadJSON(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return edges, nil
	}

	edges, err := l.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return edges, nil
}

func isStep(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}

func abbreviate(data []byte) string {
	s := strings.TrimSpace(string(data))
	if len(s) > 40 {
		s = s[:40] + "..."
	}
	return s
}
