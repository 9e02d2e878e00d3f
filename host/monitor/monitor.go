// Package monitor parses and summarizes the State: report stream emitted
// by the firmware over USB CDC.
package monitor

import (
	"strings"
	"time"
)

// StatePrefix is the line prefix the firmware uses for state reports.
const StatePrefix = "State: "

// ParseStateLine extracts the state label from one report line.
// Returns ok=false for anything that is not a well-formed report (the
// stream is best-effort; garbage from a reconnect is expected).
func ParseStateLine(line string) (label string, ok bool) {
	line = strings.TrimRight(line, "\r\n")
	if !strings.HasPrefix(line, StatePrefix) {
		return "", false
	}
	label = line[len(StatePrefix):]
	if label == "" || strings.ContainsAny(label, " \t") {
		return "", false
	}
	return label, true
}

// Transition records one observed state change.
type Transition struct {
	From string
	To   string
	At   time.Time
}

// Tracker accumulates per-state report counts and state transitions.
type Tracker struct {
	last   string
	counts map[string]int
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{counts: make(map[string]int)}
}

// Observe feeds one label into the tracker. It returns a non-nil
// Transition when the label differs from the previous one.
func (t *Tracker) Observe(label string, at time.Time) *Transition {
	t.counts[label]++
	if label == t.last {
		return nil
	}
	tr := &Transition{From: t.last, To: label, At: at}
	t.last = label
	return tr
}

// Counts returns the per-label report counts.
func (t *Tracker) Counts() map[string]int {
	return t.counts
}

// Current returns the most recently observed label ("" before the first
// report).
func (t *Tracker) Current() string {
	return t.last
}
