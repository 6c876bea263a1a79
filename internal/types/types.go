// Package types defines the core data structures for the bugrep intake tool.
package types

import (
	"fmt"
	"strings"
	"time"
)

// TimeLayout is the display format for report timestamps, used both in the
// tabular store and in rendered documents.
const TimeLayout = "2006-01-02 15:04:05"

// Tag is one member of a closed classification enumeration. Ordinal is
// assigned by declaration order starting at 1. Ordinals participate in
// rendered document filenames and must never be renumbered for a store's
// lifetime.
type Tag struct {
	Ordinal int
	Label   string
}

// Registry is a closed, ordered classification enumeration.
type Registry struct {
	name string
	tags []Tag
}

func newRegistry(name string, labels ...string) Registry {
	tags := make([]Tag, len(labels))
	for i, label := range labels {
		tags[i] = Tag{Ordinal: i + 1, Label: label}
	}
	return Registry{name: name, tags: tags}
}

// The three classification registries. Declaration order fixes the ordinals.
var (
	Priorities = newRegistry("priority", "High", "Low")
	Severities = newRegistry("severity", "Critical", "Minor")
	Statuses   = newRegistry("status", "Bug", "Incident", "Feature")
)

// Name returns the registry's field name (e.g. "priority").
func (r Registry) Name() string {
	return r.name
}

// Tags returns the members in declaration order.
func (r Registry) Tags() []Tag {
	out := make([]Tag, len(r.tags))
	copy(out, r.tags)
	return out
}

// Labels returns the member labels in declaration order.
func (r Registry) Labels() []string {
	out := make([]string, len(r.tags))
	for i, t := range r.tags {
		out[i] = t.Label
	}
	return out
}

// ByLabel resolves a display label back to its tag. Unknown labels are an
// error: they indicate a store written by a different registry.
func (r Registry) ByLabel(label string) (Tag, error) {
	for _, t := range r.tags {
		if t.Label == label {
			return t, nil
		}
	}
	return Tag{}, fmt.Errorf("unknown %s label: %q", r.name, label)
}

// Contains reports whether tag is a member of this registry.
func (r Registry) Contains(tag Tag) bool {
	for _, t := range r.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Report is one immutable bug/incident/feature record. It is constructed
// once per intake cycle and never modified in place.
type Report struct {
	ID        int
	Author    string
	CreatedAt time.Time
	Brief     string
	Location  string
	Type      string
	Expected  string
	Actual    string
	Steps     []string
	Priority  Tag
	Severity  Tag
	Status    Tag
}

// Validate checks that every required field is populated. A report that
// fails validation must never reach the store or the renderer.
func (r *Report) Validate() error {
	if r.ID < 1 {
		return fmt.Errorf("id must be a positive integer (got %d)", r.ID)
	}
	if strings.TrimSpace(r.Author) == "" {
		return fmt.Errorf("author is required")
	}
	if r.CreatedAt.IsZero() {
		return fmt.Errorf("creation timestamp is required")
	}
	if strings.TrimSpace(r.Brief) == "" {
		return fmt.Errorf("brief is required")
	}
	if strings.TrimSpace(r.Location) == "" {
		return fmt.Errorf("location is required")
	}
	if strings.TrimSpace(r.Type) == "" {
		return fmt.Errorf("type is required")
	}
	if strings.TrimSpace(r.Expected) == "" {
		return fmt.Errorf("expected result is required")
	}
	if strings.TrimSpace(r.Actual) == "" {
		return fmt.Errorf("actual result is required")
	}
	for i, step := range r.Steps {
		if strings.TrimSpace(step) == "" {
			return fmt.Errorf("reproduction step %d is empty", i+1)
		}
	}
	if !Priorities.Contains(r.Priority) {
		return fmt.Errorf("invalid priority: %+v", r.Priority)
	}
	if !Severities.Contains(r.Severity) {
		return fmt.Errorf("invalid severity: %+v", r.Severity)
	}
	if !Statuses.Contains(r.Status) {
		return fmt.Errorf("invalid status: %+v", r.Status)
	}
	return nil
}

// Brief word-count thresholds for the advisory check.
const (
	BriefShortWords = 3
	BriefLongWords  = 10
)

// BriefAdvisory returns a warning for suspiciously short or long briefs.
// It returns "" when the brief is fine. The advisory never blocks a report.
func BriefAdvisory(brief string) string {
	words := len(strings.Fields(brief))
	switch {
	case words <= BriefShortWords:
		return "brief is very short; consider adding detail"
	case words > BriefLongWords:
		return "brief is very long; consider moving detail to expected/actual"
	}
	return ""
}
