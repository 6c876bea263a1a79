// Package history tracks the distinct values previously entered for a
// free-text classification field, so the operator can reuse one instead of
// typing a near-duplicate. Sets are rebuilt from the store on every run and
// grown in memory as the session produces new values.
package history

import "sort"

// Other is the sentinel option offered before any prior value. Selecting it
// means "enter a fresh value".
const Other = "Other (enter a new value)"

// Set is the per-field collection of previously seen values.
type Set struct {
	values map[string]struct{}
}

// New builds a set from the values already present in the store column.
func New(values ...string) *Set {
	s := &Set{values: make(map[string]struct{}, len(values))}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add records a value. Adding a value already present is a no-op, so reusing
// an option never creates a second distinct entry.
func (s *Set) Add(value string) {
	if value == "" {
		return
	}
	s.values[value] = struct{}{}
}

// Contains reports whether value has been seen before.
func (s *Set) Contains(value string) bool {
	_, ok := s.values[value]
	return ok
}

// Empty reports whether no prior values exist; an empty set means the
// operator must enter fresh text.
func (s *Set) Empty() bool {
	return len(s.values) == 0
}

// Len returns the number of distinct values.
func (s *Set) Len() int {
	return len(s.values)
}

// Options returns the selection list: the Other sentinel first, then every
// prior value in lexicographic order.
func (s *Set) Options() []string {
	sorted := make([]string, 0, len(s.values))
	for v := range s.values {
		sorted = append(sorted, v)
	}
	sort.Strings(sorted)
	return append([]string{Other}, sorted...)
}
