package store

import (
	"fmt"
	"strconv"
	"strings"
)

// Record is a typed projection of one stored row, used by the list and
// export commands. Classification fields stay in their display-label form,
// matching what the row actually holds.
type Record struct {
	ID       int    `json:"id" yaml:"id"`
	Author   string `json:"author" yaml:"author"`
	Created  string `json:"created" yaml:"created"`
	Priority string `json:"priority" yaml:"priority"`
	Severity string `json:"severity" yaml:"severity"`
	Status   string `json:"status" yaml:"status"`
	Location string `json:"location" yaml:"location"`
	Type     string `json:"type" yaml:"type"`
	Brief    string `json:"brief" yaml:"brief"`
	Expected string `json:"expected" yaml:"expected"`
	Actual   string `json:"actual" yaml:"actual"`
	Steps    string `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Records returns every row as a typed record, in creation order.
func (s *Store) Records() ([]Record, error) {
	out := make([]Record, 0, len(s.rows))
	for i, row := range s.rows {
		id, err := strconv.Atoi(strings.TrimSpace(row[ColID]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d has invalid id %q", ErrCorrupt, i+2, row[ColID])
		}
		out = append(out, Record{
			ID:       id,
			Author:   row[ColAuthor],
			Created:  row[ColCreated],
			Priority: row[ColPriority],
			Severity: row[ColSeverity],
			Status:   row[ColStatus],
			Location: row[ColLocation],
			Type:     row[ColType],
			Brief:    row[ColBrief],
			Expected: row[ColExpected],
			Actual:   row[ColActual],
			Steps:    row[ColSteps],
		})
	}
	return out, nil
}
