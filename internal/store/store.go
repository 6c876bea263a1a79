// Package store implements the durable tabular ledger of reports: an xlsx
// workbook with one header row and one row per report. The store is the sole
// source of truth for identifier allocation and history reconstruction.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/pvoronin/bugrep/internal/types"
)

// SheetName is the single worksheet holding the ledger.
const SheetName = "Sheet1"

// ErrCorrupt marks an existing store file that cannot be trusted: a missing
// sheet, a header that does not match the schema, or a non-numeric id cell.
// Corruption is fatal; the tool must never proceed with fabricated ids.
var ErrCorrupt = errors.New("corrupt store")

// Column indexes into a row. The order is part of the file format contract.
const (
	ColID = iota
	ColAuthor
	ColCreated
	ColPriority
	ColSeverity
	ColStatus
	ColLocation
	ColType
	ColBrief
	ColExpected
	ColActual
	ColSteps

	columnCount
)

// Columns is the header row, in contract order.
var Columns = []string{
	"ID",
	"Author",
	"Created",
	"Priority",
	"Severity",
	"Status",
	"Location",
	"Type",
	"Brief",
	"Expected",
	"Actual",
	"Steps",
}

// Store holds the full row sequence in memory. Rows are append-only; a row,
// once added, is never modified.
type Store struct {
	rows [][]string

	// maxIssued tracks the highest id handed out by NextID during this
	// run, so ids are never reused even when a report's persistence fails.
	maxIssued int
}

// Load reads the workbook at path. An absent file yields an empty store with
// the declared schema. An unreadable or unparsable file is an error: existing
// data must never be silently discarded.
func Load(path string) (*Store, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Store{}, nil
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrCorrupt, path, err)
	}
	defer f.Close()

	raw, err := f.GetRows(SheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %s missing in %s: %v", ErrCorrupt, SheetName, path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s has no header row", ErrCorrupt, path)
	}
	if err := checkHeader(raw[0]); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}

	s := &Store{rows: make([][]string, 0, len(raw)-1)}
	for i, r := range raw[1:] {
		row := make([]string, columnCount)
		copy(row, r)
		if err := checkLabels(row); err != nil {
			return nil, fmt.Errorf("%w: %s: row %d: %v", ErrCorrupt, path, i+2, err)
		}
		s.rows = append(s.rows, row)
	}
	max, err := s.maxID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.maxIssued = max
	return s, nil
}

func checkHeader(header []string) error {
	if len(header) != len(Columns) {
		return fmt.Errorf("header has %d columns, want %d", len(header), len(Columns))
	}
	for i, name := range Columns {
		if header[i] != name {
			return fmt.Errorf("header column %d is %q, want %q", i+1, header[i], name)
		}
	}
	return nil
}

// checkLabels resolves the classification cells against their registries. A
// label outside a registry means the file was written under a different
// classification scheme and cannot be trusted.
func checkLabels(row []string) error {
	if _, err := types.Priorities.ByLabel(row[ColPriority]); err != nil {
		return err
	}
	if _, err := types.Severities.ByLabel(row[ColSeverity]); err != nil {
		return err
	}
	if _, err := types.Statuses.ByLabel(row[ColStatus]); err != nil {
		return err
	}
	return nil
}

// Len returns the number of rows.
func (s *Store) Len() int {
	return len(s.rows)
}

// Rows returns a copy of the row sequence in creation order.
func (s *Store) Rows() [][]string {
	out := make([][]string, len(s.rows))
	for i, r := range s.rows {
		row := make([]string, len(r))
		copy(row, r)
		out[i] = row
	}
	return out
}

func (s *Store) maxID() (int, error) {
	max := 0
	for i, row := range s.rows {
		cell := strings.TrimSpace(row[ColID])
		id, err := strconv.Atoi(cell)
		if err != nil || id < 1 {
			return 0, fmt.Errorf("%w: row %d has invalid id %q", ErrCorrupt, i+2, cell)
		}
		if id > max {
			max = id
		}
	}
	return max, nil
}

// NextID allocates the next report identifier: 1 for an empty store,
// otherwise the maximum existing id plus one. Ids already issued during this
// run are counted even if their report was never persisted, so an id is
// never handed out twice.
func (s *Store) NextID() (int, error) {
	max, err := s.maxID()
	if err != nil {
		return 0, err
	}
	if s.maxIssued > max {
		max = s.maxIssued
	}
	s.maxIssued = max + 1
	return max + 1, nil
}

// Append projects a report into a display-formatted row at the end of the
// ledger. Prior rows are never touched.
func (s *Store) Append(r *types.Report) {
	row := make([]string, columnCount)
	row[ColID] = strconv.Itoa(r.ID)
	row[ColAuthor] = r.Author
	row[ColCreated] = r.CreatedAt.Format(types.TimeLayout)
	row[ColPriority] = r.Priority.Label
	row[ColSeverity] = r.Severity.Label
	row[ColStatus] = r.Status.Label
	row[ColLocation] = r.Location
	row[ColType] = r.Type
	row[ColBrief] = r.Brief
	row[ColExpected] = r.Expected
	row[ColActual] = r.Actual
	row[ColSteps] = FormatSteps(r.Steps)
	s.rows = append(s.rows, row)
}

// FormatSteps joins reproduction steps into the stored single-cell form,
// one "<n>. <step>" per line, numbered from 1.
func FormatSteps(steps []string) string {
	var b strings.Builder
	for i, step := range steps {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%d. %s", i+1, step)
	}
	return b.String()
}

// DistinctValues returns the distinct non-empty values of one column, for
// rebuilding per-field history sets at startup.
func (s *Store) DistinctValues(col int) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range s.rows {
		v := row[col]
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Flush serializes the full row sequence back to path. The workbook is
// written to a temporary file in the destination directory and renamed over
// the target, so a crash never leaves a half-written file covering
// previously safe data.
func (s *Store) Flush(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	header := make([]interface{}, len(Columns))
	for i, name := range Columns {
		header[i] = name
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range s.rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("addressing row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".bugrep-*.xlsx")
	if err != nil {
		return fmt.Errorf("creating temp store: %w", err)
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()

	if err := f.SaveAs(tmpPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing store: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing store: %w", err)
	}
	return nil
}
