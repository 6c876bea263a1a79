package store

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pvoronin/bugrep/internal/types"
)

func sampleReport(id int) *types.Report {
	return &types.Report{
		ID:        id,
		Author:    "Pavel",
		CreatedAt: time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
		Brief:     "Checkout button does nothing",
		Location:  "Checkout",
		Type:      "UI",
		Expected:  "Order is placed",
		Actual:    "Nothing happens",
		Steps:     []string{"Open cart", "Press checkout"},
		Priority:  types.Priorities.Tags()[0],
		Severity:  types.Severities.Tags()[1],
		Status:    types.Statuses.Tags()[0],
	}
}

// writeWorkbook builds an xlsx fixture with the given header and data rows.
func writeWorkbook(t *testing.T, path string, header []string, rows ...[]string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	toCells := func(ss []string) []interface{} {
		out := make([]interface{}, len(ss))
		for i, s := range ss {
			out[i] = s
		}
		return out
	}

	cells := toCells(header)
	require.NoError(t, f.SetSheetRow(SheetName, "A1", &cells))
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		cells := toCells(row)
		require.NoError(t, f.SetSheetRow(SheetName, cell, &cells))
	}
	require.NoError(t, f.SaveAs(path))
}

func dataRow(id string) []string {
	return []string{
		id, "Pavel", "2025-03-14 10:30:00",
		"High", "Minor", "Bug",
		"Checkout", "UI",
		"Brief text", "Expected text", "Actual text", "1. Open cart",
	}
}

func TestLoadAbsentFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "bugs.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())

	id, err := s.NextID()
	require.NoError(t, err)
	assert.Equal(t, 1, id)
}

func TestNextIDSparseUnordered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bugs.xlsx")
	writeWorkbook(t, path, Columns, dataRow("7"), dataRow("2"), dataRow("41"))

	s, err := Load(path)
	require.NoError(t, err)

	id, err := s.NextID()
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestNextIDNeverReissued(t *testing.T) {
	s := &Store{}

	first, err := s.NextID()
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	// The first report is never appended (persistence failed). The next
	// allocation must still move past the issued id.
	second, err := s.NextID()
	require.NoError(t, err)
	assert.Equal(t, 2, second)
}

func TestLoadCorruptID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bugs.xlsx")
	writeWorkbook(t, path, Columns, dataRow("1"), dataRow("oops"))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorrupt), "want ErrCorrupt, got %v", err)
}

func TestLoadUnknownClassificationLabel(t *testing.T) {
	tests := []struct {
		name string
		col  int
	}{
		{"priority", ColPriority},
		{"severity", ColSeverity},
		{"status", ColStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bugs.xlsx")
			row := dataRow("1")
			row[tt.col] = "Bananas"
			writeWorkbook(t, path, Columns, row)

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrCorrupt), "want ErrCorrupt, got %v", err)
			assert.Contains(t, err.Error(), "Bananas")
		})
	}
}

func TestLoadHeaderMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bugs.xlsx")
	header := append([]string{}, Columns...)
	header[0] = "Key"
	writeWorkbook(t, path, header, dataRow("1"))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCorrupt), "want ErrCorrupt, got %v", err)
}

func TestAppendDoesNotMutatePriorRows(t *testing.T) {
	s := &Store{}
	s.Append(sampleReport(1))

	before := s.Rows()[0]
	s.Append(sampleReport(2))
	after := s.Rows()[0]

	assert.Equal(t, before, after)
	assert.Equal(t, 2, s.Len())
}

func TestAppendProjection(t *testing.T) {
	s := &Store{}
	s.Append(sampleReport(7))

	row := s.Rows()[0]
	assert.Equal(t, "7", row[ColID])
	assert.Equal(t, "Pavel", row[ColAuthor])
	assert.Equal(t, "2025-03-14 10:30:00", row[ColCreated])
	assert.Equal(t, "High", row[ColPriority])
	assert.Equal(t, "Minor", row[ColSeverity])
	assert.Equal(t, "Bug", row[ColStatus])
	assert.Equal(t, "1. Open cart\n2. Press checkout", row[ColSteps])
}

func TestFormatSteps(t *testing.T) {
	assert.Equal(t, "", FormatSteps(nil))
	assert.Equal(t, "1. Only step", FormatSteps([]string{"Only step"}))
	assert.Equal(t, "1. A\n2. B\n3. C", FormatSteps([]string{"A", "B", "C"}))
}

func TestFlushLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bugs.xlsx")

	s := &Store{}
	s.Append(sampleReport(1))
	s.Append(sampleReport(2))
	require.NoError(t, s.Flush(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.Rows(), loaded.Rows())

	id, err := loaded.NextID()
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestFlushOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bugs.xlsx")

	s := &Store{}
	s.Append(sampleReport(1))
	require.NoError(t, s.Flush(path))

	s.Append(sampleReport(2))
	require.NoError(t, s.Flush(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())
}

func TestDistinctValues(t *testing.T) {
	s := &Store{}
	r1 := sampleReport(1)
	r2 := sampleReport(2)
	r2.Location = "Cart"
	r3 := sampleReport(3)
	r3.Location = "Checkout" // duplicate of r1
	for _, r := range []*types.Report{r1, r2, r3} {
		s.Append(r)
	}

	assert.Equal(t, []string{"Checkout", "Cart"}, s.DistinctValues(ColLocation))
}

func TestRecords(t *testing.T) {
	s := &Store{}
	s.Append(sampleReport(3))

	recs, err := s.Records()
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, 3, recs[0].ID)
	assert.Equal(t, "Checkout", recs[0].Location)
	assert.Equal(t, "High", recs[0].Priority)
}
