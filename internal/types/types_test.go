package types

import (
	"strings"
	"testing"
	"time"
)

func validReport() Report {
	return Report{
		ID:        1,
		Author:    "Pavel",
		CreatedAt: time.Date(2025, 3, 14, 10, 30, 0, 0, time.UTC),
		Brief:     "Checkout button does nothing on click",
		Location:  "Checkout",
		Type:      "UI",
		Expected:  "Order is placed",
		Actual:    "Nothing happens",
		Steps:     []string{"Open cart", "Press checkout"},
		Priority:  Priorities.Tags()[0],
		Severity:  Severities.Tags()[1],
		Status:    Statuses.Tags()[0],
	}
}

func TestReportValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Report)
		wantErr string
	}{
		{
			name:   "valid report",
			mutate: func(r *Report) {},
		},
		{
			name:    "zero id",
			mutate:  func(r *Report) { r.ID = 0 },
			wantErr: "id must be a positive integer",
		},
		{
			name:    "blank author",
			mutate:  func(r *Report) { r.Author = "   " },
			wantErr: "author is required",
		},
		{
			name:    "zero timestamp",
			mutate:  func(r *Report) { r.CreatedAt = time.Time{} },
			wantErr: "creation timestamp is required",
		},
		{
			name:    "blank brief",
			mutate:  func(r *Report) { r.Brief = "" },
			wantErr: "brief is required",
		},
		{
			name:    "blank location",
			mutate:  func(r *Report) { r.Location = "\t" },
			wantErr: "location is required",
		},
		{
			name:    "blank type",
			mutate:  func(r *Report) { r.Type = "" },
			wantErr: "type is required",
		},
		{
			name:    "blank expected",
			mutate:  func(r *Report) { r.Expected = " " },
			wantErr: "expected result is required",
		},
		{
			name:    "blank actual",
			mutate:  func(r *Report) { r.Actual = "" },
			wantErr: "actual result is required",
		},
		{
			name:   "no steps is fine",
			mutate: func(r *Report) { r.Steps = nil },
		},
		{
			name:    "blank step",
			mutate:  func(r *Report) { r.Steps = []string{"Open cart", "  "} },
			wantErr: "reproduction step 2 is empty",
		},
		{
			name:    "priority outside registry",
			mutate:  func(r *Report) { r.Priority = Tag{Ordinal: 9, Label: "Urgent"} },
			wantErr: "invalid priority",
		},
		{
			name:    "severity outside registry",
			mutate:  func(r *Report) { r.Severity = Tag{} },
			wantErr: "invalid severity",
		},
		{
			name:    "status outside registry",
			mutate:  func(r *Report) { r.Status = Tag{Ordinal: 1, Label: "Open"} },
			wantErr: "invalid status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReport()
			tt.mutate(&r)
			err := r.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestRegistryOrdinals(t *testing.T) {
	for _, reg := range []Registry{Priorities, Severities, Statuses} {
		tags := reg.Tags()
		if len(tags) == 0 {
			t.Fatalf("registry %s is empty", reg.Name())
		}
		for i, tag := range tags {
			if tag.Ordinal != i+1 {
				t.Errorf("%s[%d] ordinal = %d, want %d", reg.Name(), i, tag.Ordinal, i+1)
			}
			if tag.Label == "" {
				t.Errorf("%s[%d] has empty label", reg.Name(), i)
			}
		}
	}
	if got := Statuses.Tags()[2].Label; got != "Feature" {
		t.Errorf("status ordinal 3 = %q, want Feature", got)
	}
}

func TestRegistryByLabel(t *testing.T) {
	tag, err := Priorities.ByLabel("Low")
	if err != nil {
		t.Fatalf("ByLabel(Low) error: %v", err)
	}
	if tag.Ordinal != 2 {
		t.Errorf("Low ordinal = %d, want 2", tag.Ordinal)
	}

	if _, err := Priorities.ByLabel("Medium"); err == nil {
		t.Error("ByLabel(Medium) = nil error, want unknown-label error")
	}
}

func TestBriefAdvisory(t *testing.T) {
	tests := []struct {
		brief string
		warn  bool
	}{
		{"Crash", true},
		{"Crash on login", true},
		{"Crash happens right on login", false},
		{"The checkout page crashes every time the user presses the pay button twice quickly", true},
	}
	for _, tt := range tests {
		got := BriefAdvisory(tt.brief)
		if (got != "") != tt.warn {
			t.Errorf("BriefAdvisory(%q) = %q, want warning=%v", tt.brief, got, tt.warn)
		}
	}
}
