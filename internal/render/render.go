// Package render converts one report into its human-readable markdown
// document. Rendering is a pure function of the report: the same input
// (timestamp included) always produces byte-identical output.
package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pvoronin/bugrep/internal/types"
)

// Document naming convention. Compiled scans rely on the prefix and
// extension, so both are part of the contract.
const (
	Prefix    = "BR-"
	Extension = ".md"
)

// ErrDocumentExists means a document for this filename is already on disk.
// Filenames derive from unique ids, so a collision signals identifier
// corruption and must be treated as fatal.
var ErrDocumentExists = errors.New("document already exists")

// Filename derives the document name from the report's id and the priority
// and severity ordinals, in that order. The id is zero-padded so that
// lexicographic filename order matches numeric id order past nine reports.
func Filename(r *types.Report) string {
	return fmt.Sprintf("%s%04d-%d%d%s", Prefix, r.ID, r.Priority.Ordinal, r.Severity.Ordinal, Extension)
}

// Render produces the document filename and content for one report.
func Render(r *types.Report) (filename, content string) {
	var b strings.Builder

	fmt.Fprintf(&b, "# BR-%d: %s\n\n", r.ID, r.Brief)
	fmt.Fprintf(&b, "**Priority:** %s\n\n", r.Priority.Label)
	fmt.Fprintf(&b, "**Severity:** %s\n\n", r.Severity.Label)
	fmt.Fprintf(&b, "**Status:** %s\n\n", r.Status.Label)
	fmt.Fprintf(&b, "**Location:** %s\n\n", r.Location)
	fmt.Fprintf(&b, "**Type:** %s\n\n", r.Type)
	fmt.Fprintf(&b, "**Created:** %s\n\n", r.CreatedAt.Format(types.TimeLayout))
	fmt.Fprintf(&b, "**Author:** %s\n\n", r.Author)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "## Expected\n\n%s\n\n", r.Expected)
	fmt.Fprintf(&b, "## Actual\n\n%s\n\n", r.Actual)
	b.WriteString("## Reproduction steps\n\n")
	if len(r.Steps) == 0 {
		// A deliberate data-quality signal, not a cosmetic placeholder:
		// the notice names who to chase for the missing steps.
		fmt.Fprintf(&b, "No reproduction steps were provided! Contact %s.\n", r.Author)
	} else {
		for i, step := range r.Steps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
	}

	return Filename(r), b.String()
}

// Write stores a rendered document under dir. It refuses to overwrite: an
// existing file with the same name wraps ErrDocumentExists.
func Write(dir, filename, content string) error {
	path := filepath.Join(dir, filename)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrDocumentExists, filename)
		}
		return fmt.Errorf("creating document %s: %w", filename, err)
	}
	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing document %s: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing document %s: %w", filename, err)
	}
	return nil
}
