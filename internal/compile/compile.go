// Package compile aggregates the rendered per-report documents into one
// compiled artifact. The artifact is derived: it can be rebuilt at any time
// from whatever documents are on disk.
package compile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pvoronin/bugrep/internal/render"
)

// Filename of the compiled artifact. It does not carry the document prefix,
// so a scan never picks up a previous compilation.
const Filename = "COMPILED.md"

// Skip records one document that could not be read. A skip never aborts the
// compilation; the remaining documents still make it into the artifact.
type Skip struct {
	Name string
	Err  error
}

// Result is one finished compilation.
type Result struct {
	Content  string
	Included []string
	Skipped  []Skip
}

// Compile scans dir for rendered documents (regular files named
// BR-*.md), reads them in lexicographic filename order — creation order,
// given the zero-padded id naming — and concatenates them under a table of
// contents built from each document's top-level heading.
func Compile(dir string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() {
			continue
		}
		if !strings.HasPrefix(name, render.Prefix) || !strings.HasSuffix(name, render.Extension) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	res := &Result{}
	var docs []string
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			res.Skipped = append(res.Skipped, Skip{Name: name, Err: err})
			continue
		}
		res.Included = append(res.Included, name)
		docs = append(docs, strings.TrimRight(string(data), "\n"))
	}

	var b strings.Builder
	b.WriteString("# Compiled reports\n\n## Contents\n\n")
	for i, doc := range docs {
		b.WriteString(fmt.Sprintf("- [%s](%s)\n", heading(doc, res.Included[i]), res.Included[i]))
	}
	for _, doc := range docs {
		b.WriteString("\n---\n\n")
		b.WriteString(doc)
		b.WriteByte('\n')
	}
	res.Content = b.String()
	return res, nil
}

// heading extracts a document's first top-level markdown heading, falling
// back to the filename when none exists.
func heading(doc, fallback string) string {
	for _, line := range strings.Split(doc, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return fallback
}

// Write stores the compiled artifact in dir under Filename, via a temp file
// and rename so a crash never leaves a truncated artifact.
func Write(dir, content string) error {
	tmp, err := os.CreateTemp(dir, ".bugrep-compiled-*")
	if err != nil {
		return fmt.Errorf("creating temp artifact: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("writing compiled artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("closing compiled artifact: %w", err)
	}
	if err := os.Rename(tmpPath, filepath.Join(dir, Filename)); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replacing compiled artifact: %w", err)
	}
	return nil
}
