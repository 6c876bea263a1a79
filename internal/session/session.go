// Package session drives the interactive report intake loop: allocate an
// id, prompt the operator for every field, persist the finished report, and
// repeat until the operator stops — then flush the store and rebuild the
// compiled document.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/pvoronin/bugrep/internal/compile"
	"github.com/pvoronin/bugrep/internal/history"
	"github.com/pvoronin/bugrep/internal/render"
	"github.com/pvoronin/bugrep/internal/store"
	"github.com/pvoronin/bugrep/internal/types"
)

// ErrInterrupted is returned by a Prompter when the operator aborts at a
// prompt boundary. It discards the in-progress report and moves the loop to
// finalization; it is never an error for the session as a whole.
var ErrInterrupted = errors.New("interrupted by operator")

// Prompter is the interactive terminal collaborator. Implementations must
// re-prompt locally on validation failures (required fields) and map an
// operator abort to ErrInterrupted.
type Prompter interface {
	// Text prompts for one line of free text. With required set, the
	// returned value is non-blank.
	Text(label string, required bool) (string, error)
	// Select prompts for one of options and returns its index.
	Select(label string, options []string) (int, error)
	// OrderedList collects an ordered sequence of non-blank lines,
	// terminated by an empty entry. The sequence may be empty.
	OrderedList(label string) ([]string, error)
	// Confirm asks a yes/no question.
	Confirm(label string) (bool, error)
	// Warn surfaces an advisory that never blocks the flow.
	Warn(msg string)
}

// State of the intake loop. Transitions are strictly sequential; the only
// way into Finalizing is an operator interrupt or a declined continuation.
type State int

const (
	AwaitingEntry State = iota
	Prompting
	Persisting
	Finalizing
)

// Loop owns the store and the history sets for the process lifetime. There
// is exactly one writer and it is synchronous, so no locking is involved.
type Loop struct {
	author    string
	storePath string
	outputDir string
	st        *store.Store
	prompter  Prompter

	locations *history.Set
	kinds     *history.Set

	state State

	// Clock stamps CreatedAt at prompt start. Overridable in tests.
	Clock func() time.Time

	// OnSaved, when set, observes every durably persisted report and its
	// document filename.
	OnSaved func(r *types.Report, filename string)
}

// New builds a session loop over a loaded store. History sets are rebuilt
// from the store's location and type columns.
func New(author string, st *store.Store, storePath, outputDir string, p Prompter) *Loop {
	return &Loop{
		author:    author,
		storePath: storePath,
		outputDir: outputDir,
		st:        st,
		prompter:  p,
		locations: history.New(st.DistinctValues(store.ColLocation)...),
		kinds:     history.New(st.DistinctValues(store.ColType)...),
		Clock:     time.Now,
	}
}

// State returns the loop's current state.
func (l *Loop) State() State {
	return l.state
}

// Run executes intake cycles until the operator stops, then finalizes:
// store flush, then compilation. A partially collected report is never
// committed.
func (l *Loop) Run() error {
	for {
		l.state = Prompting
		rep, err := l.collect()
		if errors.Is(err, ErrInterrupted) {
			break
		}
		if err != nil {
			return err
		}

		l.state = Persisting
		if err := l.persist(rep); err != nil {
			if errors.Is(err, render.ErrDocumentExists) {
				// Filenames derive from unique ids; an existing
				// document means the id sequence can no longer be
				// trusted.
				return err
			}
			// The document could not be written, so the report is not
			// durably saved: skip the store append too and keep the
			// representations consistent. The id stays burned.
			l.prompter.Warn(fmt.Sprintf("report %d was not saved: %v", rep.ID, err))
		}

		l.state = AwaitingEntry
		again, err := l.prompter.Confirm("Add another report?")
		if errors.Is(err, ErrInterrupted) || (err == nil && !again) {
			break
		}
		if err != nil {
			return err
		}
	}
	return l.Finalize()
}

// collect runs one full prompting cycle and returns a validated report.
func (l *Loop) collect() (*types.Report, error) {
	id, err := l.st.NextID()
	if err != nil {
		return nil, err
	}
	createdAt := l.Clock()

	brief, err := l.prompter.Text("Brief description", true)
	if err != nil {
		return nil, err
	}
	if msg := types.BriefAdvisory(brief); msg != "" {
		l.prompter.Warn(msg)
	}

	location, err := l.offer(l.locations, "Location")
	if err != nil {
		return nil, err
	}
	kind, err := l.offer(l.kinds, "Type")
	if err != nil {
		return nil, err
	}

	expected, err := l.prompter.Text("Expected result", true)
	if err != nil {
		return nil, err
	}
	actual, err := l.prompter.Text("Actual result", true)
	if err != nil {
		return nil, err
	}
	steps, err := l.prompter.OrderedList("Reproduction steps")
	if err != nil {
		return nil, err
	}

	priority, err := l.pick(types.Priorities)
	if err != nil {
		return nil, err
	}
	severity, err := l.pick(types.Severities)
	if err != nil {
		return nil, err
	}
	status, err := l.pick(types.Statuses)
	if err != nil {
		return nil, err
	}

	rep := &types.Report{
		ID:        id,
		Author:    l.author,
		CreatedAt: createdAt,
		Brief:     brief,
		Location:  location,
		Type:      kind,
		Expected:  expected,
		Actual:    actual,
		Steps:     steps,
		Priority:  priority,
		Severity:  severity,
		Status:    status,
	}
	if err := rep.Validate(); err != nil {
		return nil, fmt.Errorf("collected report is invalid: %w", err)
	}
	return rep, nil
}

// offer prompts for a free-text field through its history set: fresh text
// when no prior values exist, otherwise a selection with the "other"
// sentinel first. The chosen value joins the set immediately so later
// entries in the same session see it.
func (l *Loop) offer(set *history.Set, label string) (string, error) {
	if set.Empty() {
		v, err := l.prompter.Text(label, true)
		if err != nil {
			return "", err
		}
		set.Add(v)
		return v, nil
	}

	options := set.Options()
	i, err := l.prompter.Select(label, options)
	if err != nil {
		return "", err
	}
	var v string
	if i == 0 {
		v, err = l.prompter.Text(label, true)
		if err != nil {
			return "", err
		}
	} else {
		v = options[i]
	}
	set.Add(v)
	return v, nil
}

func (l *Loop) pick(reg types.Registry) (types.Tag, error) {
	tags := reg.Tags()
	i, err := l.prompter.Select(reg.Name(), reg.Labels())
	if err != nil {
		return types.Tag{}, err
	}
	if i < 0 || i >= len(tags) {
		return types.Tag{}, fmt.Errorf("selection %d out of range for %s", i, reg.Name())
	}
	return tags[i], nil
}

// persist writes the rendered document first, then appends the row. The
// document write is the commit point: if it fails, the store is untouched
// and the three representations stay consistent.
func (l *Loop) persist(rep *types.Report) error {
	filename, content := render.Render(rep)
	if err := render.Write(l.outputDir, filename, content); err != nil {
		return err
	}
	l.st.Append(rep)
	if l.OnSaved != nil {
		l.OnSaved(rep, filename)
	}
	return nil
}

// Finalize flushes the store and rebuilds the compiled document. Documents
// that cannot be read are skipped with a visible warning; they never abort
// the artifact.
func (l *Loop) Finalize() error {
	l.state = Finalizing
	if err := l.st.Flush(l.storePath); err != nil {
		return fmt.Errorf("flushing store: %w", err)
	}

	res, err := compile.Compile(l.outputDir)
	if err != nil {
		return fmt.Errorf("compiling documents: %w", err)
	}
	for _, skip := range res.Skipped {
		l.prompter.Warn(fmt.Sprintf("skipped %s during compilation: %v", skip.Name, skip.Err))
	}
	if err := compile.Write(l.outputDir, res.Content); err != nil {
		return fmt.Errorf("writing compiled document: %w", err)
	}
	return nil
}
