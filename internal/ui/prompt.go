package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/pvoronin/bugrep/internal/session"
)

// HuhPrompter implements session.Prompter on top of interactive terminal
// forms. Required-field validation re-prompts in place; an operator abort
// (Ctrl+C/Esc) maps to session.ErrInterrupted.
type HuhPrompter struct{}

var _ session.Prompter = (*HuhPrompter)(nil)

func theme() *huh.Theme {
	if ShouldUseColor() {
		return huh.ThemeDracula()
	}
	return huh.ThemeBase()
}

func mapAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return session.ErrInterrupted
	}
	return err
}

// Text prompts for one line of free text, re-prompting while a required
// value is blank.
func (HuhPrompter) Text(label string, required bool) (string, error) {
	var value string
	input := huh.NewInput().Title(label).Value(&value)
	if required {
		input = input.Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("a value is required")
			}
			return nil
		})
	}
	if err := huh.NewForm(huh.NewGroup(input)).WithTheme(theme()).Run(); err != nil {
		return "", mapAbort(err)
	}
	return strings.TrimSpace(value), nil
}

// Select prompts for one of options and returns its index.
func (HuhPrompter) Select(label string, options []string) (int, error) {
	opts := make([]huh.Option[int], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, i)
	}
	var idx int
	sel := huh.NewSelect[int]().Title(label).Options(opts...).Value(&idx)
	if err := huh.NewForm(huh.NewGroup(sel)).WithTheme(theme()).Run(); err != nil {
		return 0, mapAbort(err)
	}
	return idx, nil
}

// OrderedList collects numbered entries until the operator submits an empty
// one. The resulting sequence may be empty.
func (p HuhPrompter) OrderedList(label string) ([]string, error) {
	var steps []string
	for {
		entry, err := p.Text(fmt.Sprintf("%s %d. (empty to finish)", label, len(steps)+1), false)
		if err != nil {
			return nil, err
		}
		if entry == "" {
			return steps, nil
		}
		steps = append(steps, entry)
	}
}

// Confirm asks a yes/no question.
func (HuhPrompter) Confirm(label string) (bool, error) {
	var ok bool
	confirm := huh.NewConfirm().Title(label).Value(&ok)
	if err := huh.NewForm(huh.NewGroup(confirm)).WithTheme(theme()).Run(); err != nil {
		return false, mapAbort(err)
	}
	return ok, nil
}

// Warn surfaces an advisory on stderr without blocking the flow.
func (HuhPrompter) Warn(msg string) {
	Warnf("%s", msg)
}
