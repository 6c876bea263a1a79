package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pvoronin/bugrep/internal/session"
	"github.com/pvoronin/bugrep/internal/store"
	"github.com/pvoronin/bugrep/internal/types"
	"github.com/pvoronin/bugrep/internal/ui"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start an interactive report intake session",
	Long: `Start an interactive intake session: bugrep prompts for each field of a
report, repeats until you stop, then flushes the ledger and rebuilds the
compiled document.

Press Ctrl+C at any prompt to finish the session; an unfinished report is
discarded, already-saved reports are kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntake()
	},
}

func runIntake() error {
	prompter := ui.HuhPrompter{}

	cfg, err := ensureConfig(prompter)
	if errors.Is(err, session.ErrInterrupted) {
		return nil
	}
	if err != nil {
		return err
	}

	author, storePath, outputDir := settings(cfg)
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	st, err := store.Load(storePath)
	if err != nil {
		return err
	}

	loop := session.New(author, st, storePath, outputDir, prompter)
	loop.OnSaved = printSavedReport
	if err := loop.Run(); err != nil {
		return err
	}

	fmt.Printf("\nSession finished: %d report(s) in the ledger, compiled document updated.\n", st.Len())
	return nil
}

func printSavedReport(r *types.Report, filename string) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("\n%s Saved report BR-%d\n", green("✓"), r.ID)
	fmt.Printf("  Brief:    %s\n", r.Brief)
	fmt.Printf("  Priority: %s\n", r.Priority.Label)
	fmt.Printf("  Severity: %s\n", r.Severity.Label)
	fmt.Printf("  Status:   %s\n", r.Status.Label)
	fmt.Printf("  Document: %s\n", filename)
}

func init() {
	rootCmd.AddCommand(newCmd)
}
