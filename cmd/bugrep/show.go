package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pvoronin/bugrep/internal/render"
	"github.com/pvoronin/bugrep/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Display one report's rendered document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id < 1 {
			return fmt.Errorf("invalid report id: %q", args[0])
		}

		cfg, err := requireConfig()
		if err != nil {
			return err
		}
		_, _, outputDir := settings(cfg)

		pattern := filepath.Join(outputDir, fmt.Sprintf("%s%04d-*%s", render.Prefix, id, render.Extension))
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("no document found for report %d in %s", id, outputDir)
		}

		data, err := os.ReadFile(matches[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", matches[0], err)
		}
		fmt.Print(ui.RenderMarkdown(string(data)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
