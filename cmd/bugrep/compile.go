package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvoronin/bugrep/internal/compile"
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Rebuild the compiled document from the rendered reports on disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := requireConfig()
		if err != nil {
			return err
		}
		_, _, outputDir := settings(cfg)

		res, err := compile.Compile(outputDir)
		if err != nil {
			return err
		}
		for _, skip := range res.Skipped {
			WarnError("skipped %s: %v", skip.Name, skip.Err)
		}
		if err := compile.Write(outputDir, res.Content); err != nil {
			return err
		}

		fmt.Printf("Compiled %d document(s) into %s.\n", len(res.Included), compile.Filename)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compileCmd)
}
