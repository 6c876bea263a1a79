package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvoronin/bugrep/internal/store"
	"github.com/pvoronin/bugrep/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all reports in the ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := requireConfig()
		if err != nil {
			return err
		}
		_, storePath, _ := settings(cfg)

		st, err := store.Load(storePath)
		if err != nil {
			return err
		}
		records, err := st.Records()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println(ui.RenderMuted("No reports yet."))
			return nil
		}

		fmt.Println(ui.RenderHeader(fmt.Sprintf("%-6s %-19s %-8s %-8s %-8s %s",
			"ID", "Created", "Priority", "Severity", "Status", "Brief")))
		for _, r := range records {
			fmt.Printf("%-6d %-19s %-8s %-8s %-8s %s\n",
				r.ID, r.Created, r.Priority, r.Severity, r.Status, r.Brief)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
