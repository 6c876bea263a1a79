package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pvoronin/bugrep/internal/store"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump all reports as YAML or JSON",
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

		var data []byte
		switch exportFormat {
		case "yaml":
			data, err = yaml.Marshal(records)
		case "json":
			data, err = json.MarshalIndent(records, "", "  ")
			data = append(data, '\n')
		default:
			return fmt.Errorf("unknown format %q (want yaml or json)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("encoding reports: %w", err)
		}

		if exportOut == "" {
			_, err = os.Stdout.Write(data)
			return err
		}
		return os.WriteFile(exportOut, data, 0o644)
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "yaml", "Export format: yaml or json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
