package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvoronin/bugrep/internal/configfile"
	"github.com/pvoronin/bugrep/internal/ui"
)

// Version of the bugrep tool.
const Version = "0.3.0"

var (
	configDir string
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:     "bugrep",
	Short:   "bugrep - interactive bug and incident intake",
	Long:    `Collects structured bug/incident reports interactively, keeps them in an xlsx ledger, and writes one markdown document per report plus a compiled overview.`,
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Running bugrep with no subcommand starts an intake session.
		return runIntake()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			ui.SetColorEnabled(false)
			color.NoColor = true
		}
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", configfile.DefaultDir, "Config directory")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	// Environment overrides: BUGREP_AUTHOR, BUGREP_XLSX, BUGREP_OUTPUT_MD
	// take precedence over the config file.
	viper.SetEnvPrefix("BUGREP")
	viper.AutomaticEnv()
}

// settings resolves the effective author, store path, and output directory:
// environment overrides layered over the config file.
func settings(cfg *configfile.Config) (author, storePath, outputDir string) {
	viper.SetDefault("author", cfg.Core.Author)
	viper.SetDefault("xlsx", cfg.Core.XLSX)
	viper.SetDefault("output_md", cfg.Core.OutputMD)
	return viper.GetString("author"), viper.GetString("xlsx"), viper.GetString("output_md")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		FatalError("%v", err)
	}
}
