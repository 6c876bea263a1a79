package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pvoronin/bugrep/internal/configfile"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration settings",
	Long: `Manage the [core] settings in the config file.

Keys:
  core.author     Name recorded as the report author
  core.xlsx       Path of the xlsx ledger
  core.output_md  Directory for rendered and compiled documents

Examples:
  bugrep config set core.author "Pavel"
  bugrep config get core.xlsx
  bugrep config list`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := requireConfig()
		if err != nil {
			return err
		}
		value, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configfile.Load(configDir)
		if err != nil {
			return err
		}
		if cfg == nil {
			cfg = configfile.Default()
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := cfg.Save(configDir); err != nil {
			return err
		}
		fmt.Printf("Set %s = %s\n", args[0], args[1])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := requireConfig()
		if err != nil {
			return err
		}
		for _, key := range configfile.Keys() {
			value, err := cfg.Get(key)
			if err != nil {
				return err
			}
			fmt.Printf("%s = %s\n", key, value)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configListCmd)
	rootCmd.AddCommand(configCmd)
}
