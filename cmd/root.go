/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configFile string
var ephemeral bool
var verbose bool

// rootCmd opens the interactive board when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "kanban",
	Short: "A local kanban board in your terminal",
	Long: `kanban keeps a small task board on this machine.

Run it without arguments for the interactive board, or use the
subcommands to add, move and list tasks from scripts.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is the normal case.
		_ = godotenv.Load()
		if configFile != "" {
			return os.Setenv("KANBAN_CONFIG", configFile)
		}
		return nil
	},
	RunE: runBoard,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to config.yaml (overrides KANBAN_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep tasks in memory only for this run")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug logs")
}
