/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nakachan-ing/kanban-cli/internal/model"
	"github.com/nakachan-ing/kanban-cli/internal/store"
)

var initForce bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize config.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := store.GetConfigPath()
		if err != nil {
			return fmt.Errorf("❌ Failed to get config path: %w", err)
		}

		if _, err := os.Stat(configFile); err == nil && !initForce {
			return fmt.Errorf("❌ Config file already exists: %s (use --force to overwrite)", configFile)
		}

		// `~/.config/kanban-cli/` を作成
		if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
			return fmt.Errorf("❌ Failed to create config directory: %w", err)
		}

		// デフォルトの設定を YAML に変換
		configData, err := yaml.Marshal(model.DefaultConfig())
		if err != nil {
			return fmt.Errorf("❌ Failed to generate config: %w", err)
		}

		if err := os.WriteFile(configFile, configData, 0644); err != nil {
			return fmt.Errorf("❌ Failed to create config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ kanban initialized successfully!")
		fmt.Fprintln(cmd.OutOrStdout(), "📄 Config file created at:", configFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}
