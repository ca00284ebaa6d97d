/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nakachan-ing/kanban-cli/internal/confetti"
	"github.com/nakachan-ing/kanban-cli/internal/tui"
)

func runBoard(cmd *cobra.Command, args []string) error {
	launcher := confetti.NewLauncher()
	a, err := openApp(launcher)
	if err != nil {
		return err
	}
	defer a.Close()

	m := tui.New(a.board, launcher, a.config.Board.NoticeDuration())
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("❌ Error running TUI: %w", err)
	}
	return nil
}

var boardCmd = &cobra.Command{
	Use:     "board",
	Short:   "Open the interactive board",
	Aliases: []string{"b"},
	Args:    cobra.NoArgs,
	RunE:    runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
}
