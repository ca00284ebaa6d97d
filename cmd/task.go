/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nakachan-ing/kanban-cli/internal/board"
	"github.com/nakachan-ing/kanban-cli/internal/confetti"
	"github.com/nakachan-ing/kanban-cli/internal/model"
)

var listStatus string
var showRaw bool

var statusColors = []text.Color{text.FgHiRed, text.FgHiYellow, text.FgHiGreen, text.FgHiBlue, text.FgHiMagenta}

var addCmd = &cobra.Command{
	Use:     "add [text]",
	Short:   "Add a task to the first column",
	Args:    cobra.MinimumNArgs(1),
	Aliases: []string{"a", "new"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(nil)
		if err != nil {
			return err
		}
		defer a.Close()

		task, err := a.board.Add(strings.Join(args, " "))
		if errors.Is(err, board.ErrEmptyText) {
			return errors.New("❌ Task description cannot be empty!")
		}
		if err != nil {
			return fmt.Errorf("❌ Failed to add task: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Task %s added to %s\n", color.CyanString(task.ID), task.Status)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "rm [id]",
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	Aliases: []string{"delete", "del"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(nil)
		if err != nil {
			return err
		}
		defer a.Close()

		id := args[0]
		_, found := a.board.Find(id)
		if err := a.board.Delete(id); err != nil {
			return fmt.Errorf("❌ Failed to delete task: %w", err)
		}

		if !found {
			fmt.Fprintf(cmd.OutOrStdout(), "⚠️ Task %s not found, nothing deleted\n", id)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Task %s deleted\n", id)
		return nil
	},
}

var moveCmd = &cobra.Command{
	Use:     "mv [id] [status]",
	Short:   "Move a task to another column",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"move"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(confetti.NewPrinter(cmd.OutOrStdout()))
		if err != nil {
			return err
		}
		defer a.Close()

		id, status := args[0], args[1]
		if !a.board.HasColumn(status) {
			return fmt.Errorf("❌ Unknown status %q (columns: %s)", status, strings.Join(columnIDs(a.board.Columns()), ", "))
		}

		if _, found := a.board.Find(id); !found {
			log.WithField("id", id).Debug("mv: task not found")
			fmt.Fprintf(cmd.OutOrStdout(), "⚠️ Task %s not found\n", id)
			return nil
		}

		if err := a.board.Move(id, status); err != nil {
			return fmt.Errorf("❌ Failed to move task: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Task %s moved to %s\n", color.CyanString(id), status)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List tasks",
	Args:    cobra.NoArgs,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(nil)
		if err != nil {
			return err
		}
		defer a.Close()

		colorOf := map[string]text.Color{}
		for i, column := range a.board.Columns() {
			colorOf[column.ID] = statusColors[i%len(statusColors)]
		}

		t := table.NewWriter()
		t.SetOutputMirror(cmd.OutOrStdout())
		t.SetStyle(table.StyleDouble)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("Task ID"), text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Text")),
			text.FgGreen.Sprintf("Status"),
		})

		shown := 0
		for _, task := range a.board.Tasks() {
			if listStatus != "" && task.Status != listStatus {
				continue
			}
			var statusColored string
			if c, ok := colorOf[task.Status]; ok {
				statusColored = c.Sprintf("%s", task.Status)
			} else {
				statusColored = text.FgHiBlack.Sprintf("%s (hidden)", task.Status)
			}
			t.AppendRow(table.Row{task.ID, task.Text, statusColored})
			shown++
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Tasks: %d tasks shown\n", shown)
		if shown == 0 {
			return nil
		}
		t.Render()
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the board as Markdown",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(nil)
		if err != nil {
			return err
		}
		defer a.Close()

		md := boardMarkdown(a.board.Render())
		if showRaw {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		rendered, err := glamour.Render(md, "dark")
		if err != nil {
			log.WithError(err).Warn("failed to render markdown, printing raw")
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

// boardMarkdown writes one section per column, in board order.
func boardMarkdown(layout board.Layout) string {
	var s strings.Builder
	s.WriteString("# Board\n")
	for _, view := range layout.Columns {
		title := view.Column.Title
		if title == "" {
			title = view.Column.ID
		}
		fmt.Fprintf(&s, "\n## %s (%d)\n\n", title, len(view.Cards))
		if len(view.Cards) == 0 {
			s.WriteString("_empty_\n")
		}
		for _, card := range view.Cards {
			fmt.Fprintf(&s, "- %s `%s`\n", card.Text, card.ID)
		}
	}
	if layout.Hidden > 0 {
		fmt.Fprintf(&s, "\n> %d task(s) with an unknown status are not shown.\n", layout.Hidden)
	}
	return s.String()
}

func columnIDs(columns []model.Column) []string {
	ids := make([]string, 0, len(columns))
	for _, column := range columns {
		ids = append(ids, column.ID)
	}
	return ids
}

func init() {
	rootCmd.AddCommand(addCmd, deleteCmd, moveCmd, listCmd, showCmd)
	listCmd.Flags().StringVar(&listStatus, "status", "", "Filter by status")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print Markdown without rendering")
}
