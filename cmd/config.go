/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/nakachan-ing/kanban-cli/internal/model"
	"github.com/nakachan-ing/kanban-cli/internal/store"
	"github.com/nakachan-ing/kanban-cli/internal/util"
)

const saveAndExit = "Save & Exit"

type configModel struct {
	cursor    int
	fields    []string
	config    model.Config
	textInput textinput.Model
	editMode  bool
	saved     bool
	save      func(model.Config) error
}

func newConfigModel(config model.Config) *configModel {
	return &configModel{
		fields:    generateFieldList(),
		config:    config,
		textInput: textinput.New(),
		save:      store.SaveConfig,
	}
}

func generateFieldList() []string {
	return []string{
		"DataDir", "Editor", "LogLevel", "LogFile",
		"Storage.Backend", "Storage.Key", "Storage.Path",
		"Board.DefaultStatus", "Board.DoneStatus", "Board.NoticeSeconds",
		"Celebration.Enable", "Celebration.ParticleCount", "Celebration.Spread",
		saveAndExit,
	}
}

func (m *configModel) Init() tea.Cmd {
	return nil
}

func (m *configModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editMode {
			switch msg.String() {
			case "enter":
				m.updateConfig()
				m.editMode = false
				m.textInput.Blur()
			case "esc":
				m.editMode = false
				m.textInput.Blur()
			default:
				m.textInput, _ = m.textInput.Update(msg)
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			}
		case "enter":
			if m.fields[m.cursor] == saveAndExit {
				if err := m.save(m.config); err != nil {
					log.WithError(err).Warn("failed to save config file")
				} else {
					m.saved = true
				}
				return m, tea.Quit
			}
			m.editMode = true
			m.textInput.SetValue(m.getFieldValue(m.fields[m.cursor]))
			return m, m.textInput.Focus()
		}
	}

	return m, nil
}

func (m *configModel) View() string {
	var s strings.Builder
	s.WriteString("📄 Configure kanban\n\n")

	for i, field := range m.fields {
		cursor := "  "
		if m.cursor == i {
			cursor = "👉"
		}
		if field == saveAndExit {
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, field))
			continue
		}
		s.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, field, m.getFieldValue(field)))
	}

	if m.editMode {
		s.WriteString("\n✏️  Editing: " + m.fields[m.cursor] + "\n")
		s.WriteString(m.textInput.View() + "\n")
		s.WriteString("(Enter to save, ESC to cancel)\n")
	} else {
		s.WriteString("\n↑/↓ to move, Enter to edit, q to quit\n")
	}

	return s.String()
}

func (m *configModel) getFieldValue(field string) string {
	switch field {
	case "DataDir":
		return m.config.DataDir
	case "Editor":
		return m.config.Editor
	case "LogLevel":
		return m.config.LogLevel
	case "LogFile":
		return m.config.LogFile
	case "Storage.Backend":
		return m.config.Storage.Backend
	case "Storage.Key":
		return m.config.Storage.Key
	case "Storage.Path":
		return m.config.Storage.Path
	case "Board.DefaultStatus":
		return m.config.Board.DefaultStatus
	case "Board.DoneStatus":
		return m.config.Board.DoneStatus
	case "Board.NoticeSeconds":
		return strconv.Itoa(m.config.Board.NoticeSeconds)
	case "Celebration.Enable":
		return strconv.FormatBool(m.config.Celebration.Enable)
	case "Celebration.ParticleCount":
		return strconv.Itoa(m.config.Celebration.ParticleCount)
	case "Celebration.Spread":
		return strconv.FormatFloat(m.config.Celebration.Spread, 'g', -1, 64)
	default:
		return "UNKNOWN"
	}
}

// updateConfig applies the edited value. Values that do not parse are
// ignored and the field keeps its previous value.
func (m *configModel) updateConfig() {
	newValue := strings.TrimSpace(m.textInput.Value())

	switch m.fields[m.cursor] {
	case "DataDir":
		m.config.DataDir = newValue
	case "Editor":
		m.config.Editor = newValue
	case "LogLevel":
		if _, err := log.ParseLevel(newValue); err == nil {
			m.config.LogLevel = newValue
		}
	case "LogFile":
		m.config.LogFile = newValue
	case "Storage.Backend":
		switch newValue {
		case "file", "sqlite", "memory":
			m.config.Storage.Backend = newValue
		}
	case "Storage.Key":
		if newValue != "" {
			m.config.Storage.Key = newValue
		}
	case "Storage.Path":
		m.config.Storage.Path = newValue
	case "Board.DefaultStatus":
		if hasColumn(m.config.Board.Columns, newValue) {
			m.config.Board.DefaultStatus = newValue
		}
	case "Board.DoneStatus":
		m.config.Board.DoneStatus = newValue
	case "Board.NoticeSeconds":
		if newInt, err := strconv.Atoi(newValue); err == nil && newInt > 0 {
			m.config.Board.NoticeSeconds = newInt
		}
	case "Celebration.Enable":
		if newBool, err := strconv.ParseBool(newValue); err == nil {
			m.config.Celebration.Enable = newBool
		}
	case "Celebration.ParticleCount":
		if newInt, err := strconv.Atoi(newValue); err == nil && newInt >= 0 {
			m.config.Celebration.ParticleCount = newInt
		}
	case "Celebration.Spread":
		if newFloat, err := strconv.ParseFloat(newValue, 64); err == nil {
			m.config.Celebration.Spread = newFloat
		}
	}
}

func hasColumn(columns []model.Column, id string) bool {
	for _, column := range columns {
		if column.ID == id {
			return true
		}
	}
	return false
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure config.yaml interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := store.LoadRawConfig()
		if err != nil {
			return fmt.Errorf("❌ Error loading config: %w", err)
		}

		m := newConfigModel(*config)
		if _, err := tea.NewProgram(m).Run(); err != nil {
			return fmt.Errorf("❌ Error running TUI: %w", err)
		}
		if m.saved {
			fmt.Fprintln(cmd.OutOrStdout(), "✅ Config saved")
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := store.GetConfigPath()
		if err != nil {
			return fmt.Errorf("❌ Failed to get config path: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), configPath)
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open config.yaml in your editor",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := store.GetConfigPath()
		if err != nil {
			return fmt.Errorf("❌ Failed to get config path: %w", err)
		}
		config, err := store.LoadConfig()
		if err != nil {
			return fmt.Errorf("❌ Error loading config: %w", err)
		}
		if err := util.OpenEditor(configPath, *config); err != nil {
			return fmt.Errorf("❌ %w", err)
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd, configEditCmd)
	rootCmd.AddCommand(configCmd)
}
