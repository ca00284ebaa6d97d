package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/nakachan-ing/kanban-cli/internal/board"
	"github.com/nakachan-ing/kanban-cli/internal/model"
)

func (m *Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("📋 Kanban") + "\n")
	s.WriteString(m.viewInput() + "\n")
	if m.notice.Visible() {
		s.WriteString(noticeStyle.Render(m.notice.Text()))
	}
	s.WriteString("\n")

	if len(m.bursts) > 0 {
		s.WriteString(m.bursts[0].Render() + "\n")
	}

	s.WriteString(m.viewColumns() + "\n")

	if m.layout.Hidden > 0 {
		s.WriteString(hiddenStyle.Render(fmt.Sprintf("%d task(s) with an unknown status are not shown", m.layout.Hidden)) + "\n")
	}
	s.WriteString(m.help.View(m.helpKeys()))
	return s.String()
}

func (m *Model) helpKeys() help.KeyMap {
	switch {
	case m.input.Focused():
		return inputHelp(m.keys)
	case m.drag.Dragging():
		return dragHelp(m.keys)
	default:
		return boardHelp(m.keys)
	}
}

func (m *Model) viewInput() string {
	style := inputStyle
	switch {
	case m.inputInvalid:
		style = inputErrorStyle
	case m.input.Focused():
		style = inputFocusedStyle
	}
	return style.Render(m.input.View())
}

func (m *Model) columnWidth() int {
	n := max(len(m.layout.Columns), 1)
	// 4 = border + padding on each column
	return max(m.width/n-4, 12)
}

func (m *Model) viewColumns() string {
	width := m.columnWidth()
	views := make([]string, 0, len(m.layout.Columns))

	for c, view := range m.layout.Columns {
		lines := []string{columnTitleStyle.Render(fmt.Sprintf("%s (%d)", columnTitle(view.Column), len(view.Cards)))}
		for r, card := range view.Cards {
			lines = append(lines, m.viewCard(card, c, r, width))
		}
		if len(view.Cards) == 0 {
			lines = append(lines, hiddenStyle.Render("—"))
		}
		views = append(views, m.columnStyleFor(c, view).Width(width).Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

func (m *Model) columnStyleFor(c int, view board.ColumnView) lipgloss.Style {
	switch {
	case m.drag.Highlight() == view.Column.ID:
		return columnDropStyle
	case c == m.activeCol && !m.input.Focused():
		return columnActiveStyle
	default:
		return columnStyle
	}
}

func (m *Model) viewCard(card model.Task, c, r, width int) string {
	text := truncate(card.Text, width-2)
	switch {
	case m.drag.Lifted() && m.drag.TaskID() == card.ID:
		return cardLiftedStyle.Render("◌ " + text)
	case c == m.activeCol && r == m.activeRow && !m.input.Focused():
		return cardSelectedStyle.Render("▸ " + text)
	default:
		return cardStyle.Render("  " + text)
	}
}

func columnTitle(column model.Column) string {
	if column.Title != "" {
		return column.Title
	}
	return column.ID
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(runes[:n-1]) + "…"
}
