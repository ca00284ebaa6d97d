// Package tui is the terminal front end of the board: it turns key presses
// into board operations and renders board.Layout with lipgloss.
package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"github.com/nakachan-ing/kanban-cli/internal/board"
	"github.com/nakachan-ing/kanban-cli/internal/confetti"
	"github.com/nakachan-ing/kanban-cli/internal/model"
)

const (
	emptyTaskMessage = "Task description cannot be empty!"

	confettiInterval = 50 * time.Millisecond
	confettiHeight   = 8
	defaultWidth     = 80
)

// liftMsg is the deferred "lifted" treatment of a grabbed card.
type liftMsg struct{ gesture uint64 }

type noticeExpiredMsg struct{ seq uint64 }

type confettiTickMsg struct{}

type Model struct {
	board    *board.Board
	drag     *board.Drag
	notice   *board.Notice
	launcher *confetti.Launcher

	keys  keyMap
	help  help.Model
	input textinput.Model
	// inputInvalid applies the error style after a rejected add.
	inputInvalid bool

	layout    board.Layout
	activeCol int
	activeRow int
	width     int
	height    int

	bursts    []*confetti.Burst
	animating bool
	seed      uint64
}

// New wires the model to b. launcher must be the celebrator b was built
// with; a nil launcher disables the confetti overlay.
func New(b *board.Board, launcher *confetti.Launcher, noticeDuration time.Duration) *Model {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = 280
	input.Prompt = "+ "

	m := &Model{
		board:    b,
		drag:     board.NewDrag(b.Columns()),
		notice:   board.NewNotice(noticeDuration),
		launcher: launcher,
		keys:     defaultKeyMap(),
		help:     help.New(),
		input:    input,
		width:    defaultWidth,
		seed:     uint64(time.Now().UnixNano()),
	}
	m.input.Focus()
	m.render()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case liftMsg:
		m.drag.Lift(msg.gesture)
		return m, nil
	case noticeExpiredMsg:
		m.notice.Expire(msg.seq)
		return m, nil
	case confettiTickMsg:
		return m, m.stepConfetti()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.input.Focused() {
		return m.handleInputKey(msg)
	}
	if m.drag.Dragging() {
		return m.handleDragKey(msg)
	}
	return m.handleBoardKey(msg)
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.addTask()
	case key.Matches(msg, m.keys.Blur):
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Input):
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Left):
		m.selectColumn(m.activeCol - 1)
	case key.Matches(msg, m.keys.Right):
		m.selectColumn(m.activeCol + 1)
	case key.Matches(msg, m.keys.Up):
		if m.activeRow > 0 {
			m.activeRow--
		}
	case key.Matches(msg, m.keys.Down):
		if m.activeRow < len(m.currentCards())-1 {
			m.activeRow++
		}
	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.selectedTask(); ok {
			return m, m.deleteTask(task.ID)
		}
	case key.Matches(msg, m.keys.Grab):
		return m, m.startDrag()
	}
	return m, nil
}

func (m *Model) handleDragKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.dragOver(m.activeCol - 1)
	case key.Matches(msg, m.keys.Right):
		m.dragOver(m.activeCol + 1)
	case key.Matches(msg, m.keys.Drop):
		return m, m.dropTask()
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.drag.End()
	}
	return m, nil
}

func (m *Model) addTask() tea.Cmd {
	_, err := m.board.Add(m.input.Value())
	if errors.Is(err, board.ErrEmptyText) {
		m.inputInvalid = true
		return m.showNotice(emptyTaskMessage)
	}

	m.inputInvalid = false
	m.notice.Clear()
	m.input.SetValue("")
	m.render()
	return tea.Batch(m.persistErr(err), m.input.Focus())
}

func (m *Model) deleteTask(id string) tea.Cmd {
	err := m.board.Delete(id)
	m.render()
	return m.persistErr(err)
}

// startDrag grabs the selected card. The lifted treatment is applied by a
// follow-up liftMsg rather than inline.
func (m *Model) startDrag() tea.Cmd {
	task, ok := m.selectedTask()
	if !ok {
		return nil
	}
	gesture, ok := m.drag.Start(task.ID, false)
	if !ok {
		return nil
	}
	m.drag.Over(m.currentColumnID())
	return func() tea.Msg { return liftMsg{gesture: gesture} }
}

func (m *Model) dragOver(col int) {
	if col < 0 || col >= len(m.layout.Columns) {
		return
	}
	m.drag.Leave(m.currentColumnID())
	m.activeCol = col
	m.drag.Over(m.currentColumnID())
}

func (m *Model) dropTask() tea.Cmd {
	id := m.drag.TaskID()
	moved, err := m.board.DropOn(m.drag, m.drag.Highlight())
	m.drag.End()
	m.render()
	if moved {
		m.selectTask(id)
	}
	return tea.Batch(m.persistErr(err), m.launchConfetti())
}

func (m *Model) persistErr(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	log.WithError(err).Error("board operation failed")
	return m.showNotice(fmt.Sprintf("❌ %v", err))
}

func (m *Model) showNotice(text string) tea.Cmd {
	seq := m.notice.Show(text)
	return tea.Tick(m.notice.Duration, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

// launchConfetti turns queued celebrations into bursts and starts the
// animation clock if it is not already running.
func (m *Model) launchConfetti() tea.Cmd {
	if m.launcher == nil {
		return nil
	}
	for _, config := range m.launcher.Drain() {
		m.seed++
		m.bursts = append(m.bursts, confetti.NewBurst(config, m.width, confettiHeight, m.seed))
	}
	if len(m.bursts) == 0 || m.animating {
		return nil
	}
	m.animating = true
	return confettiTick()
}

func (m *Model) stepConfetti() tea.Cmd {
	live := m.bursts[:0]
	for _, burst := range m.bursts {
		burst.Step()
		if !burst.Done() {
			live = append(live, burst)
		}
	}
	m.bursts = live
	if len(m.bursts) == 0 {
		m.animating = false
		return nil
	}
	return confettiTick()
}

func confettiTick() tea.Cmd {
	return tea.Tick(confettiInterval, func(time.Time) tea.Msg { return confettiTickMsg{} })
}

func (m *Model) render() {
	m.layout = m.board.Render()
	m.selectColumn(m.activeCol)
}

func (m *Model) selectColumn(col int) {
	if col < 0 || col >= len(m.layout.Columns) {
		return
	}
	m.activeCol = col
	if n := len(m.currentCards()); m.activeRow >= n {
		m.activeRow = max(n-1, 0)
	}
}

func (m *Model) selectTask(id string) {
	for c, view := range m.layout.Columns {
		for r, card := range view.Cards {
			if card.ID == id {
				m.activeCol, m.activeRow = c, r
				return
			}
		}
	}
}

func (m *Model) currentColumnID() string {
	if m.activeCol >= len(m.layout.Columns) {
		return ""
	}
	return m.layout.Columns[m.activeCol].Column.ID
}

func (m *Model) currentCards() []model.Task {
	if m.activeCol >= len(m.layout.Columns) {
		return nil
	}
	return m.layout.Columns[m.activeCol].Cards
}

func (m *Model) selectedTask() (model.Task, bool) {
	cards := m.currentCards()
	if m.activeRow >= len(cards) {
		return model.Task{}, false
	}
	return cards[m.activeRow], true
}
