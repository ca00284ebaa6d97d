package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Input  key.Binding
	Submit key.Binding
	Blur   key.Binding
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Grab   key.Binding
	Drop   key.Binding
	Cancel key.Binding
	Delete key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Input:  key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "add task")),
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Blur:   key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc", "back to board")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Grab:   key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "grab card")),
		Drop:   key.NewBinding(key.WithKeys(" ", "space", "enter"), key.WithHelp("space", "drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel drag")),
		Delete: key.NewBinding(key.WithKeys("x", "d", "delete"), key.WithHelp("x", "delete")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// boardHelp and dragHelp adapt the key map to bubbles/help for each mode.
type boardHelp keyMap

func (k boardHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Input, k.Left, k.Right, k.Up, k.Down, k.Grab, k.Delete, k.Quit}
}

func (k boardHelp) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type dragHelp keyMap

func (k dragHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Drop, k.Cancel}
}

func (k dragHelp) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

type inputHelp keyMap

func (k inputHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Blur}
}

func (k inputHelp) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }
