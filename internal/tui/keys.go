package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the list. Bindings apply while the
// list has focus; the new-task input and the row editor consume printable
// keys themselves.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	Toggle         key.Binding
	Edit           key.Binding
	Delete         key.Binding
	ClearCompleted key.Binding

	// FocusToggle moves between the new-task input and the list.
	FocusToggle key.Binding
	NewTask     key.Binding

	Submit key.Binding
	Cancel key.Binding

	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "done"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "delete"),
		key.WithHelp("d", "delete"),
	),
	ClearCompleted: key.NewBinding(
		key.WithKeys("C"),
		key.WithHelp("C", "clear done"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch focus"),
	),
	NewTask: key.NewBinding(
		key.WithKeys("a", "i"),
		key.WithHelp("a", "new task"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// listKeys is the help.KeyMap shown while the list has focus.
type listKeys struct{ KeyMap }

func (k listKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Edit, k.Delete, k.NewTask, k.Help, k.Quit}
}

func (k listKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Toggle, k.Edit, k.Delete, k.ClearCompleted},
		{k.NewTask, k.FocusToggle, k.Help, k.Quit},
	}
}

// inputKeys is the help.KeyMap shown while typing a new task.
type inputKeys struct{ KeyMap }

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		k.FocusToggle,
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// editKeys is the help.KeyMap shown while a row is being edited.
type editKeys struct{ KeyMap }

func (k editKeys) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Submit,
		k.Cancel,
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab/↑/↓", "save & leave")),
	}
}

func (k editKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
