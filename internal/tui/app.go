// internal/tui/app.go
//
// This is the terminal UI for tally. It uses bubbletea, which follows The
// Elm Architecture:
//
// 1. Model: the App, which owns the workspace (and through it the store)
// 2. Update: key messages mutate the store, then persist and rebuild rows
// 3. View: rows, progress and the activity journal rendered to a string
//
// Every change runs the same cycle: mutate -> persist -> rebuild rows ->
// recompute progress.

package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	bar "github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/tally/internal/progress"
	"github.com/kingrea/tally/internal/workspace"
)

const (
	logPanelLines  = 5
	defaultWidth   = 80
	listSideMargin = 10
)

// focusArea is which part of the screen receives keys.
type focusArea int

const (
	focusInput focusArea = iota // new-task input
	focusList                   // task rows
)

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(keys KeyMap) AppOption {
	return func(a *App) {
		a.keys = keys
	}
}

// WithLogPanel toggles the activity journal panel.
func WithLogPanel(enabled bool) AppOption {
	return func(a *App) {
		a.showLog = enabled
	}
}

// App is the main application model.
type App struct {
	ws   *workspace.Workspace
	keys KeyMap

	input    textinput.Model
	bar      bar.Model
	help     help.Model
	focus    focusArea
	selected int
	edit     *editSession

	rows     []row
	progress progress.Progress

	showLog bool
	width   int
	height  int
}

// NewApp builds the model around an opened workspace.
func NewApp(ws *workspace.Workspace, opts ...AppOption) *App {
	cfg := ws.Config

	input := textinput.New()
	input.Placeholder = cfg.Placeholder()
	input.CharLimit = 0
	input.Prompt = "+ "
	input.Focus()

	app := &App{
		ws:      ws,
		keys:    DefaultKeyMap,
		input:   input,
		bar:     bar.New(bar.WithDefaultGradient(), bar.WithWidth(cfg.ProgressWidth())),
		help:    help.New(),
		focus:   focusInput,
		showLog: true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.refresh()
	ws.Logbook.Info("Session opened · %s tasks", app.progress.Counter())
	return app
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.input.Width = max(10, msg.Width-listSideMargin)
		if a.edit != nil {
			a.edit.input.Width = max(10, msg.Width-listSideMargin)
		}
		return a, nil

	case tea.BlurMsg:
		// Terminal lost focus: an open edit commits, like leaving the field.
		if a.edit != nil {
			a.finishEdit(true)
		}
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			if a.edit != nil {
				a.finishEdit(true)
			}
			return a, tea.Quit
		}
		if a.edit != nil {
			return a.updateEditing(msg)
		}
		if a.focus == focusInput {
			return a.updateInput(msg)
		}
		return a.updateList(msg)
	}

	if a.edit != nil {
		var cmd tea.Cmd
		a.edit.input, cmd = a.edit.input.Update(msg)
		return a, cmd
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// updateInput handles keys while the new-task input has focus.
func (a *App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		a.submitNewTask()
		return a, nil
	case tea.KeyTab:
		if a.ws.Store.Len() == 0 {
			return a, nil
		}
		a.focusList()
		return a, nil
	}
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// submitNewTask appends the input's value. Blank input is ignored without
// feedback; the input keeps focus either way.
func (a *App) submitNewTask() {
	added, ok := a.ws.Store.Add(a.input.Value())
	if !ok {
		return
	}
	a.ws.Save("Added task %s: %s", added.ID, added.Text)
	a.input.SetValue("")
	a.refresh()
	a.selected = len(a.rows) - 1
}

// updateList handles keys while the rows have focus.
func (a *App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.FocusToggle), key.Matches(msg, a.keys.NewTask):
		return a, a.focusInput()
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	case key.Matches(msg, a.keys.Up):
		a.moveSelection(-1)
	case key.Matches(msg, a.keys.Down):
		a.moveSelection(1)
	case key.Matches(msg, a.keys.Top):
		a.selected = 0
	case key.Matches(msg, a.keys.Bottom):
		a.selected = max(0, len(a.rows)-1)
	case key.Matches(msg, a.keys.Toggle):
		a.toggleSelected()
	case key.Matches(msg, a.keys.Edit):
		return a, a.beginEdit()
	case key.Matches(msg, a.keys.Delete):
		a.deleteSelected()
	case key.Matches(msg, a.keys.ClearCompleted):
		a.clearCompleted()
	}
	return a, nil
}

func (a *App) toggleSelected() {
	r, ok := a.selectedRow()
	if !ok || !a.ws.Store.Toggle(r.task.ID) {
		return
	}
	state := "done"
	if r.task.Completed {
		state = "not done"
	}
	a.ws.Save("Marked task %s %s", r.task.ID, state)
	a.refresh()
}

func (a *App) deleteSelected() {
	r, ok := a.selectedRow()
	if !ok || !a.ws.Store.Remove(r.task.ID) {
		return
	}
	a.ws.Save("Deleted task %s: %s", r.task.ID, r.task.Text)
	a.refresh()
	if len(a.rows) == 0 {
		a.focusInput()
	}
}

func (a *App) clearCompleted() {
	removed := a.ws.Store.ClearCompleted()
	if removed == 0 {
		return
	}
	a.ws.Save("Cleared %d completed task(s)", removed)
	a.refresh()
	if len(a.rows) == 0 {
		a.focusInput()
	}
}

// beginEdit puts the selected row into editing mode with its current text
// as the draft.
func (a *App) beginEdit() tea.Cmd {
	r, ok := a.selectedRow()
	if !ok {
		return nil
	}
	width := 0
	if a.width > 0 {
		width = max(10, a.width-listSideMargin)
	}
	editor := newEditor(r.task.Text, width)
	a.edit = &editSession{
		id:            r.task.ID,
		input:         editor,
		loaded:        editor.Value(),
		replaceOnType: true,
	}
	cmd := a.edit.input.Focus()
	a.refresh()
	return cmd
}

// updateEditing drives the row editor. Enter commits, Esc discards, and
// leaving the row (tab, arrow keys) commits like Enter does.
func (a *App) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Submit):
		a.finishEdit(true)
		return a, nil
	case key.Matches(msg, a.keys.Cancel):
		a.finishEdit(false)
		return a, nil
	}
	switch msg.Type {
	case tea.KeyTab:
		a.finishEdit(true)
		return a, a.focusInput()
	case tea.KeyUp:
		a.finishEdit(true)
		a.moveSelection(-1)
		return a, nil
	case tea.KeyDown:
		a.finishEdit(true)
		a.moveSelection(1)
		return a, nil
	case tea.KeyRunes, tea.KeySpace:
		if a.edit.replaceOnType {
			a.edit.input.SetValue("")
		}
	case tea.KeyBackspace, tea.KeyDelete:
		if a.edit.replaceOnType {
			a.edit.input.SetValue("")
			a.edit.replaceOnType = false
			a.refresh()
			return a, nil
		}
	}
	a.edit.replaceOnType = false
	var cmd tea.Cmd
	a.edit.input, cmd = a.edit.input.Update(msg)
	a.refresh()
	return a, cmd
}

// finishEdit leaves editing mode. A commit with blank or untouched text
// behaves like a discard. Both paths persist and rebuild.
func (a *App) finishEdit(commit bool) {
	session := a.edit
	if session == nil {
		return
	}
	a.edit = nil
	draft := session.input.Value()
	changed := commit && draft != session.loaded && a.ws.Store.SetText(session.id, draft)
	if changed {
		t, _ := a.ws.Store.Get(session.id)
		a.ws.Save("Edited task %s: %s", session.id, t.Text)
	} else {
		a.ws.Save("")
	}
	a.refresh()
}

func (a *App) focusInput() tea.Cmd {
	a.focus = focusInput
	return a.input.Focus()
}

func (a *App) focusList() {
	a.focus = focusList
	a.input.Blur()
}

func (a *App) moveSelection(delta int) {
	if len(a.rows) == 0 {
		a.selected = 0
		return
	}
	a.selected = clamp(a.selected+delta, 0, len(a.rows)-1)
}

func (a *App) selectedRow() (row, bool) {
	if a.selected < 0 || a.selected >= len(a.rows) {
		return row{}, false
	}
	return a.rows[a.selected], true
}

// refresh rebuilds the row view models and progress from the store.
func (a *App) refresh() {
	tasks := a.ws.Store.Tasks()
	a.rows = buildRows(tasks, a.edit)
	a.progress = progress.Of(tasks)
	if len(a.rows) == 0 {
		a.selected = 0
	} else {
		a.selected = clamp(a.selected, 0, len(a.rows)-1)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
