package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/kingrea/tally/internal/task"
)

// rowMode is the per-row edit state.
type rowMode int

const (
	rowDisplay rowMode = iota // settled row: checkbox, text, actions
	rowEditing                // text replaced by an editor holding a draft
)

// row is the view model for one task. Rows are rebuilt from the store after
// every change; nothing about a row outlives a rebuild except the edit
// session, which is keyed by task id.
type row struct {
	task  task.Task
	mode  rowMode
	draft string
}

// editSession is the state behind the one row that may be in rowEditing.
type editSession struct {
	id    string
	input textinput.Model
	// loaded is the editor's value when the session opened. The editor
	// folds tabs and newlines, so an untouched draft can differ from the
	// stored text and must not be written back.
	loaded string
	// replaceOnType emulates a fully selected field: the first typed
	// character or deletion replaces the whole draft.
	replaceOnType bool
}

func buildRows(tasks []task.Task, edit *editSession) []row {
	rows := make([]row, len(tasks))
	for i, t := range tasks {
		rows[i] = row{task: t, mode: rowDisplay}
		if edit != nil && edit.id == t.ID {
			rows[i].mode = rowEditing
			rows[i].draft = edit.input.Value()
		}
	}
	return rows
}

func newEditor(text string, width int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	if width > 0 {
		ti.Width = width
	}
	ti.SetValue(text)
	ti.CursorEnd()
	return ti
}
