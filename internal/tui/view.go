package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
	focusedPanelStyle = panelStyle.
				BorderForeground(lipgloss.Color("#5B8DEF"))
	counterStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#5B8DEF")).Bold(true)
	checkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	doneTextStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Italic(true)
	logHeadStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	logBodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
)

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = defaultWidth
	}
	inner := max(20, width-4)

	inputBox := panelStyle
	listBox := panelStyle
	if a.edit == nil {
		if a.focus == focusInput {
			inputBox = focusedPanelStyle
		} else {
			listBox = focusedPanelStyle
		}
	} else {
		listBox = focusedPanelStyle
	}

	sections := []string{
		headerStyle.Render("⬡ " + strings.ToUpper(a.ws.Config.Title())),
		a.renderProgress(),
		inputBox.Width(inner).Render(a.input.View()),
		listBox.Width(inner).Render(a.renderRows(inner - 2)),
	}
	if a.showLog {
		if panel := a.renderLogPanel(inner); panel != "" {
			sections = append(sections, panel)
		}
	}
	sections = append(sections, a.help.View(a.helpKeys()))
	return strings.Join(sections, "\n")
}

// renderProgress shows "completed/total" next to the fill bar.
func (a *App) renderProgress() string {
	counter := counterStyle.Render(a.progress.Counter())
	return lipgloss.JoinHorizontal(lipgloss.Center, counter, "  ", a.bar.ViewAs(a.progress.Ratio()))
}

func (a *App) renderRows(width int) string {
	if len(a.rows) == 0 {
		return emptyStyle.Render("Nothing to do. Type a task above and press enter.")
	}
	lines := make([]string, 0, len(a.rows))
	for i, r := range a.rows {
		selected := i == a.selected && (a.focus == focusList || a.edit != nil)
		lines = append(lines, a.renderRow(r, selected, width))
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderRow(r row, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = cursorStyle.Render("› ")
	}
	box := "[ ]"
	if r.task.Completed {
		box = checkStyle.Render("[x]")
	}
	var text string
	switch r.mode {
	case rowEditing:
		text = a.edit.input.View()
	default:
		text = r.task.Text
		if r.task.Completed && a.ws.Config.DimCompleted() {
			text = doneTextStyle.Render(text)
		}
		if selected {
			text += "  " + hintStyle.Render("e edit · d delete")
		}
	}
	line := fmt.Sprintf("%s%s %s", cursor, box, text)
	return lipgloss.NewStyle().MaxWidth(max(20, width)).Render(line)
}

func (a *App) renderLogPanel(width int) string {
	lines, total := a.ws.Logbook.Tail(logPanelLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.ws.Logbook.Path())
	head := logHeadStyle.Render(fmt.Sprintf("LOG · %s (%d)", fileName, total))
	body := logBodyStyle.Render(strings.Join(lines, "\n"))
	return panelStyle.Width(width).Render(fmt.Sprintf("%s\n%s", head, body))
}

func (a *App) helpKeys() help.KeyMap {
	switch {
	case a.edit != nil:
		return editKeys{a.keys}
	case a.focus == focusInput:
		return inputKeys{a.keys}
	default:
		return listKeys{a.keys}
	}
}
