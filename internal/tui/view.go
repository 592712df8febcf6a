package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/folha/internal/calculation"
	"github.com/rgehrsitz/folha/internal/compare"
	"github.com/rgehrsitz/folha/internal/output"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderLoading()
	}

	if m.err != nil {
		return m.renderError()
	}

	var content string
	switch m.currentScene {
	case SceneRecords:
		content = m.renderRecords()
	case SceneDetail:
		content = m.renderDetail()
	case SceneCompare:
		content = m.renderCompare()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	contentHeight := max(1, m.height-4) // title (2) + status (1) + padding (1)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		lipgloss.NewStyle().Height(contentHeight).Render(content),
		m.renderStatusBar(),
	)
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("folha - CLT compensation")

	breadcrumb := m.currentScene.String()
	if o, ok := m.selected(); ok && m.currentScene != SceneRecords && m.currentScene != SceneHelp {
		breadcrumb = fmt.Sprintf("%s / %s", breadcrumb, o.Result.EmployeeName)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(breadcrumb))
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	bindings := []string{
		formatShortcut(keys.Detail),
		formatShortcut(keys.Compare),
		formatShortcut(keys.Back),
		formatShortcut(keys.Help),
		formatShortcut(keys.Quit),
	}
	statusText := strings.Join(bindings, " • ")

	if m.outcomes != nil {
		records := SubtitleStyle.Render(fmt.Sprintf("%d records", len(m.outcomes)))
		spacer := strings.Repeat(" ", max(0, m.width-lipgloss.Width(statusText)-lipgloss.Width(records)-2))
		statusText = statusText + spacer + records
	}

	return StatusBarStyle.Render(statusText)
}

func formatShortcut(b key.Binding) string {
	h := b.Help()
	return StatusKeyStyle.Render(h.Key) + " " + h.Desc
}

func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}
	return m.renderApp(BorderStyle.Render("⠋ " + message))
}

func (m Model) renderError() string {
	hint := "Press any key to continue..."
	if m.outcomes == nil {
		hint = "Press q to quit."
	}
	return m.renderApp(ErrorStyle.Render(fmt.Sprintf("Error: %s\n\n%s", m.err.Error(), hint)))
}

func (m Model) renderRecords() string {
	if len(m.outcomes) == 0 {
		return BorderStyle.Render("The input file has no records.")
	}
	return BorderStyle.Render(m.table.View())
}

// renderDetail shows the console statement of the selected record
func (m Model) renderDetail() string {
	o, ok := m.selected()
	if !ok {
		return BorderStyle.Render("No record selected.")
	}
	return BorderStyle.Render(statement(m.engine, o))
}

func statement(engine *calculation.Engine, o calculation.Outcome) string {
	report := output.NewReport([]calculation.Outcome{o}).WithWithholding(engine.EstimateWithholding)
	data, err := output.ConsoleFormatter{}.Format(report)
	if err != nil {
		return ErrorStyle.Render(err.Error())
	}
	return strings.TrimRight(string(data), "\n")
}

func (m Model) renderCompare() string {
	if m.comparison == nil {
		return BorderStyle.Render("No comparison yet. Select a record and press c.")
	}
	tf := &compare.TableFormatter{}
	return BorderStyle.Render(strings.TrimRight(tf.Format(m.comparison), "\n"))
}

func (m Model) renderHelp() string {
	rows := []string{TitleStyle.Render("Keys")}
	for _, b := range []struct{ k, d string }{
		{"up/down", "move through records"},
		{"enter", "show the itemized statement"},
		{"c", "compare every termination reason for the record"},
		{"esc", "back to the record list"},
		{"q", "quit"},
	} {
		rows = append(rows, HelpKeyStyle.Render(b.k)+HelpDescStyle.Render(b.d))
	}
	return BorderStyle.Render(strings.Join(rows, "\n"))
}
