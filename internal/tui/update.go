package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Quit    key.Binding
	Help    key.Binding
	Back    key.Binding
	Detail  key.Binding
	Compare key.Binding
}

var keys = keyMap{
	Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Back:    key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
	Detail:  key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "statement")),
	Compare: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "compare reasons")),
}

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(3, msg.Height-8))
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case BatchLoadedMsg:
		m.loading = false
		m.outcomes = msg.Outcomes
		m.table.SetRows(outcomeRows(m.engine, msg.Outcomes))
		return m, nil

	case ComparisonCompleteMsg:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.comparison = msg.Set
		m.comparisonIndex = msg.Index
		return m, func() tea.Msg { return NavigateMsg{Scene: SceneCompare} }
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		return m, tea.Quit
	}

	// Any other key dismisses an error, unless the batch itself failed to load
	if m.err != nil {
		if m.outcomes != nil {
			m.err = nil
		}
		return m, nil
	}

	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Help):
		return m, func() tea.Msg { return NavigateMsg{Scene: SceneHelp} }

	case key.Matches(msg, keys.Back):
		if m.currentScene != SceneRecords {
			return m, func() tea.Msg { return NavigateMsg{Scene: SceneRecords} }
		}
		return m, nil

	case key.Matches(msg, keys.Detail):
		switch m.currentScene {
		case SceneRecords:
			if _, ok := m.selected(); ok {
				return m, func() tea.Msg { return NavigateMsg{Scene: SceneDetail} }
			}
		case SceneDetail:
			return m, func() tea.Msg { return NavigateMsg{Scene: SceneRecords} }
		}
		return m, nil

	case key.Matches(msg, keys.Compare):
		o, ok := m.selected()
		if !ok || m.currentScene == SceneCompare {
			return m, nil
		}
		if m.comparison != nil && m.comparisonIndex == o.Index {
			return m, func() tea.Msg { return NavigateMsg{Scene: SceneCompare} }
		}
		m.loading = true
		m.loadingMessage = "Comparing termination reasons..."
		return m, compareCmd(m.engine, o)
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates to the widget owning the current scene
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.currentScene != SceneRecords {
		return m, nil
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}
