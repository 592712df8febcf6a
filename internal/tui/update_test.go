package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/folha/internal/calculation"
)

const batchFile = "../config/testdata/batch.yaml"

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// step feeds msg through Update and then follows any returned command once
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Msg) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	if cmd == nil {
		return nm, nil
	}
	return nm, cmd()
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(batchFile)
	msg := m.Init()()
	loaded, ok := msg.(BatchLoadedMsg)
	require.True(t, ok, "expected BatchLoadedMsg, got %T", msg)
	m, _ = step(t, m, loaded)
	return m
}

func TestNewModel(t *testing.T) {
	m := NewModel(batchFile)
	assert.Equal(t, SceneRecords, m.currentScene)
	assert.True(t, m.loading)
	assert.Contains(t, m.View(), "Computing batch")
}

func TestLoadBatchCmd(t *testing.T) {
	engine := calculation.NewEngine()

	t.Run("computes every record", func(t *testing.T) {
		msg := loadBatchCmd(engine, batchFile)()
		loaded, ok := msg.(BatchLoadedMsg)
		require.True(t, ok)
		require.Len(t, loaded.Outcomes, 4)
		assert.Equal(t, "Maria Souza", loaded.Outcomes[0].Result.EmployeeName)
	})

	t.Run("missing file", func(t *testing.T) {
		msg := loadBatchCmd(engine, "does-not-exist.yaml")()
		errMsg, ok := msg.(ErrorMsg)
		require.True(t, ok)
		assert.Contains(t, errMsg.Err.Error(), "failed to read file")
	})
}

func TestUpdate_BatchLoaded(t *testing.T) {
	m := loadedModel(t)

	assert.False(t, m.loading)
	assert.Len(t, m.table.Rows(), 4)
	assert.Equal(t, "1", m.table.Rows()[0][0])

	view := m.View()
	assert.Contains(t, view, "Maria")
	assert.Contains(t, view, "4 records")
}

func TestUpdate_Navigation(t *testing.T) {
	m := loadedModel(t)

	m, msg := step(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, NavigateMsg{Scene: SceneDetail}, msg)
	m, _ = step(t, m, msg)
	assert.Equal(t, SceneDetail, m.currentScene)
	assert.Contains(t, m.View(), "CLT COMPENSATION STATEMENT")

	m, msg = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = step(t, m, msg)
	assert.Equal(t, SceneRecords, m.currentScene)

	m, msg = step(t, m, runes("?"))
	m, _ = step(t, m, msg)
	assert.Equal(t, SceneHelp, m.currentScene)
	assert.Contains(t, m.View(), "compare every termination reason")
}

func TestUpdate_CursorMovesThroughTable(t *testing.T) {
	m := loadedModel(t)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})

	o, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "Bruno Alves", o.Result.EmployeeName)
}

func TestUpdate_Compare(t *testing.T) {
	m := loadedModel(t)
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyDown})

	m, msg := step(t, m, runes("c"))
	assert.True(t, m.loading)
	done, ok := msg.(ComparisonCompleteMsg)
	require.True(t, ok)
	require.NoError(t, done.Err)
	assert.Equal(t, 2, done.Index)

	m, msg = step(t, m, done)
	assert.False(t, m.loading)
	m, _ = step(t, m, msg)
	assert.Equal(t, SceneCompare, m.currentScene)
	assert.Contains(t, m.View(), "TERMINATION REASON COMPARISON")

	// A second request for the same record reuses the comparison
	m, msg = step(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = step(t, m, msg)
	require.Equal(t, SceneRecords, m.currentScene)
	_, msg = step(t, m, runes("c"))
	assert.Equal(t, NavigateMsg{Scene: SceneCompare}, msg)
}

func TestUpdate_CompareWithoutDates(t *testing.T) {
	m := loadedModel(t)

	// Maria is a monthly record with no admission or termination date
	m, msg := step(t, m, runes("c"))
	m, _ = step(t, m, msg)
	require.Error(t, m.err)
	assert.Contains(t, m.View(), "insufficient input")

	m, _ = step(t, m, runes("x"))
	assert.NoError(t, m.err)
	assert.Equal(t, SceneRecords, m.currentScene)
}

func TestUpdate_LoadError(t *testing.T) {
	m := NewModel("does-not-exist.yaml")
	m, _ = step(t, m, m.Init()())

	require.Error(t, m.err)
	assert.Contains(t, m.View(), "Press q to quit")

	// Other keys cannot dismiss a failed load
	m, _ = step(t, m, runes("x"))
	assert.Error(t, m.err)

	_, msg := step(t, m, runes("q"))
	assert.Equal(t, tea.QuitMsg{}, msg)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := loadedModel(t)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, 32, m.table.Height())
}
