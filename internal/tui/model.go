package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/folha/internal/calculation"
	"github.com/rgehrsitz/folha/internal/compare"
	"github.com/rgehrsitz/folha/internal/config"
	"github.com/rgehrsitz/folha/internal/output"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	configPath string
	engine     *calculation.Engine

	outcomes []calculation.Outcome
	table    table.Model

	// Comparison for the record at comparisonIndex
	comparison      *compare.ComparisonSet
	comparisonIndex int

	// Error state
	err error

	// Loading state
	loading        bool
	loadingMessage string
}

// NewModel creates a new application model
func NewModel(configPath string) Model {
	return NewModelWithEngine(configPath, calculation.NewEngine())
}

// NewModelWithEngine creates a model that computes with the given engine
func NewModelWithEngine(configPath string, engine *calculation.Engine) Model {
	return Model{
		currentScene:    SceneRecords,
		configPath:      configPath,
		engine:          engine,
		table:           newOutcomeTable(),
		comparisonIndex: -1,
		width:           80,
		height:          24,
		loading:         true,
		loadingMessage:  "Computing batch...",
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadBatchCmd(m.engine, m.configPath)
}

// loadBatchCmd parses, resolves and computes the input file
func loadBatchCmd(engine *calculation.Engine, path string) tea.Cmd {
	return func() tea.Msg {
		batch, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		inputs, err := config.ResolveBatch(batch, nil)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		outcomes, err := engine.RunBatch(context.Background(), inputs)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		return BatchLoadedMsg{Outcomes: outcomes}
	}
}

// compareCmd evaluates a record under every termination reason
func compareCmd(engine *calculation.Engine, o calculation.Outcome) tea.Cmd {
	return func() tea.Msg {
		set, err := compare.NewCompareEngine(engine).CompareTerminations(context.Background(), o.Input)
		return ComparisonCompleteMsg{Index: o.Index, Set: set, Err: err}
	}
}

func newOutcomeTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Employee", Width: 24},
			{Title: "Mode", Width: 12},
			{Title: "Gross", Width: 16},
			{Title: "Net (est.)", Width: 16},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	t.SetStyles(tableStyles())
	return t
}

// outcomeRows renders one table row per computed record
func outcomeRows(engine *calculation.Engine, outcomes []calculation.Outcome) []table.Row {
	rows := make([]table.Row, 0, len(outcomes))
	for _, o := range outcomes {
		gross := output.FormatCurrency(o.Result.GrossSalary)
		net := output.FormatCurrency(engine.EstimateWithholding(o.Result.GrossSalary).Net)
		if o.Result.InsufficientInput {
			gross, net = "insufficient input", "-"
		}
		rows = append(rows, table.Row{
			strconv.Itoa(o.Index + 1),
			o.Result.EmployeeName,
			string(o.Result.Mode),
			gross,
			net,
		})
	}
	return rows
}

// selected returns the outcome under the table cursor
func (m Model) selected() (calculation.Outcome, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.outcomes) {
		return calculation.Outcome{}, false
	}
	return m.outcomes[i], true
}
