package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rgehrsitz/folha/internal/calculation"
	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func buildTestReport() *Report {
	engine := calculation.NewEngine()
	inputs := []domain.CompensationInput{
		{EmployeeName: "Maria", BaseSalary: decimal.NewFromInt(3000), DaysWorked: 30},
		{
			EmployeeName:      "Bruno",
			Mode:              domain.ModeTermination,
			BaseSalary:        decimal.NewFromInt(3000),
			AdmissionDate:     "2023-01-10",
			TerminationDate:   "2024-03-20",
			TerminationReason: domain.DismissalNoCause,
			NoticePeriodType:  domain.NoticeIndemnified,
			FGTSBalance:       decimal.NewFromInt(4000),
		},
		{EmployeeName: "Carla", Mode: domain.ModeTermination, BaseSalary: decimal.NewFromInt(3000)},
	}

	outcomes := make([]calculation.Outcome, len(inputs))
	for i, in := range inputs {
		outcomes[i] = calculation.Outcome{ID: uuid.New(), Index: i, Input: in, Result: engine.Compute(in)}
	}
	return NewReport(outcomes)
}

func TestFormatterFunc(t *testing.T) {
	called := false
	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(report *Report) ([]byte, error) {
			called = true
			return []byte("test output"), nil
		},
	}

	output, err := formatter.Format(buildTestReport())

	assert.NoError(t, err)
	assert.True(t, called, "Should call the function")
	assert.Equal(t, "test-formatter", formatter.Name())
	assert.Equal(t, []byte("test output"), output)
}

func TestWriteFormatted(t *testing.T) {
	t.Chdir(t.TempDir())

	formatter := FormatterFunc{
		ID: "test-formatter",
		F: func(report *Report) ([]byte, error) {
			return []byte("test output content"), nil
		},
	}

	filename, err := WriteFormatted(formatter, buildTestReport(), "txt")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "folha_report_"), filename)
	assert.True(t, strings.HasSuffix(filename, ".txt"), filename)

	content, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "test output content", string(content))
}

func TestWriteFormatted_FormatterError(t *testing.T) {
	formatter := FormatterFunc{
		ID: "error-formatter",
		F: func(report *Report) ([]byte, error) {
			return nil, fmt.Errorf("formatter error")
		},
	}

	filename, err := WriteFormatted(formatter, buildTestReport(), "txt")

	assert.Error(t, err)
	assert.Empty(t, filename)
	assert.Contains(t, err.Error(), "formatter error")
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"console", "console"},
		{"json", "json"},
		{"csv", "csv"},
		{"yaml", "yaml"},
		{"YAML", "yaml"},
		{"yml", "yaml"},
		{"text", "console"},
		{" table ", "console"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := GetFormatterByName(tt.name)
			require.NotNil(t, f)
			assert.Equal(t, tt.expected, f.Name())
		})
	}

	assert.Nil(t, GetFormatterByName("html"), "Should return nil for unknown names")
}

func TestAvailableNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "json", "yaml"}, AvailableFormatterNames())
	assert.Contains(t, AvailableFormatAliases(), "yml")
}

func TestConsoleFormatter_Format(t *testing.T) {
	report := buildTestReport().WithWithholding(calculation.NewEngine().EstimateWithholding)

	output, err := ConsoleFormatter{}.Format(report)
	require.NoError(t, err)

	content := string(output)
	assert.Contains(t, content, "CLT COMPENSATION STATEMENT")
	assert.Contains(t, content, "Records: 3")
	assert.Contains(t, content, "1. Maria (MONTHLY)")
	assert.Contains(t, content, "R$ 3.000,00")
	assert.Contains(t, content, "2. Bruno (TERMINATION)")
	assert.Contains(t, content, "R$ 8.316,67")
	assert.Contains(t, content, "FGTS penalty")
	assert.Contains(t, content, "NET (estimate)")
	assert.Contains(t, content, "Insufficient input")
}

func TestJSONFormatter_Format(t *testing.T) {
	output, err := JSONFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	var decoded struct {
		Rows []struct {
			ID     string `json:"id"`
			Index  int    `json:"index"`
			Result struct {
				EmployeeName string          `json:"employee_name"`
				GrossSalary  decimal.Decimal `json:"gross_salary"`
				FGTSPenalty  decimal.Decimal `json:"fgts_penalty"`
			} `json:"result"`
		} `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(output, &decoded))
	require.Len(t, decoded.Rows, 3)
	assert.Equal(t, "Bruno", decoded.Rows[1].Result.EmployeeName)
	assert.Equal(t, 1, decoded.Rows[1].Index)
	assert.Equal(t, "1600", decoded.Rows[1].Result.FGTSPenalty.String())
	assert.NotEmpty(t, decoded.Rows[0].ID)
}

func TestYAMLFormatter_Format(t *testing.T) {
	output, err := YAMLFormatter{}.Format(buildTestReport())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(output, &decoded))
	rows, ok := decoded["rows"].([]interface{})
	require.True(t, ok)
	assert.Len(t, rows, 3)
	assert.Contains(t, string(output), "employee_name: Maria")
}

func TestCSVFormatter_Format(t *testing.T) {
	report := buildTestReport().WithWithholding(calculation.NewEngine().EstimateWithholding)

	output, err := CSVFormatter{}.Format(report)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(output))).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"ID", "Index", "Employee", "Mode", "Item", "Amount"}, records[0])

	var grossByName = map[string]string{}
	var sawInsufficient bool
	for _, rec := range records[1:] {
		switch rec[4] {
		case "GROSS":
			grossByName[rec[2]] = rec[5]
		case "INSUFFICIENT_INPUT":
			sawInsufficient = true
			assert.Equal(t, "Carla", rec[2])
		}
	}
	assert.Equal(t, "3000.00", grossByName["Maria"])
	assert.Equal(t, "8316.67", grossByName["Bruno"])
	assert.True(t, sawInsufficient)
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   decimal.Decimal
		expected string
	}{
		{decimal.Zero, "R$ 0,00"},
		{decimal.NewFromFloat(12.5), "R$ 12,50"},
		{decimal.NewFromInt(999), "R$ 999,00"},
		{decimal.NewFromInt(1000), "R$ 1.000,00"},
		{decimal.NewFromFloat(8316.666), "R$ 8.316,67"},
		{decimal.NewFromFloat(1234567.891), "R$ 1.234.567,89"},
		{decimal.NewFromInt(-500), "-R$ 500,00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(tt.amount))
		})
	}
}

func TestFormatPercentageAndHours(t *testing.T) {
	assert.Equal(t, "20.00%", FormatPercentage(decimal.NewFromInt(20)))
	assert.Equal(t, "11.43h", FormatHours(decimal.RequireFromString("11.42857")))
}
