package calculation

import (
	"testing"

	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewEngine(t *testing.T) {
	engine := NewEngine()

	assert.NotNil(t, engine, "Should create engine")
	assert.NotNil(t, engine.Logger, "Should initialize logger")
	assert.True(t, engine.Rules.Wage.StandardDivisor.Equal(decimal.NewFromInt(220)))
}

func TestNewEngineWithRules_FillsZeroFields(t *testing.T) {
	rules := domain.Rules{}
	rules.Wage.StandardDivisor = decimal.NewFromInt(200)

	engine := NewEngineWithRules(rules)

	assert.True(t, engine.Rules.Wage.StandardDivisor.Equal(decimal.NewFromInt(200)), "Should keep supplied divisor")
	assert.Equal(t, 30, engine.Rules.Wage.MonthDays, "Should default month days")
	assert.True(t, engine.Rules.Termination.FGTSPenaltyNoCause.Equal(decimal.NewFromFloat(0.40)))
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine()

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)

	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	// nil falls back to the no-op logger
	engine.SetLogger(nil)

	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestEngine_ZeroValueUsable(t *testing.T) {
	var engine Engine
	r := engine.ComputeMonthly(domain.CompensationInput{
		BaseSalary: decimal.NewFromInt(3000),
		DaysWorked: 30,
	})
	assertMoney(t, "3000.00", r.GrossSalary)
}

func TestEngine_ComputeDispatch(t *testing.T) {
	engine := NewEngine()
	base := domain.CompensationInput{
		EmployeeName:    "Ana",
		BaseSalary:      decimal.NewFromInt(3000),
		DaysWorked:      30,
		AdmissionDate:   "2023-01-10",
		TerminationDate: "2024-03-20",
	}

	tests := []struct {
		mode     domain.Mode
		expected domain.Mode
	}{
		{"", domain.ModeMonthly},
		{domain.ModeMonthly, domain.ModeMonthly},
		{domain.ModeThirteenth, domain.ModeThirteenth},
		{domain.ModeTermination, domain.ModeTermination},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected)+"/"+string(tt.mode), func(t *testing.T) {
			in := base
			in.Mode = tt.mode
			r := engine.Compute(in)
			assert.Equal(t, tt.expected, r.Mode)
			assert.Equal(t, "Ana", r.EmployeeName)
		})
	}
}

func TestEngine_LogsComputations(t *testing.T) {
	engine := NewEngine()
	logger := &TestLogger{}
	engine.SetLogger(logger)

	engine.ComputeMonthly(domain.CompensationInput{BaseSalary: decimal.NewFromInt(1000), DaysWorked: 30})
	engine.ComputeTermination(domain.CompensationInput{})

	assert.Len(t, logger.messages, 2)
	assert.Contains(t, logger.messages[0], "DEBUG: monthly")
	assert.Contains(t, logger.messages[1], "WARN: termination")
}

// assertMoney compares amounts at two decimal places
func assertMoney(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.Equal(t, expected, actual.StringFixed(2), msgAndArgs...)
}

// TestLogger records messages for assertions
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
