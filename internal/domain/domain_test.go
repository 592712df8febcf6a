package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCompensationInput_EffectiveMode(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected Mode
	}{
		{"", ModeMonthly},
		{ModeMonthly, ModeMonthly},
		{ModeThirteenth, ModeThirteenth},
		{ModeTermination, ModeTermination},
	}

	for _, tt := range tests {
		in := CompensationInput{Mode: tt.mode}
		assert.Equal(t, tt.expected, in.EffectiveMode(), "mode %q", tt.mode)
	}
}

func TestCompensationInput_IsTwelveByThirtySix(t *testing.T) {
	assert.True(t, (&CompensationInput{WorkScale: ScaleTwelveByThirtySix}).IsTwelveByThirtySix())
	assert.False(t, (&CompensationInput{WorkScale: ScaleStandard}).IsTwelveByThirtySix())
	assert.False(t, (&CompensationInput{}).IsTwelveByThirtySix())
}

func TestCompensationInput_YAML(t *testing.T) {
	src := `
employee_name: Ana
mode: TERMINATION
base_salary: 2500.50
night_hours: "12.5"
thirteenth_month_days: {1: 31, 12: 10}
termination_reason: AGREEMENT
`
	var in CompensationInput
	require.NoError(t, yaml.Unmarshal([]byte(src), &in))

	assert.Equal(t, "Ana", in.EmployeeName)
	assert.Equal(t, ModeTermination, in.Mode)
	assert.True(t, in.BaseSalary.Equal(decimal.RequireFromString("2500.50")))
	assert.True(t, in.NightHours.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, in.OvertimeHours.IsZero())
	assert.Equal(t, map[int]int{1: 31, 12: 10}, in.ThirteenthMonthDays)
	assert.Equal(t, Agreement, in.TerminationReason)
}

func TestCompensationResult_Lines(t *testing.T) {
	t.Run("monthly loan is subtracted", func(t *testing.T) {
		r := CompensationResult{
			Mode:               ModeMonthly,
			ProportionalSalary: decimal.NewFromInt(3000),
			HazardPayValue:     decimal.NewFromInt(900),
			LoanDiscount:       decimal.NewFromInt(250),
		}

		lines := r.Lines()
		require.Len(t, lines, 10)
		last := lines[len(lines)-1]
		assert.Equal(t, "Loan discount", last.Label)
		assert.Equal(t, "-250", last.Amount.String())
		assert.Equal(t, "3650", r.SumLines().String())
	})

	t.Run("thirteenth", func(t *testing.T) {
		r := CompensationResult{Mode: ModeThirteenth, ThirteenthValue: decimal.NewFromInt(2200)}
		require.Len(t, r.Lines(), 1)
		assert.Equal(t, "2200", r.SumLines().String())
	})

	t.Run("termination", func(t *testing.T) {
		r := CompensationResult{
			Mode:                   ModeTermination,
			SalaryBalance:          decimal.NewFromInt(2000),
			ThirteenthProportional: decimal.NewFromInt(750),
			VacationProportional:   decimal.NewFromInt(500),
			VacationOneThird:       decimal.RequireFromString("166.67"),
			FGTSPenalty:            decimal.NewFromInt(1600),
		}
		assert.Len(t, r.Lines(), 7)
		assert.Equal(t, "5016.67", r.SumLines().StringFixed(2))
	})

	t.Run("empty mode renders monthly lines", func(t *testing.T) {
		r := CompensationResult{}
		assert.Len(t, r.Lines(), 10)
		assert.True(t, r.SumLines().IsZero())
	})
}

func TestRules_WithDefaults(t *testing.T) {
	t.Run("empty rules become defaults", func(t *testing.T) {
		got := Rules{}.WithDefaults()
		d := DefaultRules()

		assert.Equal(t, d.Metadata, got.Metadata)
		assert.True(t, got.Wage.StandardDivisor.Equal(d.Wage.StandardDivisor))
		assert.Equal(t, 30, got.Wage.MonthDays)
		assert.Equal(t, 60, got.Termination.NoticeMaxExtraDays)
		assert.Len(t, got.Withholding.INSSBrackets, len(d.Withholding.INSSBrackets))
		assert.Len(t, got.Withholding.IRRFBrackets, len(d.Withholding.IRRFBrackets))
	})

	t.Run("set fields are kept", func(t *testing.T) {
		r := Rules{
			Metadata: RulesMetadata{DataYear: 2025},
			Wage: WageRules{
				HazardPayRate: decimal.NewFromFloat(0.40),
				MonthDays:     31,
			},
			Termination: TerminationRules{FGTSPenaltyNoCause: decimal.NewFromFloat(0.5)},
		}
		got := r.WithDefaults()

		assert.Equal(t, 2025, got.Metadata.DataYear)
		assert.Equal(t, "0.4", got.Wage.HazardPayRate.String())
		assert.Equal(t, 31, got.Wage.MonthDays)
		assert.Equal(t, "0.5", got.Termination.FGTSPenaltyNoCause.String())
		assert.Equal(t, "0.2", got.Termination.FGTSPenaltyAgreement.String())
		assert.Equal(t, 15, got.Wage.TwelveByThirtySixShifts)
	})
}

func TestDefaultRules_Brackets(t *testing.T) {
	d := DefaultRules()

	for i := 1; i < len(d.Withholding.INSSBrackets); i++ {
		prev, cur := d.Withholding.INSSBrackets[i-1], d.Withholding.INSSBrackets[i]
		assert.True(t, prev.Max.Equal(cur.Min), "INSS bracket %d does not start where %d ends", i, i-1)
	}
	last := d.Withholding.IRRFBrackets[len(d.Withholding.IRRFBrackets)-1]
	assert.True(t, last.UpTo.IsZero(), "top IRRF bracket is open-ended")
}
