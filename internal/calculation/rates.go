package calculation

import (
	"github.com/rgehrsitz/folha/internal/calendar"
	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// divisor is the monthly-hours denominator of the hourly rate
func (e *Engine) divisor(in *domain.CompensationInput) decimal.Decimal {
	if in.IsTwelveByThirtySix() && in.CustomDivisor.IsPositive() {
		return in.CustomDivisor
	}
	return e.Rules.Wage.StandardDivisor
}

// dsrFactor is zero for 12x36 unless the record opts in
func (e *Engine) dsrFactor(in *domain.CompensationInput) decimal.Decimal {
	if in.IsTwelveByThirtySix() && !in.ApplyDSROn12x36 {
		return decimal.Zero
	}
	return calendar.DSRFactor(in.BusinessDays, in.NonBusinessDays)
}

func (e *Engine) hourlyRate(in *domain.CompensationInput) decimal.Decimal {
	return in.BaseSalary.Div(e.divisor(in))
}

// fullPeriodDays is the day (or plantão) count of a complete reference month
func (e *Engine) fullPeriodDays(in *domain.CompensationInput) int {
	if in.IsTwelveByThirtySix() {
		return e.Rules.Wage.TwelveByThirtySixShifts
	}
	return e.Rules.Wage.MonthDays
}

// proportionalSalary prorates the base over the reference period
func (e *Engine) proportionalSalary(in *domain.CompensationInput, daysWorked int) decimal.Decimal {
	days := clamp(daysWorked, 0, e.Rules.Wage.MonthDays)
	return in.BaseSalary.
		Mul(decimal.NewFromInt(int64(days))).
		Div(decimal.NewFromInt(int64(e.fullPeriodDays(in))))
}

func (e *Engine) hazardPay(in *domain.CompensationInput, base decimal.Decimal) decimal.Decimal {
	if !in.HasHazardPay {
		return decimal.Zero
	}
	return base.Mul(e.Rules.Wage.HazardPayRate)
}

// nightDifferential applies the fictitious night hour when requested
func (e *Engine) nightDifferential(in *domain.CompensationInput, hourly decimal.Decimal) (effectiveHours, value decimal.Decimal) {
	effectiveHours = in.NightHours
	if in.ApplyNightShiftReduction {
		effectiveHours = effectiveHours.Mul(e.Rules.Wage.NightReductionFactor)
	}
	pct := percentOrDefault(in.NightShiftPercentage, e.Rules.Wage.DefaultNightPercentage)
	value = effectiveHours.Mul(hourly).Mul(pct).Div(hundred)
	return effectiveHours, value
}

func (e *Engine) production(in *domain.CompensationInput) decimal.Decimal {
	visits := decimal.NewFromInt(int64(in.VisitsAmount)).Mul(in.VisitUnitValue)
	return visits.Add(in.ProductionBonus)
}

// loanDiscount derives the installment from the loan totals when both are set
func loanDiscount(in *domain.CompensationInput) decimal.Decimal {
	if in.LoanTotalValue.IsPositive() && in.LoanTotalInstallments > 0 {
		return in.LoanTotalValue.Div(decimal.NewFromInt(int64(in.LoanTotalInstallments)))
	}
	return in.LoanDiscount
}

func percentOrDefault(p, fallback decimal.Decimal) decimal.Decimal {
	if p.IsZero() {
		return fallback
	}
	return p
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
