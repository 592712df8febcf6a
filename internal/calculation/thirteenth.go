package calculation

import (
	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeThirteenth evaluates the month as fully worked, removes the cost
// allowance from the base and prorates it by avos (CLT) or by days worked
// over a 360-day commercial year (DAILY_EXACT).
func (e *Engine) ComputeThirteenth(in domain.CompensationInput) domain.CompensationResult {
	e = e.ready()

	r := e.monthly(&in, e.fullPeriodDays(&in))
	r.Mode = domain.ModeThirteenth
	r.RemunerationBase = r.GrossSalary.Sub(in.CostAllowance)

	switch in.ThirteenthCalculationType {
	case domain.ThirteenthDailyExact:
		r.ThirteenthTotalDays = totalDays(in.ThirteenthMonthDays)
		r.ThirteenthValue = r.RemunerationBase.
			Mul(decimal.NewFromInt(int64(r.ThirteenthTotalDays))).
			Div(decimal.NewFromInt(int64(e.Rules.Wage.CommercialYearDays)))
	default:
		r.ThirteenthTotalAvos = e.countAvos(in.ThirteenthMonthDays)
		r.ThirteenthValue = r.RemunerationBase.
			Mul(decimal.NewFromInt(int64(r.ThirteenthTotalAvos))).
			Div(decimal.NewFromInt(12))
	}

	r.GrossSalary = r.SumLines()

	e.logger().Debugf("thirteenth %s: type=%s base=%s avos=%d days=%d value=%s",
		in.EmployeeName, in.ThirteenthCalculationType, r.RemunerationBase.StringFixed(2),
		r.ThirteenthTotalAvos, r.ThirteenthTotalDays, r.ThirteenthValue.StringFixed(2))

	return r
}

// countAvos counts the months 1..12 worked for at least the threshold days
func (e *Engine) countAvos(monthDays map[int]int) int {
	avos := 0
	for month := 1; month <= 12; month++ {
		if monthDays[month] >= e.Rules.Wage.AvosThresholdDays {
			avos++
		}
	}
	return avos
}

func totalDays(monthDays map[int]int) int {
	total := 0
	for month := 1; month <= 12; month++ {
		if d := monthDays[month]; d > 0 {
			total += d
		}
	}
	return total
}
