package calculation

import (
	"github.com/rgehrsitz/folha/internal/domain"
)

// ComputeMonthly produces the itemized monthly result. The gross is the plain
// sum of the itemized lines and may be negative when the loan installment
// exceeds the earnings.
func (e *Engine) ComputeMonthly(in domain.CompensationInput) domain.CompensationResult {
	e = e.ready()
	return e.monthly(&in, in.DaysWorked)
}

func (e *Engine) monthly(in *domain.CompensationInput, daysWorked int) domain.CompensationResult {
	r := domain.CompensationResult{
		Mode:         domain.ModeMonthly,
		EmployeeName: in.EmployeeName,
	}

	r.DSRFactor = e.dsrFactor(in)
	r.HourlyRate = e.hourlyRate(in)
	r.ProportionalSalary = e.proportionalSalary(in, daysWorked)
	r.HazardPayValue = e.hazardPay(in, r.ProportionalSalary)

	r.EffectiveNightHours, r.NightShiftValue = e.nightDifferential(in, r.HourlyRate)
	r.NightShiftDSRValue = r.NightShiftValue.Mul(r.DSRFactor)

	byKind, total := reducePremiums(e.premiums(in), r.HourlyRate)
	r.Overtime1Value = byKind[PremiumOvertime1]
	r.Overtime2Value = byKind[PremiumOvertime2]
	r.SundayValue = byKind[PremiumSunday]
	r.HolidayValue = byKind[PremiumHoliday]
	r.TotalOvertimeValue = total
	r.OvertimeDSRValue = total.Mul(r.DSRFactor)

	r.TotalProductionBase = e.production(in)
	r.CostAllowance = in.CostAllowance
	r.FamilyAllowance = in.FamilyAllowance
	r.LoanDiscount = loanDiscount(in)

	r.GrossSalary = r.SumLines()

	e.logger().Debugf("monthly %s: divisor=%s hourly=%s dsr=%s gross=%s",
		in.EmployeeName, e.divisor(in), r.HourlyRate, r.DSRFactor, r.GrossSalary.StringFixed(2))

	return r
}

