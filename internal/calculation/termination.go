package calculation

import (
	"github.com/rgehrsitz/folha/internal/calendar"
	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/shopspring/decimal"
)

// settlement says which amounts a termination reason pays out.
// Salary balance and variable pay are owed under every reason.
type settlement struct {
	Thirteenth bool
	Vacation   bool
	Notice     bool
	FGTS       bool
}

var settlementTable = map[domain.TerminationReason]settlement{
	domain.DismissalNoCause: {Thirteenth: true, Vacation: true, Notice: true, FGTS: true},
	domain.Agreement:        {Thirteenth: true, Vacation: true, Notice: true, FGTS: true},
	domain.Resignation:      {Thirteenth: true, Vacation: true},
	domain.DismissalCause:   {},
}

// compositionFor falls back to the narrowest composition for unknown reasons
func compositionFor(reason domain.TerminationReason) settlement {
	return settlementTable[reason]
}

// ComputeTermination produces the settlement for the record's termination.
// Missing, unparsable or inverted dates yield a zeroed result flagged as
// insufficient input.
func (e *Engine) ComputeTermination(in domain.CompensationInput) domain.CompensationResult {
	e = e.ready()

	zero := domain.CompensationResult{
		Mode:              domain.ModeTermination,
		EmployeeName:      in.EmployeeName,
		InsufficientInput: true,
	}

	admission, err := calendar.ParseDate(in.AdmissionDate)
	if err != nil {
		e.logger().Warnf("termination %s: admission date: %v", in.EmployeeName, err)
		return zero
	}
	termination, err := calendar.ParseDate(in.TerminationDate)
	if err != nil {
		e.logger().Warnf("termination %s: termination date: %v", in.EmployeeName, err)
		return zero
	}
	if termination.Before(admission) {
		e.logger().Warnf("termination %s: %s is before admission %s", in.EmployeeName, in.TerminationDate, in.AdmissionDate)
		return zero
	}

	r := domain.CompensationResult{
		Mode:         domain.ModeTermination,
		EmployeeName: in.EmployeeName,
	}
	t := e.Rules.Termination
	monthDays := decimal.NewFromInt(int64(e.Rules.Wage.MonthDays))
	twelve := decimal.NewFromInt(12)

	r.SalaryBalance = in.BaseSalary.Mul(decimal.NewFromInt(int64(termination.Day()))).Div(monthDays)

	// variable pay for the days worked in the termination month
	r.DSRFactor = e.dsrFactor(&in)
	r.HourlyRate = e.hourlyRate(&in)
	r.HazardPayValue = e.hazardPay(&in, r.SalaryBalance)
	r.EffectiveNightHours, r.NightShiftValue = e.nightDifferential(&in, r.HourlyRate)
	r.NightShiftDSRValue = r.NightShiftValue.Mul(r.DSRFactor)
	byKind, total := reducePremiums(e.premiums(&in), r.HourlyRate)
	r.Overtime1Value = byKind[PremiumOvertime1]
	r.Overtime2Value = byKind[PremiumOvertime2]
	r.SundayValue = byKind[PremiumSunday]
	r.HolidayValue = byKind[PremiumHoliday]
	r.TotalOvertimeValue = total
	r.OvertimeDSRValue = total.Mul(r.DSRFactor)
	r.TotalProductionBase = e.production(&in)
	r.VariablePay = r.HazardPayValue.
		Add(r.NightShiftValue).Add(r.NightShiftDSRValue).
		Add(r.TotalOvertimeValue).Add(r.OvertimeDSRValue).
		Add(r.TotalProductionBase)

	r.ThirteenthAvos = e.terminationAvos(admission.Year(), int(admission.Month()),
		termination.Year(), int(termination.Month()), termination.Day())
	thirteenth := in.BaseSalary.Mul(decimal.NewFromInt(int64(r.ThirteenthAvos))).Div(twelve)

	serviceDays := decimal.NewFromInt(int64(termination.Sub(admission).Hours() / 24))
	r.VacationAvos = int(serviceDays.Div(t.VacationMonthDays).Floor().IntPart() % 12)
	vacation := in.BaseSalary.Mul(decimal.NewFromInt(int64(r.VacationAvos))).Div(twelve)
	oneThird := vacation.Div(decimal.NewFromInt(3))

	notice := decimal.Zero
	if in.NoticePeriodType == domain.NoticeIndemnified &&
		in.TerminationReason != domain.Resignation && in.TerminationReason != domain.DismissalCause {
		years := serviceDays.Div(t.ServiceYearDays).Floor().IntPart()
		r.NoticeExtraDays = min(t.NoticeMaxExtraDays, int(years)*t.NoticeDaysPerYear)
		notice = in.BaseSalary.
			Mul(decimal.NewFromInt(int64(t.NoticeBaseDays + r.NoticeExtraDays))).
			Div(monthDays)
	}

	fgts := decimal.Zero
	switch in.TerminationReason {
	case domain.DismissalNoCause:
		fgts = in.FGTSBalance.Mul(t.FGTSPenaltyNoCause)
	case domain.Agreement:
		fgts = in.FGTSBalance.Mul(t.FGTSPenaltyAgreement)
	}

	pays := compositionFor(in.TerminationReason)
	if pays.Thirteenth {
		r.ThirteenthProportional = thirteenth
	}
	if pays.Vacation {
		r.VacationProportional = vacation
		r.VacationOneThird = oneThird
	}
	if pays.Notice {
		r.NoticePeriodValue = notice
	}
	if pays.FGTS {
		r.FGTSPenalty = fgts
	}

	r.GrossSalary = r.SumLines()

	e.logger().Debugf("termination %s: reason=%s avos13=%d vacationAvos=%d noticeExtra=%d total=%s",
		in.EmployeeName, in.TerminationReason, r.ThirteenthAvos, r.VacationAvos, r.NoticeExtraDays, r.GrossSalary.StringFixed(2))

	return r
}

// terminationAvos counts the twelfths of the 13th salary earned in the
// termination year; a month counts once fifteen days of it are worked.
func (e *Engine) terminationAvos(admYear, admMonth, termYear, termMonth, termDay int) int {
	reached := termDay >= e.Rules.Wage.AvosThresholdDays
	var avos int
	if termYear > admYear {
		avos = termMonth
		if !reached {
			avos--
		}
	} else {
		avos = termMonth - admMonth
		if reached {
			avos++
		}
	}
	return clamp(avos, 0, 12)
}
