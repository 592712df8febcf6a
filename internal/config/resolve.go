package config

import (
	"fmt"

	"github.com/rgehrsitz/folha/internal/calendar"
	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/rgehrsitz/folha/internal/shift"
)

// Resolve fills the fields a caller may leave for derivation: the month's
// business and non-business days, night and overtime hours from the daily
// schedule, and the Sunday count from a date range. Explicit values always win.
// A nil table means the embedded holiday table. The argument is not modified.
func Resolve(in domain.CompensationInput, table *calendar.HolidayTable) (domain.CompensationInput, error) {
	if table == nil {
		table = calendar.DefaultTable()
	}

	if in.ReferenceMonth > 0 && in.ReferenceYear > 0 && in.BusinessDays == 0 && in.NonBusinessDays == 0 {
		mc := table.ClassifyMonth(in.ReferenceMonth, in.ReferenceYear, in.StateCode)
		in.BusinessDays = mc.BusinessDays
		in.NonBusinessDays = mc.NonBusinessDays
	}

	if in.ShiftStart != "" && in.ShiftEnd != "" && in.NightHours.IsZero() && in.OvertimeHours.IsZero() {
		h, err := shift.Analyze(shift.Schedule{
			Start:       in.ShiftStart,
			End:         in.ShiftEnd,
			BreakStart:  in.BreakStart,
			BreakEnd:    in.BreakEnd,
			ExtendNight: in.ExtendNightShift,
		})
		if err != nil {
			return in, fmt.Errorf("shift %s-%s: %w", in.ShiftStart, in.ShiftEnd, err)
		}
		in.NightHours, in.OvertimeHours = shift.MonthlyTotals(h, in.DaysWorked, in.WorkScale)
	}

	if in.SundaysFrom != "" && in.SundaysTo != "" && in.SundaysAmount == 0 {
		from, err := calendar.ParseDate(in.SundaysFrom)
		if err != nil {
			return in, fmt.Errorf("sundays_from: %w", err)
		}
		to, err := calendar.ParseDate(in.SundaysTo)
		if err != nil {
			return in, fmt.Errorf("sundays_to: %w", err)
		}
		in.SundaysAmount = calendar.CountSundaysBetween(from, to, in.WorkScale, in.ShiftScheduleType)
	}

	return in, nil
}

// ResolveBatch resolves every record of the batch in order
func ResolveBatch(batch *Batch, table *calendar.HolidayTable) ([]domain.CompensationInput, error) {
	out := make([]domain.CompensationInput, len(batch.Inputs))
	for i, in := range batch.Inputs {
		r, err := Resolve(in, table)
		if err != nil {
			return nil, fmt.Errorf("input %d (%s): %w", i, in.EmployeeName, err)
		}
		out[i] = r
	}
	return out, nil
}
