package calculation

import (
	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/shopspring/decimal"
)

// PremiumKind tags one contributor to the overtime total
type PremiumKind string

const (
	PremiumOvertime1 PremiumKind = "overtime1"
	PremiumOvertime2 PremiumKind = "overtime2"
	PremiumSunday    PremiumKind = "sunday"
	PremiumHoliday   PremiumKind = "holiday"
)

// Premium is hours paid at a multiple of the hourly rate
type Premium struct {
	Kind       PremiumKind
	Hours      decimal.Decimal
	Multiplier decimal.Decimal
}

// Value is hours x hourly rate x multiplier
func (p Premium) Value(hourly decimal.Decimal) decimal.Decimal {
	return p.Hours.Mul(hourly).Mul(p.Multiplier)
}

// premiums lists the overtime contributors present in the record
func (e *Engine) premiums(in *domain.CompensationInput) []Premium {
	w := e.Rules.Wage
	one := decimal.NewFromInt(1)

	list := []Premium{
		{
			Kind:       PremiumOvertime1,
			Hours:      in.OvertimeHours,
			Multiplier: one.Add(percentOrDefault(in.OvertimePercentage, w.DefaultOvertimePercentage).Div(hundred)),
		},
		{
			Kind:       PremiumOvertime2,
			Hours:      in.Overtime2Hours,
			Multiplier: one.Add(percentOrDefault(in.Overtime2Percentage, w.DefaultOvertime2Percent).Div(hundred)),
		},
	}

	if in.SundaysAmount > 0 {
		shiftHours := w.SundayShiftHoursStandard
		if in.IsTwelveByThirtySix() {
			shiftHours = w.SundayShiftHours12x36
		}
		list = append(list, Premium{
			Kind:       PremiumSunday,
			Hours:      decimal.NewFromInt(int64(in.SundaysAmount)).Mul(shiftHours),
			Multiplier: w.SundayMultiplier,
		})
	}

	if in.IsTwelveByThirtySix() && in.WorkedOnHoliday {
		list = append(list, Premium{
			Kind:       PremiumHoliday,
			Hours:      in.HolidayHours,
			Multiplier: w.HolidayMultiplier,
		})
	}

	return list
}

// reducePremiums sums the premiums and reports each kind's value
func reducePremiums(list []Premium, hourly decimal.Decimal) (map[PremiumKind]decimal.Decimal, decimal.Decimal) {
	byKind := make(map[PremiumKind]decimal.Decimal, len(list))
	total := decimal.Zero
	for _, p := range list {
		v := p.Value(hourly)
		byKind[p.Kind] = byKind[p.Kind].Add(v)
		total = total.Add(v)
	}
	return byKind, total
}
