package calendar

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthClassification splits a month's days into business and non-business days
type MonthClassification struct {
	Month           int    `yaml:"month" json:"month"`
	Year            int    `yaml:"year" json:"year"`
	StateCode       string `yaml:"state_code" json:"state_code"`
	BusinessDays    int    `yaml:"business_days" json:"business_days"`
	NonBusinessDays int    `yaml:"non_business_days" json:"non_business_days"`
}

// DSRFactor is nonBusinessDays / max(businessDays, 1)
func (mc MonthClassification) DSRFactor() decimal.Decimal {
	return DSRFactor(mc.BusinessDays, mc.NonBusinessDays)
}

// DSRFactor computes the weekly-rest reflex factor with the divisor floored at one
func DSRFactor(businessDays, nonBusinessDays int) decimal.Decimal {
	if businessDays < 1 {
		businessDays = 1
	}
	return decimal.NewFromInt(int64(nonBusinessDays)).Div(decimal.NewFromInt(int64(businessDays)))
}

// DaysIn returns the number of days in the month
func DaysIn(month, year int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClassifyMonth classifies the month using the default holiday table
func ClassifyMonth(month, year int, stateCode string) MonthClassification {
	return DefaultTable().ClassifyMonth(month, year, stateCode)
}

// ClassifyMonth marks a day non-business when it is a Sunday or a holiday.
// Months outside 1..12 yield an empty classification.
func (t *HolidayTable) ClassifyMonth(month, year int, stateCode string) MonthClassification {
	mc := MonthClassification{Month: month, Year: year, StateCode: stateCode}
	if month < 1 || month > 12 {
		return mc
	}

	holidays := t.holidaySet(year, stateCode)
	for day := 1; day <= DaysIn(month, year); day++ {
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
		_, isHoliday := holidays[d.Format("01-02")]
		if d.Weekday() == time.Sunday || isHoliday {
			mc.NonBusinessDays++
		} else {
			mc.BusinessDays++
		}
	}
	return mc
}
