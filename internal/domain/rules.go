package domain

import (
	"github.com/shopspring/decimal"
)

// Rules contains the statutory constants the engine applies.
// It is loaded from regulatory.yaml when supplied; zero values fall back to DefaultRules.
type Rules struct {
	Metadata    RulesMetadata    `yaml:"metadata" json:"metadata"`
	Wage        WageRules        `yaml:"wage" json:"wage"`
	Termination TerminationRules `yaml:"termination" json:"termination"`
	Withholding WithholdingRules `yaml:"withholding" json:"withholding"`
}

// RulesMetadata contains information about the rule data
type RulesMetadata struct {
	DataYear    int    `yaml:"data_year" json:"data_year"`
	Description string `yaml:"description" json:"description"`
}

// WageRules drive the monthly and thirteenth computations
type WageRules struct {
	StandardDivisor           decimal.Decimal `yaml:"standard_divisor" json:"standard_divisor"`
	MonthDays                 int             `yaml:"month_days" json:"month_days"`
	TwelveByThirtySixShifts   int             `yaml:"twelve_by_thirtysix_shifts" json:"twelve_by_thirtysix_shifts"`
	HazardPayRate             decimal.Decimal `yaml:"hazard_pay_rate" json:"hazard_pay_rate"`
	NightReductionFactor      decimal.Decimal `yaml:"night_reduction_factor" json:"night_reduction_factor"`
	DefaultNightPercentage    decimal.Decimal `yaml:"default_night_percentage" json:"default_night_percentage"`
	DefaultOvertimePercentage decimal.Decimal `yaml:"default_overtime_percentage" json:"default_overtime_percentage"`
	DefaultOvertime2Percent   decimal.Decimal `yaml:"default_overtime2_percentage" json:"default_overtime2_percentage"`
	SundayMultiplier          decimal.Decimal `yaml:"sunday_multiplier" json:"sunday_multiplier"`
	SundayShiftHoursStandard  decimal.Decimal `yaml:"sunday_shift_hours_standard" json:"sunday_shift_hours_standard"`
	SundayShiftHours12x36     decimal.Decimal `yaml:"sunday_shift_hours_12x36" json:"sunday_shift_hours_12x36"`
	HolidayMultiplier         decimal.Decimal `yaml:"holiday_multiplier" json:"holiday_multiplier"`
	AvosThresholdDays         int             `yaml:"avos_threshold_days" json:"avos_threshold_days"`
	CommercialYearDays        int             `yaml:"commercial_year_days" json:"commercial_year_days"`
}

// TerminationRules drive the settlement computation
type TerminationRules struct {
	VacationMonthDays    decimal.Decimal `yaml:"vacation_month_days" json:"vacation_month_days"`
	NoticeBaseDays       int             `yaml:"notice_base_days" json:"notice_base_days"`
	NoticeDaysPerYear    int             `yaml:"notice_days_per_year" json:"notice_days_per_year"`
	NoticeMaxExtraDays   int             `yaml:"notice_max_extra_days" json:"notice_max_extra_days"`
	FGTSPenaltyNoCause   decimal.Decimal `yaml:"fgts_penalty_no_cause" json:"fgts_penalty_no_cause"`
	FGTSPenaltyAgreement decimal.Decimal `yaml:"fgts_penalty_agreement" json:"fgts_penalty_agreement"`
	ServiceYearDays      decimal.Decimal `yaml:"service_year_days" json:"service_year_days"`
}

// WithholdingRules is the simplified bracket table used for net estimates.
// It is approximate and not tax-accurate.
type WithholdingRules struct {
	INSSBrackets []Bracket       `yaml:"inss_brackets" json:"inss_brackets"`
	INSSCeiling  decimal.Decimal `yaml:"inss_ceiling" json:"inss_ceiling"`
	IRRFBrackets []IRRFBracket   `yaml:"irrf_brackets" json:"irrf_brackets"`
}

// Bracket is a progressive slice taxed at Rate between Min and Max
type Bracket struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// IRRFBracket applies Rate to the whole base minus Deduction when base <= UpTo.
// A zero UpTo marks the open top bracket.
type IRRFBracket struct {
	UpTo      decimal.Decimal `yaml:"up_to" json:"up_to"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	Deduction decimal.Decimal `yaml:"deduction" json:"deduction"`
}

// DefaultRules returns the statutory defaults
func DefaultRules() Rules {
	return Rules{
		Metadata: RulesMetadata{
			DataYear:    2024,
			Description: "CLT statutory defaults",
		},
		Wage: WageRules{
			StandardDivisor:           decimal.NewFromInt(220),
			MonthDays:                 30,
			TwelveByThirtySixShifts:   15,
			HazardPayRate:             decimal.NewFromFloat(0.30),
			NightReductionFactor:      decimal.RequireFromString("1.142857"), // 60 / 52.5
			DefaultNightPercentage:    decimal.NewFromInt(20),
			DefaultOvertimePercentage: decimal.NewFromInt(50),
			DefaultOvertime2Percent:   decimal.NewFromInt(100),
			SundayMultiplier:          decimal.NewFromFloat(1.5),
			SundayShiftHoursStandard:  decimal.NewFromInt(8),
			SundayShiftHours12x36:     decimal.NewFromInt(12),
			HolidayMultiplier:         decimal.NewFromInt(2),
			AvosThresholdDays:         15,
			CommercialYearDays:        360,
		},
		Termination: TerminationRules{
			VacationMonthDays:    decimal.NewFromFloat(30.44),
			NoticeBaseDays:       30,
			NoticeDaysPerYear:    3,
			NoticeMaxExtraDays:   60,
			FGTSPenaltyNoCause:   decimal.NewFromFloat(0.40),
			FGTSPenaltyAgreement: decimal.NewFromFloat(0.20),
			ServiceYearDays:      decimal.NewFromFloat(365.25),
		},
		Withholding: WithholdingRules{
			INSSBrackets: []Bracket{
				{Min: decimal.Zero, Max: decimal.NewFromFloat(1412.00), Rate: decimal.NewFromFloat(0.075)},
				{Min: decimal.NewFromFloat(1412.00), Max: decimal.NewFromFloat(2666.68), Rate: decimal.NewFromFloat(0.09)},
				{Min: decimal.NewFromFloat(2666.68), Max: decimal.NewFromFloat(4000.03), Rate: decimal.NewFromFloat(0.12)},
				{Min: decimal.NewFromFloat(4000.03), Max: decimal.NewFromFloat(7786.02), Rate: decimal.NewFromFloat(0.14)},
			},
			INSSCeiling: decimal.NewFromFloat(7786.02),
			IRRFBrackets: []IRRFBracket{
				{UpTo: decimal.NewFromFloat(2259.20), Rate: decimal.Zero, Deduction: decimal.Zero},
				{UpTo: decimal.NewFromFloat(2826.65), Rate: decimal.NewFromFloat(0.075), Deduction: decimal.NewFromFloat(169.44)},
				{UpTo: decimal.NewFromFloat(3751.05), Rate: decimal.NewFromFloat(0.15), Deduction: decimal.NewFromFloat(381.44)},
				{UpTo: decimal.NewFromFloat(4664.68), Rate: decimal.NewFromFloat(0.225), Deduction: decimal.NewFromFloat(662.77)},
				{UpTo: decimal.Zero, Rate: decimal.NewFromFloat(0.275), Deduction: decimal.NewFromFloat(896.00)},
			},
		},
	}
}

// WithDefaults fills every zero field from DefaultRules
func (r Rules) WithDefaults() Rules {
	d := DefaultRules()

	if r.Metadata.DataYear == 0 {
		r.Metadata = d.Metadata
	}

	w := &r.Wage
	fillDecimal(&w.StandardDivisor, d.Wage.StandardDivisor)
	fillInt(&w.MonthDays, d.Wage.MonthDays)
	fillInt(&w.TwelveByThirtySixShifts, d.Wage.TwelveByThirtySixShifts)
	fillDecimal(&w.HazardPayRate, d.Wage.HazardPayRate)
	fillDecimal(&w.NightReductionFactor, d.Wage.NightReductionFactor)
	fillDecimal(&w.DefaultNightPercentage, d.Wage.DefaultNightPercentage)
	fillDecimal(&w.DefaultOvertimePercentage, d.Wage.DefaultOvertimePercentage)
	fillDecimal(&w.DefaultOvertime2Percent, d.Wage.DefaultOvertime2Percent)
	fillDecimal(&w.SundayMultiplier, d.Wage.SundayMultiplier)
	fillDecimal(&w.SundayShiftHoursStandard, d.Wage.SundayShiftHoursStandard)
	fillDecimal(&w.SundayShiftHours12x36, d.Wage.SundayShiftHours12x36)
	fillDecimal(&w.HolidayMultiplier, d.Wage.HolidayMultiplier)
	fillInt(&w.AvosThresholdDays, d.Wage.AvosThresholdDays)
	fillInt(&w.CommercialYearDays, d.Wage.CommercialYearDays)

	t := &r.Termination
	fillDecimal(&t.VacationMonthDays, d.Termination.VacationMonthDays)
	fillInt(&t.NoticeBaseDays, d.Termination.NoticeBaseDays)
	fillInt(&t.NoticeDaysPerYear, d.Termination.NoticeDaysPerYear)
	fillInt(&t.NoticeMaxExtraDays, d.Termination.NoticeMaxExtraDays)
	fillDecimal(&t.FGTSPenaltyNoCause, d.Termination.FGTSPenaltyNoCause)
	fillDecimal(&t.FGTSPenaltyAgreement, d.Termination.FGTSPenaltyAgreement)
	fillDecimal(&t.ServiceYearDays, d.Termination.ServiceYearDays)

	if len(r.Withholding.INSSBrackets) == 0 {
		r.Withholding.INSSBrackets = d.Withholding.INSSBrackets
	}
	fillDecimal(&r.Withholding.INSSCeiling, d.Withholding.INSSCeiling)
	if len(r.Withholding.IRRFBrackets) == 0 {
		r.Withholding.IRRFBrackets = d.Withholding.IRRFBrackets
	}

	return r
}

func fillDecimal(v *decimal.Decimal, fallback decimal.Decimal) {
	if v.IsZero() {
		*v = fallback
	}
}

func fillInt(v *int, fallback int) {
	if *v == 0 {
		*v = fallback
	}
}
