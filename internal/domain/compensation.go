package domain

import (
	"github.com/shopspring/decimal"
)

// Mode selects which computation an input record requests
type Mode string

const (
	ModeMonthly     Mode = "MONTHLY"
	ModeThirteenth  Mode = "THIRTEENTH"
	ModeTermination Mode = "TERMINATION"
)

// WorkScale is the shift rotation an employee works under
type WorkScale string

const (
	ScaleStandard          WorkScale = "STANDARD"
	ScaleTwelveByThirtySix WorkScale = "TWELVE_BY_THIRTYSIX"
)

// ShiftScheduleType is the day-of-month parity worked under a 12x36 rotation
type ShiftScheduleType string

const (
	ScheduleOdd  ShiftScheduleType = "ODD"
	ScheduleEven ShiftScheduleType = "EVEN"
)

// ThirteenthCalculationType selects the 13th-salary accrual rule
type ThirteenthCalculationType string

const (
	ThirteenthCLT        ThirteenthCalculationType = "CLT"
	ThirteenthDailyExact ThirteenthCalculationType = "DAILY_EXACT"
)

// TerminationReason is the legal cause of an employment termination
type TerminationReason string

const (
	DismissalNoCause TerminationReason = "DISMISSAL_NO_CAUSE"
	DismissalCause   TerminationReason = "DISMISSAL_CAUSE"
	Resignation      TerminationReason = "RESIGNATION"
	Agreement        TerminationReason = "AGREEMENT"
)

// TerminationReasons lists every reason in presentation order.
var TerminationReasons = []TerminationReason{DismissalNoCause, DismissalCause, Resignation, Agreement}

// NoticePeriodType describes how the notice period was served
type NoticePeriodType string

const (
	NoticeIndemnified NoticePeriodType = "INDEMNIFIED"
	NoticeWorked      NoticePeriodType = "WORKED"
	NoticeDispensed   NoticePeriodType = "DISPENSED"
)

// CompensationInput is the declarative description of one computation request.
// Absent numeric fields are zero. The engine never mutates a record it is given.
type CompensationInput struct {
	EmployeeName string `yaml:"employee_name" json:"employee_name"`
	Mode         Mode   `yaml:"mode" json:"mode"`

	BaseSalary decimal.Decimal `yaml:"base_salary" json:"base_salary"`

	WorkScale         WorkScale         `yaml:"work_scale" json:"work_scale"`
	ShiftScheduleType ShiftScheduleType `yaml:"shift_schedule_type,omitempty" json:"shift_schedule_type,omitempty"`
	CustomDivisor     decimal.Decimal   `yaml:"custom_divisor" json:"custom_divisor"`
	ApplyDSROn12x36   bool              `yaml:"apply_dsr_on_12x36" json:"apply_dsr_on_12x36"`

	DaysWorked      int `yaml:"days_worked" json:"days_worked"` // plantões under 12x36
	BusinessDays    int `yaml:"business_days" json:"business_days"`
	NonBusinessDays int `yaml:"non_business_days" json:"non_business_days"`

	// Reference month used by callers to derive BusinessDays/NonBusinessDays.
	ReferenceMonth int    `yaml:"reference_month,omitempty" json:"reference_month,omitempty"`
	ReferenceYear  int    `yaml:"reference_year,omitempty" json:"reference_year,omitempty"`
	StateCode      string `yaml:"state_code,omitempty" json:"state_code,omitempty"`

	// Daily schedule used by callers to derive NightHours/OvertimeHours.
	ShiftStart       string `yaml:"shift_start,omitempty" json:"shift_start,omitempty"`
	ShiftEnd         string `yaml:"shift_end,omitempty" json:"shift_end,omitempty"`
	BreakStart       string `yaml:"break_start,omitempty" json:"break_start,omitempty"`
	BreakEnd         string `yaml:"break_end,omitempty" json:"break_end,omitempty"`
	ExtendNightShift bool   `yaml:"extend_night_shift,omitempty" json:"extend_night_shift,omitempty"`

	// Date range used by callers to derive SundaysAmount.
	SundaysFrom string `yaml:"sundays_from,omitempty" json:"sundays_from,omitempty"`
	SundaysTo   string `yaml:"sundays_to,omitempty" json:"sundays_to,omitempty"`

	HasHazardPay             bool            `yaml:"has_hazard_pay" json:"has_hazard_pay"`
	NightHours               decimal.Decimal `yaml:"night_hours" json:"night_hours"`
	NightShiftPercentage     decimal.Decimal `yaml:"night_shift_percentage" json:"night_shift_percentage"`
	ApplyNightShiftReduction bool            `yaml:"apply_night_shift_reduction" json:"apply_night_shift_reduction"`
	OvertimeHours            decimal.Decimal `yaml:"overtime_hours" json:"overtime_hours"`
	OvertimePercentage       decimal.Decimal `yaml:"overtime_percentage" json:"overtime_percentage"`
	Overtime2Hours           decimal.Decimal `yaml:"overtime2_hours" json:"overtime2_hours"`
	Overtime2Percentage      decimal.Decimal `yaml:"overtime2_percentage" json:"overtime2_percentage"`
	SundaysAmount            int             `yaml:"sundays_amount" json:"sundays_amount"`
	WorkedOnHoliday          bool            `yaml:"worked_on_holiday" json:"worked_on_holiday"`
	HolidayHours             decimal.Decimal `yaml:"holiday_hours" json:"holiday_hours"`

	FamilyAllowance decimal.Decimal `yaml:"family_allowance" json:"family_allowance"`
	CostAllowance   decimal.Decimal `yaml:"cost_allowance" json:"cost_allowance"` // indemnity, excluded from the 13th base
	ProductionBonus decimal.Decimal `yaml:"production_bonus" json:"production_bonus"`
	VisitsAmount    int             `yaml:"visits_amount" json:"visits_amount"`
	VisitUnitValue  decimal.Decimal `yaml:"visit_unit_value" json:"visit_unit_value"`

	LoanTotalValue         decimal.Decimal `yaml:"loan_total_value" json:"loan_total_value"`
	LoanTotalInstallments  int             `yaml:"loan_total_installments" json:"loan_total_installments"`
	LoanCurrentInstallment int             `yaml:"loan_current_installment" json:"loan_current_installment"`
	LoanDiscount           decimal.Decimal `yaml:"loan_discount" json:"loan_discount"`

	ThirteenthCalculationType ThirteenthCalculationType `yaml:"thirteenth_calculation_type" json:"thirteenth_calculation_type"`
	ThirteenthMonthDays       map[int]int               `yaml:"thirteenth_month_days,omitempty" json:"thirteenth_month_days,omitempty"`

	AdmissionDate     string            `yaml:"admission_date,omitempty" json:"admission_date,omitempty"`
	TerminationDate   string            `yaml:"termination_date,omitempty" json:"termination_date,omitempty"`
	TerminationReason TerminationReason `yaml:"termination_reason,omitempty" json:"termination_reason,omitempty"`
	NoticePeriodType  NoticePeriodType  `yaml:"notice_period_type,omitempty" json:"notice_period_type,omitempty"`
	FGTSBalance       decimal.Decimal   `yaml:"fgts_balance" json:"fgts_balance"`
}

// IsTwelveByThirtySix reports whether the record uses the 12x36 rotation
func (in *CompensationInput) IsTwelveByThirtySix() bool {
	return in.WorkScale == ScaleTwelveByThirtySix
}

// EffectiveMode returns the requested mode, defaulting to monthly
func (in *CompensationInput) EffectiveMode() Mode {
	if in.Mode == "" {
		return ModeMonthly
	}
	return in.Mode
}

// CompensationResult is the itemized outcome of a computation.
type CompensationResult struct {
	Mode         Mode   `yaml:"mode" json:"mode"`
	EmployeeName string `yaml:"employee_name" json:"employee_name"`

	ProportionalSalary  decimal.Decimal `yaml:"proportional_salary" json:"proportional_salary"`
	HourlyRate          decimal.Decimal `yaml:"hourly_rate" json:"hourly_rate"`
	DSRFactor           decimal.Decimal `yaml:"dsr_factor" json:"dsr_factor"`
	HazardPayValue      decimal.Decimal `yaml:"hazard_pay_value" json:"hazard_pay_value"`
	EffectiveNightHours decimal.Decimal `yaml:"effective_night_hours" json:"effective_night_hours"`
	NightShiftValue     decimal.Decimal `yaml:"night_shift_value" json:"night_shift_value"`
	NightShiftDSRValue  decimal.Decimal `yaml:"night_shift_dsr_value" json:"night_shift_dsr_value"`
	Overtime1Value      decimal.Decimal `yaml:"overtime1_value" json:"overtime1_value"`
	Overtime2Value      decimal.Decimal `yaml:"overtime2_value" json:"overtime2_value"`
	SundayValue         decimal.Decimal `yaml:"sunday_value" json:"sunday_value"`
	HolidayValue        decimal.Decimal `yaml:"holiday_value" json:"holiday_value"`
	TotalOvertimeValue  decimal.Decimal `yaml:"total_overtime_value" json:"total_overtime_value"`
	OvertimeDSRValue    decimal.Decimal `yaml:"overtime_dsr_value" json:"overtime_dsr_value"`
	TotalProductionBase decimal.Decimal `yaml:"total_production_base" json:"total_production_base"`
	CostAllowance       decimal.Decimal `yaml:"cost_allowance" json:"cost_allowance"`
	FamilyAllowance     decimal.Decimal `yaml:"family_allowance" json:"family_allowance"`
	LoanDiscount        decimal.Decimal `yaml:"loan_discount" json:"loan_discount"`
	GrossSalary         decimal.Decimal `yaml:"gross_salary" json:"gross_salary"`

	// Thirteenth-salary mode
	RemunerationBase    decimal.Decimal `yaml:"remuneration_base,omitempty" json:"remuneration_base,omitempty"`
	ThirteenthTotalAvos int             `yaml:"thirteenth_total_avos,omitempty" json:"thirteenth_total_avos,omitempty"`
	ThirteenthTotalDays int             `yaml:"thirteenth_total_days,omitempty" json:"thirteenth_total_days,omitempty"`
	ThirteenthValue     decimal.Decimal `yaml:"thirteenth_value,omitempty" json:"thirteenth_value,omitempty"`

	// Termination mode
	SalaryBalance          decimal.Decimal `yaml:"salary_balance,omitempty" json:"salary_balance,omitempty"`
	VariablePay            decimal.Decimal `yaml:"variable_pay,omitempty" json:"variable_pay,omitempty"`
	ThirteenthAvos         int             `yaml:"thirteenth_avos,omitempty" json:"thirteenth_avos,omitempty"`
	ThirteenthProportional decimal.Decimal `yaml:"thirteenth_proportional,omitempty" json:"thirteenth_proportional,omitempty"`
	VacationAvos           int             `yaml:"vacation_avos,omitempty" json:"vacation_avos,omitempty"`
	VacationProportional   decimal.Decimal `yaml:"vacation_proportional,omitempty" json:"vacation_proportional,omitempty"`
	VacationOneThird       decimal.Decimal `yaml:"vacation_one_third,omitempty" json:"vacation_one_third,omitempty"`
	NoticeExtraDays        int             `yaml:"notice_extra_days,omitempty" json:"notice_extra_days,omitempty"`
	NoticePeriodValue      decimal.Decimal `yaml:"notice_period_value,omitempty" json:"notice_period_value,omitempty"`
	FGTSPenalty            decimal.Decimal `yaml:"fgts_penalty,omitempty" json:"fgts_penalty,omitempty"`

	// InsufficientInput marks a zeroed result produced because required dates
	// were missing, unparsable or out of order. It is not "nothing is owed".
	InsufficientInput bool `yaml:"insufficient_input,omitempty" json:"insufficient_input,omitempty"`
}

// LineItem is one signed contribution to a gross total
type LineItem struct {
	Label  string          `yaml:"label" json:"label"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// Lines returns the signed items whose sum is GrossSalary.
func (r *CompensationResult) Lines() []LineItem {
	switch r.Mode {
	case ModeThirteenth:
		return []LineItem{{Label: "Thirteenth salary", Amount: r.ThirteenthValue}}
	case ModeTermination:
		return []LineItem{
			{Label: "Salary balance", Amount: r.SalaryBalance},
			{Label: "Variable pay", Amount: r.VariablePay},
			{Label: "Proportional 13th", Amount: r.ThirteenthProportional},
			{Label: "Proportional vacation", Amount: r.VacationProportional},
			{Label: "Vacation one-third", Amount: r.VacationOneThird},
			{Label: "Notice period", Amount: r.NoticePeriodValue},
			{Label: "FGTS penalty", Amount: r.FGTSPenalty},
		}
	default:
		return []LineItem{
			{Label: "Proportional salary", Amount: r.ProportionalSalary},
			{Label: "Hazard pay", Amount: r.HazardPayValue},
			{Label: "Night shift", Amount: r.NightShiftValue},
			{Label: "DSR on night shift", Amount: r.NightShiftDSRValue},
			{Label: "Overtime", Amount: r.TotalOvertimeValue},
			{Label: "DSR on overtime", Amount: r.OvertimeDSRValue},
			{Label: "Production", Amount: r.TotalProductionBase},
			{Label: "Cost allowance", Amount: r.CostAllowance},
			{Label: "Family allowance", Amount: r.FamilyAllowance},
			{Label: "Loan discount", Amount: r.LoanDiscount.Neg()},
		}
	}
}

// SumLines adds up the itemized lines
func (r *CompensationResult) SumLines() decimal.Decimal {
	total := decimal.Zero
	for _, l := range r.Lines() {
		total = total.Add(l.Amount)
	}
	return total
}

// Withholding is an approximate statutory withholding estimate
type Withholding struct {
	INSS decimal.Decimal `yaml:"inss" json:"inss"`
	IRRF decimal.Decimal `yaml:"irrf" json:"irrf"`
	Net  decimal.Decimal `yaml:"net" json:"net"`
}
