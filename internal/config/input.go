package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrMissingRequiredField marks an input record without an employee name or base salary
var ErrMissingRequiredField = errors.New("missing required field")

// Batch is the on-disk shape of an input file
type Batch struct {
	Inputs []domain.CompensationInput `yaml:"inputs" json:"inputs"`
}

// InputParser handles parsing of input batch files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a batch of compensation inputs from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Batch, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML batch
func (ip *InputParser) Parse(data []byte) (*Batch, error) {
	var batch Batch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateBatch(&batch); err != nil {
		return nil, fmt.Errorf("batch validation failed: %w", err)
	}

	return &batch, nil
}

// ValidateBatch validates every record of the batch
func (ip *InputParser) ValidateBatch(batch *Batch) error {
	if len(batch.Inputs) == 0 {
		return fmt.Errorf("no inputs provided")
	}
	for i := range batch.Inputs {
		in := &batch.Inputs[i]
		if err := ip.ValidateInput(in); err != nil {
			return fmt.Errorf("input %d (%s) validation failed: %w", i, in.EmployeeName, err)
		}
	}
	return nil
}

// ValidateInput checks a single record at the caller boundary.
// The engine itself never rejects a record.
func (ip *InputParser) ValidateInput(in *domain.CompensationInput) error {
	// Required fields
	if in.EmployeeName == "" {
		return fmt.Errorf("%w: employee_name", ErrMissingRequiredField)
	}
	if !in.BaseSalary.IsPositive() {
		return fmt.Errorf("%w: base_salary must be positive", ErrMissingRequiredField)
	}

	switch in.Mode {
	case "", domain.ModeMonthly, domain.ModeThirteenth, domain.ModeTermination:
	default:
		return fmt.Errorf("mode must be MONTHLY, THIRTEENTH or TERMINATION, got %q", in.Mode)
	}

	switch in.WorkScale {
	case "", domain.ScaleStandard:
		if in.ShiftScheduleType != "" {
			return fmt.Errorf("shift schedule type applies only to the %s scale", domain.ScaleTwelveByThirtySix)
		}
	case domain.ScaleTwelveByThirtySix:
		switch in.ShiftScheduleType {
		case "", domain.ScheduleOdd, domain.ScheduleEven:
		default:
			return fmt.Errorf("shift schedule type must be ODD or EVEN, got %q", in.ShiftScheduleType)
		}
	default:
		return fmt.Errorf("work scale must be STANDARD or TWELVE_BY_THIRTYSIX, got %q", in.WorkScale)
	}

	if in.DaysWorked < 0 || in.DaysWorked > 31 {
		return fmt.Errorf("days worked must be between 0 and 31")
	}
	if in.BusinessDays < 0 || in.NonBusinessDays < 0 {
		return fmt.Errorf("business and non-business days cannot be negative")
	}
	if in.ReferenceMonth < 0 || in.ReferenceMonth > 12 {
		return fmt.Errorf("reference month must be between 1 and 12")
	}
	if in.SundaysAmount < 0 || in.VisitsAmount < 0 {
		return fmt.Errorf("sunday and visit counts cannot be negative")
	}
	if in.LoanTotalInstallments < 0 || in.LoanCurrentInstallment < 0 {
		return fmt.Errorf("loan installments cannot be negative")
	}
	if in.LoanTotalInstallments > 0 && in.LoanCurrentInstallment > in.LoanTotalInstallments {
		return fmt.Errorf("current installment %d exceeds total installments %d", in.LoanCurrentInstallment, in.LoanTotalInstallments)
	}

	amounts := map[string]decimal.Decimal{
		"custom_divisor":         in.CustomDivisor,
		"night_hours":            in.NightHours,
		"night_shift_percentage": in.NightShiftPercentage,
		"overtime_hours":         in.OvertimeHours,
		"overtime_percentage":    in.OvertimePercentage,
		"overtime2_hours":        in.Overtime2Hours,
		"overtime2_percentage":   in.Overtime2Percentage,
		"holiday_hours":          in.HolidayHours,
		"family_allowance":       in.FamilyAllowance,
		"cost_allowance":         in.CostAllowance,
		"production_bonus":       in.ProductionBonus,
		"visit_unit_value":       in.VisitUnitValue,
		"loan_total_value":       in.LoanTotalValue,
		"loan_discount":          in.LoanDiscount,
		"fgts_balance":           in.FGTSBalance,
	}
	for name, v := range amounts {
		if v.IsNegative() {
			return fmt.Errorf("%s cannot be negative", name)
		}
	}

	switch in.ThirteenthCalculationType {
	case "", domain.ThirteenthCLT, domain.ThirteenthDailyExact:
	default:
		return fmt.Errorf("thirteenth calculation type must be CLT or DAILY_EXACT, got %q", in.ThirteenthCalculationType)
	}
	for month, days := range in.ThirteenthMonthDays {
		if month < 1 || month > 12 {
			return fmt.Errorf("thirteenth month days: month %d is not between 1 and 12", month)
		}
		if days < 0 || days > 31 {
			return fmt.Errorf("thirteenth month days: month %d has %d days", month, days)
		}
	}

	if in.EffectiveMode() == domain.ModeTermination {
		if err := ip.validateTermination(in); err != nil {
			return fmt.Errorf("termination validation failed: %w", err)
		}
	}

	return nil
}

// validateTermination checks only the enumerations; unusable dates are left
// to the engine, which flags them as insufficient input.
func (ip *InputParser) validateTermination(in *domain.CompensationInput) error {
	if in.AdmissionDate == "" {
		return fmt.Errorf("%w: admission_date", ErrMissingRequiredField)
	}
	if in.TerminationDate == "" {
		return fmt.Errorf("%w: termination_date", ErrMissingRequiredField)
	}

	validReasons := map[domain.TerminationReason]bool{}
	for _, r := range domain.TerminationReasons {
		validReasons[r] = true
	}
	if !validReasons[in.TerminationReason] {
		return fmt.Errorf("termination reason %q is not one of %v", in.TerminationReason, domain.TerminationReasons)
	}

	switch in.NoticePeriodType {
	case "", domain.NoticeIndemnified, domain.NoticeWorked, domain.NoticeDispensed:
	default:
		return fmt.Errorf("notice period type must be INDEMNIFIED, WORKED or DISPENSED, got %q", in.NoticePeriodType)
	}

	return nil
}
