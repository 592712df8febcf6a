package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// LoadRegulatoryConfig loads statutory overrides from a YAML file.
// Fields absent from the file keep their default values.
func (ip *InputParser) LoadRegulatoryConfig(filename string) (*domain.Rules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read regulatory config file %s: %w", filename, err)
	}

	var rules domain.Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse regulatory YAML: %w", err)
	}

	if err := ip.validateRegulatoryConfig(&rules); err != nil {
		return nil, fmt.Errorf("regulatory config validation failed: %w", err)
	}

	rules = rules.WithDefaults()
	return &rules, nil
}

func (ip *InputParser) validateRegulatoryConfig(rules *domain.Rules) error {
	if y := rules.Metadata.DataYear; y != 0 && (y < 2017 || y > 2100) {
		return fmt.Errorf("regulatory data year %d seems invalid", y)
	}

	w := rules.Wage
	if w.StandardDivisor.IsNegative() {
		return fmt.Errorf("standard divisor cannot be negative")
	}
	if w.MonthDays < 0 || w.TwelveByThirtySixShifts < 0 || w.AvosThresholdDays < 0 || w.CommercialYearDays < 0 {
		return fmt.Errorf("day counts cannot be negative")
	}
	if w.AvosThresholdDays > 31 {
		return fmt.Errorf("avos threshold of %d days exceeds a month", w.AvosThresholdDays)
	}
	if w.HazardPayRate.IsNegative() || w.HazardPayRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("hazard pay rate must be between 0 and 1")
	}

	t := rules.Termination
	one := decimal.NewFromInt(1)
	if t.FGTSPenaltyNoCause.IsNegative() || t.FGTSPenaltyNoCause.GreaterThan(one) ||
		t.FGTSPenaltyAgreement.IsNegative() || t.FGTSPenaltyAgreement.GreaterThan(one) {
		return fmt.Errorf("FGTS penalty rates must be between 0 and 1")
	}
	if t.NoticeMaxExtraDays < 0 || t.NoticeDaysPerYear < 0 {
		return fmt.Errorf("notice extra days cannot be negative")
	}

	for i, b := range rules.Withholding.INSSBrackets {
		if b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("INSS bracket %d: max %s must exceed min %s", i, b.Max, b.Min)
		}
		if i > 0 && !b.Min.Equal(rules.Withholding.INSSBrackets[i-1].Max) {
			return fmt.Errorf("INSS bracket %d does not start where bracket %d ends", i, i-1)
		}
	}
	for i, b := range rules.Withholding.IRRFBrackets {
		if b.UpTo.IsZero() && i != len(rules.Withholding.IRRFBrackets)-1 {
			return fmt.Errorf("IRRF bracket %d is open-ended but not the last", i)
		}
	}

	return nil
}
