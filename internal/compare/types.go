package compare

import (
	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one termination reason applied to the record
type ComparisonResult struct {
	ScenarioName string                    `json:"scenarioName"`
	Reason       domain.TerminationReason  `json:"reason"`
	Description  string                    `json:"description"`
	Result       domain.CompensationResult `json:"-"`

	// Key Metrics
	SalaryBalance decimal.Decimal `json:"salaryBalance"`
	VariablePay   decimal.Decimal `json:"variablePay"`
	Thirteenth    decimal.Decimal `json:"thirteenth"`
	Vacation      decimal.Decimal `json:"vacation"` // proportional vacation plus one-third
	Notice        decimal.Decimal `json:"notice"`
	FGTSPenalty   decimal.Decimal `json:"fgtsPenalty"`
	Total         decimal.Decimal `json:"total"`

	// Comparison to Base
	TotalDiffFromBase decimal.Decimal `json:"totalDiffFromBase"`
	TotalPctFromBase  decimal.Decimal `json:"totalPctFromBase"`
}

// ComparisonSet is the record evaluated under its own reason and every other one
type ComparisonSet struct {
	EmployeeName       string             `json:"employeeName"`
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

var reasonDescriptions = map[domain.TerminationReason]string{
	domain.DismissalNoCause: "Dismissal without cause: notice and 40% FGTS penalty",
	domain.DismissalCause:   "Dismissal for cause: salary balance and variable pay only",
	domain.Resignation:      "Resignation: no notice pay, no FGTS penalty",
	domain.Agreement:        "Mutual agreement: notice and 20% FGTS penalty",
}

// MetricsCalculator extracts key metrics from termination results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for one result
func (mc *MetricsCalculator) CalculateMetrics(reason domain.TerminationReason, r domain.CompensationResult) ComparisonResult {
	return ComparisonResult{
		ScenarioName:  string(reason),
		Reason:        reason,
		Description:   reasonDescriptions[reason],
		Result:        r,
		SalaryBalance: r.SalaryBalance,
		VariablePay:   r.VariablePay,
		Thirteenth:    r.ThirteenthProportional,
		Vacation:      r.VacationProportional.Add(r.VacationOneThird),
		Notice:        r.NoticePeriodValue,
		FGTSPenalty:   r.FGTSPenalty,
		Total:         r.GrossSalary,
	}
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.TotalDiffFromBase = scenario.Total.Sub(base.Total)

	if !base.Total.IsZero() {
		scenario.TotalPctFromBase = scenario.TotalDiffFromBase.
			Div(base.Total).
			Mul(decimal.NewFromInt(100))
	}

	return scenario
}

// GenerateRecommendations summarizes what changes across the reasons
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	highest := compSet.BaseResult
	lowest := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.Total.GreaterThan(highest.Total) {
			highest = alt
		}
		if alt.Total.LessThan(lowest.Total) {
			lowest = alt
		}
	}

	if highest != compSet.BaseResult {
		recommendations = append(recommendations,
			"Highest Payout: "+highest.ScenarioName+" pays "+
				highest.Total.Sub(compSet.BaseResult.Total).StringFixed(2)+" more than "+compSet.BaseScenarioName)
	}
	if lowest != compSet.BaseResult {
		recommendations = append(recommendations,
			"Lowest Payout: "+lowest.ScenarioName+" pays "+
				compSet.BaseResult.Total.Sub(lowest.Total).StringFixed(2)+" less than "+compSet.BaseScenarioName)
	}

	if compSet.BaseResult.FGTSPenalty.IsPositive() {
		recommendations = append(recommendations,
			"FGTS Penalty: "+compSet.BaseResult.FGTSPenalty.StringFixed(2)+" of the base total is the FGTS penalty")
	}

	return recommendations
}
