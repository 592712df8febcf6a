package compare

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/folha/internal/calculation"
	"github.com/rgehrsitz/folha/internal/domain"
)

// ErrInsufficientInput is returned when the record's dates cannot produce a settlement
var ErrInsufficientInput = errors.New("insufficient input for a termination comparison")

// CompareEngine orchestrates termination comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareTerminations evaluates the record under its own termination reason
// (dismissal without cause when unset) and under each of the others.
func (ce *CompareEngine) CompareTerminations(ctx context.Context, input domain.CompensationInput) (*ComparisonSet, error) {
	base := input.TerminationReason
	if base == "" {
		base = domain.DismissalNoCause
	}

	reasons := []domain.TerminationReason{base}
	for _, r := range domain.TerminationReasons {
		if r != base {
			reasons = append(reasons, r)
		}
	}

	inputs := make([]domain.CompensationInput, len(reasons))
	for i, r := range reasons {
		in := input
		in.Mode = domain.ModeTermination
		in.TerminationReason = r
		inputs[i] = in
	}

	outcomes, err := ce.CalcEngine.RunBatch(ctx, inputs)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate termination reasons: %w", err)
	}

	if outcomes[0].Result.InsufficientInput {
		return nil, fmt.Errorf("%w: admission %q, termination %q",
			ErrInsufficientInput, input.AdmissionDate, input.TerminationDate)
	}

	baseResult := ce.MetricsCalculator.CalculateMetrics(base, outcomes[0].Result)

	alternatives := make([]ComparisonResult, 0, len(outcomes)-1)
	for i, o := range outcomes[1:] {
		alt := ce.MetricsCalculator.CalculateMetrics(reasons[i+1], o.Result)
		alternatives = append(alternatives, ce.MetricsCalculator.CalculateComparison(alt, baseResult))
	}

	compSet := &ComparisonSet{
		EmployeeName:       input.EmployeeName,
		BaseScenarioName:   string(base),
		BaseResult:         &baseResult,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// Terminations compares the record across every termination reason
func Terminations(engine *calculation.Engine, input domain.CompensationInput) (*ComparisonSet, error) {
	return NewCompareEngine(engine).CompareTerminations(context.Background(), input)
}
