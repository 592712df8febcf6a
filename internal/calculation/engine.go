// Package calculation turns a CompensationInput into an itemized
// CompensationResult under CLT rules: monthly wages, thirteenth salary and
// termination settlements.
//
// Every computation is a pure function of the input and the engine's Rules.
// Nothing is read from or written to shared state, so an Engine may be used
// from any number of goroutines at once.
package calculation

import (
	"github.com/rgehrsitz/folha/internal/domain"
)

// Engine evaluates compensation inputs against a fixed rule set
type Engine struct {
	Rules  domain.Rules
	Logger Logger
}

// NewEngine creates an engine with the statutory default rules
func NewEngine() *Engine {
	return &Engine{
		Rules:  domain.DefaultRules(),
		Logger: NopLogger{},
	}
}

// NewEngineWithRules creates an engine with loaded rules; zero fields fall back to defaults
func NewEngineWithRules(rules domain.Rules) *Engine {
	return &Engine{
		Rules:  rules.WithDefaults(),
		Logger: NopLogger{},
	}
}

// SetLogger replaces the logger; nil restores the no-op logger
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

func (e *Engine) logger() Logger {
	if e.Logger == nil {
		return NopLogger{}
	}
	return e.Logger
}

// Compute dispatches on the input's mode
func (e *Engine) Compute(in domain.CompensationInput) domain.CompensationResult {
	switch in.EffectiveMode() {
	case domain.ModeThirteenth:
		return e.ComputeThirteenth(in)
	case domain.ModeTermination:
		return e.ComputeTermination(in)
	default:
		return e.ComputeMonthly(in)
	}
}

// ready returns an engine whose rules are complete, so a zero Engine still works
func (e *Engine) ready() *Engine {
	if !e.Rules.Wage.StandardDivisor.IsZero() && e.Rules.Wage.MonthDays != 0 {
		return e
	}
	return &Engine{Rules: e.Rules.WithDefaults(), Logger: e.logger()}
}
