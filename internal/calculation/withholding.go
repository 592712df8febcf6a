package calculation

import (
	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/shopspring/decimal"
)

// EstimateWithholding approximates the employee INSS contribution and the
// IRRF withheld on a gross amount. The brackets come from the engine rules;
// the estimate ignores dependants and other deductions.
func (e *Engine) EstimateWithholding(gross decimal.Decimal) domain.Withholding {
	e = e.ready()
	if !gross.IsPositive() {
		return domain.Withholding{INSS: decimal.Zero, IRRF: decimal.Zero, Net: gross}
	}

	inss := progressiveINSS(gross, e.Rules.Withholding)
	irrf := flatIRRF(gross.Sub(inss), e.Rules.Withholding.IRRFBrackets)

	return domain.Withholding{
		INSS: inss.Round(2),
		IRRF: irrf.Round(2),
		Net:  gross.Sub(inss).Sub(irrf).Round(2),
	}
}

func progressiveINSS(gross decimal.Decimal, w domain.WithholdingRules) decimal.Decimal {
	base := decimal.Min(gross, w.INSSCeiling)
	total := decimal.Zero
	for _, b := range w.INSSBrackets {
		if base.LessThanOrEqual(b.Min) {
			break
		}
		slice := decimal.Min(base, b.Max).Sub(b.Min)
		total = total.Add(slice.Mul(b.Rate))
	}
	return total
}

func flatIRRF(base decimal.Decimal, brackets []domain.IRRFBracket) decimal.Decimal {
	for _, b := range brackets {
		if b.UpTo.IsZero() || base.LessThanOrEqual(b.UpTo) {
			tax := base.Mul(b.Rate).Sub(b.Deduction)
			if tax.IsNegative() {
				return decimal.Zero
			}
			return tax
		}
	}
	return decimal.Zero
}
