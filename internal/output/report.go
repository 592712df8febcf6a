package output

import (
	"strings"
	"time"

	"github.com/rgehrsitz/folha/internal/calculation"
	"github.com/rgehrsitz/folha/internal/domain"
	"github.com/shopspring/decimal"
)

// Report is the input to every formatter
type Report struct {
	GeneratedAt time.Time `json:"generated_at" yaml:"generated_at"`
	Rows        []Row     `json:"rows" yaml:"rows"`
}

// Row is one computed record with its optional withholding estimate
type Row struct {
	calculation.Outcome `yaml:",inline"`
	Withholding         *domain.Withholding `json:"withholding,omitempty" yaml:"withholding,omitempty"`
}

// NewReport wraps batch outcomes for rendering
func NewReport(outcomes []calculation.Outcome) *Report {
	rows := make([]Row, len(outcomes))
	for i, o := range outcomes {
		rows[i] = Row{Outcome: o}
	}
	return &Report{GeneratedAt: time.Now(), Rows: rows}
}

// WithWithholding attaches an estimate of the withholdings on each gross
func (r *Report) WithWithholding(estimate func(gross decimal.Decimal) domain.Withholding) *Report {
	for i := range r.Rows {
		w := estimate(r.Rows[i].Result.GrossSalary)
		r.Rows[i].Withholding = &w
	}
	return r
}

// FormatCurrency formats a decimal as Brazilian reais, e.g. R$ 1.234,56
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(c)
	}
	return sign + "R$ " + b.String() + "," + frac
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatHours formats an hour quantity with two decimals
func FormatHours(hours decimal.Decimal) string {
	return hours.StringFixed(2) + "h"
}
