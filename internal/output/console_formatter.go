package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/folha/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	labelStyle  = lipgloss.NewStyle().Width(26)
	amountStyle = lipgloss.NewStyle().Width(18).Align(lipgloss.Right)
	totalStyle  = lipgloss.NewStyle().Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676"))
)

// ConsoleFormatter renders an itemized statement per record
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, headerStyle.Render("CLT COMPENSATION STATEMENT"))
	fmt.Fprintln(&buf, strings.Repeat("=", 44))
	fmt.Fprintf(&buf, "Records: %d\n\n", len(report.Rows))

	for _, row := range report.Rows {
		writeStatement(&buf, row)
	}

	return buf.Bytes(), nil
}

func writeStatement(buf *bytes.Buffer, row Row) {
	r := row.Result
	fmt.Fprintf(buf, "%s  %s\n",
		headerStyle.Render(fmt.Sprintf("%d. %s (%s)", row.Index+1, r.EmployeeName, r.Mode)),
		dimStyle.Render(row.ID.String()[:8]))
	fmt.Fprintln(buf, strings.Repeat("-", 44))

	if r.InsufficientInput {
		fmt.Fprintln(buf, warnStyle.Render("Insufficient input: admission/termination dates missing or out of order"))
		fmt.Fprintln(buf)
		return
	}

	writeDetails(buf, &r)

	for _, l := range r.Lines() {
		if l.Amount.IsZero() {
			continue
		}
		writeLine(buf, l.Label, FormatCurrency(l.Amount))
	}
	fmt.Fprintln(buf, strings.Repeat("-", 44))
	fmt.Fprintln(buf, totalStyle.Render(labelStyle.Render("GROSS")+amountStyle.Render(FormatCurrency(r.GrossSalary))))

	if w := row.Withholding; w != nil {
		writeLine(buf, "INSS (estimate)", FormatCurrency(w.INSS.Neg()))
		writeLine(buf, "IRRF (estimate)", FormatCurrency(w.IRRF.Neg()))
		fmt.Fprintln(buf, totalStyle.Render(labelStyle.Render("NET (estimate)")+amountStyle.Render(FormatCurrency(w.Net))))
	}
	fmt.Fprintln(buf)
}

// writeDetails prints the mode-specific counters above the lines
func writeDetails(buf *bytes.Buffer, r *domain.CompensationResult) {
	switch r.Mode {
	case domain.ModeThirteenth:
		writeLine(buf, "Remuneration base", FormatCurrency(r.RemunerationBase))
		if r.ThirteenthTotalDays > 0 {
			writeLine(buf, "Days counted", fmt.Sprintf("%d", r.ThirteenthTotalDays))
		} else {
			writeLine(buf, "Avos", fmt.Sprintf("%d/12", r.ThirteenthTotalAvos))
		}
	case domain.ModeTermination:
		writeLine(buf, "13th avos", fmt.Sprintf("%d/12", r.ThirteenthAvos))
		writeLine(buf, "Vacation avos", fmt.Sprintf("%d/12", r.VacationAvos))
		if r.NoticeExtraDays > 0 {
			writeLine(buf, "Notice extra days", fmt.Sprintf("%d", r.NoticeExtraDays))
		}
	default:
		writeLine(buf, "Hourly rate", FormatCurrency(r.HourlyRate))
		writeLine(buf, "DSR factor", r.DSRFactor.StringFixed(4))
		if !r.EffectiveNightHours.IsZero() {
			writeLine(buf, "Night hours (effective)", FormatHours(r.EffectiveNightHours))
		}
	}
	fmt.Fprintln(buf)
}

func writeLine(buf *bytes.Buffer, label, value string) {
	fmt.Fprintln(buf, labelStyle.Render(label)+amountStyle.Render(value))
}
