package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Reason",
		"Type",
		"Salary Balance",
		"Variable Pay",
		"13th Proportional",
		"Vacation + 1/3",
		"Notice Period",
		"FGTS Penalty",
		"Total",
		"Total Diff from Base",
		"Total % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
		return "", err
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, scenarioType string) []string {
	return []string{
		result.ScenarioName,
		scenarioType,
		result.SalaryBalance.StringFixed(2),
		result.VariablePay.StringFixed(2),
		result.Thirteenth.StringFixed(2),
		result.Vacation.StringFixed(2),
		result.Notice.StringFixed(2),
		result.FGTSPenalty.StringFixed(2),
		result.Total.StringFixed(2),
		result.TotalDiffFromBase.StringFixed(2),
		result.TotalPctFromBase.StringFixed(2),
	}
}
