package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"
)

// JSONFormatter emits the whole report as indented JSON
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// YAMLFormatter emits the whole report as YAML
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CSVFormatter writes one row per itemized line, followed by a GROSS row
// (and NET when withholding was estimated) for each record.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"ID", "Index", "Employee", "Mode", "Item", "Amount"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range report.Rows {
		r := row.Result
		prefix := []string{row.ID.String(), strconv.Itoa(row.Index), r.EmployeeName, string(r.Mode)}
		write := func(item, amount string) error {
			return w.Write(append(append([]string(nil), prefix...), item, amount))
		}

		if r.InsufficientInput {
			if err := write("INSUFFICIENT_INPUT", ""); err != nil {
				return nil, err
			}
			continue
		}
		for _, l := range r.Lines() {
			if err := write(l.Label, l.Amount.StringFixed(2)); err != nil {
				return nil, err
			}
		}
		if err := write("GROSS", r.GrossSalary.StringFixed(2)); err != nil {
			return nil, err
		}
		if row.Withholding != nil {
			if err := write("NET", row.Withholding.Net.StringFixed(2)); err != nil {
				return nil, err
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
