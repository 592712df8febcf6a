package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rgehrsitz/folha/internal/compare"
	"github.com/rgehrsitz/folha/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare a record's settlement under every termination reason",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile := args[0]
		index, _ := cmd.Flags().GetInt("index")
		outputFormat, _ := cmd.Flags().GetString("format")

		batch, err := config.NewInputParser().LoadFromFile(inputFile)
		if err != nil {
			return err
		}
		if index < 0 || index >= len(batch.Inputs) {
			return fmt.Errorf("index %d out of range (batch has %d records)", index, len(batch.Inputs))
		}

		table, err := holidayTable(cmd)
		if err != nil {
			return err
		}
		input, err := config.Resolve(batch.Inputs[index], table)
		if err != nil {
			return err
		}

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}

		comparisonSet, err := compare.NewCompareEngine(engine).CompareTerminations(context.Background(), input)
		if err != nil {
			return fmt.Errorf("comparison failed: %w", err)
		}
		comparisonSet.ConfigPath = inputFile
		logger.Debug("compared termination reasons",
			zap.String("employee", comparisonSet.EmployeeName),
			zap.String("base", comparisonSet.BaseScenarioName),
			zap.Int("alternatives", len(comparisonSet.AlternativeResults)))

		var out string
		switch strings.ToLower(outputFormat) {
		case "csv":
			out, err = (&compare.CSVFormatter{}).Format(comparisonSet)
		case "json":
			out, err = (&compare.JSONFormatter{Pretty: true}).Format(comparisonSet)
		case "table", "console", "":
			out = (&compare.TableFormatter{}).Format(comparisonSet)
		default:
			return fmt.Errorf("unknown output format: %s (valid: table, csv, json)", outputFormat)
		}
		if err != nil {
			return fmt.Errorf("failed to format comparison: %w", err)
		}

		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	compareCmd.Flags().Int("index", 0, "Zero-based index of the record in the batch")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().String("regulatory", "", "Path to regulatory config file (default: regulatory.yaml if it exists)")
	compareCmd.Flags().String("holidays", "", "Path to a holiday table replacing the embedded one")
}
