package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rgehrsitz/folha/internal/calculation"
	"github.com/rgehrsitz/folha/internal/calendar"
	"github.com/rgehrsitz/folha/internal/config"
	"github.com/rgehrsitz/folha/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	verbose bool
	logger  = zap.NewNop()

	// newLogger builds the process logger; tests replace it
	newLogger = func(verbose bool) (*zap.Logger, error) {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		return cfg.Build()
	}
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "folha %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

// fileExists checks if a file exists
func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

var rootCmd = &cobra.Command{
	Use:   "folha",
	Short: "CLT compensation calculator CLI",
	Long: `Computes itemized Brazilian CLT compensation: monthly pay with night shift,
overtime and DSR reflexes, the 13th salary, and termination settlements.

Records are read from a YAML batch file.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// newEngine builds an engine from the --regulatory file, or regulatory.yaml when present
func newEngine(cmd *cobra.Command) (*calculation.Engine, error) {
	regulatoryFile, _ := cmd.Flags().GetString("regulatory")
	if regulatoryFile == "" && fileExists("regulatory.yaml") {
		regulatoryFile = "regulatory.yaml"
	}

	engine := calculation.NewEngine()
	if regulatoryFile != "" {
		rules, err := config.NewInputParser().LoadRegulatoryConfig(regulatoryFile)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded regulatory config",
			zap.String("path", regulatoryFile),
			zap.Int("data_year", rules.Metadata.DataYear))
		engine = calculation.NewEngineWithRules(*rules)
	}
	engine.SetLogger(logger.Sugar())
	return engine, nil
}

// holidayTable returns the --holidays table, or nil for the embedded one
func holidayTable(cmd *cobra.Command) (*calendar.HolidayTable, error) {
	file, _ := cmd.Flags().GetString("holidays")
	if file == "" {
		return nil, nil
	}
	table, err := calendar.LoadHolidayTable(file)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded holiday table", zap.String("path", file), zap.Strings("states", table.States()))
	return table, nil
}

// loadOutcomes parses, resolves and computes the batch file
func loadOutcomes(cmd *cobra.Command, inputFile string) ([]calculation.Outcome, *calculation.Engine, error) {
	batch, err := config.NewInputParser().LoadFromFile(inputFile)
	if err != nil {
		return nil, nil, err
	}

	table, err := holidayTable(cmd)
	if err != nil {
		return nil, nil, err
	}

	inputs, err := config.ResolveBatch(batch, table)
	if err != nil {
		return nil, nil, err
	}

	engine, err := newEngine(cmd)
	if err != nil {
		return nil, nil, err
	}

	outcomes, err := engine.RunBatch(context.Background(), inputs)
	if err != nil {
		return nil, nil, err
	}
	return outcomes, engine, nil
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate every record in a batch file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFormat, _ := cmd.Flags().GetString("format")
		f := output.GetFormatterByName(outputFormat)
		if f == nil {
			return fmt.Errorf("unknown format %q (available: %v)", outputFormat, output.AvailableFormatterNames())
		}

		outcomes, engine, err := loadOutcomes(cmd, args[0])
		if err != nil {
			return err
		}

		report := output.NewReport(outcomes)
		if net, _ := cmd.Flags().GetBool("net"); net {
			report.WithWithholding(engine.EstimateWithholding)
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			path, err := output.WriteFormatted(f, report, f.Name())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
			return nil
		}

		data, err := f.Format(report)
		if err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a batch file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		batch, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Batch file %s is valid (%d records)\n", args[0], len(batch.Inputs))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv, yaml)")
	calculateCmd.Flags().String("regulatory", "", "Path to regulatory config file (default: regulatory.yaml if it exists)")
	calculateCmd.Flags().String("holidays", "", "Path to a holiday table replacing the embedded one")
	calculateCmd.Flags().Bool("net", false, "Append an approximate INSS/IRRF withholding estimate")
	calculateCmd.Flags().Bool("save", false, "Write the report to a timestamped file instead of stdout")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(monthCmd)
	rootCmd.AddCommand(sundaysCmd)
	rootCmd.AddCommand(shiftCmd)
	rootCmd.AddCommand(holidaysCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
