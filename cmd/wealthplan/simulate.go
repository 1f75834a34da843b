package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/wealth-planner/internal/advice"
	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/output"
)

var (
	flagFormat    string
	flagOutputDir string
	flagNoAdvice  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate [input file]",
	Short: "Run the three-regime simulation for an input file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimulate,
}

var recommendCmd = &cobra.Command{
	Use:   "recommend [input file]",
	Short: "Print the advice for an input file as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecommend,
}

func init() {
	simulateCmd.Flags().StringVarP(&flagFormat, "format", "f", "console", "Output format ("+fmt.Sprint(output.AvailableFormatterNames())+")")
	simulateCmd.Flags().StringVarP(&flagOutputDir, "output-dir", "o", "", "Write the report to a file in this directory instead of stdout (format \"all\" writes console and timeline-csv)")
	simulateCmd.Flags().BoolVar(&flagNoAdvice, "no-advice", false, "Skip the recommendation engine")
	rootCmd.AddCommand(simulateCmd, recommendCmd)
}

func buildReport(cmd *cobra.Command, path string, withAdvice bool) (*output.Report, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cmd, settings)

	in, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	engine := newEngine(settings, logger)
	result, err := engine.Simulate(cmd.Context(), *in)
	if err != nil {
		return nil, fmt.Errorf("simulation failed: %w", err)
	}
	report := &output.Report{Input: in, Simulation: result}

	if withAdvice {
		recs, err := advice.NewEngine().Recommend(*in, result)
		if err != nil {
			return nil, fmt.Errorf("recommendation failed: %w", err)
		}
		report.Recommendations = recs
	}
	logger.WithField("input", path).Debug("simulation complete")
	return report, nil
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagOutputDir != "" {
		if flagFormat != "all" && output.GetFormatterByName(flagFormat) == nil {
			return output.UnsupportedFormatError(flagFormat)
		}
		report, err := buildReport(cmd, args[0], !flagNoAdvice)
		if err != nil {
			return err
		}
		files, err := output.GenerateReport(report, flagFormat, flagOutputDir)
		if err != nil {
			return err
		}
		for _, filename := range files {
			fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
		}
		return nil
	}

	f := output.GetFormatterByName(flagFormat)
	if f == nil {
		return output.UnsupportedFormatError(flagFormat)
	}
	report, err := buildReport(cmd, args[0], !flagNoAdvice)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runRecommend(cmd *cobra.Command, args []string) error {
	report, err := buildReport(cmd, args[0], true)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report.Recommendations)
}
