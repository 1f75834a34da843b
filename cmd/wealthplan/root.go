package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/logging"
)

var (
	flagSettings  string
	flagLogLevel  string
	flagLogFormat string
	flagSeed      int64
)

var rootCmd = &cobra.Command{
	Use:           "wealthplan",
	Short:         "Household wealth projection and planning",
	Long:          "Project savings under baseline, optimistic and pessimistic regimes, stress-test them and get advice.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Settings TOML file (WEALTH_* environment variables override it)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides settings)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "Log format: json or text (overrides settings)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed for Monte Carlo draws; 0 seeds from the clock")
}

// loadSettings reads settings and applies the command-line overrides.
func loadSettings() (config.Settings, error) {
	settings, err := config.LoadSettings(flagSettings)
	if err != nil {
		return config.Settings{}, err
	}
	if flagLogLevel != "" {
		settings.Logging.Level = flagLogLevel
	}
	if flagLogFormat != "" {
		settings.Logging.Format = flagLogFormat
	}
	return settings, nil
}

func newLogger(cmd *cobra.Command, settings config.Settings) *logrus.Logger {
	return logging.NewWithOutput(settings.Logging, cmd.ErrOrStderr())
}

// newEngine builds a calculation engine logging through logger.
func newEngine(settings config.Settings, logger logrus.FieldLogger) *calculation.CalculationEngine {
	var src calculation.RandomSource
	if flagSeed != 0 {
		src = calculation.NewSeededSource(flagSeed)
	}
	engine := calculation.NewCalculationEngineWithSource(src)
	if settings.Engine.MonteCarloWorkers > 0 {
		engine.MonteCarlo.Workers = settings.Engine.MonteCarloWorkers
	}
	engine.SetLogger(logging.NewAdapter(logger, "engine"))
	return engine
}
