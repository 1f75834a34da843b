package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/wealth-planner/internal/advice"
	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/domain"
)

var (
	goalsProfile   domain.HouseholdProfile
	goalsSimulate  bool
	goalsSavings   float64
	goalsReturn    float64
	goalsInflation float64
)

// goalsSimulationRisk is the emergency reserve, in months, assumed when simulating suggestions.
const goalsSimulationRisk = 3

var goalsCmd = &cobra.Command{
	Use:   "goals",
	Short: "Suggest goals for a household profile",
	RunE:  runGoals,
}

// goalsProjection pairs the suggestions with the simulation of pursuing them.
type goalsProjection struct {
	Recommended domain.RecommendedGoals  `json:"recommended"`
	Summary     domain.SimulationSummary `json:"summary"`
}

func init() {
	goalsCmd.Flags().Float64Var(&goalsProfile.MonthlyIncome, "income", 0, "Monthly income")
	goalsCmd.Flags().Float64Var(&goalsProfile.MonthlyExpenses, "expenses", 0, "Monthly expenses")
	goalsCmd.Flags().IntVar(&goalsProfile.Age, "age", 30, "Age of the main earner")
	goalsCmd.Flags().IntVar(&goalsProfile.HouseholdMembers, "members", 1, "Household members")
	goalsCmd.Flags().BoolVar(&goalsSimulate, "simulate", false, "Project the suggested goals through the three regimes")
	goalsCmd.Flags().Float64Var(&goalsSavings, "savings", 0, "Current savings used with --simulate")
	goalsCmd.Flags().Float64Var(&goalsReturn, "return", 8, "Expected annual return in percent used with --simulate")
	goalsCmd.Flags().Float64Var(&goalsInflation, "inflation", 4, "Annual inflation in percent used with --simulate")
	rootCmd.AddCommand(goalsCmd)
}

func runGoals(cmd *cobra.Command, _ []string) error {
	parser := config.NewInputParser()
	if err := parser.ValidateStruct(goalsProfile); err != nil {
		return err
	}
	recommended := advice.NewGoalsAdvisor().Recommend(goalsProfile)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if !goalsSimulate {
		return enc.Encode(recommended)
	}

	in, err := suggestedGoalsInput(parser, recommended)
	if err != nil {
		return err
	}
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	result, err := newEngine(settings, newLogger(cmd, settings)).Simulate(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	return enc.Encode(goalsProjection{Recommended: recommended, Summary: result.Summary})
}

// suggestedGoalsInput turns the profile and its suggestions into a prepared simulation input.
// Suggestions without a target amount are skipped.
func suggestedGoalsInput(parser *config.InputParser, recommended domain.RecommendedGoals) (domain.SimulationInput, error) {
	in := domain.SimulationInput{
		MonthlyIncome:      goalsProfile.MonthlyIncome,
		MonthlyExpenses:    goalsProfile.MonthlyExpenses,
		CurrentSavings:     goalsSavings,
		ExpectedReturnRate: goalsReturn,
		InflationRate:      goalsInflation,
		RiskTolerance:      goalsSimulationRisk,
	}
	for _, rg := range recommended.Goals {
		if rg.TargetAmount <= 0 {
			continue
		}
		in.Goals = append(in.Goals, rg.AsGoal())
	}
	if len(in.Goals) == 0 {
		return in, errors.New("no suggested goal has a target amount; pass --income and --expenses")
	}
	if err := parser.Prepare(&in); err != nil {
		return in, err
	}
	return in, nil
}
