package calculation

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// ErrEmptyTimeline signals a projection that produced no months for a positive horizon.
// It indicates a construction bug, never a data problem.
var ErrEmptyTimeline = errors.New("projection produced an empty timeline")

// SafeWithdrawalRate is the annual rate used to turn a balance into passive income.
const SafeWithdrawalRate = 0.04

// CalculationEngine orchestrates the regime projections, goal analytics, stress tests and
// Monte Carlo risk estimate of a simulation.
type CalculationEngine struct {
	MonteCarlo *MonteCarloEstimator
	Debug      bool // Enable debug output for detailed calculations
	Logger     Logger
}

// NewCalculationEngine creates an engine whose Monte Carlo draws are time-seeded.
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithSource(nil)
}

// NewCalculationEngineWithSource creates an engine drawing Monte Carlo perturbations from src.
func NewCalculationEngineWithSource(src RandomSource) *CalculationEngine {
	return &CalculationEngine{
		MonteCarlo: NewMonteCarloEstimator(src),
		Logger:     NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	if ce.MonteCarlo != nil {
		ce.MonteCarlo.Logger = l
	}
}

// Simulate runs the three regimes against the input and aggregates their outcomes.
// The input is expected to be validated already.
func (ce *CalculationEngine) Simulate(ctx context.Context, in domain.SimulationInput) (*domain.SimulationResult, error) {
	regimes := Regimes(in)
	scenarios := make([]domain.ScenarioResult, 0, len(regimes))

	for _, regime := range regimes {
		sc, err := ce.RunScenario(in, regime)
		if err != nil {
			return nil, fmt.Errorf("RunScenario %s failed: %w", regime.ID, err)
		}
		scenarios = append(scenarios, *sc)
	}
	baseline, optimistic, pessimistic := scenarios[0], scenarios[1], scenarios[2]

	emergencyTarget := in.MonthlyExpenses * float64(in.RiskTolerance)
	emergencyGap := math.Max(emergencyTarget-in.CurrentSavings, 0)
	emergencyCoverage := 1.0
	if emergencyTarget > 0 {
		emergencyCoverage = 1 - emergencyGap/emergencyTarget
	}

	summary := domain.SimulationSummary{
		Baseline:                   baseline.Summary,
		Optimistic:                 optimistic.Summary,
		Pessimistic:                pessimistic.Summary,
		Goals:                      ce.goalAnalytics(in, scenarios),
		SavingsRate:                SavingsRate(in),
		EmergencyFundTarget:        emergencyTarget,
		EmergencyFundGap:           emergencyGap,
		EmergencyFundCoverage:      emergencyCoverage,
		FinancialIndependenceIndex: FinancialIndependenceIndex(baseline.Summary.FinalRealBalance, in.MonthlyExpenses),
	}

	mc := ce.MonteCarlo
	if mc == nil {
		mc = NewMonteCarloEstimator(nil)
	}
	risk, err := mc.Estimate(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("monte carlo estimate failed: %w", err)
	}
	summary.ShortfallProbability = risk.ShortfallProbability
	summary.MonteCarloIterations = mc.Iterations

	if ce.Debug {
		ce.logger().Debugf("baseline final=%.2f optimistic final=%.2f pessimistic final=%.2f",
			baseline.Summary.FinalBalance, optimistic.Summary.FinalBalance, pessimistic.Summary.FinalBalance)
		ce.logger().Debugf("shortfall probability=%.3f over %d trials", risk.ShortfallProbability, mc.Iterations)
	}

	return &domain.SimulationResult{
		Scenarios:   scenarios,
		Summary:     summary,
		StressTests: BuildStressTests(in, baseline),
	}, nil
}

// RunScenario projects a single regime and summarizes it.
func (ce *CalculationEngine) RunScenario(in domain.SimulationInput, regime Regime) (*domain.ScenarioResult, error) {
	params := ResolveScenario(in.Scenario, regime.Overrides)
	proj := ProjectMonthly(in, params)

	last, ok := lastPoint(proj.Timeline)
	if !ok && domain.HorizonMonths(in.Goals) > 0 {
		return nil, ErrEmptyTimeline
	}

	outcomes := AnalyzeGoals(in.Goals, proj)
	achieved := 0
	for _, o := range outcomes {
		if o.Achieved {
			achieved++
		}
	}

	return &domain.ScenarioResult{
		ID:       regime.ID,
		Label:    regime.Label,
		Color:    regime.Color,
		Timeline: proj.Timeline,
		Summary: domain.ScenarioSummary{
			FinalBalance:              last.Balance,
			FinalRealBalance:          last.RealBalance,
			TotalContributed:          proj.TotalContributed,
			TotalReturns:              proj.TotalReturns,
			Goals:                     outcomes,
			GoalsAchievedCount:        achieved,
			EmergencyCoverageTimeline: coverageTimeline(proj.Timeline),
		},
	}, nil
}

// goalAnalytics enriches the baseline outcomes with the top-up needed to close each
// shortfall and with the goal's status under every regime.
func (ce *CalculationEngine) goalAnalytics(in domain.SimulationInput, scenarios []domain.ScenarioResult) []domain.GoalAnalytics {
	monthlyReturn := MonthlyRate(in.ExpectedReturnRate)
	baseline := scenarios[0].Summary.Goals

	analytics := make([]domain.GoalAnalytics, 0, len(baseline))
	for i, outcome := range baseline {
		ga := domain.GoalAnalytics{
			GoalOutcome:                   outcome,
			AdditionalMonthlyContribution: RequiredMonthlyContribution(outcome.Shortfall, outcome.TargetMonth, monthlyReturn),
			Regimes:                       make([]domain.GoalRegimeStatus, 0, len(scenarios)),
		}
		for _, sc := range scenarios {
			o := sc.Summary.Goals[i]
			ga.Regimes = append(ga.Regimes, domain.GoalRegimeStatus{
				ScenarioID:      sc.ID,
				Achieved:        o.Achieved,
				AchievedMonth:   o.AchievedMonth,
				Shortfall:       o.Shortfall,
				CompletionRatio: o.CompletionRatio,
			})
		}
		analytics = append(analytics, ga)
	}
	return analytics
}

// SavingsRate is the share of gross income left after expenses plus extra contributions.
func SavingsRate(in domain.SimulationInput) float64 {
	if in.MonthlyIncome <= 0 {
		return 0
	}
	return (in.MonthlyIncome - in.MonthlyExpenses + in.AdditionalContribution) / in.MonthlyIncome
}

// FinancialIndependenceIndex expresses the monthly passive income a 4% withdrawal rate would
// yield from realBalance as a multiple of monthly expenses.
func FinancialIndependenceIndex(realBalance, monthlyExpenses float64) float64 {
	if monthlyExpenses <= 0 || realBalance <= 0 {
		return 0
	}
	return realBalance * SafeWithdrawalRate / 12 / monthlyExpenses
}

func lastPoint(timeline []domain.MonthlyPoint) (domain.MonthlyPoint, bool) {
	if len(timeline) == 0 {
		return domain.MonthlyPoint{}, false
	}
	return timeline[len(timeline)-1], true
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}
