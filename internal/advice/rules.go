package advice

import (
	"fmt"
	"strings"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/pkg/decimal"
)

// Rule thresholds.
const (
	SavingsRateThreshold           = 0.20
	JobLossMonthsThreshold         = 3
	FinancialIndependenceThreshold = 0.6
	ShortfallProbabilityThreshold  = 0.25
)

// Facts are the derived figures every rule reads from.
type Facts struct {
	Input                      domain.SimulationInput
	Summary                    domain.SimulationSummary
	SavingsRate                float64
	RunwayMonths               float64
	FinancialIndependenceIndex float64
	TopGoal                    *domain.GoalAnalytics
	// SecondaryShortfalls holds the non-top goals that miss their target in the baseline.
	SecondaryShortfalls []domain.GoalAnalytics
}

// NewFacts derives the rule inputs from an input and its simulation result.
func NewFacts(in domain.SimulationInput, result *domain.SimulationResult) Facts {
	f := Facts{
		Input:                      in,
		Summary:                    result.Summary,
		SavingsRate:                result.Summary.SavingsRate,
		FinancialIndependenceIndex: result.Summary.FinancialIndependenceIndex,
	}
	if in.MonthlyExpenses > 0 {
		f.RunwayMonths = in.CurrentSavings / in.MonthlyExpenses
	}
	if top, ok := result.Summary.TopGoalAnalytics(); ok {
		f.TopGoal = &top
		for _, g := range result.Summary.Goals[1:] {
			if g.Shortfall > 0 {
				f.SecondaryShortfalls = append(f.SecondaryShortfalls, g)
			}
		}
	}
	return f
}

// Rule pairs a predicate with the recommendation it produces. Rules are evaluated in
// list order and every matching rule contributes one item.
type Rule[T any] struct {
	ID    string
	When  func(Facts) bool
	Build func(Facts) T
}

// Apply evaluates rules in order against f.
func Apply[T any](rules []Rule[T], f Facts) []T {
	out := make([]T, 0, len(rules))
	for _, r := range rules {
		if r.When(f) {
			out = append(out, r.Build(f))
		}
	}
	return out
}

// DefaultQuickWins are the short-term rules.
var DefaultQuickWins = []Rule[domain.Advice]{
	{
		ID:   "increase-savings-rate",
		When: func(f Facts) bool { return f.SavingsRate < SavingsRateThreshold },
		Build: func(f Facts) domain.Advice {
			return domain.Advice{
				ID:          "increase-savings-rate",
				Title:       "Increase your savings rate",
				Description: "Direct at least 20% of income to investments. The 50-30-20 budget split is a simple way to reorganize spending.",
				Rationale:   fmt.Sprintf("savingsRate=%.3f < %.2f", f.SavingsRate, SavingsRateThreshold),
			}
		},
	},
	{
		ID:   "strengthen-emergency-fund",
		When: func(f Facts) bool { return f.RunwayMonths < float64(f.Input.RiskTolerance) },
		Build: func(f Facts) domain.Advice {
			return domain.Advice{
				ID:    "strengthen-emergency-fund",
				Title: "Strengthen your emergency fund",
				Description: fmt.Sprintf("Current savings cover %.1f months of expenses. Aim for %d months to stay resilient through a job loss.",
					f.RunwayMonths, f.Input.RiskTolerance),
				Rationale: fmt.Sprintf("runwayMonths=%.2f < riskTolerance=%d", f.RunwayMonths, f.Input.RiskTolerance),
			}
		},
	},
	{
		ID:   "build-alternative-income",
		When: func(f Facts) bool { return f.Input.Scenario.JobLossMonths >= JobLossMonthsThreshold },
		Build: func(f Facts) domain.Advice {
			return domain.Advice{
				ID:          "build-alternative-income",
				Title:       "Build alternative income",
				Description: "Develop extra income sources such as freelancing or consulting so the plan survives periods of unemployment.",
				Rationale:   fmt.Sprintf("jobLossMonths=%d >= %d", f.Input.Scenario.JobLossMonths, JobLossMonthsThreshold),
			}
		},
	},
	{
		ID:   "grow-passive-income",
		When: func(f Facts) bool { return f.FinancialIndependenceIndex < FinancialIndependenceThreshold },
		Build: func(f Facts) domain.Advice {
			return domain.Advice{
				ID:    "grow-passive-income",
				Title: "Grow passive-income assets",
				Description: fmt.Sprintf("At a 4%% withdrawal rate the projected portfolio would cover %.0f%% of monthly expenses. Favor income-producing assets to raise it.",
					f.FinancialIndependenceIndex*100),
				Rationale: fmt.Sprintf("financialIndependenceIndex=%.3f < %.2f", f.FinancialIndependenceIndex, FinancialIndependenceThreshold),
			}
		},
	},
}

// DefaultStrategicMoves are the medium-term rules. The last one always applies.
var DefaultStrategicMoves = []Rule[domain.StrategicMove]{
	{
		ID:   "top-goal-top-up",
		When: func(f Facts) bool { return f.TopGoal != nil && f.TopGoal.Shortfall > 0 },
		Build: func(f Facts) domain.StrategicMove {
			g := f.TopGoal
			return domain.StrategicMove{
				ID:    "top-goal-top-up",
				Title: "Top up monthly contributions",
				Description: fmt.Sprintf("To reach %q in %d years, invest an extra %s per month.",
					g.Name, g.TargetMonth/domain.MonthsInYear, decimal.NewMoney(g.AdditionalMonthlyContribution).Format()),
				Rationale: fmt.Sprintf("goal=%s shortfall=%.2f additionalMonthlyContribution=%.2f",
					g.ID, g.Shortfall, g.AdditionalMonthlyContribution),
				TimeHorizon: "0-3 months",
				Impact:      "high",
			}
		},
	},
	{
		ID:   "rebalance-secondary-goals",
		When: func(f Facts) bool { return len(f.SecondaryShortfalls) > 0 },
		Build: func(f Facts) domain.StrategicMove {
			names := make([]string, 0, len(f.SecondaryShortfalls))
			ids := make([]string, 0, len(f.SecondaryShortfalls))
			for _, g := range f.SecondaryShortfalls {
				names = append(names, g.Name)
				ids = append(ids, g.ID)
			}
			return domain.StrategicMove{
				ID:    "rebalance-secondary-goals",
				Title: "Rebalance secondary goals",
				Description: fmt.Sprintf("%s will miss their target dates. Extend their deadlines or split contributions once the top goal is funded.",
					strings.Join(names, ", ")),
				Rationale:   fmt.Sprintf("goalsWithShortfall=%s", strings.Join(ids, ",")),
				TimeHorizon: "3-12 months",
				Impact:      "medium",
			}
		},
	},
	{
		ID:   "shortfall-risk-warning",
		When: func(f Facts) bool { return f.Summary.ShortfallProbability > ShortfallProbabilityThreshold },
		Build: func(f Facts) domain.StrategicMove {
			return domain.StrategicMove{
				ID:    "shortfall-risk-warning",
				Title: "Reduce the risk of missing your top goal",
				Description: fmt.Sprintf("%.0f%% of simulated market paths miss the top goal. Add a safety margin to contributions or move the deadline.",
					f.Summary.ShortfallProbability*100),
				Rationale:   fmt.Sprintf("shortfallProbability=%.3f > %.2f", f.Summary.ShortfallProbability, ShortfallProbabilityThreshold),
				TimeHorizon: "0-6 months",
				Impact:      "high",
			}
		},
	},
	{
		ID:   "build-emergency-fund",
		When: func(f Facts) bool { return f.Summary.EmergencyFundGap > 0 },
		Build: func(f Facts) domain.StrategicMove {
			return domain.StrategicMove{
				ID:    "build-emergency-fund",
				Title: "Build the emergency fund",
				Description: fmt.Sprintf("Set aside %s to cover %d months of expenses in a liquid, interest-bearing account.",
					decimal.NewMoney(f.Summary.EmergencyFundGap).Format(), f.Input.RiskTolerance),
				Rationale:   fmt.Sprintf("emergencyFundGap=%.2f > 0", f.Summary.EmergencyFundGap),
				TimeHorizon: "0-6 months",
				Impact:      "high",
			}
		},
	},
	{
		ID:   "automate-contributions",
		When: func(Facts) bool { return true },
		Build: func(Facts) domain.StrategicMove {
			return domain.StrategicMove{
				ID:          "automate-contributions",
				Title:       "Automate contributions",
				Description: "Schedule automatic transfers right after payday. Automation keeps contributions consistent and compounding uninterrupted.",
				Rationale:   "always",
				TimeHorizon: "immediate",
				Impact:      "medium",
			}
		},
	},
}
