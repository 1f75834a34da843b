package advice

import (
	"errors"
	"fmt"
	"math"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/pkg/decimal"
)

// ErrNilResult is returned when recommendations are requested without a simulation.
var ErrNilResult = errors.New("simulation result is required")

// Engine turns a simulation into advice. Its fields are read-only after construction, so
// one Engine can serve concurrent requests.
type Engine struct {
	Benchmarks     []BenchmarkProfile
	Classifier     *Classifier
	QuickWins      []Rule[domain.Advice]
	StrategicMoves []Rule[domain.StrategicMove]
}

// NewEngine builds an engine with the default benchmarks, personas and rules.
func NewEngine() *Engine {
	classifier, err := NewClassifier(DefaultPersonas)
	if err != nil {
		// DefaultPersonas are static
		panic(err)
	}
	return &Engine{
		Benchmarks:     DefaultBenchmarks,
		Classifier:     classifier,
		QuickWins:      DefaultQuickWins,
		StrategicMoves: DefaultStrategicMoves,
	}
}

// Recommend produces the advice bundle for a simulated input.
func (e *Engine) Recommend(in domain.SimulationInput, result *domain.SimulationResult) (*domain.Recommendations, error) {
	if result == nil {
		return nil, ErrNilResult
	}

	facts := NewFacts(in, result)
	benchmark := AnalyzeBenchmark(e.Benchmarks, in)

	persona, err := e.Classifier.Classify([]float64{
		facts.SavingsRate,
		benchmark.DiscretionaryRatio,
		result.Summary.EmergencyFundCoverage,
	})
	if err != nil {
		return nil, fmt.Errorf("classify persona: %w", err)
	}

	kpis := domain.KPIs{
		SavingsRate:                math.Max(facts.SavingsRate, 0),
		RunwayMonths:               facts.RunwayMonths,
		FinancialIndependenceIndex: facts.FinancialIndependenceIndex,
		ShortfallProbability:       result.Summary.ShortfallProbability,
		DiscretionaryRatio:         benchmark.DiscretionaryRatio,
		GoalsAchieved:              result.Summary.Baseline.GoalsAchievedCount,
	}
	if facts.TopGoal != nil {
		kpis.RequiredMonthlyContribution = facts.TopGoal.AdditionalMonthlyContribution
		kpis.TopGoalAchieved = facts.TopGoal.Achieved
	}

	return &domain.Recommendations{
		QuickWins:      Apply(e.QuickWins, facts),
		ExpenseCuts:    BuildExpenseCuts(in, benchmark),
		StrategicMoves: Apply(e.StrategicMoves, facts),
		RiskMitigation: BuildRiskMitigation(result.StressTests),
		Persona:        persona,
		Benchmark:      benchmark,
		KPIs:           kpis,
	}, nil
}

// BuildRiskMitigation frames every stress test as an action.
func BuildRiskMitigation(tests []domain.StressTestResult) []domain.RiskMitigation {
	out := make([]domain.RiskMitigation, 0, len(tests))
	for _, st := range tests {
		rm := domain.RiskMitigation{StressTestID: st.ID}
		switch st.ID {
		case domain.StressMarketCrash:
			rm.Scenario = "Market crash"
			rm.Insight = fmt.Sprintf("A %.0f%% drop would cut your final balance to %s.",
				st.Severity, decimal.NewMoney(st.ShockedValue()).Format())
			rm.Action = "Diversify into inflation-linked and short-duration fixed income to cushion equity drawdowns."
		case domain.StressInflationSpike:
			rm.Scenario = "Inflation spike"
			rm.Insight = fmt.Sprintf("Five years of %.0f%% extra inflation would reduce final purchasing power to %s.",
				st.Severity, decimal.NewMoney(st.ShockedValue()).Format())
			rm.Action = "Hold inflation-indexed bonds and review salary adjustment clauses."
		default:
			rm.Scenario = "Monitored risk"
			rm.Insight = "Review the plan every quarter."
			rm.Action = "Update projections whenever income or expenses change materially."
		}
		if !st.GoalStillViable {
			rm.Insight += " The top goal would no longer be reachable."
		}
		out = append(out, rm)
	}
	return out
}
