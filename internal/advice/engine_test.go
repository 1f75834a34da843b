package advice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/domain"
)

func stressedInput() domain.SimulationInput {
	return domain.SimulationInput{
		MonthlyIncome:      4000,
		MonthlyExpenses:    3800,
		CurrentSavings:     1000,
		ExpectedReturnRate: 8,
		InflationRate:      4,
		RiskTolerance:      6,
		Goals: []domain.Goal{
			{ID: "g1", Name: "Emergency fund", Amount: 40000, TargetYears: 3, Priority: domain.PriorityHigh},
			{ID: "g2", Name: "Retirement top-up", Amount: 300000, TargetYears: 15, Priority: domain.PriorityMedium},
		},
		Taxes:    &domain.Taxes{IncomeTaxRate: 12, InvestmentTaxRate: 15},
		Scenario: domain.ScenarioSettings{JobLossMonths: 3},
	}
}

func simulate(t *testing.T, in domain.SimulationInput) *domain.SimulationResult {
	t.Helper()
	engine := calculation.NewCalculationEngineWithSource(calculation.NewSeededSource(7))
	result, err := engine.Simulate(context.Background(), in)
	require.NoError(t, err)
	return result
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}

func TestRecommendStressedHousehold(t *testing.T) {
	in := stressedInput()
	result := simulate(t, in)

	rec, err := NewEngine().Recommend(in, result)
	require.NoError(t, err)

	quickWins := ids(rec.QuickWins, func(a domain.Advice) string { return a.ID })
	assert.Equal(t, []string{
		"increase-savings-rate",
		"strengthen-emergency-fund",
		"build-alternative-income",
		"grow-passive-income",
	}, quickWins)

	moves := ids(rec.StrategicMoves, func(m domain.StrategicMove) string { return m.ID })
	require.NotEmpty(t, moves)
	assert.Equal(t, "top-goal-top-up", moves[0])
	assert.Contains(t, moves, "build-emergency-fund")
	assert.Equal(t, "automate-contributions", moves[len(moves)-1])

	require.Len(t, rec.RiskMitigation, 2)
	assert.Equal(t, domain.StressMarketCrash, rec.RiskMitigation[0].StressTestID)
	assert.Equal(t, "Market crash", rec.RiskMitigation[0].Scenario)
	assert.Equal(t, domain.StressInflationSpike, rec.RiskMitigation[1].StressTestID)

	require.Len(t, rec.ExpenseCuts, 1)
	assert.Equal(t, "Review general expenses", rec.ExpenseCuts[0].Title)

	assert.Equal(t, "leveraged-aggressive", rec.Persona.ID)
	assert.Equal(t, 0.05, rec.KPIs.SavingsRate)
	assert.InDelta(t, 1000.0/3800, rec.KPIs.RunwayMonths, 1e-9)
	assert.Greater(t, rec.KPIs.RequiredMonthlyContribution, 0.0)
	assert.False(t, rec.KPIs.TopGoalAchieved)
}

func TestRecommendHealthyHousehold(t *testing.T) {
	in := domain.SimulationInput{
		MonthlyIncome:          20000,
		MonthlyExpenses:        6000,
		CurrentSavings:         1500000,
		ExpectedReturnRate:     8,
		InflationRate:          3,
		AdditionalContribution: 1000,
		RiskTolerance:          3,
		Goals: []domain.Goal{
			{ID: "car", Name: "Car", Amount: 50000, TargetYears: 2, Priority: domain.PriorityHigh},
		},
	}
	result := simulate(t, in)

	rec, err := NewEngine().Recommend(in, result)
	require.NoError(t, err)

	assert.Empty(t, rec.QuickWins)
	assert.Empty(t, rec.ExpenseCuts)
	moves := ids(rec.StrategicMoves, func(m domain.StrategicMove) string { return m.ID })
	assert.Equal(t, []string{"automate-contributions"}, moves)
	assert.True(t, rec.KPIs.TopGoalAchieved)
	assert.Equal(t, 1, rec.KPIs.GoalsAchieved)
	assert.Zero(t, rec.KPIs.RequiredMonthlyContribution)
}

func TestRecommendWithoutGoals(t *testing.T) {
	in := stressedInput()
	in.Goals = nil
	result := simulate(t, in)

	rec, err := NewEngine().Recommend(in, result)
	require.NoError(t, err)

	moves := ids(rec.StrategicMoves, func(m domain.StrategicMove) string { return m.ID })
	assert.NotContains(t, moves, "top-goal-top-up")
	assert.NotContains(t, moves, "rebalance-secondary-goals")
	assert.NotContains(t, moves, "shortfall-risk-warning")
	assert.Zero(t, rec.KPIs.RequiredMonthlyContribution)
}

func TestRecommendNilResult(t *testing.T) {
	_, err := NewEngine().Recommend(stressedInput(), nil)
	assert.ErrorIs(t, err, ErrNilResult)
}

func TestApplyKeepsRuleOrder(t *testing.T) {
	rules := []Rule[string]{
		{ID: "a", When: func(Facts) bool { return true }, Build: func(Facts) string { return "a" }},
		{ID: "b", When: func(Facts) bool { return false }, Build: func(Facts) string { return "b" }},
		{ID: "c", When: func(f Facts) bool { return f.SavingsRate > 0.5 }, Build: func(Facts) string { return "c" }},
	}

	assert.Equal(t, []string{"a"}, Apply(rules, Facts{SavingsRate: 0.1}))
	assert.Equal(t, []string{"a", "c"}, Apply(rules, Facts{SavingsRate: 0.6}))
}

func TestSecondaryShortfallRule(t *testing.T) {
	f := Facts{
		TopGoal: &domain.GoalAnalytics{GoalOutcome: domain.GoalOutcome{ID: "g1", Name: "Top", TargetMonth: 36}},
		SecondaryShortfalls: []domain.GoalAnalytics{
			{GoalOutcome: domain.GoalOutcome{ID: "g2", Name: "House", Shortfall: 10}},
		},
	}
	moves := Apply(DefaultStrategicMoves, f)
	got := ids(moves, func(m domain.StrategicMove) string { return m.ID })
	assert.Equal(t, []string{"rebalance-secondary-goals", "automate-contributions"}, got)
	assert.Contains(t, moves[0].Description, "House")
}

func TestBuildRiskMitigation(t *testing.T) {
	crashed, eroded := 80000.0, 50000.0
	tests := []domain.StressTestResult{
		{ID: domain.StressMarketCrash, Severity: 20, FinalBalanceAfterShock: &crashed, GoalStillViable: true},
		{ID: domain.StressInflationSpike, Severity: 5, RealBalanceAfterShock: &eroded, GoalStillViable: false},
		{ID: "custom"},
	}

	got := BuildRiskMitigation(tests)

	require.Len(t, got, 3)
	assert.Contains(t, got[0].Insight, "$80000.00")
	assert.NotContains(t, got[0].Insight, "no longer")
	assert.Contains(t, got[1].Insight, "$50000.00")
	assert.Contains(t, got[1].Insight, "no longer")
	assert.Equal(t, "Monitored risk", got[2].Scenario)
}
