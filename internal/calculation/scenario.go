package calculation

import (
	"math"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// MaxJobLossMonths caps the job-loss window of any regime.
const MaxJobLossMonths = 12

// ScenarioOverrides adjust a base scenario. Growth fields are deltas in percentage points;
// the pointer fields replace the base value when set.
type ScenarioOverrides struct {
	IncomeGrowthDelta  float64
	ExpenseGrowthDelta float64
	JobLossMonths      *int
	UnexpectedExpense  *float64
	OneTimeExtraIncome *float64
	LifestyleInflation *float64
}

// ScenarioParams is a fully resolved regime parameter set.
type ScenarioParams struct {
	IncomeGrowthRate   float64
	ExpenseGrowthRate  float64
	JobLossMonths      int
	UnexpectedExpense  float64
	OneTimeExtraIncome float64
	LifestyleInflation float64
}

// Regime binds a set of overrides to the presentation metadata of a scenario.
type Regime struct {
	ID        string
	Label     string
	Color     string
	Overrides ScenarioOverrides
}

// ResolveScenario applies overrides to the base scenario and clamps every value into range.
func ResolveScenario(base domain.ScenarioSettings, o ScenarioOverrides) ScenarioParams {
	p := ScenarioParams{
		IncomeGrowthRate:   base.IncomeGrowthRate + o.IncomeGrowthDelta,
		ExpenseGrowthRate:  base.ExpenseGrowthRate + o.ExpenseGrowthDelta,
		JobLossMonths:      base.JobLossMonths,
		UnexpectedExpense:  base.UnexpectedExpense,
		OneTimeExtraIncome: base.OneTimeExtraIncome,
		LifestyleInflation: base.LifestyleInflation,
	}
	if o.JobLossMonths != nil {
		p.JobLossMonths = *o.JobLossMonths
	}
	if o.UnexpectedExpense != nil {
		p.UnexpectedExpense = *o.UnexpectedExpense
	}
	if o.OneTimeExtraIncome != nil {
		p.OneTimeExtraIncome = *o.OneTimeExtraIncome
	}
	if o.LifestyleInflation != nil {
		p.LifestyleInflation = *o.LifestyleInflation
	}

	p.JobLossMonths = clampInt(p.JobLossMonths, 0, MaxJobLossMonths)
	p.UnexpectedExpense = math.Max(p.UnexpectedExpense, 0)
	p.OneTimeExtraIncome = math.Max(p.OneTimeExtraIncome, 0)
	p.LifestyleInflation = math.Max(p.LifestyleInflation, 0)
	return p
}

// OptimisticOverrides: faster income growth, slower expenses, no job loss, smaller shock,
// a windfall of 1.5 months of income and less lifestyle creep.
func OptimisticOverrides(in domain.SimulationInput) ScenarioOverrides {
	s := in.Scenario
	return ScenarioOverrides{
		IncomeGrowthDelta:  2,
		ExpenseGrowthDelta: -2,
		JobLossMonths:      intPtr(0),
		UnexpectedExpense:  floatPtr(s.UnexpectedExpense * 0.5),
		OneTimeExtraIncome: floatPtr(s.OneTimeExtraIncome + in.MonthlyIncome*1.5),
		LifestyleInflation: floatPtr(math.Max(s.LifestyleInflation-1, 0)),
	}
}

// PessimisticOverrides: slower income, faster expenses, three extra months without work,
// a shock three months of expenses larger, no windfall and more lifestyle creep.
func PessimisticOverrides(in domain.SimulationInput) ScenarioOverrides {
	s := in.Scenario
	return ScenarioOverrides{
		IncomeGrowthDelta:  -2,
		ExpenseGrowthDelta: 3,
		JobLossMonths:      intPtr(clampInt(s.JobLossMonths+3, 0, MaxJobLossMonths)),
		UnexpectedExpense:  floatPtr(s.UnexpectedExpense + in.MonthlyExpenses*3),
		OneTimeExtraIncome: floatPtr(0),
		LifestyleInflation: floatPtr(s.LifestyleInflation + 1.5),
	}
}

// Regimes returns baseline, optimistic and pessimistic, in that order.
func Regimes(in domain.SimulationInput) []Regime {
	return []Regime{
		{ID: domain.ScenarioBaseline, Label: "Baseline scenario", Color: "#2563eb"},
		{ID: domain.ScenarioOptimistic, Label: "Optimistic scenario", Color: "#22c55e", Overrides: OptimisticOverrides(in)},
		{ID: domain.ScenarioPessimistic, Label: "Pessimistic scenario", Color: "#f97316", Overrides: PessimisticOverrides(in)},
	}
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
