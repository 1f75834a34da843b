package calculation

import "github.com/rpgo/wealth-planner/internal/domain"

// referenceInput is a comfortable dual-goal household.
func referenceInput() domain.SimulationInput {
	return domain.SimulationInput{
		MonthlyIncome:          9000,
		MonthlyExpenses:        5500,
		CurrentSavings:         18000,
		ExpectedReturnRate:     8,
		InflationRate:          4,
		AdditionalContribution: 500,
		RiskTolerance:          6,
		Goals: []domain.Goal{
			{ID: "g1", Name: "Emergency fund", Amount: 40000, TargetYears: 3, Priority: domain.PriorityHigh},
			{ID: "g2", Name: "Retirement top-up", Amount: 300000, TargetYears: 15, Priority: domain.PriorityMedium},
		},
		Taxes: &domain.Taxes{IncomeTaxRate: 12, InvestmentTaxRate: 15},
		AnnualBonuses: []domain.AnnualBonus{
			{ID: "b1", Label: "13th salary", Month: 12, Amount: 9000},
			{ID: "b2", Label: "Profit share", Month: 3, Amount: 4000},
		},
		Scenario: domain.ScenarioSettings{
			IncomeGrowthRate:   3,
			ExpenseGrowthRate:  2,
			JobLossMonths:      2,
			UnexpectedExpense:  8000,
			OneTimeExtraIncome: 5000,
			LifestyleInflation: 1,
		},
		StressTests: &domain.StressTestSettings{MarketCrashDropPct: 22, InflationSpikePct: 6},
	}
}

// stressedInput barely covers its expenses.
func stressedInput() domain.SimulationInput {
	in := referenceInput()
	in.MonthlyIncome = 4000
	in.MonthlyExpenses = 3800
	in.CurrentSavings = 1000
	in.AdditionalContribution = 0
	return in
}

// flatInput has no taxes, growth, returns or shocks so balances can be computed by hand.
func flatInput() domain.SimulationInput {
	return domain.SimulationInput{
		MonthlyIncome:          1000,
		MonthlyExpenses:        400,
		AdditionalContribution: 100,
		RiskTolerance:          1,
		Goals: []domain.Goal{
			{ID: "g", Name: "Goal", Amount: 1000, TargetYears: 1, Priority: domain.PriorityHigh},
		},
	}
}

// constSource always returns the same uniform draw.
type constSource float64

func (c constSource) Float64() float64 { return float64(c) }
