package store

import "github.com/rpgo/wealth-planner/internal/domain"

// DefaultPresets are the certified plans written into an empty store.
func DefaultPresets() []domain.Preset {
	return []domain.Preset{
		{
			Slug:        "balanced-family",
			Title:       "Balanced family",
			Description: "Certified plan for families with a joint income between $12k and $18k.",
			Input: domain.SimulationInput{
				MonthlyIncome:          15000,
				MonthlyExpenses:        9500,
				CurrentSavings:         40000,
				AdditionalContribution: 1200,
				ExpectedReturnRate:     8,
				InflationRate:          4,
				RiskTolerance:          3,
				Scenario: domain.ScenarioSettings{
					IncomeGrowthRate:   3,
					ExpenseGrowthRate:  2,
					JobLossMonths:      3,
					UnexpectedExpense:  12000,
					OneTimeExtraIncome: 8000,
					LifestyleInflation: 1.2,
				},
				Goals: []domain.Goal{
					{ID: "emergency-reserve", Name: "Solid emergency reserve", Amount: 30000, TargetYears: 2, Priority: domain.PriorityHigh},
					{ID: "home-down-payment", Name: "Home down payment", Amount: 180000, TargetYears: 6, Priority: domain.PriorityHigh},
					{ID: "children-education", Name: "Children's higher education", Amount: 90000, TargetYears: 8, Priority: domain.PriorityMedium},
				},
			},
			CertifiedBy:        "Certified financial planner",
			CertificationLevel: "CFP",
			Badge:              "cfp",
		},
		{
			Slug:        "career-sprint",
			Title:       "Career sprint",
			Description: "Focus on accelerating wealth in the first years of a career.",
			Input: domain.SimulationInput{
				MonthlyIncome:          8000,
				MonthlyExpenses:        4800,
				CurrentSavings:         15000,
				AdditionalContribution: 900,
				ExpectedReturnRate:     9,
				InflationRate:          4,
				RiskTolerance:          4,
				Scenario: domain.ScenarioSettings{
					IncomeGrowthRate:   6,
					ExpenseGrowthRate:  3,
					JobLossMonths:      1,
					UnexpectedExpense:  6000,
					OneTimeExtraIncome: 5000,
					LifestyleInflation: 1.5,
				},
				Goals: []domain.Goal{
					{ID: "safety-reserve", Name: "Safety reserve", Amount: 25000, TargetYears: 2, Priority: domain.PriorityHigh},
					{ID: "international-mba", Name: "International MBA", Amount: 70000, TargetYears: 4, Priority: domain.PriorityMedium},
					{ID: "private-pension", Name: "Private pension contribution", Amount: 60000, TargetYears: 8, Priority: domain.PriorityLow},
				},
			},
			CertifiedBy:        "Certified investment advisor",
			CertificationLevel: "CPA-20",
			Badge:              "cpa20",
		},
	}
}
