package output

import "github.com/rpgo/wealth-planner/internal/domain"

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func buildTestReport() *Report {
	goal := func(achieved bool, balance float64) domain.GoalOutcome {
		g := domain.GoalOutcome{
			ID: "house", Name: "House deposit", Priority: domain.PriorityHigh,
			TargetAmount: 50000, TargetMonth: 36, Achieved: achieved, BalanceAtTarget: balance,
		}
		if achieved {
			g.AchievedMonth = intPtr(30)
			g.CompletionRatio = 1
		} else {
			g.Shortfall = 50000 - balance
			g.CompletionRatio = balance / 50000
		}
		return g
	}
	scenario := func(id, label string, final float64, achieved bool) domain.ScenarioResult {
		g := goal(achieved, final*0.8)
		count := 0
		if achieved {
			count = 1
		}
		return domain.ScenarioResult{
			ID:    id,
			Label: label,
			Timeline: []domain.MonthlyPoint{
				{Month: 1, Year: 1, Income: 5000, Expenses: 3000, Contribution: 2000, Returns: 10, Balance: 12010, RealBalance: 11970.5, EmergencyCoverage: 1.33},
				{Month: 2, Year: 1, Income: 5000, Expenses: 3000, Contribution: 2000, Returns: 20, Balance: final, RealBalance: final * 0.99, EmergencyCoverage: 1.56},
			},
			Summary: domain.ScenarioSummary{
				FinalBalance:       final,
				FinalRealBalance:   final * 0.99,
				TotalContributed:   4000,
				TotalReturns:       30,
				Goals:              []domain.GoalOutcome{g},
				GoalsAchievedCount: count,
			},
		}
	}

	in := &domain.SimulationInput{
		MonthlyIncome:          5000,
		MonthlyExpenses:        3000,
		CurrentSavings:         10000,
		ExpectedReturnRate:     7,
		InflationRate:          3,
		AdditionalContribution: 0,
		RiskTolerance:          3,
		Goals:                  []domain.Goal{{ID: "house", Name: "House deposit", Amount: 50000, TargetYears: 3, Priority: domain.PriorityHigh}},
		Taxes:                  &domain.Taxes{IncomeTaxRate: 12, InvestmentTaxRate: 15},
		StressTests:            &domain.StressTestSettings{MarketCrashDropPct: 20, InflationSpikePct: 5},
	}

	baseline := scenario(domain.ScenarioBaseline, "Baseline scenario", 14030, true)
	optimistic := scenario(domain.ScenarioOptimistic, "Optimistic scenario", 1234567.891, true)
	pessimistic := scenario(domain.ScenarioPessimistic, "Pessimistic scenario", 9000, false)

	sim := &domain.SimulationResult{
		// deliberately out of order
		Scenarios: []domain.ScenarioResult{pessimistic, baseline, optimistic},
		Summary: domain.SimulationSummary{
			Baseline:                   baseline.Summary,
			Optimistic:                 optimistic.Summary,
			Pessimistic:                pessimistic.Summary,
			Goals:                      []domain.GoalAnalytics{{GoalOutcome: baseline.Summary.Goals[0]}},
			SavingsRate:                0.4,
			EmergencyFundTarget:        9000,
			EmergencyFundCoverage:      1,
			FinancialIndependenceIndex: 0.19,
			ShortfallProbability:       0.125,
			MonteCarloIterations:       200,
		},
		StressTests: []domain.StressTestResult{
			{ID: domain.StressMarketCrash, Label: "Market crash", Severity: 20, FinalBalanceAfterShock: floatPtr(11224), GoalStillViable: true},
			{ID: domain.StressInflationSpike, Label: "Inflation spike", Severity: 5, RealBalanceAfterShock: floatPtr(13362), GoalStillViable: false},
		},
	}

	rec := &domain.Recommendations{
		QuickWins:      []domain.Advice{{ID: "strengthen-emergency-fund", Title: "Strengthen emergency fund", Description: "Build three months of runway."}},
		ExpenseCuts:    []domain.ExpenseCut{{Category: "Leisure", Title: "Trim leisure", EstimatedMonthlyImpact: 120.5}},
		StrategicMoves: []domain.StrategicMove{{ID: "automate-contributions", Title: "Automate contributions", TimeHorizon: "1 month", Description: "Schedule transfers."}},
		RiskMitigation: []domain.RiskMitigation{{StressTestID: domain.StressMarketCrash, Insight: "A crash costs 20 percent.", Action: "Diversify."}},
		Persona:        domain.Persona{ID: "balanced-builder", Label: "Balanced builder"},
		Benchmark:      domain.BenchmarkAnalysis{Profile: "Young singles in capital cities"},
	}
	return &Report{Input: in, Simulation: sim, Recommendations: rec}
}
