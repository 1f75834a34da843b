package calculation

import "github.com/rpgo/wealth-planner/internal/domain"

// BuildComparativeReport contrasts final balances and contributions across the regimes.
func BuildComparativeReport(baseline, optimistic, pessimistic domain.ScenarioSummary) domain.ComparativeReport {
	var report domain.ComparativeReport
	report.FinalBalances = domain.RegimeFigures{
		Baseline:    baseline.FinalBalance,
		Optimistic:  optimistic.FinalBalance,
		Pessimistic: pessimistic.FinalBalance,
	}
	report.TotalContributions = domain.RegimeFigures{
		Baseline:    baseline.TotalContributed,
		Optimistic:  optimistic.TotalContributed,
		Pessimistic: pessimistic.TotalContributed,
	}
	report.GrowthDifferentials.OptimisticVsBaseline = optimistic.FinalBalance - baseline.FinalBalance
	report.GrowthDifferentials.PessimisticVsBaseline = baseline.FinalBalance - pessimistic.FinalBalance
	return report
}

// ComparativeReportFor builds the report straight from a simulation result.
func ComparativeReportFor(result *domain.SimulationResult) domain.ComparativeReport {
	s := result.Summary
	return BuildComparativeReport(s.Baseline, s.Optimistic, s.Pessimistic)
}
