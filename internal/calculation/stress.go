package calculation

import (
	"math"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// InflationSpikeYears is the fixed horizon over which an inflation spike erodes real wealth.
const InflationSpikeYears = 5

// Default shock magnitudes used when the input carries no stress-test block.
const (
	DefaultMarketCrashDropPct = 20
	DefaultInflationSpikePct  = 5
)

// BuildStressTests shocks the baseline's final point with a market crash and an inflation
// spike. Nothing is re-simulated.
func BuildStressTests(in domain.SimulationInput, baseline domain.ScenarioResult) []domain.StressTestResult {
	last, ok := baseline.FinalPoint()
	if !ok {
		return nil
	}

	settings := domain.StressTestSettings{
		MarketCrashDropPct: DefaultMarketCrashDropPct,
		InflationSpikePct:  DefaultInflationSpikePct,
	}
	if in.StressTests != nil {
		settings = *in.StressTests
	}

	crashed := last.Balance * (1 - settings.MarketCrashDropPct/100)
	eroded := last.RealBalance / math.Pow(1+settings.InflationSpikePct/100, InflationSpikeYears)

	viable := func(value float64) bool {
		top, ok := domain.TopGoal(in.Goals)
		if !ok {
			return true
		}
		return value >= top.Amount
	}

	return []domain.StressTestResult{
		{
			ID:                     domain.StressMarketCrash,
			Label:                  "Market crash",
			Severity:               settings.MarketCrashDropPct,
			FinalBalanceAfterShock: &crashed,
			GoalStillViable:        viable(crashed),
		},
		{
			ID:                    domain.StressInflationSpike,
			Label:                 "Inflation spike",
			Severity:              settings.InflationSpikePct,
			RealBalanceAfterShock: &eroded,
			GoalStillViable:       viable(eroded),
		},
	}
}
