package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rpgo/wealth-planner/internal/domain"
)

func TestAnalyzeRegimes(t *testing.T) {
	spread := AnalyzeRegimes(buildTestReport().Simulation)

	assert.Equal(t, "Optimistic scenario", spread.Best)
	assert.Equal(t, "Pessimistic scenario", spread.Worst)
	assert.True(t, spread.BaselineBalance.Equal(decimal.NewFromInt(14030)))
	assert.True(t, spread.DownsideChange.Equal(decimal.NewFromInt(-5030)), spread.DownsideChange.String())
}

func TestAnalyzeRegimesEmpty(t *testing.T) {
	assert.Equal(t, RegimeSpread{}, AnalyzeRegimes(nil))
	assert.Equal(t, RegimeSpread{}, AnalyzeRegimes(&domain.SimulationResult{}))
}

func TestAnalyzeRegimesZeroBaseline(t *testing.T) {
	sim := &domain.SimulationResult{Scenarios: []domain.ScenarioResult{
		{ID: domain.ScenarioBaseline, Label: "Baseline"},
		{ID: domain.ScenarioOptimistic, Label: "Optimistic", Summary: domain.ScenarioSummary{FinalBalance: 100}},
	}}
	spread := AnalyzeRegimes(sim)
	assert.Equal(t, "Optimistic", spread.Best)
	assert.True(t, spread.UpsidePercentage.IsZero())
}
