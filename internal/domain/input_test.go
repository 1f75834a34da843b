package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
	}{
		{"high", PriorityHigh},
		{" Alta ", PriorityHigh},
		{"media", PriorityMedium},
		{"média", PriorityMedium},
		{"LOW", PriorityLow},
		{"baixa", PriorityLow},
		{"urgent", Priority("urgent")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePriority(tt.in))
		})
	}
	assert.False(t, Priority("urgent").Valid())
	assert.True(t, PriorityLow.Valid())
}

func TestPriorityDecoding(t *testing.T) {
	var g Goal
	require.NoError(t, json.Unmarshal([]byte(`{"id":"g","name":"Car","amount":10,"targetYears":2,"priority":"alta"}`), &g))
	assert.Equal(t, PriorityHigh, g.Priority)

	var y Goal
	require.NoError(t, yaml.Unmarshal([]byte("id: g\nname: Car\namount: 10\ntarget_years: 2\npriority: baixa\n"), &y))
	assert.Equal(t, PriorityLow, y.Priority)

	assert.Error(t, json.Unmarshal([]byte(`{"priority":3}`), &g))
}

func TestSortedGoals(t *testing.T) {
	goals := []Goal{
		{ID: "trip", Priority: PriorityLow, TargetYears: 1},
		{ID: "house", Priority: PriorityHigh, TargetYears: 10},
		{ID: "car", Priority: PriorityMedium, TargetYears: 3},
		{ID: "reserve", Priority: PriorityHigh, TargetYears: 2},
	}
	sorted := SortedGoals(goals)

	ids := make([]string, len(sorted))
	for i, g := range sorted {
		ids[i] = g.ID
	}
	assert.Equal(t, []string{"reserve", "house", "car", "trip"}, ids)
	assert.Equal(t, "trip", goals[0].ID, "input must not be reordered")

	top, ok := TopGoal(goals)
	require.True(t, ok)
	assert.Equal(t, "reserve", top.ID)

	_, ok = TopGoal(nil)
	assert.False(t, ok)
}

func TestHorizonMonths(t *testing.T) {
	assert.Equal(t, 12, HorizonMonths(nil))
	assert.Equal(t, 60, HorizonMonths([]Goal{{TargetYears: 2}, {TargetYears: 5}}))
	assert.Equal(t, 36, Goal{TargetYears: 3}.TargetMonth())
}

func TestCloneDoesNotShare(t *testing.T) {
	in := SimulationInput{
		Goals:       []Goal{{ID: "a", Amount: 100}},
		Taxes:       &Taxes{IncomeTaxRate: 12},
		StressTests: &StressTestSettings{MarketCrashDropPct: 20},
	}
	out := in.Clone()
	out.Goals[0].Amount = 5
	out.Taxes.IncomeTaxRate = 30
	out.StressTests.MarketCrashDropPct = 50

	assert.Equal(t, 100.0, in.Goals[0].Amount)
	assert.Equal(t, 12.0, in.Taxes.IncomeTaxRate)
	assert.Equal(t, 20.0, in.StressTests.MarketCrashDropPct)
	assert.Equal(t, Taxes{}, SimulationInput{}.TaxRates())
}

func TestSimulationResultLookups(t *testing.T) {
	r := SimulationResult{Scenarios: []ScenarioResult{
		{ID: ScenarioBaseline, Timeline: []MonthlyPoint{{Month: 1}, {Month: 2, Balance: 42}}},
		{ID: ScenarioOptimistic},
	}}
	sc, ok := r.Scenario(ScenarioBaseline)
	require.True(t, ok)
	last, ok := sc.FinalPoint()
	require.True(t, ok)
	assert.Equal(t, 42.0, last.Balance)

	opt, _ := r.Scenario(ScenarioOptimistic)
	_, ok = opt.FinalPoint()
	assert.False(t, ok)

	_, ok = r.Scenario("missing")
	assert.False(t, ok)

	v := 10.0
	assert.Equal(t, 10.0, StressTestResult{RealBalanceAfterShock: &v}.ShockedValue())
	assert.Equal(t, 0.0, StressTestResult{}.ShockedValue())
}
