package domain

// MonthlyPoint is one month of a regime's projection.
type MonthlyPoint struct {
	Month             int     `json:"month" yaml:"month"`
	Year              int     `json:"year" yaml:"year"`
	Income            float64 `json:"income" yaml:"income"`
	Expenses          float64 `json:"expenses" yaml:"expenses"`
	Contribution      float64 `json:"contribution" yaml:"contribution"`
	Returns           float64 `json:"returns" yaml:"returns"`
	Balance           float64 `json:"balance" yaml:"balance"`
	RealBalance       float64 `json:"realBalance" yaml:"real_balance"`
	EmergencyCoverage float64 `json:"emergencyCoverage" yaml:"emergency_coverage"`
}

// CoveragePoint samples emergency-fund coverage at the end of a projection year.
type CoveragePoint struct {
	Year     int     `json:"year" yaml:"year"`
	Month    int     `json:"month" yaml:"month"`
	Coverage float64 `json:"coverage" yaml:"coverage"`
}

// GoalOutcome describes how one regime fares against one goal.
type GoalOutcome struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Priority        Priority `json:"priority" yaml:"priority"`
	TargetAmount    float64  `json:"targetAmount" yaml:"target_amount"`
	TargetMonth     int      `json:"targetMonth" yaml:"target_month"`
	Achieved        bool     `json:"achieved" yaml:"achieved"`
	AchievedMonth   *int     `json:"achievedMonth" yaml:"achieved_month"`
	BalanceAtTarget float64  `json:"balanceAtTarget" yaml:"balance_at_target"`
	Shortfall       float64  `json:"shortfall" yaml:"shortfall"`
	CompletionRatio float64  `json:"completionRatio" yaml:"completion_ratio"`
}

// ScenarioSummary aggregates a regime's timeline.
type ScenarioSummary struct {
	FinalBalance              float64         `json:"finalBalance" yaml:"final_balance"`
	FinalRealBalance          float64         `json:"finalRealBalance" yaml:"final_real_balance"`
	TotalContributed          float64         `json:"totalContributed" yaml:"total_contributed"`
	TotalReturns              float64         `json:"totalReturns" yaml:"total_returns"`
	Goals                     []GoalOutcome   `json:"goals" yaml:"goals"`
	GoalsAchievedCount        int             `json:"goalsAchievedCount" yaml:"goals_achieved_count"`
	EmergencyCoverageTimeline []CoveragePoint `json:"emergencyCoverageTimeline" yaml:"emergency_coverage_timeline"`
}

// ScenarioResult is the full projection of one regime.
type ScenarioResult struct {
	ID       string          `json:"id" yaml:"id"`
	Label    string          `json:"label" yaml:"label"`
	Color    string          `json:"color" yaml:"color"`
	Timeline []MonthlyPoint  `json:"timeline" yaml:"timeline"`
	Summary  ScenarioSummary `json:"summary" yaml:"summary"`
}

// FinalPoint returns the last timeline entry, or false for an empty timeline.
func (sr ScenarioResult) FinalPoint() (MonthlyPoint, bool) {
	if len(sr.Timeline) == 0 {
		return MonthlyPoint{}, false
	}
	return sr.Timeline[len(sr.Timeline)-1], true
}

// GoalRegimeStatus is a goal's outcome in a non-baseline regime.
type GoalRegimeStatus struct {
	ScenarioID      string  `json:"scenarioId" yaml:"scenario_id"`
	Achieved        bool    `json:"achieved" yaml:"achieved"`
	AchievedMonth   *int    `json:"achievedMonth" yaml:"achieved_month"`
	Shortfall       float64 `json:"shortfall" yaml:"shortfall"`
	CompletionRatio float64 `json:"completionRatio" yaml:"completion_ratio"`
}

// GoalAnalytics is the baseline outcome of a goal enriched with the top-up needed to close
// its shortfall and its status under every regime.
type GoalAnalytics struct {
	GoalOutcome                   `yaml:",inline"`
	AdditionalMonthlyContribution float64            `json:"additionalMonthlyContribution" yaml:"additional_monthly_contribution"`
	Regimes                       []GoalRegimeStatus `json:"regimes" yaml:"regimes"`
}

// StressTestResult is the effect of one instantaneous shock on the baseline's final state.
type StressTestResult struct {
	ID                     string   `json:"id" yaml:"id"`
	Label                  string   `json:"label" yaml:"label"`
	Severity               float64  `json:"severity" yaml:"severity"`
	FinalBalanceAfterShock *float64 `json:"finalBalanceAfterShock,omitempty" yaml:"final_balance_after_shock,omitempty"`
	RealBalanceAfterShock  *float64 `json:"realBalanceAfterShock,omitempty" yaml:"real_balance_after_shock,omitempty"`
	GoalStillViable        bool     `json:"goalStillViable" yaml:"goal_still_viable"`
}

// ShockedValue returns whichever balance the shock produced.
func (st StressTestResult) ShockedValue() float64 {
	switch {
	case st.FinalBalanceAfterShock != nil:
		return *st.FinalBalanceAfterShock
	case st.RealBalanceAfterShock != nil:
		return *st.RealBalanceAfterShock
	default:
		return 0
	}
}

// SimulationSummary aggregates all regimes.
type SimulationSummary struct {
	Baseline                   ScenarioSummary `json:"baseline" yaml:"baseline"`
	Optimistic                 ScenarioSummary `json:"optimistic" yaml:"optimistic"`
	Pessimistic                ScenarioSummary `json:"pessimistic" yaml:"pessimistic"`
	Goals                      []GoalAnalytics `json:"goals" yaml:"goals"`
	SavingsRate                float64         `json:"savingsRate" yaml:"savings_rate"`
	EmergencyFundTarget        float64         `json:"emergencyFundTarget" yaml:"emergency_fund_target"`
	EmergencyFundGap           float64         `json:"emergencyFundGap" yaml:"emergency_fund_gap"`
	EmergencyFundCoverage      float64         `json:"emergencyFundCoverage" yaml:"emergency_fund_coverage"`
	FinancialIndependenceIndex float64         `json:"financialIndependenceIndex" yaml:"financial_independence_index"`
	ShortfallProbability       float64         `json:"shortfallProbability" yaml:"shortfall_probability"`
	MonteCarloIterations       int             `json:"monteCarloIterations" yaml:"monte_carlo_iterations"`
}

// TopGoalAnalytics returns the analytics of the highest-priority goal, if any.
func (s SimulationSummary) TopGoalAnalytics() (GoalAnalytics, bool) {
	if len(s.Goals) == 0 {
		return GoalAnalytics{}, false
	}
	return s.Goals[0], true
}

// SimulationResult is the output of a full simulation.
type SimulationResult struct {
	Scenarios   []ScenarioResult   `json:"scenarios" yaml:"scenarios"`
	Summary     SimulationSummary  `json:"summary" yaml:"summary"`
	StressTests []StressTestResult `json:"stressTests" yaml:"stress_tests"`
}

// Scenario looks up a regime by id.
func (r SimulationResult) Scenario(id string) (ScenarioResult, bool) {
	for _, sc := range r.Scenarios {
		if sc.ID == id {
			return sc, true
		}
	}
	return ScenarioResult{}, false
}

// Regime ids.
const (
	ScenarioBaseline    = "baseline"
	ScenarioOptimistic  = "optimistic"
	ScenarioPessimistic = "pessimistic"
)

// Stress test ids.
const (
	StressMarketCrash    = "marketCrash"
	StressInflationSpike = "inflationSpike"
)
