package calculation

import (
	"context"
	"sync"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// DefaultMonteCarloIterations is the number of trials behind every shortfall probability.
const DefaultMonteCarloIterations = 200

// defaultMonteCarloWorkers bounds concurrent trials.
const defaultMonteCarloWorkers = 10

// Perturbation bounds applied to each trial.
const (
	incomeJitterLow, incomeJitterHigh   = -0.12, 0.12
	expenseJitterLow, expenseJitterHigh = -0.10, 0.12
	contributionJitter                  = 0.30
	returnRateStdDev                    = 6.0
	returnRateMin, returnRateMax        = -40.0, 30.0
	inflationStdDev                     = 2.0
	inflationMin, inflationMax          = -10.0, 25.0
	growthJitter                        = 1.5
	growthRateMin, growthRateMax        = -50.0, 50.0
)

// MonteCarloEstimator estimates the probability that the top-priority goal is missed by
// rerunning the projection over randomly perturbed inputs. Estimate may be called
// concurrently; draws from Source are serialized.
type MonteCarloEstimator struct {
	Iterations int
	Workers    int
	Source     RandomSource
	Logger     Logger

	mu sync.Mutex
}

// TrialOutcome is the top goal's result in one trial.
type TrialOutcome struct {
	Achieved        bool    `json:"achieved"`
	BalanceAtTarget float64 `json:"balanceAtTarget"`
	Shortfall       float64 `json:"shortfall"`
}

// MonteCarloResult summarizes a batch of trials.
type MonteCarloResult struct {
	GoalID               string         `json:"goalId"`
	Iterations           int            `json:"iterations"`
	Misses               int            `json:"misses"`
	ShortfallProbability float64        `json:"shortfallProbability"`
	Trials               []TrialOutcome `json:"trials"`
}

// NewMonteCarloEstimator creates an estimator with the default iteration count. A nil source
// falls back to a time-seeded one.
func NewMonteCarloEstimator(src RandomSource) *MonteCarloEstimator {
	if src == nil {
		src = NewRandomSource()
	}
	return &MonteCarloEstimator{
		Iterations: DefaultMonteCarloIterations,
		Workers:    defaultMonteCarloWorkers,
		Source:     src,
		Logger:     NopLogger{},
	}
}

// Perturb returns a jittered deep copy of the input. Draw order is fixed so that a seeded
// source reproduces the same trial.
func Perturb(in domain.SimulationInput, src RandomSource) domain.SimulationInput {
	out := in.Clone()
	out.MonthlyIncome = in.MonthlyIncome * (1 + uniform(src, incomeJitterLow, incomeJitterHigh))
	out.MonthlyExpenses = in.MonthlyExpenses * (1 + uniform(src, expenseJitterLow, expenseJitterHigh))
	out.AdditionalContribution = in.AdditionalContribution * (1 + uniform(src, -contributionJitter, contributionJitter))
	out.ExpectedReturnRate = clamp(normal(src, in.ExpectedReturnRate, returnRateStdDev), returnRateMin, returnRateMax)
	out.InflationRate = clamp(normal(src, in.InflationRate, inflationStdDev), inflationMin, inflationMax)
	out.Scenario.IncomeGrowthRate = clamp(in.Scenario.IncomeGrowthRate+uniform(src, -growthJitter, growthJitter), growthRateMin, growthRateMax)
	out.Scenario.ExpenseGrowthRate = clamp(in.Scenario.ExpenseGrowthRate+uniform(src, -growthJitter, growthJitter), growthRateMin, growthRateMax)
	return out
}

// Estimate runs the trials. With no goals it returns a zero probability without drawing.
// The only error is the context's.
func (mc *MonteCarloEstimator) Estimate(ctx context.Context, in domain.SimulationInput) (*MonteCarloResult, error) {
	top, ok := domain.TopGoal(in.Goals)
	if !ok || mc.Iterations <= 0 {
		return &MonteCarloResult{Iterations: mc.Iterations}, nil
	}

	// Draw every perturbation up front so results do not depend on goroutine scheduling.
	inputs := make([]domain.SimulationInput, mc.Iterations)
	mc.mu.Lock()
	for i := range inputs {
		inputs[i] = Perturb(in, mc.Source)
	}
	mc.mu.Unlock()

	workers := mc.Workers
	if workers <= 0 {
		workers = 1
	}

	trials := make([]TrialOutcome, mc.Iterations)
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i := range inputs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			trials[idx] = runTrial(inputs[idx], top)
		}(i)
	}
	wg.Wait()

	misses := 0
	for _, t := range trials {
		if !t.Achieved {
			misses++
		}
	}

	result := &MonteCarloResult{
		GoalID:               top.ID,
		Iterations:           mc.Iterations,
		Misses:               misses,
		ShortfallProbability: float64(misses) / float64(mc.Iterations),
		Trials:               trials,
	}
	mc.logger().Debugf("monte carlo: goal=%s misses=%d/%d", top.ID, misses, mc.Iterations)
	return result, nil
}

func (mc *MonteCarloEstimator) logger() Logger {
	if mc.Logger == nil {
		return NopLogger{}
	}
	return mc.Logger
}

func runTrial(in domain.SimulationInput, goal domain.Goal) TrialOutcome {
	proj := ProjectMonthly(in, ResolveScenario(in.Scenario, ScenarioOverrides{}))
	outcome := AnalyzeGoal(goal, proj.Timeline, proj.AchievedMonths[goal.ID])
	return TrialOutcome{
		Achieved:        outcome.Achieved,
		BalanceAtTarget: outcome.BalanceAtTarget,
		Shortfall:       outcome.Shortfall,
	}
}
