package output

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// RegimeSpread ranks the regimes by final balance against the baseline.
type RegimeSpread struct {
	Best             string
	Worst            string
	BestBalance      decimal.Decimal
	WorstBalance     decimal.Decimal
	BaselineBalance  decimal.Decimal
	UpsideChange     decimal.Decimal
	DownsideChange   decimal.Decimal
	UpsidePercentage decimal.Decimal
}

// AnalyzeRegimes finds the regimes with the highest and lowest final balance.
func AnalyzeRegimes(result *domain.SimulationResult) RegimeSpread {
	if result == nil || len(result.Scenarios) == 0 {
		return RegimeSpread{}
	}
	type ranked struct {
		label   string
		balance decimal.Decimal
	}
	ranks := make([]ranked, 0, len(result.Scenarios))
	baseline := decimal.Zero
	for _, sc := range result.Scenarios {
		bal := decimal.NewFromFloat(sc.Summary.FinalBalance)
		ranks = append(ranks, ranked{sc.Label, bal})
		if sc.ID == domain.ScenarioBaseline {
			baseline = bal
		}
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].balance.GreaterThan(ranks[j].balance) })

	best, worst := ranks[0], ranks[len(ranks)-1]
	spread := RegimeSpread{
		Best:            best.label,
		Worst:           worst.label,
		BestBalance:     best.balance,
		WorstBalance:    worst.balance,
		BaselineBalance: baseline,
		UpsideChange:    best.balance.Sub(baseline),
		DownsideChange:  worst.balance.Sub(baseline),
	}
	if !baseline.IsZero() {
		spread.UpsidePercentage = spread.UpsideChange.Div(baseline).Mul(decimalHundred).Round(2)
	}
	return spread
}
