package output

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// DefaultAssumptions are rendered when a report carries no input.
var DefaultAssumptions = []string{
	"Optimistic regime: +2pp income growth, -2pp expense growth, no job loss",
	"Pessimistic regime: -2pp income growth, +3pp expense growth, three extra months without work",
	"Returns compound monthly and are taxed at the investment tax rate",
	"Job loss and the unexpected expense hit in month 6",
	"Balances are floored at zero",
}

var decimalHundred = decimal.NewFromInt(100)

// GenerateAssumptions lists the modeling assumptions taken from the actual input.
func GenerateAssumptions(in *domain.SimulationInput) []string {
	if in == nil {
		return DefaultAssumptions
	}
	taxes := in.TaxRates()
	out := []string{
		fmt.Sprintf("Expected return: %.1f%% annually", in.ExpectedReturnRate),
		fmt.Sprintf("Inflation: %.1f%% annually", in.InflationRate),
		fmt.Sprintf("Income growth: %.1f%%, expense growth: %.1f%% annually", in.Scenario.IncomeGrowthRate, in.Scenario.ExpenseGrowthRate),
		fmt.Sprintf("Lifestyle inflation: %.1f%% annually", in.Scenario.LifestyleInflation),
		fmt.Sprintf("Taxes: %.1f%% on income, %.1f%% on returns", taxes.IncomeTaxRate, taxes.InvestmentTaxRate),
		fmt.Sprintf("Emergency fund target: %d months of expenses", in.RiskTolerance),
	}
	if in.StressTests != nil {
		out = append(out, fmt.Sprintf("Stress tests: %.0f%% market crash, %.0f%% inflation spike",
			in.StressTests.MarketCrashDropPct, in.StressTests.InflationSpikePct))
	}
	return out
}
