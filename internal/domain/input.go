package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/rpgo/wealth-planner/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// Priority ranks a goal. Goals are always processed high before medium before low.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// priorityAliases maps accepted spellings (including the legacy Portuguese ones) to a Priority.
var priorityAliases = map[string]Priority{
	"high":   PriorityHigh,
	"alta":   PriorityHigh,
	"medium": PriorityMedium,
	"media":  PriorityMedium,
	"média":  PriorityMedium,
	"low":    PriorityLow,
	"baixa":  PriorityLow,
}

// ParsePriority normalizes a priority name. Unknown names are returned unchanged so
// that validation can reject them with a useful message.
func ParsePriority(s string) Priority {
	if p, ok := priorityAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p
	}
	return Priority(s)
}

// Rank returns 0 for high, 1 for medium, 2 for low and 3 for anything else.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool { return p.Rank() < 3 }

func (p *Priority) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("priority must be a string: %w", err)
	}
	*p = ParsePriority(s)
	return nil
}

func (p *Priority) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	*p = ParsePriority(s)
	return nil
}

// Goal is a savings target the household wants to reach within TargetYears.
type Goal struct {
	ID          string   `yaml:"id" json:"id" validate:"required"`
	Name        string   `yaml:"name" json:"name" validate:"required"`
	Amount      float64  `yaml:"amount" json:"amount" validate:"gt=0"`
	TargetYears int      `yaml:"target_years" json:"targetYears" validate:"gte=1,lte=50"`
	Priority    Priority `yaml:"priority" json:"priority" validate:"oneof=high medium low"`
}

// TargetMonth is the 1-based month by which the goal should be reached.
func (g Goal) TargetMonth() int { return dateutil.YearsToMonths(g.TargetYears) }

// Taxes holds flat tax rates in percent.
type Taxes struct {
	IncomeTaxRate     float64 `yaml:"income_tax_rate" json:"incomeTaxRate" validate:"gte=0,lte=40"`
	InvestmentTaxRate float64 `yaml:"investment_tax_rate" json:"investmentTaxRate" validate:"gte=0,lte=30"`
}

// AnnualBonus is a lump sum paid every year in the given calendar month.
type AnnualBonus struct {
	ID     string  `yaml:"id" json:"id" validate:"required"`
	Label  string  `yaml:"label" json:"label" validate:"required"`
	Month  int     `yaml:"month" json:"month" validate:"gte=1,lte=12"`
	Amount float64 `yaml:"amount" json:"amount" validate:"gte=0"`
}

// ExpenseItem is one line of the household expense breakdown.
type ExpenseItem struct {
	Category string  `yaml:"category" json:"category" validate:"required"`
	Amount   float64 `yaml:"amount" json:"amount" validate:"gte=0"`
}

// ScenarioSettings are the behavioral assumptions applied to the baseline regime.
type ScenarioSettings struct {
	IncomeGrowthRate   float64 `yaml:"income_growth_rate" json:"incomeGrowthRate" validate:"gte=-50,lte=50"`
	ExpenseGrowthRate  float64 `yaml:"expense_growth_rate" json:"expenseGrowthRate" validate:"gte=-50,lte=50"`
	JobLossMonths      int     `yaml:"job_loss_months" json:"jobLossMonths" validate:"gte=0,lte=12"`
	UnexpectedExpense  float64 `yaml:"unexpected_expense" json:"unexpectedExpense" validate:"gte=0"`
	OneTimeExtraIncome float64 `yaml:"one_time_extra_income" json:"oneTimeExtraIncome" validate:"gte=0"`
	LifestyleInflation float64 `yaml:"lifestyle_inflation" json:"lifestyleInflation" validate:"gte=0,lte=30"`
}

// StressTestSettings are the shock magnitudes in percent.
type StressTestSettings struct {
	MarketCrashDropPct float64 `yaml:"market_crash_drop_pct" json:"marketCrashDropPct" validate:"gte=0,lte=80"`
	InflationSpikePct  float64 `yaml:"inflation_spike_pct" json:"inflationSpikePct" validate:"gte=0,lte=30"`
}

// SimulationInput is everything the projection engine needs. Rates are annual percentages.
type SimulationInput struct {
	MonthlyIncome          float64             `yaml:"monthly_income" json:"monthlyIncome" validate:"gte=0"`
	MonthlyExpenses        float64             `yaml:"monthly_expenses" json:"monthlyExpenses" validate:"gte=0"`
	CurrentSavings         float64             `yaml:"current_savings" json:"currentSavings" validate:"gte=0"`
	ExpectedReturnRate     float64             `yaml:"expected_return_rate" json:"expectedReturnRate" validate:"gte=-50,lte=50"`
	InflationRate          float64             `yaml:"inflation_rate" json:"inflationRate" validate:"gte=-10,lte=30"`
	AdditionalContribution float64             `yaml:"additional_contribution" json:"additionalContribution" validate:"gte=0"`
	RiskTolerance          int                 `yaml:"risk_tolerance" json:"riskTolerance" validate:"gte=1,lte=5"`
	Goals                  []Goal              `yaml:"goals" json:"goals" validate:"min=1,max=5,dive"`
	Taxes                  *Taxes              `yaml:"taxes,omitempty" json:"taxes,omitempty"`
	AnnualBonuses          []AnnualBonus       `yaml:"annual_bonuses,omitempty" json:"annualBonuses,omitempty" validate:"max=10,dive"`
	ExpensesBreakdown      []ExpenseItem       `yaml:"expenses_breakdown,omitempty" json:"expensesBreakdown,omitempty" validate:"max=10,dive"`
	Scenario               ScenarioSettings    `yaml:"scenario" json:"scenario"`
	StressTests            *StressTestSettings `yaml:"stress_tests,omitempty" json:"stressTests,omitempty"`
}

// TaxRates returns the configured taxes or zero rates when none were supplied.
func (in SimulationInput) TaxRates() Taxes {
	if in.Taxes == nil {
		return Taxes{}
	}
	return *in.Taxes
}

// Clone returns a deep copy; slices and pointer blocks are not shared with the receiver.
func (in SimulationInput) Clone() SimulationInput {
	out := in
	out.Goals = append([]Goal(nil), in.Goals...)
	out.AnnualBonuses = append([]AnnualBonus(nil), in.AnnualBonuses...)
	out.ExpensesBreakdown = append([]ExpenseItem(nil), in.ExpensesBreakdown...)
	if in.Taxes != nil {
		t := *in.Taxes
		out.Taxes = &t
	}
	if in.StressTests != nil {
		s := *in.StressTests
		out.StressTests = &s
	}
	return out
}

// SortedGoals returns the goals ordered by priority and then by soonest target.
// The input slice is left untouched.
func SortedGoals(goals []Goal) []Goal {
	sorted := append([]Goal(nil), goals...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ri, rj := sorted[i].Priority.Rank(), sorted[j].Priority.Rank()
		if ri != rj {
			return ri < rj
		}
		return sorted[i].TargetYears < sorted[j].TargetYears
	})
	return sorted
}

// TopGoal returns the highest-priority goal, or false when there are none.
func TopGoal(goals []Goal) (Goal, bool) {
	if len(goals) == 0 {
		return Goal{}, false
	}
	return SortedGoals(goals)[0], true
}

// HorizonMonths is the number of months simulated: the longest goal's target, at least a year.
func HorizonMonths(goals []Goal) int {
	months := MonthsInYear
	for _, g := range goals {
		if m := g.TargetMonth(); m > months {
			months = m
		}
	}
	return months
}

// MonthsInYear is used for all annual/monthly conversions.
const MonthsInYear = 12
