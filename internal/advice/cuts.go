package advice

import (
	"fmt"
	"math"
	"sort"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/pkg/decimal"
)

const (
	// ExpenseDeviationThreshold is the share above benchmark a category must exceed.
	ExpenseDeviationThreshold = 0.03
	MaxExpenseCuts            = 3
	// FallbackCutShare is the flat cut suggested for the largest categories.
	FallbackCutShare = 0.15
	// GeneralExpenseIncomeShare is the share of income above which undetailed expenses get reviewed.
	GeneralExpenseIncomeShare = 0.6
	GeneralExpenseReviewShare = 0.10
)

// BuildExpenseCuts suggests up to three categories to trim. Categories deviating more than
// three points above the benchmark come first; otherwise the three largest raw categories
// get a flat 15% cut. Without a breakdown, a single general review is suggested when
// expenses exceed 60% of income.
func BuildExpenseCuts(in domain.SimulationInput, analysis domain.BenchmarkAnalysis) []domain.ExpenseCut {
	if len(in.ExpensesBreakdown) == 0 {
		return generalReview(in)
	}

	over := make([]domain.CategoryDeviation, 0, len(analysis.Deviations))
	for _, d := range analysis.Deviations {
		if d.Delta > ExpenseDeviationThreshold {
			over = append(over, d)
		}
	}
	if len(over) > 0 {
		sort.SliceStable(over, func(i, j int) bool { return over[i].Delta > over[j].Delta })
		if len(over) > MaxExpenseCuts {
			over = over[:MaxExpenseCuts]
		}
		cuts := make([]domain.ExpenseCut, 0, len(over))
		for _, d := range over {
			cuts = append(cuts, domain.ExpenseCut{
				Category: d.Category,
				Title:    fmt.Sprintf("Reduce %s", d.Category),
				Description: fmt.Sprintf("%s takes %.0f%% of spending against a benchmark of %.0f%%. Bring it back in line with %s.",
					d.Category, d.ActualShare*100, d.BenchmarkShare*100, analysis.Profile),
				Rationale:              fmt.Sprintf("delta=%.3f > %.2f", d.Delta, ExpenseDeviationThreshold),
				EstimatedMonthlyImpact: decimal.Cents(d.Delta * analysis.TotalExpenses),
				Difficulty:             "medium",
			})
		}
		return cuts
	}

	items := append([]domain.ExpenseItem(nil), in.ExpensesBreakdown...)
	sort.SliceStable(items, func(i, j int) bool { return items[i].Amount > items[j].Amount })
	if len(items) > MaxExpenseCuts {
		items = items[:MaxExpenseCuts]
	}
	cuts := make([]domain.ExpenseCut, 0, len(items))
	for _, item := range items {
		ceiling := decimal.Whole(item.Amount * (1 - FallbackCutShare))
		cuts = append(cuts, domain.ExpenseCut{
			Category: CanonicalCategory(item.Category),
			Title:    fmt.Sprintf("Reduce %s", item.Category),
			Description: fmt.Sprintf("Set a ceiling of %s for %s and use banking alerts to stay under it.",
				decimal.NewMoney(ceiling).Format(), item.Category),
			Rationale:              fmt.Sprintf("largest category, flat %.0f%% cut", FallbackCutShare*100),
			EstimatedMonthlyImpact: decimal.NewMoney(item.Amount).Scale(FallbackCutShare).Float64(),
			Difficulty:             "medium",
		})
	}
	return cuts
}

func generalReview(in domain.SimulationInput) []domain.ExpenseCut {
	potential := math.Max(in.MonthlyExpenses-in.MonthlyIncome*GeneralExpenseIncomeShare, 0)
	if potential <= 0 {
		return []domain.ExpenseCut{}
	}
	return []domain.ExpenseCut{{
		Category:               CategoryOther,
		Title:                  "Review general expenses",
		Description:            "Map your main fixed costs and renegotiate contracts such as internet, insurance and gym to cut at least 10% of the monthly total.",
		Rationale:              fmt.Sprintf("expenses exceed %.0f%% of income by %.2f", GeneralExpenseIncomeShare*100, potential),
		EstimatedMonthlyImpact: decimal.NewMoney(potential).Scale(GeneralExpenseReviewShare).Float64(),
		Difficulty:             "medium",
	}}
}
