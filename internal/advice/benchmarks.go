package advice

import (
	"github.com/rpgo/wealth-planner/internal/domain"
)

// BenchmarkProfile is the typical spending mix of households in an income bracket.
type BenchmarkProfile struct {
	Name        string
	IncomeRange [2]float64
	Shares      map[string]float64
}

// Contains reports whether income falls inside the profile's bracket, bounds included.
func (bp BenchmarkProfile) Contains(income float64) bool {
	return income >= bp.IncomeRange[0] && income <= bp.IncomeRange[1]
}

// DefaultBenchmarks are the built-in income-bracket profiles. Brackets overlap; the first
// matching profile in list order wins.
var DefaultBenchmarks = []BenchmarkProfile{
	{
		Name:        "Urban middle-class families",
		IncomeRange: [2]float64{6000, 12000},
		Shares: map[string]float64{
			CategoryHousing:   0.28,
			CategoryFood:      0.17,
			CategoryTransport: 0.12,
			CategoryHealth:    0.08,
			CategoryEducation: 0.06,
			CategoryLeisure:   0.05,
			CategoryClothing:  0.04,
			CategoryUtilities: 0.05,
			CategoryOther:     0.15,
		},
	},
	{
		Name:        "Young singles in capital cities",
		IncomeRange: [2]float64{4000, 8000},
		Shares: map[string]float64{
			CategoryHousing:   0.32,
			CategoryFood:      0.19,
			CategoryTransport: 0.08,
			CategoryHealth:    0.05,
			CategoryEducation: 0.03,
			CategoryLeisure:   0.12,
			CategoryClothing:  0.06,
			CategoryUtilities: 0.05,
			CategoryOther:     0.10,
		},
	},
	{
		Name:        "Countryside working-class families",
		IncomeRange: [2]float64{2500, 6000},
		Shares: map[string]float64{
			CategoryHousing:   0.24,
			CategoryFood:      0.22,
			CategoryTransport: 0.14,
			CategoryHealth:    0.06,
			CategoryEducation: 0.04,
			CategoryLeisure:   0.03,
			CategoryClothing:  0.05,
			CategoryUtilities: 0.06,
			CategoryOther:     0.16,
		},
	},
}

// SelectBenchmark picks the first profile whose bracket contains income. Incomes outside
// every bracket use the closest one: the lowest bracket below, the highest above.
func SelectBenchmark(profiles []BenchmarkProfile, income float64) (BenchmarkProfile, bool) {
	if len(profiles) == 0 {
		return BenchmarkProfile{}, false
	}
	for _, p := range profiles {
		if p.Contains(income) {
			return p, true
		}
	}

	lowest, highest := profiles[0], profiles[0]
	for _, p := range profiles[1:] {
		if p.IncomeRange[0] < lowest.IncomeRange[0] {
			lowest = p
		}
		if p.IncomeRange[1] > highest.IncomeRange[1] {
			highest = p
		}
	}
	if income < lowest.IncomeRange[0] {
		return lowest, true
	}
	return highest, true
}

// AnalyzeBenchmark compares the expense breakdown with the profile selected for the
// household's income. Without a breakdown the deviations are empty and the discretionary
// ratio is zero.
func AnalyzeBenchmark(profiles []BenchmarkProfile, in domain.SimulationInput) domain.BenchmarkAnalysis {
	profile, _ := SelectBenchmark(profiles, in.MonthlyIncome)
	analysis := domain.BenchmarkAnalysis{
		Profile:     profile.Name,
		IncomeRange: profile.IncomeRange,
		Deviations:  []domain.CategoryDeviation{},
	}

	amounts := make(map[string]float64, len(CanonicalCategories))
	total := 0.0
	for _, item := range in.ExpensesBreakdown {
		amounts[CanonicalCategory(item.Category)] += item.Amount
		total += item.Amount
	}
	analysis.TotalExpenses = total
	if total <= 0 {
		return analysis
	}

	for _, category := range CanonicalCategories {
		actual := amounts[category] / total
		benchmark := profile.Shares[category]
		analysis.Deviations = append(analysis.Deviations, domain.CategoryDeviation{
			Category:       category,
			Amount:         amounts[category],
			ActualShare:    actual,
			BenchmarkShare: benchmark,
			Delta:          actual - benchmark,
		})
		if discretionaryCategories[category] {
			analysis.DiscretionaryRatio += actual
		}
	}
	return analysis
}
