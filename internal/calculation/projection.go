package calculation

import (
	"math"

	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/pkg/dateutil"
)

// JobLossStartMonth is the first month a job-loss window can zero income.
const JobLossStartMonth = 6

// UnexpectedExpenseMonth is the month the one-off expense shock is charged.
const UnexpectedExpenseMonth = 6

// Projection is the raw output of the monthly engine for one regime.
type Projection struct {
	Timeline         []domain.MonthlyPoint
	TotalContributed float64
	TotalReturns     float64
	// AchievedMonths holds, per goal id, the first month the balance reached the goal amount,
	// regardless of the goal's own target date.
	AchievedMonths map[string]int
}

// ProjectMonthly steps the household's finances month by month over the goals' horizon.
func ProjectMonthly(in domain.SimulationInput, p ScenarioParams) Projection {
	months := domain.HorizonMonths(in.Goals)
	taxes := in.TaxRates()
	incomeKeep := 1 - taxes.IncomeTaxRate/100
	returnKeep := 1 - taxes.InvestmentTaxRate/100

	monthlyReturn := MonthlyRate(in.ExpectedReturnRate)
	monthlyInflation := MonthlyRate(in.InflationRate)
	incomeGrowth := MonthlyRate(p.IncomeGrowthRate)
	expenseGrowth := MonthlyRate(p.ExpenseGrowthRate + p.LifestyleInflation)
	emergencyTarget := in.MonthlyExpenses * float64(in.RiskTolerance)

	bonusesByMonth := make(map[int]float64, len(in.AnnualBonuses))
	for _, b := range in.AnnualBonuses {
		bonusesByMonth[b.Month] += b.Amount
	}
	goals := domain.SortedGoals(in.Goals)

	proj := Projection{
		Timeline:       make([]domain.MonthlyPoint, 0, months),
		AchievedMonths: make(map[string]int, len(goals)),
	}

	balance := in.CurrentSavings
	jobLossLeft := p.JobLossMonths

	for month := 1; month <= months; month++ {
		prior := balance

		income := in.MonthlyIncome * growthFactor(incomeGrowth, month-1)
		if month >= JobLossStartMonth && jobLossLeft > 0 {
			income = 0
			jobLossLeft--
		}
		afterTaxIncome := income * incomeKeep
		expenses := in.MonthlyExpenses * growthFactor(expenseGrowth, month-1)

		contribution := math.Max(afterTaxIncome-expenses, 0) + in.AdditionalContribution
		if month == 1 && p.OneTimeExtraIncome > 0 {
			contribution += p.OneTimeExtraIncome * incomeKeep
		}
		if bonus, ok := bonusesByMonth[dateutil.MonthOfYear(month)]; ok {
			contribution += bonus * incomeKeep
		}

		returns := prior * monthlyReturn
		if returns > 0 {
			returns *= returnKeep
		}

		balance = prior + returns + contribution
		if month == UnexpectedExpenseMonth && p.UnexpectedExpense > 0 {
			balance -= p.UnexpectedExpense
		}
		if balance < 0 {
			balance = 0
		}

		proj.TotalContributed += contribution
		proj.TotalReturns += math.Max(returns, 0)

		coverage := 1.0
		if emergencyTarget > 0 {
			coverage = balance / emergencyTarget
		}

		for _, g := range goals {
			if _, done := proj.AchievedMonths[g.ID]; !done && balance >= g.Amount {
				proj.AchievedMonths[g.ID] = month
			}
		}

		proj.Timeline = append(proj.Timeline, domain.MonthlyPoint{
			Month:             month,
			Year:              dateutil.ProjectionYear(month),
			Income:            income,
			Expenses:          expenses,
			Contribution:      contribution,
			Returns:           returns,
			Balance:           balance,
			RealBalance:       balance / growthFactor(monthlyInflation, month),
			EmergencyCoverage: coverage,
		})
	}

	return proj
}

// coverageTimeline samples emergency coverage at each year end and at the final month.
func coverageTimeline(timeline []domain.MonthlyPoint) []domain.CoveragePoint {
	points := make([]domain.CoveragePoint, 0, len(timeline)/domain.MonthsInYear+1)
	for i, pt := range timeline {
		if dateutil.IsYearEnd(pt.Month) || i == len(timeline)-1 {
			points = append(points, domain.CoveragePoint{Year: pt.Year, Month: pt.Month, Coverage: pt.EmergencyCoverage})
		}
	}
	return points
}
