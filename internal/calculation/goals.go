package calculation

import (
	"math"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// AnalyzeGoal cross-references a regime timeline with a goal. achievedMonth is the engine's
// first-achievement month for the goal, or 0 when the balance never reached it.
func AnalyzeGoal(goal domain.Goal, timeline []domain.MonthlyPoint, achievedMonth int) domain.GoalOutcome {
	targetMonth := goal.TargetMonth()
	balance := balanceAtOrAfter(timeline, targetMonth)

	out := domain.GoalOutcome{
		ID:              goal.ID,
		Name:            goal.Name,
		Priority:        goal.Priority,
		TargetAmount:    goal.Amount,
		TargetMonth:     targetMonth,
		BalanceAtTarget: balance,
		Shortfall:       math.Max(goal.Amount-balance, 0),
		CompletionRatio: 1,
	}
	if goal.Amount > 0 {
		out.CompletionRatio = math.Min(balance/goal.Amount, 1)
	}
	if achievedMonth > 0 {
		m := achievedMonth
		out.AchievedMonth = &m
		out.Achieved = achievedMonth <= targetMonth
	}
	return out
}

// AnalyzeGoals runs AnalyzeGoal for every goal in priority order.
func AnalyzeGoals(goals []domain.Goal, proj Projection) []domain.GoalOutcome {
	sorted := domain.SortedGoals(goals)
	outcomes := make([]domain.GoalOutcome, 0, len(sorted))
	for _, g := range sorted {
		outcomes = append(outcomes, AnalyzeGoal(g, proj.Timeline, proj.AchievedMonths[g.ID]))
	}
	return outcomes
}

// balanceAtOrAfter returns the balance of the first point at or after month, or the final
// balance when the timeline is shorter.
func balanceAtOrAfter(timeline []domain.MonthlyPoint, month int) float64 {
	for _, pt := range timeline {
		if pt.Month >= month {
			return pt.Balance
		}
	}
	if len(timeline) == 0 {
		return 0
	}
	return timeline[len(timeline)-1].Balance
}

// RequiredMonthlyContribution solves the ordinary-annuity future value for the payment that
// closes shortfall over months at monthlyRate.
func RequiredMonthlyContribution(shortfall float64, months int, monthlyRate float64) float64 {
	if shortfall <= 0 || months <= 0 {
		return 0
	}
	if monthlyRate == 0 {
		return shortfall / float64(months)
	}
	annuityFactor := (math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate
	payment := shortfall / annuityFactor
	if !isFinite(payment) || payment < 0 {
		return 0
	}
	return payment
}
