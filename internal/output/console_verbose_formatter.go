package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string      { return "console" }
func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(report *Report) ([]byte, error) {
	if err := report.check(); err != nil {
		return nil, err
	}
	sim := report.Simulation
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf, "HOUSEHOLD WEALTH PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 81))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(report.Input) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if in := report.Input; in != nil {
		fmt.Fprintln(&buf, "CURRENT SITUATION")
		fmt.Fprintln(&buf, strings.Repeat("=", 45))
		fmt.Fprintf(&buf, "Monthly Income:           %s\n", FormatGroupedCurrency(in.MonthlyIncome))
		fmt.Fprintf(&buf, "Monthly Expenses:         %s\n", FormatGroupedCurrency(in.MonthlyExpenses))
		fmt.Fprintf(&buf, "Current Savings:          %s\n", FormatGroupedCurrency(in.CurrentSavings))
		fmt.Fprintf(&buf, "Additional Contribution:  %s\n", FormatGroupedCurrency(in.AdditionalContribution))
		fmt.Fprintln(&buf)
	}

	s := sim.Summary
	fmt.Fprintln(&buf, "KEY INDICATORS")
	fmt.Fprintln(&buf, strings.Repeat("=", 45))
	fmt.Fprintf(&buf, "Savings Rate:             %s\n", ratioPct(s.SavingsRate))
	fmt.Fprintf(&buf, "Emergency Fund Target:    %s\n", FormatGroupedCurrency(s.EmergencyFundTarget))
	fmt.Fprintf(&buf, "Emergency Fund Gap:       %s\n", FormatGroupedCurrency(s.EmergencyFundGap))
	fmt.Fprintf(&buf, "Emergency Coverage:       %s\n", ratioPct(s.EmergencyFundCoverage))
	fmt.Fprintf(&buf, "FI Index:                 %s\n", fixed(s.FinancialIndependenceIndex))
	fmt.Fprintf(&buf, "Shortfall Probability:    %s (%d trials)\n", ratioPct(s.ShortfallProbability), s.MonteCarloIterations)
	fmt.Fprintln(&buf)

	for i, sc := range orderedScenarios(sim) {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, sc.Label)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		fmt.Fprintf(&buf, "  Final Balance:          %s\n", FormatGroupedCurrency(sc.Summary.FinalBalance))
		fmt.Fprintf(&buf, "  Final Real Balance:     %s\n", FormatGroupedCurrency(sc.Summary.FinalRealBalance))
		fmt.Fprintf(&buf, "  Total Contributed:      %s\n", FormatGroupedCurrency(sc.Summary.TotalContributed))
		fmt.Fprintf(&buf, "  Total Returns:          %s\n", FormatGroupedCurrency(sc.Summary.TotalReturns))
		fmt.Fprintf(&buf, "  Goals Achieved:         %d of %d\n", sc.Summary.GoalsAchievedCount, len(sc.Summary.Goals))
		for _, g := range sc.Summary.Goals {
			writeGoalLine(&buf, g)
		}
		fmt.Fprintln(&buf)
	}

	if len(s.Goals) > 0 {
		fmt.Fprintln(&buf, "GOAL ANALYTICS (baseline)")
		fmt.Fprintln(&buf, strings.Repeat("-", 45))
		for _, g := range s.Goals {
			fmt.Fprintf(&buf, "  %-28s %s  top-up %s/month\n", g.Name, ratioPct(g.CompletionRatio), FormatGroupedCurrency(g.AdditionalMonthlyContribution))
		}
		fmt.Fprintln(&buf)
	}

	if len(sim.StressTests) > 0 {
		fmt.Fprintln(&buf, "STRESS TESTS")
		fmt.Fprintln(&buf, strings.Repeat("-", 45))
		for _, st := range sim.StressTests {
			viable := "goal still viable"
			if !st.GoalStillViable {
				viable = "goal at risk"
			}
			fmt.Fprintf(&buf, "  %-22s %5.1f%%  %s  (%s)\n", st.Label, st.Severity, FormatGroupedCurrency(st.ShockedValue()), viable)
		}
		fmt.Fprintln(&buf)
	}

	if rec := report.Recommendations; rec != nil {
		writeRecommendations(&buf, rec)
	}
	return buf.Bytes(), nil
}

func writeGoalLine(buf *bytes.Buffer, g domain.GoalOutcome) {
	status := "missed"
	if g.Achieved && g.AchievedMonth != nil {
		status = fmt.Sprintf("reached in month %d", *g.AchievedMonth)
	}
	fmt.Fprintf(buf, "    - %s (%s): %s of %s, %s\n", g.Name, g.Priority,
		FormatGroupedCurrency(g.BalanceAtTarget), FormatGroupedCurrency(g.TargetAmount), status)
}

func writeRecommendations(buf *bytes.Buffer, rec *domain.Recommendations) {
	fmt.Fprintln(buf, "RECOMMENDATIONS")
	fmt.Fprintln(buf, strings.Repeat("=", 45))
	fmt.Fprintf(buf, "Persona: %s\n", rec.Persona.Label)
	if rec.Benchmark.Profile != "" {
		fmt.Fprintf(buf, "Benchmark: %s\n", rec.Benchmark.Profile)
	}
	fmt.Fprintln(buf)

	section := func(title string, lines []string) {
		if len(lines) == 0 {
			return
		}
		fmt.Fprintln(buf, title)
		for _, l := range lines {
			fmt.Fprintf(buf, "  • %s\n", l)
		}
		fmt.Fprintln(buf)
	}

	var lines []string
	for _, a := range rec.QuickWins {
		lines = append(lines, a.Title+": "+a.Description)
	}
	section("Quick wins:", lines)

	lines = nil
	for _, cut := range rec.ExpenseCuts {
		lines = append(lines, fmt.Sprintf("%s (%s/month)", cut.Title, FormatGroupedCurrency(cut.EstimatedMonthlyImpact)))
	}
	section("Expense cuts:", lines)

	lines = nil
	for _, m := range rec.StrategicMoves {
		lines = append(lines, fmt.Sprintf("%s [%s]: %s", m.Title, m.TimeHorizon, m.Description))
	}
	section("Strategic moves:", lines)

	lines = nil
	for _, r := range rec.RiskMitigation {
		lines = append(lines, r.Insight+" "+r.Action)
	}
	section("Risk mitigation:", lines)
}
