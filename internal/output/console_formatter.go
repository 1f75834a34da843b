package output

import (
	"bytes"
	"fmt"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console-lite" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	if err := report.check(); err != nil {
		return nil, err
	}
	sim := report.Simulation
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "WEALTH PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, sc := range orderedScenarios(sim) {
		fmt.Fprintf(&buf, "%s: Final=%s Real=%s Contributed=%s Goals=%d/%d\n",
			sc.ID,
			FormatGroupedCurrency(sc.Summary.FinalBalance),
			FormatGroupedCurrency(sc.Summary.FinalRealBalance),
			FormatGroupedCurrency(sc.Summary.TotalContributed),
			sc.Summary.GoalsAchievedCount,
			len(sc.Summary.Goals),
		)
	}
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "Savings rate: %s  Shortfall risk: %s  FI index: %s\n",
		ratioPct(sim.Summary.SavingsRate),
		ratioPct(sim.Summary.ShortfallProbability),
		fixed(sim.Summary.FinancialIndependenceIndex),
	)
	if spread := AnalyzeRegimes(sim); spread.Best != "" {
		fmt.Fprintf(&buf, "Range: %s (%s) to %s (%s)\n",
			spread.Worst, FormatCurrency(spread.WorstBalance.Round(2)),
			spread.Best, FormatCurrency(spread.BestBalance.Round(2)))
	}
	return buf.Bytes(), nil
}
