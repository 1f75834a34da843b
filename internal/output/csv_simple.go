package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per regime).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string      { return "csv" }
func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	if err := report.check(); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Label", "FinalBalance", "FinalRealBalance", "TotalContributed", "TotalReturns", "GoalsAchieved", "Goals"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range orderedScenarios(report.Simulation) {
		s := sc.Summary
		row := []string{
			sc.ID,
			sc.Label,
			fixed(s.FinalBalance),
			fixed(s.FinalRealBalance),
			fixed(s.TotalContributed),
			fixed(s.TotalReturns),
			intToString(s.GoalsAchievedCount),
			intToString(len(s.Goals)),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// orderedScenarios returns baseline, optimistic, pessimistic, then anything else in input order.
func orderedScenarios(result *domain.SimulationResult) []domain.ScenarioResult {
	out := make([]domain.ScenarioResult, 0, len(result.Scenarios))
	seen := make(map[string]bool, len(result.Scenarios))
	for _, id := range []string{domain.ScenarioBaseline, domain.ScenarioOptimistic, domain.ScenarioPessimistic} {
		if sc, ok := result.Scenario(id); ok {
			out = append(out, sc)
			seen[id] = true
		}
	}
	for _, sc := range result.Scenarios {
		if !seen[sc.ID] {
			out = append(out, sc)
		}
	}
	return out
}
