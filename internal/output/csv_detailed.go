package output

import (
	"bytes"
	"encoding/csv"
)

// CSVTimelineExporter writes every month of every regime.
type CSVTimelineExporter struct{}

func (c CSVTimelineExporter) Name() string      { return "timeline-csv" }
func (c CSVTimelineExporter) Extension() string { return "csv" }

func (c CSVTimelineExporter) Format(report *Report) ([]byte, error) {
	if err := report.check(); err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Month", "Year", "Income", "Expenses", "Contribution", "Returns", "Balance", "RealBalance", "EmergencyCoverage"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range orderedScenarios(report.Simulation) {
		for _, p := range sc.Timeline {
			row := []string{
				sc.ID,
				intToString(p.Month),
				intToString(p.Year),
				fixed(p.Income),
				fixed(p.Expenses),
				fixed(p.Contribution),
				fixed(p.Returns),
				fixed(p.Balance),
				fixed(p.RealBalance),
				fixed(p.EmergencyCoverage),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
