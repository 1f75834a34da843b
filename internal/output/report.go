package output

import (
	"fmt"

	"github.com/rpgo/wealth-planner/internal/domain"
)

// Report is everything a formatter can render: the prepared input, the simulation and,
// optionally, the advice built from it.
type Report struct {
	Input           *domain.SimulationInput  `json:"input,omitempty" yaml:"input,omitempty"`
	Simulation      *domain.SimulationResult `json:"simulation" yaml:"simulation"`
	Recommendations *domain.Recommendations  `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

func (r *Report) check() error {
	if r == nil || r.Simulation == nil {
		return ErrEmptyReport
	}
	return nil
}

// GenerateReport renders the report in the named format and writes it to dir. The "all"
// format writes the verbose console report and the monthly timeline CSV.
func GenerateReport(report *Report, format, dir string) ([]string, error) {
	if format == "all" {
		var files []string
		for _, f := range []Formatter{ConsoleVerboseFormatter{}, CSVTimelineExporter{}} {
			name, err := WriteFormatted(f, report, dir)
			if err != nil {
				return files, err
			}
			files = append(files, name)
		}
		return files, nil
	}

	f := GetFormatterByName(format)
	if f == nil {
		return nil, UnsupportedFormatError(format)
	}
	name, err := WriteFormatted(f, report, dir)
	if err != nil {
		return nil, fmt.Errorf("%s report: %w", f.Name(), err)
	}
	return []string{name}, nil
}
