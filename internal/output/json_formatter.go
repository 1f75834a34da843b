package output

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	if err := report.check(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(report, "", "  ")
}

// YAMLFormatter serializes the report as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string      { return "yaml" }
func (y YAMLFormatter) Extension() string { return "yaml" }

func (y YAMLFormatter) Format(report *Report) ([]byte, error) {
	if err := report.check(); err != nil {
		return nil, err
	}
	return yaml.Marshal(report)
}
