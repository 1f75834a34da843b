package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/domain"
)

// run executes the root command with fresh flag values and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagSettings, flagLogLevel, flagLogFormat, flagSeed = "", "panic", "", 0
	flagFormat, flagOutputDir, flagNoAdvice, flagAddr = "console", "", false, ""
	goalsProfile = domain.HouseholdProfile{Age: 30, HouseholdMembers: 1}
	goalsSimulate, goalsSavings, goalsReturn, goalsInflation = false, 0, 8, 4

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeExample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	out, err := run(t, "example", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Example input written to")
	return path
}

func TestSimulateCSV(t *testing.T) {
	input := writeExample(t)

	out, err := run(t, "simulate", input, "--format", "csv", "--seed", "42", "--log-level", "panic")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "baseline,"))
}

func TestSimulateIsReproducibleWithSeed(t *testing.T) {
	input := writeExample(t)

	first, err := run(t, "simulate", input, "--format", "json", "--seed", "7", "--log-level", "panic")
	require.NoError(t, err)
	second, err := run(t, "simulate", input, "--format", "json", "--seed", "7", "--log-level", "panic")
	require.NoError(t, err)
	assert.JSONEq(t, first, second)
}

func TestSimulateWritesFile(t *testing.T) {
	input := writeExample(t)
	dir := t.TempDir()

	out, err := run(t, "simulate", input, "--format", "xml", "--output-dir", dir, "--no-advice", "--log-level", "panic")
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	matches, err := filepath.Glob(filepath.Join(dir, "wealth_report_*.xml"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.NotContains(t, string(data), "<Recommendations")
}

func TestSimulateAllWritesConsoleAndTimeline(t *testing.T) {
	input := writeExample(t)
	dir := t.TempDir()

	out, err := run(t, "simulate", input, "--format", "all", "-o", dir, "--seed", "3", "--log-level", "panic")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Report written to"))

	txt, err := filepath.Glob(filepath.Join(dir, "wealth_report_*.txt"))
	require.NoError(t, err)
	csvFiles, err := filepath.Glob(filepath.Join(dir, "wealth_report_*.csv"))
	require.NoError(t, err)
	assert.Len(t, txt, 1)
	assert.Len(t, csvFiles, 1)
}

func TestSimulateAllRequiresOutputDir(t *testing.T) {
	input := writeExample(t)
	_, err := run(t, "simulate", input, "--format", "all")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestSimulateUnknownFormat(t *testing.T) {
	input := writeExample(t)
	_, err := run(t, "simulate", input, "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}

func TestSimulateRejectsInvalidInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("monthly_income: 100\nrisk_tolerance: 3\ngoals: []\n"), 0o644))

	_, err := run(t, "simulate", path, "--log-level", "panic")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidInput)
}

func TestRecommend(t *testing.T) {
	input := writeExample(t)
	out, err := run(t, "recommend", input, "--seed", "1", "--log-level", "panic")
	require.NoError(t, err)

	var recs domain.Recommendations
	require.NoError(t, json.Unmarshal([]byte(out), &recs))
	assert.NotEmpty(t, recs.Persona.ID)
	assert.NotEmpty(t, recs.StrategicMoves)
}

func TestGoals(t *testing.T) {
	out, err := run(t, "goals", "--income", "6000", "--expenses", "4000", "--age", "40", "--members", "3")
	require.NoError(t, err)

	var goals domain.RecommendedGoals
	require.NoError(t, json.Unmarshal([]byte(out), &goals))
	assert.Equal(t, 2000.0, goals.DiscretionaryIncome)
	require.NotEmpty(t, goals.Goals)
	assert.Equal(t, 36000.0, goals.Goals[0].TargetAmount, "nine months of expenses for larger households")
}

func TestGoalsSimulate(t *testing.T) {
	out, err := run(t, "goals", "--income", "6000", "--expenses", "4000", "--age", "40", "--members", "3",
		"--simulate", "--savings", "10000", "--seed", "5")
	require.NoError(t, err)

	var got goalsProjection
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Recommended.Goals, 4)
	require.Len(t, got.Summary.Goals, 4)

	names := map[string]bool{}
	for _, g := range got.Recommended.Goals {
		names[g.Name] = true
	}
	for _, g := range got.Summary.Goals {
		assert.True(t, names[g.Name], "simulated goal %q comes from the suggestions", g.Name)
	}
	assert.Equal(t, "Protected emergency fund", got.Summary.Goals[0].Name)
	assert.Equal(t, 36000.0, got.Summary.Goals[0].TargetAmount)
	assert.Equal(t, 200, got.Summary.MonteCarloIterations)
}

func TestGoalsSimulateWithoutIncome(t *testing.T) {
	_, err := run(t, "goals", "--simulate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no suggested goal has a target amount")
}

func TestPresetsSeedListShow(t *testing.T) {
	t.Setenv("WEALTH_DB_DRIVER", "sqlite")
	t.Setenv("WEALTH_DB_DSN", filepath.Join(t.TempDir(), "presets.db"))

	out, err := run(t, "presets", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No presets stored")

	out, err = run(t, "presets", "seed")
	require.NoError(t, err)
	assert.Equal(t, "Seeded 2 presets\n", out)

	out, err = run(t, "presets", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "balanced-family")
	assert.Contains(t, out, "career-sprint")

	out, err = run(t, "presets", "show", "career-sprint")
	require.NoError(t, err)
	var p domain.Preset
	require.NoError(t, json.Unmarshal([]byte(out), &p))
	assert.Equal(t, "Career sprint", p.Title)

	_, err = run(t, "presets", "show", "missing")
	assert.Error(t, err)
}

func TestSettingsCommand(t *testing.T) {
	t.Setenv("WEALTH_CACHE_CAPACITY", "50")
	path := filepath.Join(t.TempDir(), "settings.toml")

	_, err := run(t, "settings", path)
	require.NoError(t, err)

	loaded, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 50, loaded.Cache.Capacity)
}
