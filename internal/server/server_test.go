package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/wealth-planner/internal/advice"
	"github.com/rpgo/wealth-planner/internal/cache"
	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/internal/store"
)

const simulationBody = `{
  "monthlyIncome": 9000,
  "monthlyExpenses": 5500,
  "currentSavings": 18000,
  "expectedReturnRate": 8,
  "inflationRate": 4,
  "additionalContribution": 500,
  "riskTolerance": 5,
  "goals": [
    {"id": "emergency", "name": "Emergency fund", "amount": 40000, "targetYears": 3, "priority": "alta"},
    {"id": "retirement", "name": "Retirement top-up", "amount": 300000, "targetYears": 15, "priority": "medium"}
  ],
  "expensesBreakdown": [
    {"category": "Housing", "amount": 2200},
    {"category": "Leisure", "amount": 1400}
  ],
  "scenario": {"incomeGrowthRate": 3, "expenseGrowthRate": 2, "jobLossMonths": 2, "unexpectedExpense": 8000}
}`

type memoryPresets struct {
	mu      sync.Mutex
	presets []domain.Preset
}

func (m *memoryPresets) List(ctx context.Context) ([]domain.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Preset, len(m.presets))
	for i := range m.presets {
		out[len(m.presets)-1-i] = m.presets[i]
	}
	return out, nil
}

func (m *memoryPresets) Create(ctx context.Context, p domain.Preset) (domain.Preset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.presets {
		if existing.Slug == p.Slug {
			return domain.Preset{}, store.ErrPresetExists
		}
	}
	p.ID = "preset-" + p.Slug
	m.presets = append(m.presets, p)
	return p, nil
}

type countingSimulator struct {
	inner Simulator
	calls int
}

func (c *countingSimulator) Simulate(ctx context.Context, in domain.SimulationInput) (*domain.SimulationResult, error) {
	c.calls++
	return c.inner.Simulate(ctx, in)
}

type testServer struct {
	*Server
	sim  *countingSimulator
	logs *test.Hook
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	sim := &countingSimulator{inner: calculation.NewCalculationEngineWithSource(calculation.NewSeededSource(7))}
	s := New(Deps{
		Simulator:   sim,
		Recommender: advice.NewEngine(),
		Cache:       cache.New(time.Minute, 10),
		Presets:     &memoryPresets{},
		Logger:      logger,
	})
	return testServer{Server: s, sim: sim, logs: hook}
}

func (ts testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	ts.Handler().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])

	entry := ts.logs.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "request", entry.Message)
	assert.Equal(t, "/api/health", entry.Data["path"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}

func TestSimulateReturnsInputSimulationAndAdvice(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/simulations", simulationBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "MISS", rec.Header().Get("X-Cache"))

	var resp SimulationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, domain.PriorityHigh, resp.Input.Goals[0].Priority)
	require.NotNil(t, resp.Input.Taxes, "defaults are applied before simulating")
	require.Len(t, resp.Simulation.Scenarios, 3)
	assert.Len(t, resp.Simulation.Summary.Goals, 2)
	assert.InDelta(t, 0.5, resp.Simulation.Summary.ShortfallProbability, 0.5)
	require.NotNil(t, resp.Recommendations)
	assert.NotEmpty(t, resp.Recommendations.StrategicMoves)
	assert.NotEmpty(t, resp.Recommendations.Persona.ID)

	again := ts.do(t, http.MethodPost, "/api/simulations", simulationBody)
	require.Equal(t, http.StatusOK, again.Code)
	assert.Equal(t, "HIT", again.Header().Get("X-Cache"))
	assert.Equal(t, 1, ts.sim.calls)
	assert.JSONEq(t, rec.Body.String(), again.Body.String())
}

func TestSimulateValidationError(t *testing.T) {
	ts := newTestServer(t)
	body := strings.Replace(simulationBody, `"riskTolerance": 5`, `"riskTolerance": 9`, 1)

	rec := ts.do(t, http.MethodPost, "/api/simulations", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	out := decodeBody(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", out["error"])

	details := out["details"].(map[string]any)
	fields := details["fields"].([]any)
	require.Len(t, fields, 1)
	assert.Equal(t, "riskTolerance", fields[0].(map[string]any)["field"])
	assert.Zero(t, ts.sim.calls)
}

func TestSimulateDuplicateGoalIDs(t *testing.T) {
	ts := newTestServer(t)
	body := strings.Replace(simulationBody, `"id": "retirement"`, `"id": "emergency"`, 1)

	rec := ts.do(t, http.MethodPost, "/api/simulations", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "BAD_REQUEST", decodeBody(t, rec)["error"])
}

func TestSimulateMalformedJSON(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodPost, "/api/simulations", `{"monthlyIncome": `)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSimulationReportFormats(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/simulations/report?format=csv", simulationBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	assert.Len(t, lines, 4)

	rec = ts.do(t, http.MethodPost, "/api/simulations/report?format=xml", simulationBody)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("<?xml")))

	rec = ts.do(t, http.MethodPost, "/api/simulations/report?format=pdf", simulationBody)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPresets(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/presets", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decodeBody(t, rec)["presets"])

	preset := `{"slug": "starter", "title": "Starter plan", "description": "For first jobs", "badge": "cfp", "input": ` + simulationBody + `}`
	rec = ts.do(t, http.MethodPost, "/api/presets", preset)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeBody(t, rec)["preset"].(map[string]any)
	assert.Equal(t, "preset-starter", created["id"])

	rec = ts.do(t, http.MethodPost, "/api/presets", preset)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "CONFLICT", decodeBody(t, rec)["error"])

	rec = ts.do(t, http.MethodGet, "/api/presets", "")
	assert.Len(t, decodeBody(t, rec)["presets"], 1)
}

func TestCreatePresetValidation(t *testing.T) {
	ts := newTestServer(t)
	preset := `{"slug": "x", "title": "Starter plan", "description": "For first jobs", "badge": "gold", "input": ` + simulationBody + `}`

	rec := ts.do(t, http.MethodPost, "/api/presets", preset)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	fields := decodeBody(t, rec)["details"].(map[string]any)["fields"].([]any)
	assert.Len(t, fields, 2)
}

func TestPresetsDisabled(t *testing.T) {
	s := New(Deps{Simulator: calculation.NewCalculationEngine(), Recommender: advice.NewEngine()})
	req := httptest.NewRequest(http.MethodGet, "/api/presets", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRecommendedGoals(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(t, http.MethodPost, "/api/goals/recommended",
		`{"monthlyIncome": 6000, "monthlyExpenses": 4000, "age": 30, "householdMembers": 2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out domain.RecommendedGoals
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, advice.SegmentForAge(30), out.Segment)
	assert.NotEmpty(t, out.Goals)

	rec = ts.do(t, http.MethodPost, "/api/goals/recommended", `{"monthlyIncome": -1, "age": 30}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCollaborativeGoals(t *testing.T) {
	ts := newTestServer(t)
	body := `{"partners": [
	  {"name": "Alex", "email": "alex@example.com", "age": 34, "monthlyIncome": 7000, "monthlyExpenses": 4000},
	  {"name": "Sam", "email": "sam@example.com", "age": 32, "monthlyIncome": 5000, "monthlyExpenses": 3000}
	]}`
	rec := ts.do(t, http.MethodPost, "/api/goals/collaborative", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Collaborative []domain.CollaborativeGoals `json:"collaborative"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Collaborative, 2)
	assert.Equal(t, "Alex", out.Collaborative[0].PartnerName)
	for _, g := range out.Collaborative[0].RecommendedGoals {
		require.NotNil(t, g.PartnerShare)
		assert.InDelta(t, g.RecommendedContribution/2, *g.PartnerShare, 0.01)
	}

	rec = ts.do(t, http.MethodPost, "/api/goals/collaborative", `{"partners": []}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComparativeReport(t *testing.T) {
	ts := newTestServer(t)
	body := `{
	  "baseline": {"finalBalance": 100000, "totalContributed": 60000},
	  "optimistic": {"finalBalance": 130000, "totalContributed": 65000},
	  "pessimistic": {"finalBalance": 70000, "totalContributed": 55000}
	}`
	rec := ts.do(t, http.MethodPost, "/api/reports/comparative", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Report domain.ComparativeReport `json:"report"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 30000.0, out.Report.GrowthDifferentials.OptimisticVsBaseline)
	assert.Equal(t, 30000.0, out.Report.GrowthDifferentials.PessimisticVsBaseline)
	assert.Equal(t, 55000.0, out.Report.TotalContributions.Pessimistic)
}

func TestStartSweeper(t *testing.T) {
	ts := newTestServer(t)
	_, err := ts.StartSweeper("not a schedule")
	assert.Error(t, err)

	c, err := ts.StartSweeper("@every 1h")
	require.NoError(t, err)
	c.Stop()
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	ts := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ts.ListenAndServe(ctx, "127.0.0.1:0") }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
