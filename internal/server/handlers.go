package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rpgo/wealth-planner/internal/apperr"
	"github.com/rpgo/wealth-planner/internal/cache"
	"github.com/rpgo/wealth-planner/internal/calculation"
	"github.com/rpgo/wealth-planner/internal/domain"
	"github.com/rpgo/wealth-planner/internal/output"
	"github.com/rpgo/wealth-planner/internal/store"
)

// SimulationResponse is the body of a successful simulation request.
type SimulationResponse struct {
	Input           domain.SimulationInput   `json:"input"`
	Simulation      *domain.SimulationResult `json:"simulation"`
	Recommendations *domain.Recommendations  `json:"recommendations"`
}

// Health reports liveness.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Simulate validates the input, then answers from the cache or runs the simulation and
// the recommendation engine.
func (s *Server) Simulate(w http.ResponseWriter, r *http.Request) {
	resp, hit, err := s.simulate(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	s.respondJSON(w, http.StatusOK, resp)
}

// SimulationReport runs a simulation and renders it with the formatter named by ?format=.
func (s *Server) SimulationReport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	f := output.GetFormatterByName(format)
	if f == nil {
		s.respondError(w, r, apperr.ErrBadRequest.WithError(output.UnsupportedFormatError(format)).
			WithDetails(map[string]any{"formats": output.AvailableFormatterNames()}))
		return
	}

	resp, _, err := s.simulate(r)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	data, err := f.Format(&output.Report{Input: &resp.Input, Simulation: resp.Simulation, Recommendations: resp.Recommendations})
	if err != nil {
		s.respondError(w, r, fmt.Errorf("render %s report: %w", f.Name(), err))
		return
	}
	w.Header().Set("Content-Type", contentType(f.Extension()))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) simulate(r *http.Request) (*SimulationResponse, bool, error) {
	var in domain.SimulationInput
	if err := decode(r, &in); err != nil {
		return nil, false, err
	}
	if err := s.deps.Parser.Prepare(&in); err != nil {
		return nil, false, validationError(err)
	}

	key, err := cache.Key(in)
	if err != nil {
		return nil, false, err
	}
	var cached SimulationResponse
	if ok, err := s.deps.Cache.Get(key, &cached); err != nil {
		s.logger.WithError(err).Warn("cache read failed")
	} else if ok {
		return &cached, true, nil
	}

	result, err := s.deps.Simulator.Simulate(r.Context(), in)
	if err != nil {
		return nil, false, fmt.Errorf("simulate: %w", err)
	}
	recs, err := s.deps.Recommender.Recommend(in, result)
	if err != nil {
		return nil, false, fmt.Errorf("recommend: %w", err)
	}

	resp := &SimulationResponse{Input: in, Simulation: result, Recommendations: recs}
	if err := s.deps.Cache.Set(key, resp); err != nil {
		s.logger.WithError(err).Warn("cache write failed")
	}
	return resp, false, nil
}

// ListPresets returns every preset, newest first.
func (s *Server) ListPresets(w http.ResponseWriter, r *http.Request) {
	if s.deps.Presets == nil {
		s.respondError(w, r, errPresetsDisabled)
		return
	}
	presets, err := s.deps.Presets.List(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"presets": presets})
}

// CreatePreset validates and stores a preset.
func (s *Server) CreatePreset(w http.ResponseWriter, r *http.Request) {
	if s.deps.Presets == nil {
		s.respondError(w, r, errPresetsDisabled)
		return
	}
	var p domain.Preset
	if err := decode(r, &p); err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.deps.Parser.Prepare(&p.Input); err != nil {
		s.respondError(w, r, validationError(err))
		return
	}
	if err := s.deps.Parser.ValidateStruct(p); err != nil {
		s.respondError(w, r, validationError(err))
		return
	}

	created, err := s.deps.Presets.Create(r.Context(), p)
	if errors.Is(err, store.ErrPresetExists) {
		s.respondError(w, r, apperr.ErrConflict.WithError(err).WithDetails(map[string]any{"slug": p.Slug}))
		return
	}
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	s.respondJSON(w, http.StatusCreated, map[string]any{"preset": created})
}

// RecommendedGoals suggests goals for a household profile.
func (s *Server) RecommendedGoals(w http.ResponseWriter, r *http.Request) {
	var profile domain.HouseholdProfile
	if err := decode(r, &profile); err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.deps.Parser.ValidateStruct(profile); err != nil {
		s.respondError(w, r, validationError(err))
		return
	}
	s.respondJSON(w, http.StatusOK, s.deps.Goals.Recommend(profile))
}

type collaborativeRequest struct {
	Partners []domain.Partner `json:"partners" validate:"required,min=1,dive"`
}

// CollaborativeGoals splits recommended contributions between partners.
func (s *Server) CollaborativeGoals(w http.ResponseWriter, r *http.Request) {
	var req collaborativeRequest
	if err := decode(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.deps.Parser.ValidateStruct(req); err != nil {
		s.respondError(w, r, validationError(err))
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]any{"collaborative": s.deps.Goals.BuildCollaborativeGoals(req.Partners)})
}

type regimeTotals struct {
	FinalBalance     float64 `json:"finalBalance" validate:"gte=0"`
	TotalContributed float64 `json:"totalContributed" validate:"gte=0"`
}

func (t regimeTotals) summary() domain.ScenarioSummary {
	return domain.ScenarioSummary{FinalBalance: t.FinalBalance, TotalContributed: t.TotalContributed}
}

type comparativeRequest struct {
	Baseline    regimeTotals `json:"baseline"`
	Optimistic  regimeTotals `json:"optimistic"`
	Pessimistic regimeTotals `json:"pessimistic"`
}

// ComparativeReport contrasts the three regimes' totals.
func (s *Server) ComparativeReport(w http.ResponseWriter, r *http.Request) {
	var req comparativeRequest
	if err := decode(r, &req); err != nil {
		s.respondError(w, r, err)
		return
	}
	if err := s.deps.Parser.ValidateStruct(req); err != nil {
		s.respondError(w, r, validationError(err))
		return
	}
	report := calculation.BuildComparativeReport(req.Baseline.summary(), req.Optimistic.summary(), req.Pessimistic.summary())
	s.respondJSON(w, http.StatusOK, map[string]any{"report": report})
}

var errPresetsDisabled = apperr.New("PRESETS_UNAVAILABLE", "Preset storage is not configured", http.StatusServiceUnavailable)

func contentType(ext string) string {
	switch ext {
	case "json":
		return "application/json"
	case "yaml":
		return "application/yaml"
	case "csv":
		return "text/csv; charset=utf-8"
	case "xml":
		return "application/xml"
	default:
		return "text/plain; charset=utf-8"
	}
}
