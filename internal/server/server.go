// Package server exposes the simulation, advice and preset operations over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/rpgo/wealth-planner/internal/advice"
	"github.com/rpgo/wealth-planner/internal/cache"
	"github.com/rpgo/wealth-planner/internal/config"
	"github.com/rpgo/wealth-planner/internal/domain"
)

// Simulator runs a full simulation of a validated input.
type Simulator interface {
	Simulate(ctx context.Context, in domain.SimulationInput) (*domain.SimulationResult, error)
}

// Recommender turns a simulation into advice.
type Recommender interface {
	Recommend(in domain.SimulationInput, result *domain.SimulationResult) (*domain.Recommendations, error)
}

// PresetStore lists and creates presets.
type PresetStore interface {
	List(ctx context.Context) ([]domain.Preset, error)
	Create(ctx context.Context, p domain.Preset) (domain.Preset, error)
}

// Deps are the collaborators of a Server. Cache and Presets may be nil.
type Deps struct {
	Simulator   Simulator
	Recommender Recommender
	Goals       *advice.GoalsAdvisor
	Parser      *config.InputParser
	Cache       *cache.ResultCache
	Presets     PresetStore
	Logger      logrus.FieldLogger
}

// Server is the HTTP host.
type Server struct {
	deps   Deps
	logger logrus.FieldLogger
	router *mux.Router
}

// New wires the routes.
func New(deps Deps) *Server {
	if deps.Parser == nil {
		deps.Parser = config.NewInputParser()
	}
	if deps.Goals == nil {
		deps.Goals = advice.NewGoalsAdvisor()
	}
	if deps.Cache == nil {
		deps.Cache = cache.New(0, 0)
	}
	logger := deps.Logger
	if logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		logger = l
	}

	s := &Server{deps: deps, logger: logger, router: mux.NewRouter()}

	r := s.router
	r.Use(s.logRequests)
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.Health).Methods("GET")
	api.HandleFunc("/simulations", s.Simulate).Methods("POST")
	api.HandleFunc("/simulations/report", s.SimulationReport).Methods("POST")
	api.HandleFunc("/presets", s.ListPresets).Methods("GET")
	api.HandleFunc("/presets", s.CreatePreset).Methods("POST")
	api.HandleFunc("/goals/recommended", s.RecommendedGoals).Methods("POST")
	api.HandleFunc("/goals/collaborative", s.CollaborativeGoals).Methods("POST")
	api.HandleFunc("/reports/comparative", s.ComparativeReport).Methods("POST")
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// StartSweeper removes expired cache entries on the given cron schedule. The caller stops
// the returned scheduler.
func (s *Server) StartSweeper(schedule string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		if n := s.deps.Cache.Sweep(); n > 0 {
			s.logger.WithField("removed", n).Debug("cache sweep")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid sweep schedule %q: %w", schedule, err)
	}
	c.Start()
	return c, nil
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("Starting server on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("Shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.status,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("request")
	})
}
