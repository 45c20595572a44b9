// Package server exposes the detection pipeline over HTTP to the rest of the
// Calmify platform. The messaging subsystem calls /v1/analyze for every
// patient message and acts on the returned decision.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/saketmishra7224/calmify/internal/pipeline"
	"github.com/saketmishra7224/calmify/internal/triage"
)

// Server is the HTTP API over the pipeline.
type Server struct {
	pipe   *pipeline.Pipeline
	router chi.Router
	logger zerolog.Logger
}

// New creates the API server. dashboard may be nil to disable the console.
func New(pipe *pipeline.Pipeline, dashboard http.Handler, logger zerolog.Logger) *Server {
	s := &Server{
		pipe:   pipe,
		logger: logger,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/priority", s.handlePriority)
		r.Get("/alerts", s.handleAlerts)
	})

	if dashboard != nil {
		// The console mux registers full /_calmify/... paths, so hand it the
		// unmodified request path rather than mounting with a stripped prefix.
		r.Handle("/_calmify/*", dashboard)
	}

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAnalyze runs the full pipeline for one message.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req pipeline.Request
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	report := s.pipe.Process(req)

	if report.RequiresImmediate() {
		s.logger.Warn().
			Str("request_id", report.RequestID).
			Str("session_id", report.SessionID).
			Str("risk_level", string(report.Analysis.RiskLevel)).
			Int("priority", report.Priority.Score).
			Msg("immediate-risk message")
	}

	writeJSON(w, http.StatusOK, report)
}

// priorityRequest computes session priority for an already-analyzed message.
type priorityRequest struct {
	Text    string         `json:"text"`
	Profile triage.Profile `json:"profile"`
}

func (s *Server) handlePriority(w http.ResponseWriter, r *http.Request) {
	var req priorityRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	analysis := s.pipe.AnalyzeOnly(req.Text)
	prio := triage.Classify(analysis, req.Profile)

	writeJSON(w, http.StatusOK, map[string]any{
		"risk_level": analysis.RiskLevel,
		"priority":   prio,
	})
}

func (s *Server) handleAlerts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.pipe.Alerts().All())
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	return dec.Decode(dst)
}
