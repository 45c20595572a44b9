package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/saketmishra7224/calmify/internal/audit"
	"github.com/saketmishra7224/calmify/internal/corpus"
	"github.com/saketmishra7224/calmify/internal/escalation"
	"github.com/saketmishra7224/calmify/internal/pipeline"
)

func newTestServer() *Server {
	pipe := pipeline.New(corpus.Default(), escalation.Default(), audit.NopLogger())
	return New(pipe, nil, zerolog.Nop())
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected JSON content type, got %q", ct)
	}
}

func TestAnalyze_Critical(t *testing.T) {
	s := newTestServer()
	rec := doJSON(t, s, http.MethodPost, "/v1/analyze",
		`{"session_id":"sess-1","text":"I want to kill myself tonight"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var report pipeline.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if report.Analysis == nil || string(report.Analysis.RiskLevel) != "critical" {
		t.Fatalf("expected critical analysis, got %+v", report.Analysis)
	}
	if !report.Analysis.RequiresImmediate {
		t.Error("expected requires_immediate")
	}
	if !report.Decision.Escalate || report.Decision.Alert == nil {
		t.Errorf("expected escalation with alert, got %+v", report.Decision)
	}
	if report.SessionID != "sess-1" {
		t.Errorf("session id lost: %q", report.SessionID)
	}
}

func TestAnalyze_Benign(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/v1/analyze",
		`{"text":"thanks, the breathing exercise helped"}`)

	var report pipeline.Report
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if string(report.Analysis.RiskLevel) != "minimal" {
		t.Errorf("expected minimal, got %s", report.Analysis.RiskLevel)
	}
	if report.Decision.Escalate {
		t.Error("benign message must not escalate")
	}
}

func TestAnalyze_BadRequest(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/v1/analyze", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPriority(t *testing.T) {
	rec := doJSON(t, newTestServer(), http.MethodPost, "/v1/priority",
		`{"text":"I feel hopeless and so alone","profile":{"is_minor":true}}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		RiskLevel string `json:"risk_level"`
		Priority  struct {
			Score int    `json:"score"`
			Level string `json:"level"`
		} `json:"priority"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.RiskLevel != "medium" {
		t.Errorf("expected medium, got %s", resp.RiskLevel)
	}
	if resp.Priority.Score != 80 {
		t.Errorf("expected priority 80 (base 60 plus minor bonus), got %d", resp.Priority.Score)
	}
	if resp.Priority.Level != "urgent" {
		t.Errorf("expected urgent, got %s", resp.Priority.Level)
	}
}

func TestAlerts(t *testing.T) {
	s := newTestServer()

	rec := doJSON(t, s, http.MethodGet, "/v1/alerts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var alerts []json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &alerts); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(alerts) != 0 {
		t.Fatalf("expected empty alert list, got %d", len(alerts))
	}

	doJSON(t, s, http.MethodPost, "/v1/analyze", `{"text":"I want to kill myself tonight"}`)

	rec = doJSON(t, s, http.MethodGet, "/v1/alerts", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &alerts); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(alerts) != 1 {
		t.Fatalf("expected 1 alert after critical message, got %d", len(alerts))
	}
}
