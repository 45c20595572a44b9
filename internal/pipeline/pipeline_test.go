package pipeline

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/saketmishra7224/calmify/internal/audit"
	"github.com/saketmishra7224/calmify/internal/corpus"
	"github.com/saketmishra7224/calmify/internal/detector"
	"github.com/saketmishra7224/calmify/internal/escalation"
	"github.com/saketmishra7224/calmify/internal/triage"
)

func newTestPipeline(buf *bytes.Buffer) *Pipeline {
	return New(corpus.Default(), escalation.Default(), audit.NewLogger(buf))
}

func TestProcess_CriticalMessage(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPipeline(&buf)

	var events []Event
	p.AddObserver(func(e Event) {
		events = append(events, e)
	})

	report := p.Process(Request{
		SessionID: "sess-1",
		Text:      "I want to kill myself tonight",
	})

	if report.Analysis.RiskLevel != detector.RiskCritical {
		t.Fatalf("expected critical, got %s", report.Analysis.RiskLevel)
	}
	if !report.Escalated() {
		t.Fatal("critical message must escalate")
	}
	if !report.RequiresImmediate() {
		t.Fatal("critical message must require immediate response")
	}
	if report.Decision.Action != escalation.ActionPageResponder {
		t.Errorf("expected PAGE_RESPONDER, got %s", report.Decision.Action)
	}
	if report.Priority.Score != 100 || report.Priority.Level != triage.UrgencyEmergency {
		t.Errorf("unexpected priority: %+v", report.Priority)
	}
	if report.Decision.Alert == nil {
		t.Fatal("expected an alert")
	}
	if p.Alerts().Len() != 1 {
		t.Errorf("expected 1 stored alert, got %d", p.Alerts().Len())
	}

	// Observer sees the same decision.
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].RequestID != report.RequestID || !events[0].Escalated {
		t.Errorf("event mismatch: %+v", events[0])
	}

	// Audit trail carries the decision but never the message text.
	var entry audit.Entry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("audit entry is not valid JSON: %v", err)
	}
	if entry.RequestID != report.RequestID || entry.RiskLevel != "critical" {
		t.Errorf("audit entry mismatch: %+v", entry)
	}
	if entry.AlertID == "" {
		t.Error("audit entry missing alert id")
	}
	if bytes.Contains(buf.Bytes(), []byte("I want to")) {
		t.Error("audit trail must not contain message text")
	}
}

func TestProcess_BenignMessage(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPipeline(&buf)

	report := p.Process(Request{SessionID: "sess-2", Text: "I had a pretty good day at school"})

	if report.Analysis.RiskLevel != detector.RiskMinimal {
		t.Fatalf("expected minimal, got %s", report.Analysis.RiskLevel)
	}
	if report.Escalated() || report.RequiresImmediate() {
		t.Error("benign message must not escalate")
	}
	if p.Alerts().Len() != 0 {
		t.Errorf("expected no alerts, got %d", p.Alerts().Len())
	}
	if buf.Len() == 0 {
		t.Error("benign messages are still audited")
	}
}

func TestProcess_ProfileRaisesPriority(t *testing.T) {
	p := newTestPipeline(&bytes.Buffer{})

	base := p.Process(Request{Text: "I feel hopeless and so alone"})
	minor := p.Process(Request{
		Text:    "I feel hopeless and so alone",
		Profile: triage.Profile{IsMinor: true, IsIsolated: true},
	})

	if minor.Priority.Score <= base.Priority.Score {
		t.Errorf("profile bonuses not applied: base %d, minor %d",
			base.Priority.Score, minor.Priority.Score)
	}
	if minor.Analysis.RiskLevel != base.Analysis.RiskLevel {
		t.Error("profile must not change the risk level itself")
	}
}

func TestProcess_RequestIDsIncrease(t *testing.T) {
	p := newTestPipeline(&bytes.Buffer{})

	first := p.Process(Request{Text: "hello"})
	second := p.Process(Request{Text: "hello"})
	if first.RequestID == second.RequestID {
		t.Errorf("request ids must be unique: %s", first.RequestID)
	}
}

func TestAnalyzeOnly(t *testing.T) {
	p := newTestPipeline(&bytes.Buffer{})

	res := p.AnalyzeOnly("I want to hurt myself")
	if res.RiskLevel == detector.RiskMinimal {
		t.Errorf("expected elevated risk, got %s", res.RiskLevel)
	}
	if p.Alerts().Len() != 0 {
		t.Error("AnalyzeOnly must not create alerts")
	}
}
