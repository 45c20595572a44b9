package pipeline

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/saketmishra7224/calmify/internal/audit"
	"github.com/saketmishra7224/calmify/internal/corpus"
	"github.com/saketmishra7224/calmify/internal/detector"
	"github.com/saketmishra7224/calmify/internal/escalation"
	"github.com/saketmishra7224/calmify/internal/triage"
)

var requestCounter atomic.Uint64

// EventObserver is a callback that receives pipeline events.
type EventObserver func(event Event)

// Event is a single pipeline event for observers (dashboard, metrics).
type Event struct {
	Timestamp time.Time           `json:"timestamp"`
	RequestID string              `json:"request_id"`
	SessionID string              `json:"session_id,omitempty"`
	RiskLevel detector.RiskLevel  `json:"risk_level"`
	Analysis  *detector.Result    `json:"analysis"`
	Priority  triage.Priority     `json:"priority"`
	Escalated bool                `json:"escalated"`
	Action    escalation.Action   `json:"action"`
	RuleName  string              `json:"rule_name,omitempty"`
}

// Pipeline runs detection, triage, and escalation for each message. It holds
// no per-message state; a single Pipeline serves concurrent callers.
type Pipeline struct {
	detector    *detector.Detector
	trigger     *escalation.Trigger
	alerts      *escalation.Store
	auditLogger *audit.Logger

	observerMu sync.RWMutex
	observers  []EventObserver
}

// New creates a Pipeline from a corpus and escalation policy.
func New(c *corpus.Corpus, pol *escalation.Policy, auditLogger *audit.Logger) *Pipeline {
	store := escalation.NewStore(0)
	return &Pipeline{
		detector:    detector.New(c),
		trigger:     escalation.NewTrigger(pol, store),
		alerts:      store,
		auditLogger: auditLogger,
	}
}

// Process analyzes one message and evaluates triage and escalation.
func (p *Pipeline) Process(req Request) *Report {
	reqID := fmt.Sprintf("req-%d", requestCounter.Add(1))

	analysis := p.detector.Analyze(req.Text, req.History)
	prio := triage.Classify(analysis, req.Profile)
	decision := p.trigger.Decide(req.SessionID, escalation.Input{
		Analysis: analysis,
		Priority: prio,
	})

	report := &Report{
		RequestID: reqID,
		SessionID: req.SessionID,
		Analysis:  analysis,
		Priority:  prio,
		Decision:  decision,
	}

	p.auditLogger.Log(auditEntry(report))
	p.notify(event(report))

	return report
}

// AnalyzeOnly runs detection without triage or escalation (for the
// `analyze` command and the priority endpoint).
func (p *Pipeline) AnalyzeOnly(text string) *detector.Result {
	return p.detector.Analyze(text, nil)
}

// Alerts returns the in-memory alert store.
func (p *Pipeline) Alerts() *escalation.Store {
	return p.alerts
}

// AddObserver registers a callback invoked for every pipeline event.
func (p *Pipeline) AddObserver(fn EventObserver) {
	p.observerMu.Lock()
	defer p.observerMu.Unlock()
	p.observers = append(p.observers, fn)
}

// notify sends an event to all registered observers.
func (p *Pipeline) notify(e Event) {
	p.observerMu.RLock()
	observers := p.observers
	p.observerMu.RUnlock()

	for _, fn := range observers {
		fn(e)
	}
}

func auditEntry(r *Report) audit.Entry {
	phrases := make([]string, 0, len(r.Analysis.MatchedKeywords))
	for _, m := range r.Analysis.MatchedKeywords {
		phrases = append(phrases, m.Phrase)
	}

	e := audit.Entry{
		RequestID:      r.RequestID,
		SessionID:      r.SessionID,
		RiskLevel:      string(r.Analysis.RiskLevel),
		TotalScore:     r.Analysis.TotalScore,
		Confidence:     r.Analysis.Confidence,
		PriorityScore:  r.Priority.Score,
		Urgency:        string(r.Priority.Level),
		Escalated:      r.Decision.Escalate,
		Action:         string(r.Decision.Action),
		RuleName:       r.Decision.RuleName,
		MatchedPhrases: phrases,
		RiskFactors:    r.Analysis.RiskFactors,
		ContextFactors: r.Analysis.ContextFactors,
	}
	if r.Decision.Alert != nil {
		e.AlertID = r.Decision.Alert.ID
	}
	return e
}

func event(r *Report) Event {
	return Event{
		Timestamp: time.Now().UTC(),
		RequestID: r.RequestID,
		SessionID: r.SessionID,
		RiskLevel: r.Analysis.RiskLevel,
		Analysis:  r.Analysis,
		Priority:  r.Priority,
		Escalated: r.Decision.Escalate,
		Action:    r.Decision.Action,
		RuleName:  r.Decision.RuleName,
	}
}
