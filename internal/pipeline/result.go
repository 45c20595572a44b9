package pipeline

import (
	"github.com/saketmishra7224/calmify/internal/detector"
	"github.com/saketmishra7224/calmify/internal/escalation"
	"github.com/saketmishra7224/calmify/internal/history"
	"github.com/saketmishra7224/calmify/internal/triage"
)

// Request is one message to run through the pipeline. History and profile
// are optional context supplied by the messaging subsystem.
type Request struct {
	SessionID string           `json:"session_id,omitempty"`
	Text      string           `json:"text"`
	History   *history.Signals `json:"history,omitempty"`
	Profile   triage.Profile   `json:"profile"`
}

// Report captures the full decision chain for a single message.
type Report struct {
	RequestID string               `json:"request_id"`
	SessionID string               `json:"session_id,omitempty"`
	Analysis  *detector.Result     `json:"analysis"`
	Priority  triage.Priority      `json:"priority"`
	Decision  escalation.Decision  `json:"decision"`
}

// Escalated returns true if the message triggered any escalation action.
func (r *Report) Escalated() bool {
	return r.Decision.Escalate
}

// RequiresImmediate returns true if the analysis demands immediate response.
// Callers must surface this to the escalation path unconditionally.
func (r *Report) RequiresImmediate() bool {
	return r.Analysis != nil && r.Analysis.RequiresImmediate
}
