package escalation

import (
	"time"

	"github.com/google/uuid"
)

// Trigger turns rule evaluations into escalation decisions and alert
// records. A requires_immediate analysis always yields an alert, whatever
// the rule table says. Callers must never swallow that signal.
type Trigger struct {
	table *RuleTable
	store *Store
}

// NewTrigger creates a Trigger from a loaded policy and alert store.
func NewTrigger(p *Policy, store *Store) *Trigger {
	return &Trigger{
		table: BuildTable(p),
		store: store,
	}
}

// Decide evaluates the escalation rules for one analyzed message.
func (t *Trigger) Decide(sessionID string, in Input) Decision {
	result := t.table.Evaluate(in)

	dec := Decision{
		Action:   result.Action,
		RuleName: result.RuleName,
		Note:     result.Note,
	}

	escalates := result.Action == ActionPageResponder ||
		result.Action == ActionCreateAlert ||
		result.Action == ActionNotifyCounselor

	// Unconditional floor: immediate-risk analyses escalate even when the
	// configured rules would not.
	if in.Analysis.RequiresImmediate && !escalates {
		escalates = true
		dec.Action = ActionCreateAlert
		dec.Note = "requires_immediate override"
	}

	dec.Escalate = escalates
	if escalates {
		dec.Alert = t.createAlert(sessionID, in, dec)
	}

	return dec
}

// createAlert builds the alert record and adds it to the store.
func (t *Trigger) createAlert(sessionID string, in Input, dec Decision) *Alert {
	a := in.Analysis

	phrases := make([]string, 0, len(a.MatchedKeywords))
	for _, m := range a.MatchedKeywords {
		phrases = append(phrases, m.Phrase)
	}

	alert := &Alert{
		ID:             uuid.NewString(),
		SessionID:      sessionID,
		RiskLevel:      a.RiskLevel,
		MatchedPhrases: phrases,
		Confidence:     a.Confidence,
		PriorityScore:  in.Priority.Score,
		Urgency:        in.Priority.Level,
		Action:         dec.Action,
		RuleName:       dec.RuleName,
		CreatedAt:      time.Now().UTC(),
	}

	if t.store != nil {
		t.store.Add(alert)
	}
	return alert
}
