package escalation

import (
	"time"

	"github.com/saketmishra7224/calmify/internal/detector"
	"github.com/saketmishra7224/calmify/internal/triage"
)

// Action is what the platform should do when a rule matches.
type Action string

const (
	ActionPageResponder   Action = "PAGE_RESPONDER"
	ActionCreateAlert     Action = "CREATE_ALERT"
	ActionNotifyCounselor Action = "NOTIFY_COUNSELOR"
	ActionLog             Action = "LOG"
	ActionNone            Action = "NONE"
)

// MatchType is the comparison operator for a rule condition.
type MatchType string

const (
	MatchExact     MatchType = "exact"
	MatchBoolean   MatchType = "boolean"
	MatchThreshold MatchType = "threshold"
	MatchRange     MatchType = "range"
	MatchContains  MatchType = "contains"
)

// MatchCondition is a single predicate over the analysis fields.
type MatchCondition struct {
	Field     string    `yaml:"field" json:"field"`
	MatchType MatchType `yaml:"match_type" json:"match_type"`
	Value     any       `yaml:"value" json:"value"`
	Negate    bool      `yaml:"negate,omitempty" json:"negate,omitempty"`
}

// EscalationRule is a single rule with priority, conditions, and action.
// All conditions must match (AND logic).
type EscalationRule struct {
	Name        string           `yaml:"name" json:"name"`
	Description string           `yaml:"description" json:"description"`
	Priority    int              `yaml:"priority" json:"priority"`
	Action      Action           `yaml:"action" json:"action"`
	Note        string           `yaml:"note,omitempty" json:"note,omitempty"`
	Conditions  []MatchCondition `yaml:"conditions" json:"conditions"`
}

// Policy is the top-level escalation configuration loaded from YAML.
type Policy struct {
	Version       string           `yaml:"version" json:"version"`
	PolicyName    string           `yaml:"policy_name" json:"policy_name"`
	DefaultAction Action           `yaml:"default_action" json:"default_action"`
	Rules         []EscalationRule `yaml:"rules" json:"rules"`
}

// RuleTable holds the rules sorted by priority plus the default action.
type RuleTable struct {
	Rules         []EscalationRule
	DefaultAction Action
}

// RuleResult captures which rule matched and what action applies.
type RuleResult struct {
	Matched  bool   `json:"matched"`
	RuleName string `json:"rule_name,omitempty"`
	Action   Action `json:"action"`
	Note     string `json:"note,omitempty"`
}

// Input is everything the rule table can see for one message.
type Input struct {
	Analysis *detector.Result
	Priority triage.Priority
}

// Decision is the escalation outcome for one message.
type Decision struct {
	Escalate bool   `json:"escalate"`
	Action   Action `json:"action"`
	RuleName string `json:"rule_name,omitempty"`
	Note     string `json:"note,omitempty"`
	Alert    *Alert `json:"alert,omitempty"`
}

// Alert is the durable record handed to the notification layer when a
// message escalates. Persistence beyond the in-memory store is the
// platform's concern.
type Alert struct {
	ID             string                `json:"id"`
	SessionID      string                `json:"session_id,omitempty"`
	RiskLevel      detector.RiskLevel    `json:"risk_level"`
	MatchedPhrases []string              `json:"matched_phrases"`
	Confidence     float64               `json:"confidence"`
	PriorityScore  int                   `json:"priority_score"`
	Urgency        triage.UrgencyLevel   `json:"urgency"`
	Action         Action                `json:"action"`
	RuleName       string                `json:"rule_name,omitempty"`
	CreatedAt      time.Time             `json:"created_at"`
}
