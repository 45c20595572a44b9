package escalation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile loads an escalation policy from a YAML file.
func LoadFromFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading policy file: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML bytes into a Policy.
func Parse(data []byte) (*Policy, error) {
	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing policy YAML: %w", err)
	}
	if err := validate(&p); err != nil {
		return nil, fmt.Errorf("validating policy: %w", err)
	}
	return &p, nil
}

// validate checks policy integrity.
func validate(p *Policy) error {
	if p.Version == "" {
		return fmt.Errorf("policy version is required")
	}
	if p.PolicyName == "" {
		return fmt.Errorf("policy_name is required")
	}
	if p.DefaultAction == "" {
		p.DefaultAction = ActionNone
	}

	validActions := map[Action]bool{
		ActionPageResponder: true, ActionCreateAlert: true,
		ActionNotifyCounselor: true, ActionLog: true, ActionNone: true,
	}

	for i, rule := range p.Rules {
		if rule.Name == "" {
			return fmt.Errorf("rule %d: name is required", i)
		}
		if !validActions[rule.Action] {
			return fmt.Errorf("rule %q: invalid action %q", rule.Name, rule.Action)
		}
		if len(rule.Conditions) == 0 {
			return fmt.Errorf("rule %q: at least one condition is required", rule.Name)
		}
	}

	return nil
}

// Default returns the built-in escalation policy used when no file is given.
func Default() *Policy {
	p := &Policy{
		Version:       "1",
		PolicyName:    "calmify-default",
		DefaultAction: ActionNone,
		Rules: []EscalationRule{
			{
				Name:     "page_on_critical",
				Priority: 100,
				Action:   ActionPageResponder,
				Note:     "Critical risk requires an on-call responder",
				Conditions: []MatchCondition{
					{Field: "risk_level", MatchType: MatchExact, Value: "critical"},
				},
			},
			{
				Name:     "alert_on_immediate",
				Priority: 90,
				Action:   ActionCreateAlert,
				Note:     "High-risk message requires a durable alert",
				Conditions: []MatchCondition{
					{Field: "requires_immediate", MatchType: MatchBoolean, Value: true},
				},
			},
			{
				Name:     "notify_on_emergency_priority",
				Priority: 80,
				Action:   ActionNotifyCounselor,
				Conditions: []MatchCondition{
					{Field: "priority_score", MatchType: MatchThreshold, Value: 90},
				},
			},
			{
				Name:     "notify_on_medium",
				Priority: 50,
				Action:   ActionNotifyCounselor,
				Conditions: []MatchCondition{
					{Field: "risk_level", MatchType: MatchExact, Value: "medium"},
				},
			},
			{
				Name:     "log_low",
				Priority: 10,
				Action:   ActionLog,
				Conditions: []MatchCondition{
					{Field: "risk_level", MatchType: MatchExact, Value: "low"},
				},
			},
		},
	}
	return p
}
