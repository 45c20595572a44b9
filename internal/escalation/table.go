package escalation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/saketmishra7224/calmify/internal/corpus"
)

// NewRuleTable creates a table from rules, sorted by priority (highest first).
func NewRuleTable(rules []EscalationRule, defaultAction Action) *RuleTable {
	sorted := make([]EscalationRule, len(rules))
	copy(sorted, rules)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return &RuleTable{
		Rules:         sorted,
		DefaultAction: defaultAction,
	}
}

// BuildTable creates the rule table from a loaded policy.
func BuildTable(p *Policy) *RuleTable {
	return NewRuleTable(p.Rules, p.DefaultAction)
}

// Evaluate runs an analysis against the table. First matching rule wins.
func (t *RuleTable) Evaluate(in Input) RuleResult {
	for _, rule := range t.Rules {
		if matchRule(rule, in) {
			return RuleResult{
				Matched:  true,
				RuleName: rule.Name,
				Action:   rule.Action,
				Note:     rule.Note,
			}
		}
	}
	return RuleResult{
		Matched: false,
		Action:  t.DefaultAction,
	}
}

// matchRule returns true if ALL conditions in the rule match (AND logic).
func matchRule(rule EscalationRule, in Input) bool {
	for _, cond := range rule.Conditions {
		if !matchCondition(cond, in) {
			return false
		}
	}
	return len(rule.Conditions) > 0
}

func matchCondition(cond MatchCondition, in Input) bool {
	result := evaluateCondition(cond, in)
	if cond.Negate {
		return !result
	}
	return result
}

func evaluateCondition(cond MatchCondition, in Input) bool {
	fieldVal := getFieldValue(cond.Field, in)

	switch cond.MatchType {
	case MatchBoolean:
		return matchBoolean(fieldVal, cond.Value)
	case MatchExact:
		return matchExact(fieldVal, cond.Value)
	case MatchContains:
		return matchContains(fieldVal, cond.Value)
	case MatchThreshold:
		return matchThreshold(fieldVal, cond.Value)
	case MatchRange:
		return matchRange(fieldVal, cond.Value)
	default:
		return false
	}
}

// getFieldValue extracts a named field from the analysis and priority.
// Per-category scores are addressed as "<category>_score".
func getFieldValue(field string, in Input) any {
	a := in.Analysis

	if cat, ok := strings.CutSuffix(field, "_score"); ok && cat != "total" && cat != "priority" {
		// self_harm_score, suicide_score, ...
		return a.CategoryScoreValue(corpus.Category(cat))
	}

	switch field {
	case "risk_level":
		return string(a.RiskLevel)
	case "total_score":
		return a.TotalScore
	case "confidence":
		return a.Confidence
	case "requires_immediate":
		return a.RequiresImmediate
	case "match_count":
		return len(a.MatchedKeywords)
	case "active_categories":
		return a.ActiveCategories()
	case "multiple_concerns":
		return a.RiskFactors.MultipleConcerns
	case "suicide_with_method":
		return a.RiskFactors.SuicideWithMethod
	case "suicide_with_immediacy":
		return a.RiskFactors.SuicideWithImmediacy
	case "violence_with_immediacy":
		return a.RiskFactors.ViolenceWithImmediacy
	case "substance_with_suicide":
		return a.RiskFactors.SubstanceWithSuicide
	case "previous_crisis":
		return a.RiskFactors.PreviousCrisis
	case "recent_high_assessment":
		return a.RiskFactors.RecentHighAssessment
	case "escalating_pattern":
		return a.RiskFactors.EscalatingPattern
	case "context_factors":
		return a.ContextFactors
	case "priority_score":
		return in.Priority.Score
	case "urgency_level":
		return string(in.Priority.Level)
	default:
		return nil
	}
}

func matchBoolean(fieldVal any, condVal any) bool {
	return toBool(fieldVal) == toBool(condVal)
}

func matchExact(fieldVal any, condVal any) bool {
	return fmt.Sprintf("%v", fieldVal) == fmt.Sprintf("%v", condVal)
}

func matchContains(fieldVal any, condVal any) bool {
	cs := fmt.Sprintf("%v", condVal)

	if slice, ok := fieldVal.([]string); ok {
		for _, s := range slice {
			if strings.Contains(s, cs) {
				return true
			}
		}
		return false
	}

	return strings.Contains(fmt.Sprintf("%v", fieldVal), cs)
}

func matchThreshold(fieldVal any, condVal any) bool {
	return toFloat64(fieldVal) >= toFloat64(condVal)
}

func matchRange(fieldVal any, condVal any) bool {
	fv := toFloat64(fieldVal)
	// Range expects "min-max".
	cs := fmt.Sprintf("%v", condVal)
	parts := strings.SplitN(cs, "-", 2)
	if len(parts) != 2 {
		return false
	}
	min, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	max, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return false
	}
	return fv >= min && fv <= max
}

func toBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true")
	case int:
		return b != 0
	case float64:
		return b != 0
	default:
		return false
	}
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, _ := strconv.ParseFloat(n, 64)
		return f
	default:
		return 0
	}
}
