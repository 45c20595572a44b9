package detector

import "github.com/saketmishra7224/calmify/internal/corpus"

// RiskLevel is the discrete classification driving escalation decisions.
type RiskLevel string

const (
	RiskMinimal  RiskLevel = "minimal"
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// MatchRecord captures a single phrase occurrence and how its score was
// derived, kept for auditability.
type MatchRecord struct {
	Phrase            string          `json:"phrase"`
	Category          corpus.Category `json:"category"`
	Tier              corpus.Tier     `json:"tier"`
	RawScore          float64         `json:"raw_score"`
	ContextMultiplier float64         `json:"context_multiplier"`
	FinalScore        float64         `json:"final_score"`
	Negated           bool            `json:"negated,omitempty"`
	Intensified       bool            `json:"intensified,omitempty"`
	Certain           bool            `json:"certain,omitempty"`
	Surrounding       string          `json:"surrounding_text"`
}

// CategoryScore is the aggregate contribution of one category.
type CategoryScore struct {
	Category corpus.Category `json:"category"`
	Score    float64         `json:"score"`
	Matches  []MatchRecord   `json:"matches,omitempty"`
}

// RiskFactors are derived booleans representing dangerous combinations of
// category matches, plus flags derived from the caller-supplied history.
type RiskFactors struct {
	MultipleConcerns      bool `json:"multiple_concerns"`
	SuicideWithMethod     bool `json:"suicide_with_method"`
	SuicideWithImmediacy  bool `json:"suicide_with_immediacy"`
	ViolenceWithImmediacy bool `json:"violence_with_immediacy"`
	SubstanceWithSuicide  bool `json:"substance_with_suicide"`
	PreviousCrisis        bool `json:"previous_crisis"`
	RecentHighAssessment  bool `json:"recent_high_assessment"`
	EscalatingPattern     bool `json:"escalating_pattern"`
}

// Recommendations are the actionable text bundles attached to an analysis.
type Recommendations struct {
	Immediate []string `json:"immediate"`
	ShortTerm []string `json:"short_term"`
	LongTerm  []string `json:"long_term"`
	Resources []string `json:"resources"`
}

// Result is the single output artifact of an analysis. It is created fresh
// per message, owned by the caller, and never mutated afterward.
type Result struct {
	TotalScore        float64                           `json:"total_score"`
	RiskLevel         RiskLevel                         `json:"risk_level"`
	CategoryScores    map[corpus.Category]CategoryScore `json:"category_scores"`
	MatchedKeywords   []MatchRecord                     `json:"matched_keywords"`
	RiskFactors       RiskFactors                       `json:"risk_factors"`
	ContextFactors    []string                          `json:"context_factors"`
	Recommendations   Recommendations                   `json:"recommendations"`
	RequiresImmediate bool                              `json:"requires_immediate"`
	Confidence        float64                           `json:"confidence"`
}

// CategoryScoreValue returns the aggregate score for a category, treating a
// missing key as zero.
func (r *Result) CategoryScoreValue(cat corpus.Category) float64 {
	if cs, ok := r.CategoryScores[cat]; ok {
		return cs.Score
	}
	return 0
}

// ActiveCategories returns how many categories have a score above zero.
func (r *Result) ActiveCategories() int {
	n := 0
	for _, cs := range r.CategoryScores {
		if cs.Score > 0 {
			n++
		}
	}
	return n
}
