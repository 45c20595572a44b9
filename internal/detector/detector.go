package detector

import (
	"strings"

	"github.com/saketmishra7224/calmify/internal/corpus"
	"github.com/saketmishra7224/calmify/internal/history"
)

// Detector is the crisis detection engine. It scans message text against
// the phrase corpus, adjusts matches for surrounding context, and classifies
// the result. A pure function pipeline with no per-call state, safe for
// concurrent use once constructed.
type Detector struct {
	corpus *corpus.Corpus
}

// New creates a Detector over the given corpus.
func New(c *corpus.Corpus) *Detector {
	return &Detector{corpus: c}
}

// Analyze runs the full pipeline over a single message. hist may be nil.
// It never fails: any input string, including empty or non-ASCII text,
// yields a well-formed Result (risk level minimal in the degenerate case).
func (d *Detector) Analyze(text string, hist *history.Signals) *Result {
	lower := strings.ToLower(text)

	total, cats, matches := d.score(lower)
	rf := deriveRiskFactors(cats, hist)
	level := classify(total, cats, rf)

	return &Result{
		TotalScore:        total,
		RiskLevel:         level,
		CategoryScores:    cats,
		MatchedKeywords:   matches,
		RiskFactors:       rf,
		ContextFactors:    contextFactors(matches),
		Recommendations:   recommendationsFor(level, cats),
		RequiresImmediate: requiresImmediate(level),
		Confidence:        confidence(total),
	}
}

// contextFactors summarizes which modifier cues fired anywhere in the
// message, for display and audit.
func contextFactors(matches []MatchRecord) []string {
	var negated, intensified, certain bool
	for _, m := range matches {
		negated = negated || m.Negated
		intensified = intensified || m.Intensified
		certain = certain || m.Certain
	}

	factors := []string{}
	if negated {
		factors = append(factors, "negation")
	}
	if intensified {
		factors = append(factors, "intensifier")
	}
	if certain {
		factors = append(factors, "certainty")
	}
	return factors
}
