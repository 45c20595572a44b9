package detector

import (
	"github.com/saketmishra7224/calmify/internal/corpus"
	"github.com/saketmishra7224/calmify/internal/history"
)

// confidenceDivisor normalizes the unbounded total score into a [0,1]
// confidence: min(total/50, 1).
const confidenceDivisor = 50.0

// multipleConcernsMin is how many categories must be active to flag the
// multiple-concerns risk factor.
const multipleConcernsMin = 3

// deriveRiskFactors computes the combination flags from the category scores
// plus optional historical signals. hist may be nil.
func deriveRiskFactors(cats map[corpus.Category]CategoryScore, hist *history.Signals) RiskFactors {
	score := func(cat corpus.Category) float64 {
		return cats[cat].Score
	}

	active := 0
	for _, cs := range cats {
		if cs.Score > 0 {
			active++
		}
	}

	return RiskFactors{
		MultipleConcerns:      active >= multipleConcernsMin,
		SuicideWithMethod:     score(corpus.CategorySuicide) > 0 && score(corpus.CategoryMethods) > 0,
		SuicideWithImmediacy:  score(corpus.CategorySuicide) > 0 && score(corpus.CategoryImmediacy) > 0,
		ViolenceWithImmediacy: score(corpus.CategoryViolence) > 0 && score(corpus.CategoryImmediacy) > 0,
		SubstanceWithSuicide:  score(corpus.CategorySubstance) > 0 && score(corpus.CategorySuicide) > 0,
		PreviousCrisis:        hist.PreviousCrisis(),
		RecentHighAssessment:  hist.RecentHighAssessment(),
		EscalatingPattern:     hist.Escalating(),
	}
}

// classify maps the aggregate scores and risk factors to a discrete risk
// level. Rules are evaluated in strict order; the first match wins even when
// later rules would also match. A missing category key counts as zero, so
// classification cannot fail.
func classify(total float64, cats map[corpus.Category]CategoryScore, rf RiskFactors) RiskLevel {
	score := func(cat corpus.Category) float64 {
		return cats[cat].Score
	}

	suicide := score(corpus.CategorySuicide)
	violence := score(corpus.CategoryViolence)
	selfHarm := score(corpus.CategorySelfHarm)
	immediacy := score(corpus.CategoryImmediacy)

	switch {
	case total >= 30,
		suicide >= 15,
		violence >= 15,
		suicide >= 10 && immediacy >= 10,
		rf.SuicideWithMethod:
		return RiskCritical

	case total >= 20,
		suicide >= 10,
		violence >= 10,
		selfHarm >= 12,
		rf.SuicideWithImmediacy,
		rf.ViolenceWithImmediacy:
		return RiskHigh

	case total >= 10,
		suicide >= 5,
		selfHarm >= 8,
		rf.MultipleConcerns,
		rf.SubstanceWithSuicide:
		return RiskMedium

	case total >= 3:
		return RiskLow

	default:
		return RiskMinimal
	}
}

// confidence derives the normalized confidence from the total score.
func confidence(total float64) float64 {
	c := total / confidenceDivisor
	if c > 1 {
		return 1
	}
	if c < 0 {
		return 0
	}
	return c
}

// requiresImmediate reports whether a risk level demands immediate response.
func requiresImmediate(level RiskLevel) bool {
	return level == RiskCritical || level == RiskHigh
}
