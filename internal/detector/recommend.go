package detector

import "github.com/saketmishra7224/calmify/internal/corpus"

// recommendationsFor maps a risk level plus the category mix to action
// bundles. The bundles are display text handed to counselors and the
// session UI, not machine-interpreted.
func recommendationsFor(level RiskLevel, cats map[corpus.Category]CategoryScore) Recommendations {
	var rec Recommendations

	switch level {
	case RiskCritical:
		rec.Immediate = []string{
			"Escalate to an on-call crisis counselor now",
			"Keep the patient engaged in conversation until a counselor joins",
			"Display emergency contact options (988 Suicide & Crisis Lifeline)",
		}
		rec.ShortTerm = []string{
			"Schedule a same-day safety planning session",
			"Notify the assigned care coordinator",
		}
		rec.LongTerm = []string{
			"Arrange ongoing professional mental health support",
			"Review session frequency and escalation history weekly",
		}
	case RiskHigh:
		rec.Immediate = []string{
			"Route the session to a counselor within minutes",
			"Surface crisis resources in the chat",
		}
		rec.ShortTerm = []string{
			"Complete a structured risk assessment within 24 hours",
			"Create or review the patient safety plan",
		}
		rec.LongTerm = []string{
			"Establish a regular counselor check-in cadence",
		}
	case RiskMedium:
		rec.Immediate = []string{
			"Offer to connect the patient with a peer supporter or counselor",
		}
		rec.ShortTerm = []string{
			"Follow up within 48 hours",
			"Encourage completion of a self-assessment",
		}
		rec.LongTerm = []string{
			"Suggest recurring peer support sessions",
		}
	case RiskLow:
		rec.Immediate = []string{
			"Continue supportive conversation",
		}
		rec.ShortTerm = []string{
			"Check in at the next scheduled session",
		}
		rec.LongTerm = []string{
			"Share self-care and coping resources",
		}
	default:
		rec.Immediate = []string{}
		rec.ShortTerm = []string{}
		rec.LongTerm = []string{
			"Keep standard monitoring in place",
		}
	}

	rec.Resources = resourcesFor(level, cats)
	return rec
}

// resourcesFor picks resource references based on which categories are
// active, with the national lifelines always present for elevated levels.
func resourcesFor(level RiskLevel, cats map[corpus.Category]CategoryScore) []string {
	var res []string

	if level == RiskCritical || level == RiskHigh {
		res = append(res,
			"988 Suicide & Crisis Lifeline (call or text 988)",
			"Crisis Text Line (text HOME to 741741)",
		)
	}
	if cats[corpus.CategorySubstance].Score > 0 {
		res = append(res, "SAMHSA National Helpline (1-800-662-4357)")
	}
	if cats[corpus.CategoryViolence].Score > 0 {
		res = append(res, "Emergency services (911) if anyone is in physical danger")
	}
	if cats[corpus.CategorySelfHarm].Score > 0 {
		res = append(res, "Self-harm coping strategies library")
	}
	if cats[corpus.CategoryIsolation].Score > 0 || cats[corpus.CategoryHopelessness].Score > 0 {
		res = append(res, "Peer support community directory")
	}
	if len(res) == 0 {
		res = append(res, "Wellness and mindfulness resource library")
	}
	return res
}
