package detector

import (
	"regexp"
	"strings"
)

// Context modifier multipliers. They compose multiplicatively and apply
// independently of one another, so a phrase can be negated and intensified
// at the same time.
const (
	negationMultiplier    = 0.3
	intensifierMultiplier = 1.5
	certaintyMultiplier   = 1.3

	// contextWindow is how many characters on each side of a match are
	// inspected for modifier terms.
	contextWindow = 50
)

// Modifier term lists, compiled once as word-bounded alternations so that
// "no" does not fire inside "know" or "so" inside "someone".
var (
	negationTerms = regexp.MustCompile(`^(no|not|never|don'?t|won'?t|wouldn'?t|can'?t|couldn'?t|didn'?t|doesn'?t|isn'?t|haven'?t|wasn'?t|weren'?t|without|stopped?)$`)

	intensifierTerms = regexp.MustCompile(`\b(really|very|so|extremely|absolutely|completely|totally|definitely|seriously|desperately)\b`)

	certaintyTerms = regexp.MustCompile(`\b(will|going to|planning|plan to|ready|decided|determined)\b`)
)

// negationLookback is how many words immediately before a match are checked
// for negation. "I don't want to really hurt myself" negates "hurt myself";
// a negation further back in the sentence does not.
const negationLookback = 4

// ContextModifiers describes which modifier cues were found near a match and
// the combined multiplier they produce.
type ContextModifiers struct {
	Negated     bool
	Intensified bool
	Certain     bool
	Multiplier  float64
	Window      string
}

// examineContext inspects the window around a match in the lowercased text.
// Negation must appear in the text preceding the phrase; intensifiers and
// certainty terms count anywhere in the window. Windows truncate safely at
// the text edges.
func examineContext(text string, matchStart, matchLen int) ContextModifiers {
	winStart := matchStart - contextWindow
	if winStart < 0 {
		winStart = 0
	}
	winEnd := matchStart + matchLen + contextWindow
	if winEnd > len(text) {
		winEnd = len(text)
	}

	window := text[winStart:winEnd]
	preceding := text[winStart:matchStart]

	mods := ContextModifiers{Multiplier: 1.0, Window: window}

	if negatedBefore(preceding) {
		mods.Negated = true
		mods.Multiplier *= negationMultiplier
	}
	if intensifierTerms.MatchString(window) {
		mods.Intensified = true
		mods.Multiplier *= intensifierMultiplier
	}
	if certaintyTerms.MatchString(window) {
		mods.Certain = true
		mods.Multiplier *= certaintyMultiplier
	}

	return mods
}

// negatedBefore reports whether any of the last few words preceding the
// match is a negation term.
func negatedBefore(preceding string) bool {
	words := strings.Fields(preceding)
	if len(words) > negationLookback {
		words = words[len(words)-negationLookback:]
	}
	for _, w := range words {
		w = strings.Trim(w, ".,!?;:\"()")
		if negationTerms.MatchString(w) {
			return true
		}
	}
	return false
}
