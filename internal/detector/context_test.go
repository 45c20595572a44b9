package detector

import (
	"math"
	"strings"
	"testing"
)

// modsFor runs examineContext for the first occurrence of phrase in text.
func modsFor(t *testing.T, text, phrase string) ContextModifiers {
	t.Helper()
	idx := strings.Index(text, phrase)
	if idx < 0 {
		t.Fatalf("phrase %q not in %q", phrase, text)
	}
	return examineContext(text, idx, len(phrase))
}

func TestExamineContext_Neutral(t *testing.T) {
	m := modsFor(t, "i want to hurt myself", "hurt myself")
	if m.Negated || m.Intensified || m.Certain {
		t.Errorf("expected no modifiers, got %+v", m)
	}
	if m.Multiplier != 1.0 {
		t.Errorf("expected multiplier 1.0, got %v", m.Multiplier)
	}
}

func TestExamineContext_Negation(t *testing.T) {
	tests := []string{
		"i don't want to hurt myself",
		"i do not want to hurt myself",
		"i would never hurt myself",
		"i can't hurt myself",
	}
	for _, text := range tests {
		m := modsFor(t, text, "hurt myself")
		if !m.Negated {
			t.Errorf("expected negation for %q", text)
		}
		if m.Multiplier != negationMultiplier {
			t.Errorf("%q: expected multiplier %v, got %v", text, negationMultiplier, m.Multiplier)
		}
	}
}

func TestExamineContext_NegationIsLocal(t *testing.T) {
	// A negation several clauses back does not negate a later phrase.
	m := modsFor(t, "there is no point anymore and i have been drinking a lot", "drinking a lot")
	if m.Negated {
		t.Error("expected distant negation not to apply")
	}
}

func TestExamineContext_NegationNotInsideWords(t *testing.T) {
	// "know" must not count as "no".
	m := modsFor(t, "you know i hurt myself", "hurt myself")
	if m.Negated {
		t.Error("expected no negation from substring of another word")
	}
}

func TestExamineContext_Intensifier(t *testing.T) {
	m := modsFor(t, "i really want to hurt myself", "hurt myself")
	if !m.Intensified {
		t.Error("expected intensifier")
	}
	if m.Multiplier != intensifierMultiplier {
		t.Errorf("expected multiplier %v, got %v", intensifierMultiplier, m.Multiplier)
	}
}

func TestExamineContext_Certainty(t *testing.T) {
	tests := []string{
		"i will hurt myself",
		"i am going to hurt myself",
		"i have decided to hurt myself",
	}
	for _, text := range tests {
		m := modsFor(t, text, "hurt myself")
		if !m.Certain {
			t.Errorf("expected certainty for %q", text)
		}
	}
}

func TestExamineContext_ModifiersCompose(t *testing.T) {
	// Negation and intensifier apply independently and multiply, so a
	// negated and intensified phrase scores higher than a plainly negated
	// one.
	m := modsFor(t, "i don't want to really hurt myself", "hurt myself")
	if !m.Negated || !m.Intensified {
		t.Fatalf("expected negation and intensifier, got %+v", m)
	}
	want := negationMultiplier * intensifierMultiplier
	if math.Abs(m.Multiplier-want) > 1e-9 {
		t.Errorf("expected multiplier %v, got %v", want, m.Multiplier)
	}
	if m.Multiplier <= negationMultiplier {
		t.Error("negated+intensified must exceed plain negation")
	}
}

func TestExamineContext_WindowTruncation(t *testing.T) {
	// Match at the very start of the text
	m := examineContext("tonight it happens", 0, len("tonight"))
	if m.Negated {
		t.Error("expected no negation at text start")
	}

	// Match at the very end of the text
	text := "it has to be tonight"
	idx := strings.Index(text, "tonight")
	m = examineContext(text, idx, len("tonight"))
	if m.Window == "" {
		t.Error("expected non-empty window at text end")
	}

	// Single-phrase text
	m = examineContext("tonight", 0, len("tonight"))
	if m.Window != "tonight" {
		t.Errorf("expected window to equal text, got %q", m.Window)
	}
}
