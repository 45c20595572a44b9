package history

import "testing"

func TestSignals_NilSafe(t *testing.T) {
	var s *Signals
	if s.PreviousCrisis() || s.RecentHighAssessment() || s.Escalating() {
		t.Error("nil signals must report no flags")
	}
}

func TestPreviousCrisis(t *testing.T) {
	if (&Signals{}).PreviousCrisis() {
		t.Error("zero events must not flag previous crisis")
	}
	if !(&Signals{PreviousCrisisEvents: 1}).PreviousCrisis() {
		t.Error("one event must flag previous crisis")
	}
}

func TestRecentHighAssessment(t *testing.T) {
	if (&Signals{LastAssessmentScore: 15}).RecentHighAssessment() {
		t.Error("threshold score must not flag, comparison is strict")
	}
	if !(&Signals{LastAssessmentScore: 15.1}).RecentHighAssessment() {
		t.Error("score above threshold must flag")
	}
}

func TestEscalating(t *testing.T) {
	tests := []struct {
		freq Frequency
		want bool
	}{
		{FrequencyNone, false},
		{FrequencyMonthly, false},
		{FrequencyWeekly, false},
		{FrequencyDaily, true},
		{FrequencyIncreasing, true},
	}
	for _, tc := range tests {
		if got := (&Signals{CrisisFrequency: tc.freq}).Escalating(); got != tc.want {
			t.Errorf("frequency %s: expected %v, got %v", tc.freq, tc.want, got)
		}
	}
}
