package triage

import (
	"testing"

	"github.com/saketmishra7224/calmify/internal/detector"
)

func analysisWith(level detector.RiskLevel, rf detector.RiskFactors) *detector.Result {
	return &detector.Result{RiskLevel: level, RiskFactors: rf}
}

func TestClassify_BaseScores(t *testing.T) {
	tests := []struct {
		level     detector.RiskLevel
		wantScore int
		wantTier  UrgencyLevel
	}{
		{detector.RiskCritical, 100, UrgencyEmergency},
		{detector.RiskHigh, 80, UrgencyUrgent},
		{detector.RiskMedium, 60, UrgencyHigh},
		{detector.RiskLow, 40, UrgencyNormal},
		{detector.RiskMinimal, 20, UrgencyLow},
	}

	for _, tc := range tests {
		p := Classify(analysisWith(tc.level, detector.RiskFactors{}), Profile{})
		if p.Score != tc.wantScore {
			t.Errorf("%s: expected score %d, got %d", tc.level, tc.wantScore, p.Score)
		}
		if p.Level != tc.wantTier {
			t.Errorf("%s: expected %s urgency, got %s", tc.level, tc.wantTier, p.Level)
		}
	}
}

func TestClassify_ProfileBonuses(t *testing.T) {
	tests := []struct {
		name      string
		profile   Profile
		wantScore int
	}{
		{"minor", Profile{IsMinor: true}, 60},
		{"history", Profile{HasHistory: true}, 50},
		{"previous attempts", Profile{PreviousAttempts: true}, 65},
		{"isolated", Profile{IsIsolated: true}, 55},
		{"stacked", Profile{IsMinor: true, HasHistory: true, PreviousAttempts: true, IsIsolated: true}, 100},
	}

	for _, tc := range tests {
		p := Classify(analysisWith(detector.RiskLow, detector.RiskFactors{}), tc.profile)
		if p.Score != tc.wantScore {
			t.Errorf("%s: expected score %d, got %d", tc.name, tc.wantScore, p.Score)
		}
	}
}

func TestClassify_RiskFactorBonuses(t *testing.T) {
	tests := []struct {
		name      string
		rf        detector.RiskFactors
		wantScore int
	}{
		{"suicide with method", detector.RiskFactors{SuicideWithMethod: true}, 50},
		{"suicide with immediacy", detector.RiskFactors{SuicideWithImmediacy: true}, 45},
		{"violence with immediacy", detector.RiskFactors{ViolenceWithImmediacy: true}, 50},
	}

	for _, tc := range tests {
		p := Classify(analysisWith(detector.RiskMinimal, tc.rf), Profile{})
		if p.Score != tc.wantScore {
			t.Errorf("%s: expected score %d, got %d", tc.name, tc.wantScore, p.Score)
		}
	}
}

func TestClassify_ClampsAt100(t *testing.T) {
	// A high-risk minor with isolation lands past 100 before clamping and
	// must surface as an emergency.
	p := Classify(analysisWith(detector.RiskHigh, detector.RiskFactors{}), Profile{IsMinor: true, IsIsolated: true})
	if p.Score != 100 {
		t.Errorf("expected score clamped to 100, got %d", p.Score)
	}
	if p.Level != UrgencyEmergency {
		t.Errorf("expected emergency urgency, got %s", p.Level)
	}
	if p.EstimatedWaitTime != "immediate" {
		t.Errorf("expected immediate wait, got %q", p.EstimatedWaitTime)
	}
}

func TestUrgencyBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  UrgencyLevel
	}{
		{90, UrgencyEmergency},
		{89, UrgencyUrgent},
		{70, UrgencyUrgent},
		{69, UrgencyHigh},
		{50, UrgencyHigh},
		{49, UrgencyNormal},
		{30, UrgencyNormal},
		{29, UrgencyLow},
		{0, UrgencyLow},
	}
	for _, tc := range tests {
		if got := urgencyFor(tc.score); got != tc.want {
			t.Errorf("urgencyFor(%d): expected %s, got %s", tc.score, tc.want, got)
		}
	}
}

func TestWaitTimeBuckets(t *testing.T) {
	tests := []struct {
		level UrgencyLevel
		want  string
	}{
		{UrgencyEmergency, "immediate"},
		{UrgencyUrgent, "under 5 minutes"},
		{UrgencyHigh, "under 15 minutes"},
		{UrgencyNormal, "under 1 hour"},
		{UrgencyLow, "under 4 hours"},
	}
	for _, tc := range tests {
		if got := waitTimeFor(tc.level); got != tc.want {
			t.Errorf("waitTimeFor(%s): expected %q, got %q", tc.level, tc.want, got)
		}
	}
}
