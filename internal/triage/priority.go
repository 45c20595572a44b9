// Package triage converts a crisis analysis into a session priority used to
// order the responder queue. Risk level and priority are deliberately
// separate scales: the categorical level drives display and escalation
// rules, the continuous 0-100 priority drives queue ordering.
package triage

import "github.com/saketmishra7224/calmify/internal/detector"

// UrgencyLevel names the tier a priority score falls into.
type UrgencyLevel string

const (
	UrgencyEmergency UrgencyLevel = "emergency"
	UrgencyUrgent    UrgencyLevel = "urgent"
	UrgencyHigh      UrgencyLevel = "high"
	UrgencyNormal    UrgencyLevel = "normal"
	UrgencyLow       UrgencyLevel = "low"
)

// Profile carries the patient attributes that adjust session priority.
type Profile struct {
	IsMinor          bool `json:"is_minor"`
	HasHistory       bool `json:"has_history"`
	PreviousAttempts bool `json:"previous_attempts"`
	IsIsolated       bool `json:"is_isolated"`
}

// Priority is the queue-ordering output for one session.
type Priority struct {
	Score             int          `json:"score"`
	Level             UrgencyLevel `json:"level"`
	EstimatedWaitTime string       `json:"estimated_wait_time"`
}

// Base priority per risk level.
var basePriority = map[detector.RiskLevel]int{
	detector.RiskCritical: 100,
	detector.RiskHigh:     80,
	detector.RiskMedium:   60,
	detector.RiskLow:      40,
	detector.RiskMinimal:  20,
}

// Fixed bonuses for profile attributes and risk-factor combinations.
const (
	bonusMinor            = 20
	bonusHistory          = 10
	bonusPreviousAttempts = 25
	bonusIsolated         = 15

	bonusSuicideWithMethod     = 30
	bonusSuicideWithImmediacy  = 25
	bonusViolenceWithImmediacy = 30

	maxPriority = 100
)

// Classify computes the 0-100 session priority for an analysis plus patient
// profile, with its urgency tier and estimated wait bucket.
func Classify(analysis *detector.Result, profile Profile) Priority {
	score := basePriority[analysis.RiskLevel]

	if profile.IsMinor {
		score += bonusMinor
	}
	if profile.HasHistory {
		score += bonusHistory
	}
	if profile.PreviousAttempts {
		score += bonusPreviousAttempts
	}
	if profile.IsIsolated {
		score += bonusIsolated
	}

	rf := analysis.RiskFactors
	if rf.SuicideWithMethod {
		score += bonusSuicideWithMethod
	}
	if rf.SuicideWithImmediacy {
		score += bonusSuicideWithImmediacy
	}
	if rf.ViolenceWithImmediacy {
		score += bonusViolenceWithImmediacy
	}

	if score > maxPriority {
		score = maxPriority
	}

	level := urgencyFor(score)
	return Priority{
		Score:             score,
		Level:             level,
		EstimatedWaitTime: waitTimeFor(level),
	}
}

// urgencyFor maps a priority score to its named tier.
func urgencyFor(score int) UrgencyLevel {
	switch {
	case score >= 90:
		return UrgencyEmergency
	case score >= 70:
		return UrgencyUrgent
	case score >= 50:
		return UrgencyHigh
	case score >= 30:
		return UrgencyNormal
	default:
		return UrgencyLow
	}
}

// waitTimeFor gives the wait-time bucket displayed to patients while they
// hold in the queue.
func waitTimeFor(level UrgencyLevel) string {
	switch level {
	case UrgencyEmergency:
		return "immediate"
	case UrgencyUrgent:
		return "under 5 minutes"
	case UrgencyHigh:
		return "under 15 minutes"
	case UrgencyNormal:
		return "under 1 hour"
	default:
		return "under 4 hours"
	}
}
