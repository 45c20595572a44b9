package history

// Frequency buckets how often crisis events have occurred for a patient.
type Frequency string

const (
	FrequencyNone       Frequency = "none"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyWeekly     Frequency = "weekly"
	FrequencyDaily      Frequency = "daily"
	FrequencyIncreasing Frequency = "increasing"
)

// recentAssessmentThreshold is the last-assessment score above which a
// patient is flagged as recently assessed at elevated risk.
const recentAssessmentThreshold = 15

// Signals are optional lightweight historical signals the messaging
// subsystem may supply alongside a message. They never change the risk-level
// thresholds themselves; they surface as risk-factor flags and feed session
// priority downstream.
type Signals struct {
	PreviousCrisisEvents int       `json:"previous_crisis_events"`
	LastAssessmentScore  float64   `json:"last_assessment_score"`
	CrisisFrequency      Frequency `json:"crisis_frequency"`
}

// PreviousCrisis reports whether the patient has any recorded crisis events.
func (s *Signals) PreviousCrisis() bool {
	return s != nil && s.PreviousCrisisEvents > 0
}

// RecentHighAssessment reports whether the most recent assessment scored
// above the elevated-risk threshold.
func (s *Signals) RecentHighAssessment() bool {
	return s != nil && s.LastAssessmentScore > recentAssessmentThreshold
}

// Escalating reports whether the crisis frequency trend indicates an
// escalating pattern.
func (s *Signals) Escalating() bool {
	if s == nil {
		return false
	}
	return s.CrisisFrequency == FrequencyIncreasing || s.CrisisFrequency == FrequencyDaily
}
