package dashboard

import (
	"time"

	"github.com/saketmishra7224/calmify/internal/escalation"
	"github.com/saketmishra7224/calmify/internal/pipeline"
)

// ConsoleEvent wraps a pipeline Event with a unique console ID.
type ConsoleEvent struct {
	ID string `json:"id"`
	pipeline.Event
}

// WSMessage is the envelope for all WebSocket messages.
type WSMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// StatsSnapshot is a point-in-time snapshot of accumulated statistics.
type StatsSnapshot struct {
	TotalMessages       uint64            `json:"total_messages"`
	EscalatedCount      uint64            `json:"escalated_count"`
	ImmediateCount      uint64            `json:"immediate_count"`
	AvgConfidence       float64           `json:"avg_confidence"`
	AvgPriority         float64           `json:"avg_priority"`
	RiskLevelCounts     map[string]uint64 `json:"risk_level_counts"`
	ActionCounts        map[string]uint64 `json:"action_counts"`
	RuleCounts          map[string]uint64 `json:"rule_counts"`
	CategoryCounts      map[string]uint64 `json:"category_counts"`
	ConfidenceHistogram [10]uint64        `json:"confidence_histogram"`
	TimeSeries          []TimeSeriesPoint `json:"time_series"`
}

// TimeSeriesPoint is a single point in the 60-minute time series.
type TimeSeriesPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Count     uint64    `json:"count"`
	Escalated uint64    `json:"escalated"`
}

// InitialState is sent to clients on WebSocket connect.
type InitialState struct {
	Events []*ConsoleEvent     `json:"events"`
	Stats  *StatsSnapshot      `json:"stats"`
	Policy *escalation.Policy  `json:"policy"`
	Alerts []*escalation.Alert `json:"alerts"`
}
