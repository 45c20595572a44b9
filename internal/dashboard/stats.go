package dashboard

import (
	"sync"
	"time"
)

const timeSeriesMinutes = 60

// Stats accumulates real-time statistics from pipeline events.
type Stats struct {
	mu sync.RWMutex

	totalMessages  uint64
	escalatedCount uint64
	immediateCount uint64
	confidenceSum  float64
	prioritySum    float64

	riskLevelCounts map[string]uint64
	actionCounts    map[string]uint64
	ruleCounts      map[string]uint64
	categoryCounts  map[string]uint64
	confidenceHist  [10]uint64 // buckets: [0.0-0.1), [0.1-0.2), ..., [0.9-1.0]

	// Per-minute buckets for the last 60 minutes
	timeBuckets [timeSeriesMinutes]timeBucket
}

type timeBucket struct {
	minute    time.Time // truncated to minute
	count     uint64
	escalated uint64
}

// NewStats creates a new stats accumulator.
func NewStats() *Stats {
	return &Stats{
		riskLevelCounts: make(map[string]uint64),
		actionCounts:    make(map[string]uint64),
		ruleCounts:      make(map[string]uint64),
		categoryCounts:  make(map[string]uint64),
	}
}

// Record ingests a single pipeline event.
func (s *Stats) Record(event *ConsoleEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalMessages++

	if event.Escalated {
		s.escalatedCount++
	}

	s.riskLevelCounts[string(event.RiskLevel)]++
	s.actionCounts[string(event.Action)]++
	if event.RuleName != "" {
		s.ruleCounts[event.RuleName]++
	}

	s.prioritySum += float64(event.Priority.Score)

	if event.Analysis != nil {
		if event.Analysis.RequiresImmediate {
			s.immediateCount++
		}
		s.confidenceSum += event.Analysis.Confidence

		// Confidence histogram: bucket index = floor(confidence * 10), capped at 9
		bucket := int(event.Analysis.Confidence * 10)
		if bucket > 9 {
			bucket = 9
		}
		s.confidenceHist[bucket]++

		// Active-category distribution
		for cat, cs := range event.Analysis.CategoryScores {
			if cs.Score > 0 {
				s.categoryCounts[string(cat)]++
			}
		}
	}

	// Time series
	now := event.Timestamp.Truncate(time.Minute)
	idx := now.Minute() % timeSeriesMinutes
	if s.timeBuckets[idx].minute != now {
		s.timeBuckets[idx] = timeBucket{minute: now}
	}
	s.timeBuckets[idx].count++
	if event.Escalated {
		s.timeBuckets[idx].escalated++
	}
}

// Snapshot returns a point-in-time copy of the stats.
func (s *Stats) Snapshot() *StatsSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := &StatsSnapshot{
		TotalMessages:       s.totalMessages,
		EscalatedCount:      s.escalatedCount,
		ImmediateCount:      s.immediateCount,
		RiskLevelCounts:     copyMap(s.riskLevelCounts),
		ActionCounts:        copyMap(s.actionCounts),
		RuleCounts:          copyMap(s.ruleCounts),
		CategoryCounts:      copyMap(s.categoryCounts),
		ConfidenceHistogram: s.confidenceHist,
	}

	if s.totalMessages > 0 {
		snap.AvgConfidence = s.confidenceSum / float64(s.totalMessages)
		snap.AvgPriority = s.prioritySum / float64(s.totalMessages)
	}

	// Build time series from buckets (last 60 minutes, chronological)
	now := time.Now().UTC().Truncate(time.Minute)
	cutoff := now.Add(-timeSeriesMinutes * time.Minute)
	for i := 0; i < timeSeriesMinutes; i++ {
		t := cutoff.Add(time.Duration(i+1) * time.Minute)
		idx := t.Minute() % timeSeriesMinutes
		b := s.timeBuckets[idx]
		if b.minute == t {
			snap.TimeSeries = append(snap.TimeSeries, TimeSeriesPoint{
				Timestamp: b.minute,
				Count:     b.count,
				Escalated: b.escalated,
			})
		} else {
			snap.TimeSeries = append(snap.TimeSeries, TimeSeriesPoint{
				Timestamp: t,
				Count:     0,
				Escalated: 0,
			})
		}
	}

	return snap
}

func copyMap(m map[string]uint64) map[string]uint64 {
	c := make(map[string]uint64, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
