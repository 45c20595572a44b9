package escalation

import "sync"

const defaultStoreSize = 500

// Store is a bounded, thread-safe in-memory alert store. It backs the
// alerts API and the responder console; durable persistence is the
// platform's job, not this engine's.
type Store struct {
	mu     sync.RWMutex
	alerts []*Alert
	max    int
}

// NewStore creates a store retaining up to max alerts (newest kept).
func NewStore(max int) *Store {
	if max <= 0 {
		max = defaultStoreSize
	}
	return &Store{max: max}
}

// Add inserts an alert, evicting the oldest when full.
func (s *Store) Add(alert *Alert) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.alerts = append(s.alerts, alert)
	if len(s.alerts) > s.max {
		s.alerts = s.alerts[len(s.alerts)-s.max:]
	}
}

// All returns the stored alerts, oldest first.
func (s *Store) All() []*Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// Len returns the number of stored alerts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.alerts)
}
