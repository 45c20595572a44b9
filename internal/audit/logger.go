package audit

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Entry is a single audit record for one analyzed message. Message text is
// deliberately absent: the audit trail carries matched phrases and scores,
// not patient conversations.
type Entry struct {
	Timestamp      time.Time `json:"timestamp"`
	RequestID      string    `json:"request_id"`
	SessionID      string    `json:"session_id,omitempty"`
	RiskLevel      string    `json:"risk_level"`
	TotalScore     float64   `json:"total_score"`
	Confidence     float64   `json:"confidence"`
	PriorityScore  int       `json:"priority_score"`
	Urgency        string    `json:"urgency,omitempty"`
	Escalated      bool      `json:"escalated"`
	Action         string    `json:"action,omitempty"`
	RuleName       string    `json:"rule_name,omitempty"`
	AlertID        string    `json:"alert_id,omitempty"`
	MatchedPhrases []string  `json:"matched_phrases,omitempty"`
	RiskFactors    any       `json:"risk_factors,omitempty"`
	ContextFactors []string  `json:"context_factors,omitempty"`
}

// Logger writes JSON-line audit log entries.
type Logger struct {
	mu     sync.Mutex
	writer io.Writer
	enc    *json.Encoder
}

// NewLogger creates a new audit logger writing to the given writer.
func NewLogger(w io.Writer) *Logger {
	return &Logger{
		writer: w,
		enc:    json.NewEncoder(w),
	}
}

// NewFileLogger creates a logger that writes to a file at the given path.
// Creates the file if it doesn't exist, appends if it does.
func NewFileLogger(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	return NewLogger(f), nil
}

// NewStderrLogger creates a logger that writes to stderr.
func NewStderrLogger() *Logger {
	return NewLogger(os.Stderr)
}

// Log writes a single audit entry as a JSON line.
func (l *Logger) Log(entry Entry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enc.Encode(entry)
}

// NopLogger returns a logger that discards all entries.
func NopLogger() *Logger {
	return NewLogger(io.Discard)
}
