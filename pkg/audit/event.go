// Package audit records every analysis run in a local append-only log.
package audit

import (
	"fmt"
	"time"
)

// Event represents one auditable analysis run
type Event struct {
	ID            string        `json:"id"`
	Timestamp     time.Time     `json:"timestamp"`
	User          string        `json:"user"`
	Operation     string        `json:"operation"`
	ConfigFile    string        `json:"config_file,omitempty"`
	ConfigHash    string        `json:"config_hash,omitempty"`
	Profile       string        `json:"profile,omitempty"`
	Score         int           `json:"score"`
	FindingCount  int           `json:"finding_count"`
	CriticalCount int           `json:"critical_count"`
	Stored        bool          `json:"stored"` // true if the result was written to the history store
	Success       bool          `json:"success"`
	Error         string        `json:"error,omitempty"`
	Duration      time.Duration `json:"duration"`
}

// Operations recorded in the audit log
const (
	OpAnalyze = "analyze"
	OpParse   = "parse"
	OpScore   = "score"
)

// Filter defines criteria for querying audit events
type Filter struct {
	User        string
	Operation   string
	ConfigFile  string
	ConfigHash  string
	StartTime   time.Time
	EndTime     time.Time
	SuccessOnly bool
	FailureOnly bool
	Limit       int
	Offset      int
}

// NewEvent creates a new audit event
func NewEvent(user, operation string) *Event {
	return &Event{
		ID:        generateID(),
		Timestamp: time.Now(),
		User:      user,
		Operation: operation,
	}
}

// WithConfig sets the analyzed file and its content hash
func (e *Event) WithConfig(file, hash string) *Event {
	e.ConfigFile = file
	e.ConfigHash = hash
	return e
}

// WithProfile sets the applied audit profile name
func (e *Event) WithProfile(name string) *Event {
	e.Profile = name
	return e
}

// WithResult records the analysis outcome
func (e *Event) WithResult(score, findings, critical int) *Event {
	e.Score = score
	e.FindingCount = findings
	e.CriticalCount = critical
	return e
}

// WithStored marks that the result was persisted to the history store
func (e *Event) WithStored() *Event {
	e.Stored = true
	return e
}

// WithSuccess marks the event as successful
func (e *Event) WithSuccess() *Event {
	e.Success = true
	return e
}

// WithError marks the event as failed
func (e *Event) WithError(err error) *Event {
	e.Success = false
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// WithDuration sets the run duration
func (e *Event) WithDuration(d time.Duration) *Event {
	e.Duration = d
	return e
}

func generateID() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}
