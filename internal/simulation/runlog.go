package simulation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Run journal entry types.
const (
	RunEventDispatch      = "DISPATCH"       // event delivered, transition occurred
	RunEventNoTransition  = "NO_TRANSITION"  // event delivered, defined no-op
	RunEventDeviceMissing = "DEVICE_MISSING" // scheduled device id did not resolve
)

// RunEvent is one journal entry recorded while a scenario runs.
type RunEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"` // simulation clock, not wall clock
	Type        string    `json:"type"`
	DeviceID    string    `json:"device_id,omitempty"`
	Description string    `json:"description"`
}

// RunLog is the in-memory append-only journal of a simulation run.
type RunLog struct {
	events []RunEvent
}

// Append records an entry, assigning an id when the caller left it empty.
func (l *RunLog) Append(e RunEvent) {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	l.events = append(l.events, e)
}

// Events returns all entries in append order.
func (l *RunLog) Events() []RunEvent {
	return l.events
}

// LogFilter selects journal entries. Zero From/To leave that bound open;
// Type is matched case-insensitively after trimming, empty matches all.
type LogFilter struct {
	From time.Time
	To   time.Time
	Type string
}

var errInvalidTimeRange = errors.New("invalid time range: From must be <= To")

// List returns entries matching the filter, in append order.
func (l *RunLog) List(f LogFilter) ([]RunEvent, error) {
	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return nil, errInvalidTimeRange
	}
	typ := strings.TrimSpace(strings.ToUpper(f.Type))

	var out []RunEvent
	for _, e := range l.events {
		if !f.From.IsZero() && e.OccurredAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && e.OccurredAt.After(f.To) {
			continue
		}
		if typ != "" && e.Type != typ {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
