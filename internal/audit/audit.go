// Package audit carries structured events for every state-changing
// ledger operation to an append-only sink. Recording is best effort:
// a sink failure must never fail the operation that produced the
// event.
package audit

import "time"

type Event struct {
	Time   time.Time
	Level  string
	Action string
	Fields map[string]interface{}
}

// Recorder is the append-only sink. Implementations swallow or log
// their own failures; the returned error is advisory only.
type Recorder interface {
	Record(event Event) error
}

// NewEvent stamps an event with the current time.
func NewEvent(level, action string, fields map[string]interface{}) Event {
	return Event{
		Time:   time.Now(),
		Level:  level,
		Action: action,
		Fields: fields,
	}
}
