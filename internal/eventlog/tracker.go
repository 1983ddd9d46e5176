package eventlog

import (
	"context"
	"sync"
)

type trackKey struct {
	user     string
	variable string
}

// Tracker logs a control only when its value changes for a user. The first
// value seen is remembered without logging.
type Tracker struct {
	recorder *Recorder

	mu   sync.Mutex
	last map[trackKey]string
}

// NewTracker reports changes through recorder.
func NewTracker(recorder *Recorder) *Tracker {
	return &Tracker{
		recorder: recorder,
		last:     make(map[trackKey]string),
	}
}

// Track records value for the user's variable and logs an event when it differs
// from the previous value. It reports whether an event was logged.
func (t *Tracker) Track(ctx context.Context, user, variable string, value any) bool {
	if t == nil {
		return false
	}
	current := formatValue(value)
	key := trackKey{user: userOrAnonymous(user), variable: variable}

	t.mu.Lock()
	prev, seen := t.last[key]
	t.last[key] = current
	t.mu.Unlock()

	if !seen || prev == current {
		return false
	}
	t.recorder.Record(ctx, key.user, ChangeAction(variable, current))
	return true
}
