// Package eventlog records who did what in the dashboard. Writes are best
// effort: a failing sink never fails the request that produced the event.
package eventlog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/hoops-analytics-service/internal/logging"
	"github.com/preston-bernstein/hoops-analytics-service/internal/metrics"
	"github.com/preston-bernstein/hoops-analytics-service/internal/timeutil"
)

// Anonymous is recorded when no user is known.
const Anonymous = "Anonimo"

// Event is one logged interaction.
type Event struct {
	Timestamp string
	User      string
	Action    string
}

// Sink persists events.
type Sink interface {
	Name() string
	Write(ctx context.Context, e Event) error
}

// Recorder stamps events in a fixed time zone and hands them to a sink.
type Recorder struct {
	sink    Sink
	loc     *time.Location
	now     func() time.Time
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewRecorder builds a Recorder. A nil sink drops events silently.
func NewRecorder(sink Sink, timezone string, logger *slog.Logger, recorder *metrics.Recorder) *Recorder {
	return &Recorder{
		sink:    sink,
		loc:     timeutil.ResolveLocation(timezone),
		now:     time.Now,
		logger:  logger,
		metrics: recorder,
	}
}

// Record writes one event for user. Sink failures are logged and counted.
func (r *Recorder) Record(ctx context.Context, user, action string) {
	if r == nil || r.sink == nil {
		return
	}

	e := Event{
		Timestamp: r.now().In(r.loc).Format(timeutil.EventLayout),
		User:      userOrAnonymous(user),
		Action:    action,
	}
	if err := r.sink.Write(ctx, e); err != nil {
		r.metrics.RecordDroppedEvent(r.sink.Name())
		logging.Warn(logging.FromContext(ctx, r.logger), "event write failed",
			logging.FieldUser, e.User,
			logging.FieldAction, e.Action,
			logging.FieldError, err,
		)
	}
}

// ChangeAction formats the action logged when a tracked control changes.
func ChangeAction(variable string, value any) string {
	return fmt.Sprintf("Cambio %s: %s", variable, formatValue(value))
}

func userOrAnonymous(user string) string {
	if u := strings.TrimSpace(user); u != "" {
		return u
	}
	return Anonymous
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case []string:
		return "[" + strings.Join(v, ", ") + "]"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}
