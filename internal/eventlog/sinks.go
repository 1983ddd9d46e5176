package eventlog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/hoops-analytics-service/internal/logging"
)

// Stream field names written for every event.
const (
	FieldTimestamp = "timestamp"
	FieldUser      = "user"
	FieldAction    = "action"
)

type streamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// RedisStreamSink appends events to a Redis stream.
type RedisStreamSink struct {
	client streamAdder
	stream string
}

// NewRedisStreamSink writes to stream through client.
func NewRedisStreamSink(client *redis.Client, stream string) *RedisStreamSink {
	return &RedisStreamSink{client: client, stream: stream}
}

// Name implements Sink.
func (s *RedisStreamSink) Name() string {
	return "redis_stream"
}

// Write implements Sink.
func (s *RedisStreamSink) Write(ctx context.Context, e Event) error {
	err := s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		Values: map[string]any{
			FieldTimestamp: e.Timestamp,
			FieldUser:      e.User,
			FieldAction:    e.Action,
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("xadd %s: %w", s.stream, err)
	}
	return nil
}

// LogSink writes events to a structured logger. It is used when no Redis
// stream is configured.
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink writes events through logger.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Name implements Sink.
func (s *LogSink) Name() string {
	return "log"
}

// Write implements Sink.
func (s *LogSink) Write(ctx context.Context, e Event) error {
	logging.Info(s.logger, "event",
		FieldTimestamp, e.Timestamp,
		logging.FieldUser, e.User,
		logging.FieldAction, e.Action,
	)
	return nil
}
