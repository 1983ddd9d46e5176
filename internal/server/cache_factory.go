package server

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/hoops-analytics-service/internal/cache"
	"github.com/preston-bernstein/hoops-analytics-service/internal/config"
	"github.com/preston-bernstein/hoops-analytics-service/internal/eventlog"
	"github.com/preston-bernstein/hoops-analytics-service/internal/metrics"
)

var redisDial = cache.Dial

// cacheComponents is the dataset cache and, when Redis is configured and
// reachable, the client shared with the event stream.
type cacheComponents struct {
	cache cache.Cache
	redis *redis.Client
}

// buildCache connects to Redis when configured. An unreachable Redis falls
// back to the in-process cache so the service still starts.
func buildCache(ctx context.Context, cfg config.Config, logger *slog.Logger) cacheComponents {
	if cfg.Cache.RedisURL == "" {
		logger.Info("dataset cache in memory")
		return cacheComponents{cache: cache.NewMemoryCache()}
	}
	client, err := redisDial(ctx, cfg.Cache.RedisURL)
	if err != nil {
		logger.Warn("redis unavailable, caching in memory", slog.Any("error", err))
		return cacheComponents{cache: cache.NewMemoryCache()}
	}
	logger.Info("dataset cache in redis")
	return cacheComponents{cache: cache.NewRedisCache(client), redis: client}
}

// buildEvents writes interaction events to the Redis stream when a client is
// available, otherwise to the log.
func buildEvents(cfg config.Config, client *redis.Client, logger *slog.Logger, recorder *metrics.Recorder) *eventlog.Tracker {
	var sink eventlog.Sink = eventlog.NewLogSink(logger)
	if client != nil {
		sink = eventlog.NewRedisStreamSink(client, cfg.Events.Stream)
	}
	logger.Info("event sink selected", slog.String("sink", sink.Name()))
	return eventlog.NewTracker(eventlog.NewRecorder(sink, cfg.Events.Timezone, logger, recorder))
}
