package sources

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/players"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/teams"
	"github.com/preston-bernstein/hoops-analytics-service/internal/logging"
	"github.com/preston-bernstein/hoops-analytics-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingSource wraps a Source with linear backoff retries and records every
// attempt.
type retryingSource struct {
	inner       Source
	name        string
	logger      *slog.Logger
	metrics     *metrics.Recorder
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingSource wraps the given source with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingSource(inner Source, name string, logger *slog.Logger, recorder *metrics.Recorder, maxAttempts int, backoff time.Duration) Source {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if name == "" {
		name = "source"
	}
	return &retryingSource{
		inner:       inner,
		name:        name,
		logger:      logger,
		metrics:     recorder,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingSource) StatLines(ctx context.Context) ([]games.StatLine, error) {
	return withRetry(ctx, r, DatasetStatLines, r.inner.StatLines)
}

func (r *retryingSource) TeamLines(ctx context.Context) ([]games.TeamGameLine, error) {
	return withRetry(ctx, r, DatasetTeamLines, r.inner.TeamLines)
}

func (r *retryingSource) Catalog(ctx context.Context) ([]teams.CatalogEntry, error) {
	return withRetry(ctx, r, DatasetCatalog, r.inner.Catalog)
}

func (r *retryingSource) Bios(ctx context.Context) ([]players.Bio, error) {
	return withRetry(ctx, r, DatasetBios, r.inner.Bios)
}

func (r *retryingSource) Rosters(ctx context.Context) ([]players.RosterAssignment, error) {
	return withRetry(ctx, r, DatasetRosters, r.inner.Rosters)
}

func withRetry[T any](ctx context.Context, r *retryingSource, dataset string, fetch func(context.Context) (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		out, err := fetch(ctx)
		r.metrics.RecordSourceAttempt(r.name, dataset, time.Since(start), err)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.log(ctx, slog.LevelWarn, "source fetch retry", dataset,
			logging.FieldAttempt, attempt, "max_attempts", r.maxAttempts, logging.FieldError, err)

		select {
		case <-ctx.Done():
			return zero, NewError(r.name, dataset, KindCanceled, ctx.Err())
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	r.log(ctx, slog.LevelWarn, "source fetch failed", dataset,
		"attempts", r.maxAttempts, logging.FieldError, lastErr)
	if _, ok := AsSourceError(lastErr); ok {
		return zero, lastErr
	}
	return zero, NewError(r.name, dataset, KindUnavailable, lastErr)
}

func (r *retryingSource) log(ctx context.Context, level slog.Level, msg, dataset string, args ...any) {
	logWithSource(ctx, logging.FromContext(ctx, r.logger), level, r.name, msg,
		append(args, logging.FieldDataset, dataset)...)
}
