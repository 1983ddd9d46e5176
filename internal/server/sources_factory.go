package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/hoops-analytics-service/internal/config"
	"github.com/preston-bernstein/hoops-analytics-service/internal/metrics"
	"github.com/preston-bernstein/hoops-analytics-service/internal/sources"
	"github.com/preston-bernstein/hoops-analytics-service/internal/sources/fixture"
	"github.com/preston-bernstein/hoops-analytics-service/internal/sources/postgres"
)

var openPostgres = postgres.Open

// sourceFactory assembles the configured data source with the shared retry wrapper.
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, metrics *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: metrics}
}

// build returns the retrying source and a close func for any connection it
// opened. The close func is nil when there is nothing to release.
func (f sourceFactory) build(ctx context.Context, cfg config.Config) (sources.Source, func() error, error) {
	base, closeFn, err := selectSource(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	name := sourceName(cfg.DataSource)
	f.logger.Info("data source selected", slog.String("source", name))
	return sources.NewRetryingSource(base, name, f.logger, f.metrics, cfg.Retry.Attempts, cfg.Retry.Backoff), closeFn, nil
}

func selectSource(ctx context.Context, cfg config.Config) (sources.Source, func() error, error) {
	switch sourceName(cfg.DataSource) {
	case config.SourceFixture:
		return fixture.New(cfg.FixtureDir), nil, nil
	case config.SourcePostgres:
		if cfg.Postgres.URL == "" {
			return nil, nil, fmt.Errorf("%w: postgres source requires a database url", config.ErrInvalid)
		}
		db, err := openPostgres(ctx, cfg.Postgres.URL, cfg.Postgres.MaxOpenConns)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return postgres.New(db), db.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: unknown data source %q", config.ErrInvalid, cfg.DataSource)
	}
}

// sourceName returns the lower-cased source name used in logs and metrics.
// An empty setting means the fixture source.
func sourceName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return config.SourceFixture
	}
	return name
}
