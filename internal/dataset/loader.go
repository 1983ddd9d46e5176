// Package dataset loads the five raw datasets behind every view, caching each
// one with its own time to live.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/hoops-analytics-service/internal/cache"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/players"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/teams"
	"github.com/preston-bernstein/hoops-analytics-service/internal/logging"
	"github.com/preston-bernstein/hoops-analytics-service/internal/metrics"
	"github.com/preston-bernstein/hoops-analytics-service/internal/sources"
)

const keyPrefix = "dataset:"

// All lists every dataset in load order.
var All = []string{
	sources.DatasetStatLines,
	sources.DatasetTeamLines,
	sources.DatasetBios,
	sources.DatasetRosters,
	sources.DatasetCatalog,
}

// Snapshot holds one copy of the raw datasets. Every Load returns a fresh
// Snapshot that the caller owns.
type Snapshot struct {
	StatLines []games.StatLine
	TeamLines []games.TeamGameLine
	Bios      []players.Bio
	Rosters   []players.RosterAssignment
	Catalog   []teams.CatalogEntry
}

// Result is a snapshot plus the per-dataset failures. A failed dataset is
// left empty so views degrade to no data instead of failing the request.
type Result struct {
	Snapshot
	Errors map[string]error
}

// Err joins the per-dataset failures in load order.
func (r Result) Err() error {
	var errs []error
	for _, name := range All {
		if err, ok := r.Errors[name]; ok {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// TTLs selects the cache lifetime per dataset class.
type TTLs struct {
	Stats    time.Duration
	Metadata time.Duration
}

// Loader fetches datasets through the cache, falling back to the source.
type Loader struct {
	source  sources.Source
	cache   cache.Cache
	ttls    TTLs
	logger  *slog.Logger
	metrics *metrics.Recorder
	flight  singleflight.Group
}

// NewLoader wires a source to a cache.
func NewLoader(source sources.Source, c cache.Cache, ttls TTLs, logger *slog.Logger, recorder *metrics.Recorder) *Loader {
	if c == nil {
		c = cache.NewMemoryCache()
	}
	return &Loader{
		source:  source,
		cache:   c,
		ttls:    ttls,
		logger:  logger,
		metrics: recorder,
	}
}

// Load fetches the named datasets in parallel, or all of them when none are
// named. Unknown names are ignored.
func (l *Loader) Load(ctx context.Context, datasets ...string) Result {
	if len(datasets) == 0 {
		datasets = All
	}
	return l.load(ctx, false, datasets)
}

// Refresh refetches every dataset from the source, bypassing cached reads.
// A cache entry is replaced only when its fetch succeeds; a failed dataset
// keeps serving its previous entry and the failure is reported.
func (l *Loader) Refresh(ctx context.Context) (Result, error) {
	res := l.load(ctx, true, All)
	return res, res.Err()
}

func (l *Loader) load(ctx context.Context, fresh bool, datasets []string) Result {
	var (
		res  = Result{Errors: map[string]error{}}
		mu   sync.Mutex
		g    errgroup.Group
		fail = func(name string, err error) {
			mu.Lock()
			res.Errors[name] = err
			mu.Unlock()
		}
	)

	for _, name := range unique(datasets) {
		name := name
		switch name {
		case sources.DatasetStatLines:
			g.Go(func() error {
				rows, err := fetchDataset(ctx, l, name, fresh, l.ttls.Stats, l.source.StatLines)
				res.StatLines = rows
				if err != nil {
					fail(name, err)
				}
				return nil
			})
		case sources.DatasetTeamLines:
			g.Go(func() error {
				rows, err := fetchDataset(ctx, l, name, fresh, l.ttls.Stats, l.source.TeamLines)
				res.TeamLines = rows
				if err != nil {
					fail(name, err)
				}
				return nil
			})
		case sources.DatasetBios:
			g.Go(func() error {
				rows, err := fetchDataset(ctx, l, name, fresh, l.ttls.Metadata, l.source.Bios)
				res.Bios = rows
				if err != nil {
					fail(name, err)
				}
				return nil
			})
		case sources.DatasetRosters:
			g.Go(func() error {
				rows, err := fetchDataset(ctx, l, name, fresh, l.ttls.Metadata, l.source.Rosters)
				res.Rosters = rows
				if err != nil {
					fail(name, err)
				}
				return nil
			})
		case sources.DatasetCatalog:
			g.Go(func() error {
				rows, err := fetchDataset(ctx, l, name, fresh, l.ttls.Metadata, l.source.Catalog)
				res.Catalog = rows
				if err != nil {
					fail(name, err)
				}
				return nil
			})
		}
	}
	_ = g.Wait()
	return res
}

// fetchDataset serves a dataset from the cache, or from the source on a miss.
// With fresh set it goes straight to the source and falls back to the cached
// rows, alongside the fetch error, when the source fails.
func fetchDataset[T any](ctx context.Context, l *Loader, dataset string, fresh bool, ttl time.Duration, fetch func(context.Context) ([]T, error)) ([]T, error) {
	key := cacheKey(dataset)
	log := logging.FromContext(ctx, l.logger)

	if !fresh {
		if rows, ok := cached[T](ctx, l, key); ok {
			l.metrics.RecordCacheLookup(dataset, true)
			return rows, nil
		}
		l.metrics.RecordCacheLookup(dataset, false)
	}

	shared, err, _ := l.flight.Do(key, func() (any, error) {
		rows, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		encoded, err := json.Marshal(rows)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", dataset, err)
		}
		if err := l.cache.Set(ctx, key, encoded, ttl); err != nil {
			logging.Warn(log, "cache write failed", logging.FieldCacheKey, key, logging.FieldError, err)
		}
		return encoded, nil
	})
	if err != nil {
		logging.Error(log, "dataset fetch failed", err, logging.FieldDataset, dataset)
		if fresh {
			if rows, ok := cached[T](ctx, l, key); ok {
				logging.Warn(log, "keeping cached dataset after failed refresh", logging.FieldDataset, dataset, logging.FieldCount, len(rows))
				return rows, err
			}
		}
		return nil, err
	}

	var rows []T
	if err := json.Unmarshal(shared.([]byte), &rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", dataset, err)
	}
	logging.Info(log, "dataset loaded", logging.FieldDataset, dataset, logging.FieldCount, len(rows))
	return rows, nil
}

func cached[T any](ctx context.Context, l *Loader, key string) ([]T, bool) {
	log := logging.FromContext(ctx, l.logger)
	raw, err := l.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrMiss) {
			logging.Warn(log, "cache read failed", logging.FieldCacheKey, key, logging.FieldError, err)
		}
		return nil, false
	}
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		logging.Warn(log, "discarding undecodable cache entry", logging.FieldCacheKey, key)
		return nil, false
	}
	return rows, true
}

func cacheKey(dataset string) string {
	return keyPrefix + dataset
}

func unique(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
