// Package refresher keeps the dataset cache warm on an interval.
package refresher

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/hoops-analytics-service/internal/dataset"
	"github.com/preston-bernstein/hoops-analytics-service/internal/logging"
	"github.com/preston-bernstein/hoops-analytics-service/internal/metrics"
)

const (
	defaultInterval = 5 * time.Minute
	maxFailures     = 3
)

// Reloader drops and reloads every cached dataset.
type Reloader interface {
	Refresh(ctx context.Context) (dataset.Result, error)
}

// Refresher reloads datasets on an interval so requests rarely pay for a
// cold cache.
type Refresher struct {
	loader   Reloader
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool
	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether a refresh has succeeded and the loop is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < maxFailures
}

// New constructs a Refresher. A non-positive interval uses the default.
func New(loader Reloader, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Refresher{
		loader:   loader,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start refreshes once immediately, then on every tick until the context is
// cancelled or Stop is called.
func (r *Refresher) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.startMu.Unlock()

	r.ticker = time.NewTicker(r.interval)

	go func() {
		logging.Info(r.logger, "refresher started", slog.Int64(logging.FieldDurationMS, r.interval.Milliseconds()))

		r.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				logging.Info(r.logger, "refresher stopped")
				return
			case <-r.done:
				r.stopTicker()
				logging.Info(r.logger, "refresher stopped")
				return
			case <-r.ticker.C:
				r.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop. It is safe to call more than once.
func (r *Refresher) Stop(ctx context.Context) error {
	r.stopOnce.Do(func() {
		close(r.done)
		r.stopTicker()
	})
	return nil
}

// RefreshNow runs one refresh synchronously and records its outcome.
func (r *Refresher) RefreshNow(ctx context.Context) (dataset.Result, error) {
	return r.refreshOnce(ctx)
}

func (r *Refresher) refreshOnce(ctx context.Context) (dataset.Result, error) {
	start := r.now()
	r.recordAttempt(start)

	res, err := r.loader.Refresh(ctx)
	r.metrics.RecordRefreshCycle(time.Since(start), err)
	if err != nil {
		logging.Error(r.logger, "dataset refresh failed", err, logging.FieldDurationMS, time.Since(start).Milliseconds())
		r.recordFailure(err, start)
		return res, err
	}

	r.recordSuccess(start)
	logging.Info(r.logger, "datasets refreshed",
		logging.FieldCount, len(res.StatLines)+len(res.TeamLines),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return res, nil
}

func (r *Refresher) stopTicker() {
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Refresher) recordAttempt(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.LastAttempt = at
}

func (r *Refresher) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastSuccess = at
}

func (r *Refresher) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	if err != nil {
		r.status.LastError = err.Error()
	}
	r.status.LastAttempt = at
}

// Status returns a snapshot of the refresher's recent health.
func (r *Refresher) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
