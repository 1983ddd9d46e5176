package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/hoops-analytics-service/internal/dataset"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/players"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/teams"
	"github.com/preston-bernstein/hoops-analytics-service/internal/eventlog"
)

// StubSource is a test double for sources.Source. Errs fails individual
// datasets by name; Err fails them all.
type StubSource struct {
	StatRows    []games.StatLine
	TeamRows    []games.TeamGameLine
	BioRows     []players.Bio
	RosterRows  []players.RosterAssignment
	CatalogRows []teams.CatalogEntry
	Err         error
	Errs        map[string]error
	Calls       atomic.Int32

	mu     sync.Mutex
	called map[string]int
}

// CallsFor reports how many times a dataset was fetched.
func (s *StubSource) CallsFor(dataset string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.called[dataset]
}

func (s *StubSource) track(dataset string) error {
	s.Calls.Add(1)
	s.mu.Lock()
	if s.called == nil {
		s.called = map[string]int{}
	}
	s.called[dataset]++
	s.mu.Unlock()

	if err, ok := s.Errs[dataset]; ok {
		return err
	}
	return s.Err
}

// StatLines returns the configured stat rows.
func (s *StubSource) StatLines(ctx context.Context) ([]games.StatLine, error) {
	if err := s.track("stat_lines"); err != nil {
		return nil, err
	}
	return s.StatRows, nil
}

// TeamLines returns the configured team rows.
func (s *StubSource) TeamLines(ctx context.Context) ([]games.TeamGameLine, error) {
	if err := s.track("team_lines"); err != nil {
		return nil, err
	}
	return s.TeamRows, nil
}

// Catalog returns the configured catalog.
func (s *StubSource) Catalog(ctx context.Context) ([]teams.CatalogEntry, error) {
	if err := s.track("teams"); err != nil {
		return nil, err
	}
	return s.CatalogRows, nil
}

// Bios returns the configured bios.
func (s *StubSource) Bios(ctx context.Context) ([]players.Bio, error) {
	if err := s.track("players"); err != nil {
		return nil, err
	}
	return s.BioRows, nil
}

// Rosters returns the configured roster assignments.
func (s *StubSource) Rosters(ctx context.Context) ([]players.RosterAssignment, error) {
	if err := s.track("rosters"); err != nil {
		return nil, err
	}
	return s.RosterRows, nil
}

// StubReloader is a test double for refresher.Reloader.
type StubReloader struct {
	Result dataset.Result
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// Refresh returns the configured result while tracking calls. The first call
// closes Notify.
func (r *StubReloader) Refresh(ctx context.Context) (dataset.Result, error) {
	if r.Notify != nil {
		select {
		case <-r.Notify:
		default:
			close(r.Notify)
		}
	}
	r.Calls.Add(1)
	return r.Result, r.Err
}

// MemorySink is an eventlog.Sink that keeps events in memory.
type MemorySink struct {
	Err error

	mu     sync.Mutex
	events []eventlog.Event
}

// Name identifies the sink in metrics.
func (s *MemorySink) Name() string { return "memory" }

// Write stores e unless Err is set.
func (s *MemorySink) Write(ctx context.Context, e eventlog.Event) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

// Actions lists the recorded actions in write order.
func (s *MemorySink) Actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.events))
	for i, e := range s.events {
		out[i] = e.Action
	}
	return out
}

// Events returns a copy of the recorded events.
func (s *MemorySink) Events() []eventlog.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]eventlog.Event(nil), s.events...)
}
