// Package fixture serves raw rows from JSON files on disk for local
// development and tests.
package fixture

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/players"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/teams"
	"github.com/preston-bernstein/hoops-analytics-service/internal/normalize"
	"github.com/preston-bernstein/hoops-analytics-service/internal/sources"
)

// Name identifies this source in logs, metrics and errors.
const Name = "fixture"

// File names expected inside the fixture directory. Each holds a JSON array
// of objects keyed by upstream column name.
const (
	StatLinesFile = "stat_lines.json"
	TeamLinesFile = "team_lines.json"
	PlayersFile   = "players.json"
	RostersFile   = "rosters.json"
	TeamsFile     = "teams.json"
)

// Source reads datasets from a directory of JSON files.
type Source struct {
	dir string
}

var _ sources.Source = (*Source)(nil)

// New creates a fixture source rooted at dir.
func New(dir string) *Source {
	return &Source{dir: dir}
}

// StatLines returns the per-player game rows.
func (s *Source) StatLines(ctx context.Context) ([]games.StatLine, error) {
	return load(ctx, s, sources.DatasetStatLines, StatLinesFile, normalize.StatLine)
}

// TeamLines returns the per-team game rows, one per game and team.
func (s *Source) TeamLines(ctx context.Context) ([]games.TeamGameLine, error) {
	lines, err := load(ctx, s, sources.DatasetTeamLines, TeamLinesFile, normalize.TeamLine)
	if err != nil {
		return nil, err
	}
	return normalize.DedupTeamLines(lines), nil
}

// Catalog returns the team catalog.
func (s *Source) Catalog(ctx context.Context) ([]teams.CatalogEntry, error) {
	return load(ctx, s, sources.DatasetCatalog, TeamsFile, normalize.CatalogEntry)
}

// Bios returns the player bios.
func (s *Source) Bios(ctx context.Context) ([]players.Bio, error) {
	return load(ctx, s, sources.DatasetBios, PlayersFile, normalize.Bio)
}

// Rosters returns the roster assignments.
func (s *Source) Rosters(ctx context.Context) ([]players.RosterAssignment, error) {
	return load(ctx, s, sources.DatasetRosters, RostersFile, normalize.Roster)
}

func load[T any](ctx context.Context, s *Source, dataset, file string, convert func(normalize.Record) T) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, sources.NewError(Name, dataset, sources.KindCanceled, err)
	}

	records, err := readRecords(filepath.Join(s.dir, file))
	if err != nil {
		kind := sources.KindMalformed
		if os.IsNotExist(err) || os.IsPermission(err) {
			kind = sources.KindUnavailable
		}
		return nil, sources.NewError(Name, dataset, kind, err)
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		out = append(out, convert(rec))
	}
	return out, nil
}

func readRecords(path string) ([]normalize.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var records []normalize.Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return records, nil
}
