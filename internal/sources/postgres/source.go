// Package postgres reads the analytics views and dimension tables from Postgres.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/players"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/teams"
	"github.com/preston-bernstein/hoops-analytics-service/internal/normalize"
	"github.com/preston-bernstein/hoops-analytics-service/internal/sources"
)

// Name identifies this source in logs, metrics and errors.
const Name = "postgres"

const (
	statLinesTable = "vista_analitica_master"
	teamLinesTable = "vista_equipos_master"
	playersTable   = "players"
	rostersTable   = "rosters"
	catalogTable   = "equipos"

	statLinesLimit = 100000
	teamLinesLimit = 10000
)

var catalogColumns = []string{"equipo_id", "nombre"}

type rowIterator interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type queryFunc func(ctx context.Context, query string) (rowIterator, error)

// Source implements sources.Source over a Postgres connection pool.
type Source struct {
	query queryFunc
}

var _ sources.Source = (*Source)(nil)

// New builds a Source that queries db.
func New(db *sql.DB) *Source {
	return &Source{
		query: func(ctx context.Context, query string) (rowIterator, error) {
			return db.QueryContext(ctx, query)
		},
	}
}

// StatLines reads the per-player game view.
func (s *Source) StatLines(ctx context.Context) ([]games.StatLine, error) {
	return fetch(ctx, s, sources.DatasetStatLines, selectQuery(statLinesTable, nil, statLinesLimit), normalize.StatLine)
}

// TeamLines reads the per-team game view, keeping one row per game and team.
func (s *Source) TeamLines(ctx context.Context) ([]games.TeamGameLine, error) {
	lines, err := fetch(ctx, s, sources.DatasetTeamLines, selectQuery(teamLinesTable, nil, teamLinesLimit), normalize.TeamLine)
	if err != nil {
		return nil, err
	}
	return normalize.DedupTeamLines(lines), nil
}

// Catalog reads the team id to name catalog.
func (s *Source) Catalog(ctx context.Context) ([]teams.CatalogEntry, error) {
	return fetch(ctx, s, sources.DatasetCatalog, selectQuery(catalogTable, catalogColumns, 0), normalize.CatalogEntry)
}

// Bios reads the players table.
func (s *Source) Bios(ctx context.Context) ([]players.Bio, error) {
	return fetch(ctx, s, sources.DatasetBios, selectQuery(playersTable, nil, 0), normalize.Bio)
}

// Rosters reads the roster assignments table.
func (s *Source) Rosters(ctx context.Context) ([]players.RosterAssignment, error) {
	return fetch(ctx, s, sources.DatasetRosters, selectQuery(rostersTable, nil, 0), normalize.Roster)
}

func fetch[T any](ctx context.Context, s *Source, dataset, query string, convert func(normalize.Record) T) ([]T, error) {
	rows, err := s.query(ctx, query)
	if err != nil {
		return nil, sources.NewError(Name, dataset, sources.KindUnavailable, fmt.Errorf("querying %s: %w", dataset, err))
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return nil, sources.NewError(Name, dataset, sources.KindMalformed, err)
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		out = append(out, convert(rec))
	}
	return out, nil
}

func selectQuery(table string, columns []string, limit int) string {
	cols := "*"
	if len(columns) > 0 {
		quoted := make([]string, len(columns))
		for i, c := range columns {
			quoted[i] = pq.QuoteIdentifier(c)
		}
		cols = strings.Join(quoted, ", ")
	}
	query := fmt.Sprintf("SELECT %s FROM %s", cols, pq.QuoteIdentifier(table))
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	return query
}

// scanRecords reads every row into a column-keyed record. Byte slices are
// copied into strings because the driver reuses its buffers between rows.
func scanRecords(rows rowIterator) ([]normalize.Record, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	var records []normalize.Record
	for rows.Next() {
		values := make([]any, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		rec := make(normalize.Record, len(columns))
		for i, col := range columns {
			if b, ok := values[i].([]byte); ok {
				rec[col] = string(b)
				continue
			}
			rec[col] = values[i]
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}
	return records, nil
}
