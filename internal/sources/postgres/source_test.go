package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/hoops-analytics-service/internal/sources"
)

type fakeRows struct {
	columns []string
	data    [][]any
	pos     int
	scanErr error
	iterErr error
	closed  bool
}

func (f *fakeRows) Columns() ([]string, error) { return f.columns, nil }

func (f *fakeRows) Next() bool {
	if f.pos >= len(f.data) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	if f.scanErr != nil {
		return f.scanErr
	}
	row := f.data[f.pos-1]
	for i := range dest {
		*(dest[i].(*any)) = row[i]
	}
	return nil
}

func (f *fakeRows) Err() error { return f.iterErr }

func (f *fakeRows) Close() error {
	f.closed = true
	return nil
}

func sourceWith(rows *fakeRows, err error, seen *string) *Source {
	return &Source{
		query: func(ctx context.Context, query string) (rowIterator, error) {
			if seen != nil {
				*seen = query
			}
			if err != nil {
				return nil, err
			}
			return rows, nil
		},
	}
}

func TestStatLinesScansRecords(t *testing.T) {
	rows := &fakeRows{
		columns: []string{"id_player", "Nombre", "equipo_nombre", "id_abe", "Fecha", "sMinutes", "sPoints", "Opp_Name"},
		data: [][]any{
			{int64(7), []byte("Ana Ruiz"), "UANL", int64(100), "2024-02-01", []byte("25:30"), int64(12), nil},
		},
	}
	var query string
	src := sourceWith(rows, nil, &query)

	lines, err := src.StatLines(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if query != `SELECT * FROM "vista_analitica_master" LIMIT 100000` {
		t.Fatalf("unexpected query %q", query)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	l := lines[0]
	if l.PlayerID != "7" || l.PlayerName != "Ana Ruiz" || l.GameID != "100" {
		t.Fatalf("unexpected identity %+v", l)
	}
	if l.Box.Minutes != 25.5 || l.Box.Points != 12 {
		t.Fatalf("unexpected box %+v", l.Box)
	}
	if l.Opponent != "-" {
		t.Fatalf("expected opponent placeholder, got %q", l.Opponent)
	}
	if !rows.closed {
		t.Fatalf("expected rows to be closed")
	}
}

func TestTeamLinesDeduplicates(t *testing.T) {
	rows := &fakeRows{
		columns: []string{"id_abe", "equipo_nombre", "Tm_Score", "Opp_Score"},
		data: [][]any{
			{"1", "UANL", int64(80), int64(70)},
			{"1", "UANL", int64(80), int64(70)},
			{"1", "UDLAP", int64(70), int64(80)},
		},
	}
	var query string
	lines, err := sourceWith(rows, nil, &query).TeamLines(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if query != `SELECT * FROM "vista_equipos_master" LIMIT 10000` {
		t.Fatalf("unexpected query %q", query)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 deduplicated lines, got %d", len(lines))
	}
}

func TestCatalogSelectsColumns(t *testing.T) {
	rows := &fakeRows{
		columns: []string{"equipo_id", "nombre"},
		data:    [][]any{{float64(10), "Team A"}},
	}
	var query string
	entries, err := sourceWith(rows, nil, &query).Catalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if query != `SELECT "equipo_id", "nombre" FROM "equipos"` {
		t.Fatalf("unexpected query %q", query)
	}
	if len(entries) != 1 || entries[0].ID != "10" || entries[0].Name != "Team A" {
		t.Fatalf("unexpected entries %+v", entries)
	}
}

func TestBiosAndRosters(t *testing.T) {
	bios, err := sourceWith(&fakeRows{
		columns: []string{"player_id", "first_name", "family_name", "height_cm"},
		data:    [][]any{{int64(1), "Ana", "Ruiz", []byte("181.5")}},
	}, nil, nil).Bios(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(bios) != 1 || bios[0].FullName() != "Ana Ruiz" || bios[0].HeightCM != 181.5 {
		t.Fatalf("unexpected bios %+v", bios)
	}

	rosters, err := sourceWith(&fakeRows{
		columns: []string{"player_id", "equipo_id", "playing_position"},
		data:    [][]any{{int64(1), int64(10), "Base"}},
	}, nil, nil).Rosters(context.Background())
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if len(rosters) != 1 || rosters[0].TeamID != "10" || rosters[0].Position != "Base" {
		t.Fatalf("unexpected rosters %+v", rosters)
	}
}

func TestQueryFailureIsUnavailable(t *testing.T) {
	_, err := sourceWith(nil, errors.New("connection refused"), nil).StatLines(context.Background())
	if !errors.Is(err, sources.ErrUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
	srcErr, ok := sources.AsSourceError(err)
	if !ok || srcErr.Source != Name || srcErr.Dataset != sources.DatasetStatLines {
		t.Fatalf("unexpected source error %+v", srcErr)
	}
}

func TestScanFailuresAreMalformed(t *testing.T) {
	tests := []struct {
		name string
		rows *fakeRows
	}{
		{
			name: "scan",
			rows: &fakeRows{columns: []string{"a"}, data: [][]any{{1}}, scanErr: errors.New("bad")},
		},
		{
			name: "iteration",
			rows: &fakeRows{columns: []string{"a"}, iterErr: errors.New("reset")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sourceWith(tt.rows, nil, nil).Bios(context.Background())
			srcErr, ok := sources.AsSourceError(err)
			if !ok || srcErr.Kind != sources.KindMalformed {
				t.Fatalf("expected malformed source error, got %v", err)
			}
			if !tt.rows.closed {
				t.Fatalf("expected rows to be closed")
			}
		})
	}
}

func TestSelectQueryWithoutLimit(t *testing.T) {
	if got := selectQuery("players", nil, 0); got != `SELECT * FROM "players"` {
		t.Fatalf("unexpected query %q", got)
	}
}
