package fixture

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/hoops-analytics-service/internal/sources"
)

func writeFixture(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

func TestStatLinesDecodesRows(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, StatLinesFile, `[
		{"id_player": 7, "Nombre": "Ana Ruiz", "equipo_nombre": "UANL", "id_abe": 100,
		 "Fecha": "2024-02-01", "sMinutes": "20:15", "sPoints": 14, "Opp_Name": "UDLAP"}
	]`)

	lines, err := New(dir).StatLines(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	l := lines[0]
	if l.PlayerID != "7" || l.GameID != "100" || l.Team != "UANL" {
		t.Fatalf("unexpected identity %+v", l)
	}
	if l.Box.Minutes != 20.25 || l.Box.Points != 14 {
		t.Fatalf("unexpected box %+v", l.Box)
	}
	if l.Opponent != "UDLAP" {
		t.Fatalf("unexpected opponent %q", l.Opponent)
	}
	if l.Date.IsZero() {
		t.Fatalf("expected parsed date")
	}
}

func TestTeamLinesDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, TeamLinesFile, `[
		{"id_abe": 1, "equipo_nombre": "UANL", "Tm_Score": 80, "Opp_Score": 70},
		{"id_abe": 1, "equipo_nombre": "UANL", "Tm_Score": 80, "Opp_Score": 70}
	]`)

	lines, err := New(dir).TeamLines(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(lines) != 1 || lines[0].TeamScore != 80 {
		t.Fatalf("unexpected lines %+v", lines)
	}
}

func TestMetadataFiles(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, PlayersFile, `[{"player_id": 7, "first_name": "Ana", "family_name": "Ruiz", "height_cm": 181}]`)
	writeFixture(t, dir, RostersFile, `[{"player_id": 7, "equipo_id": 10, "shirt_number": 9, "playing_position": "Base"}]`)
	writeFixture(t, dir, TeamsFile, `[{"equipo_id": 10, "nombre": "Team A"}]`)
	src := New(dir)

	bios, err := src.Bios(context.Background())
	if err != nil || len(bios) != 1 || bios[0].HeightCM != 181 {
		t.Fatalf("unexpected bios %+v err %v", bios, err)
	}
	rosters, err := src.Rosters(context.Background())
	if err != nil || len(rosters) != 1 || rosters[0].ShirtNumber != "9" {
		t.Fatalf("unexpected rosters %+v err %v", rosters, err)
	}
	catalog, err := src.Catalog(context.Background())
	if err != nil || len(catalog) != 1 || catalog[0].Name != "Team A" {
		t.Fatalf("unexpected catalog %+v err %v", catalog, err)
	}
}

func TestMissingFileIsUnavailable(t *testing.T) {
	_, err := New(t.TempDir()).Bios(context.Background())
	if !errors.Is(err, sources.ErrUnavailable) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
}

func TestBadJSONIsMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, TeamsFile, `{"not": "an array"}`)

	_, err := New(dir).Catalog(context.Background())
	srcErr, ok := sources.AsSourceError(err)
	if !ok || srcErr.Kind != sources.KindMalformed || srcErr.Dataset != sources.DatasetCatalog {
		t.Fatalf("expected malformed catalog error, got %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(t.TempDir()).StatLines(ctx)
	srcErr, ok := sources.AsSourceError(err)
	if !ok || srcErr.Kind != sources.KindCanceled {
		t.Fatalf("expected canceled error, got %v", err)
	}
}
