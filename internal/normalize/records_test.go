package normalize

import (
	"testing"

	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
)

func TestStatLineMapsColumns(t *testing.T) {
	rec := Record{
		ColPlayerID:              12.0,
		ColPlayerName:            " Ana Ruiz ",
		ColTeamName:              "TEC MTY MONTERREY",
		ColGameID:                "881.0",
		ColDate:                  "2024-01-20",
		ColStarter:               1,
		"sMinutes":               "31:30",
		"sPoints":                "18",
		"sFieldGoalsMade":        7,
		"sFieldGoalsAttempted":   14,
		"sThreePointersMade":     2,
		"sFreeThrowsAttempted":   "4",
		"sFoulsOn":               3,
		"Tm_FGA":                 60,
		"Tm_MIN":                 "200:00",
		"Opp_DRB":                25,
		ColOpponent:              "nan",
		ColTeamScore:             71,
		ColOppScore:              65,
		"unexpected_extra_field": "ignored",
	}

	line := StatLine(rec)

	if line.PlayerID != "12" || line.GameID != "881" {
		t.Fatalf("ids not normalized: %q %q", line.PlayerID, line.GameID)
	}
	if line.PlayerName != "Ana Ruiz" {
		t.Fatalf("name = %q", line.PlayerName)
	}
	if line.Team != "Tec MTY" {
		t.Fatalf("alias not applied: %q", line.Team)
	}
	if !line.Starter {
		t.Fatal("expected starter")
	}
	if line.Box.Minutes != 31.5 || line.TeamStats.MIN != 200 {
		t.Fatalf("minutes = %v team minutes = %v", line.Box.Minutes, line.TeamStats.MIN)
	}
	if line.Box.FGM != 7 || line.Box.FGA != 14 || line.Box.FTA != 4 || line.Box.FoulsDrawn != 3 {
		t.Fatalf("box not mapped: %+v", line.Box)
	}
	if line.TeamStats.FGA != 60 || line.OppStats.DRB != 25 {
		t.Fatalf("context not mapped: %+v %+v", line.TeamStats, line.OppStats)
	}
	if line.Opponent != Placeholder {
		t.Fatalf("opponent = %q, want placeholder", line.Opponent)
	}
	if line.Date.IsZero() || line.Date.Day() != 20 {
		t.Fatalf("date = %v", line.Date)
	}
	if line.TeamScore != 71 || line.OppScore != 65 {
		t.Fatalf("scores = %v/%v", line.TeamScore, line.OppScore)
	}
}

func TestStatLineMissingColumnsDefault(t *testing.T) {
	line := StatLine(Record{})
	if line.Box.Minutes != 0 || line.TeamStats.FGA != 0 {
		t.Fatalf("expected zero defaults, got %+v", line)
	}
	if line.Opponent != Placeholder {
		t.Fatalf("opponent = %q", line.Opponent)
	}
	if !line.Date.IsZero() {
		t.Fatalf("expected null date, got %v", line.Date)
	}
	if line.Active() {
		t.Fatal("zero-minute line must not be active")
	}
}

func TestTeamLineAndDedup(t *testing.T) {
	rows := []Record{
		{ColGameID: 1, ColTeamName: "UDLAP", ColTeamScore: 80, "Tm_FGA": 60},
		{ColGameID: 1, ColTeamName: "UDLAP", ColTeamScore: 99},
		{ColGameID: 1, ColTeamName: "UANL", ColTeamScore: 70},
		{ColGameID: 2, ColTeamName: "ANAHUAC XALAPA", ColTeamScore: 61, "Opp_MIN": "200:00"},
	}
	lines := make([]games.TeamGameLine, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, TeamLine(r))
	}
	out := DedupTeamLines(lines)
	if len(out) != 3 {
		t.Fatalf("expected 3 lines after dedup, got %d", len(out))
	}
	if out[0].TeamScore != 80 || out[0].TeamStats.FGA != 60 {
		t.Fatalf("expected first occurrence kept, got %+v", out[0])
	}
	if out[2].Team != "Anáhuac XAL" || out[2].OppStats.MIN != 200 {
		t.Fatalf("unexpected last line %+v", out[2])
	}
	if len(lines) != 4 {
		t.Fatal("input must not be modified")
	}
}

func TestMetadataConverters(t *testing.T) {
	bio := Bio(Record{
		"player_id":     "55.0",
		"first_name":    "Luis",
		"family_name":   "Ortega",
		"height_cm":     "198",
		"weight_kg":     95.5,
		"date_of_birth": "2001-07-04",
		"nationality":   "MEX",
	})
	if bio.ID != "55" || bio.FullName() != "Luis Ortega" || bio.HeightCM != 198 || bio.WeightKG != 95.5 {
		t.Fatalf("unexpected bio %+v", bio)
	}
	if bio.DateOfBirth.Year() != 2001 {
		t.Fatalf("dob = %v", bio.DateOfBirth)
	}

	roster := Roster(Record{
		"player_id":            55,
		"equipo_id":            3.0,
		"shirt_number":         "7",
		"playing_position":     "Base",
		"effective_start_date": "2024-08-01",
	})
	if roster.PlayerID != "55" || roster.TeamID != "3" || roster.ShirtNumber != "7" || roster.Position != "Base" {
		t.Fatalf("unexpected roster %+v", roster)
	}

	entry := CatalogEntry(Record{"equipo_id": 3, "nombre": "UDLAP"})
	if entry.ID != "3" || entry.Name != "UDLAP" {
		t.Fatalf("unexpected catalog entry %+v", entry)
	}
}
