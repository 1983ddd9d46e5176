package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/players"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/teams"
)

// SampleStatLine returns a per-player line with a plausible shooting split.
func SampleStatLine(player, team, game string, day int, minutes, points float64) games.StatLine {
	return games.StatLine{
		PlayerID:   player,
		PlayerName: "Player " + player,
		Team:       team,
		GameID:     game,
		Date:       GameDay(day),
		Box: games.BoxScore{
			Minutes: minutes,
			Points:  points,
			FGM:     4,
			FGA:     10,
			TwoPM:   3,
			TwoPA:   6,
			ThreePM: 1,
			ThreePA: 4,
			FTM:     2,
			FTA:     2,
			TRB:     5,
			AST:     3,
		},
		TeamStats: games.TeamTotals{FG: 30, FGA: 70, FTA: 20, TOV: 12, MIN: 200},
		OppStats:  games.TeamTotals{FG: 28, FGA: 68, FTA: 18, TOV: 14, MIN: 200},
		Opponent:  "Rival",
	}
}

// SampleTeamLine returns a team game line with symmetric box totals.
func SampleTeamLine(team, game string, day int, score, oppScore float64) games.TeamGameLine {
	side := games.TeamTotals{
		FG:      35,
		FGA:     80,
		TwoPM:   25,
		ThreePM: 10,
		ThreePA: 30,
		FTM:     15,
		FTA:     20,
		ORB:     10,
		DRB:     30,
		TOV:     12,
		MIN:     200,
	}
	return games.TeamGameLine{
		GameID:    game,
		Team:      team,
		Date:      GameDay(day),
		TeamStats: side,
		OppStats:  side,
		TeamScore: score,
		OppScore:  oppScore,
	}
}

// SampleBio returns a bio with height and weight.
func SampleBio(id, first, family string, heightCM, weightKG float64) players.Bio {
	return players.Bio{
		ID:          id,
		FirstName:   first,
		FamilyName:  family,
		HeightCM:    heightCM,
		WeightKG:    weightKG,
		DateOfBirth: GameDay(1).AddDate(-21, 0, 0),
		Nationality: "MEX",
	}
}

// SampleRoster returns a roster assignment effective on the given day.
func SampleRoster(player, team, position string, day int) players.RosterAssignment {
	return players.RosterAssignment{
		PlayerID:       player,
		TeamID:         team,
		ShirtNumber:    "7",
		Position:       position,
		EffectiveStart: GameDay(day),
	}
}

// SampleCatalog returns a two-team catalog matching the sample lines.
func SampleCatalog() []teams.CatalogEntry {
	return []teams.CatalogEntry{
		{ID: "10", Name: "Team A"},
		{ID: "20", Name: "Team B"},
	}
}

// WriteJSONFile encodes v as JSON into dir/name and returns the path.
func WriteJSONFile(t *testing.T, dir, name string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal %s: %v", name, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
