package views

import (
	"time"

	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/players"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/teams"
)

func day(d int) time.Time {
	return time.Date(2024, time.February, d, 0, 0, 0, 0, time.UTC)
}

func statLine(player, team, game string, date time.Time, minutes, points float64) games.StatLine {
	return games.StatLine{
		PlayerID:   player,
		PlayerName: "Player " + player,
		Team:       team,
		GameID:     game,
		Date:       date,
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
		},
		TeamStats: games.TeamTotals{FG: 30, FGA: 70, FTA: 20, TOV: 12, MIN: 200},
		Opponent:  "Rival",
	}
}

// leagueLines builds two teams. Team A plays three games and team B two.
// p2 sits out a3 with zero minutes; p4 plays garbage minutes for B.
func leagueLines() []games.StatLine {
	return []games.StatLine{
		statLine("p1", "A", "a1", day(1), 30, 10),
		statLine("p1", "A", "a2", day(2), 30, 20),
		statLine("p1", "A", "a3", day(3), 30, 30),
		statLine("p2", "A", "a1", day(1), 20, 5),
		statLine("p2", "A", "a2", day(2), 20, 5),
		statLine("p2", "A", "a3", day(3), 0, 0),
		statLine("p3", "B", "b1", day(1), 35, 40),
		statLine("p3", "B", "b2", day(2), 35, 40),
		statLine("p4", "B", "b1", day(1), 5, 2),
		statLine("p4", "B", "b2", day(2), 5, 2),
	}
}

func leagueMeta() Metadata {
	return NewMetadata(
		[]players.Bio{
			{ID: "p1", FirstName: "Ana", FamilyName: "Ruiz", HeightCM: 190, WeightKG: 85, DateOfBirth: time.Date(2002, time.May, 10, 0, 0, 0, 0, time.UTC), Nationality: "MEX"},
			{ID: "p2", FirstName: "Beto", FamilyName: "Lara", HeightCM: 200, WeightKG: 95},
			{ID: "p3", FirstName: "Carla", FamilyName: "Soto", HeightCM: 180},
			{ID: "p4", FirstName: "Dani", FamilyName: "Vega"},
			{ID: "p5", FirstName: "Eli", FamilyName: "Paz"},
		},
		[]players.RosterAssignment{
			{PlayerID: "p1", TeamID: "10", ShirtNumber: "7", Position: "Base", EffectiveStart: day(1)},
			{PlayerID: "p1", TeamID: "10", ShirtNumber: "9", Position: "Escolta", EffectiveStart: day(5)},
			{PlayerID: "p2", TeamID: "10", Position: "Pivot", EffectiveStart: day(1)},
			{PlayerID: "p3", TeamID: "99", Position: "Base", EffectiveStart: day(1)},
		},
		[]teams.CatalogEntry{{ID: "10", Name: "Team A"}, {ID: "20", Name: "Team B"}},
	)
}

func teamLine(team, game string, date time.Time, score, oppScore float64) games.TeamGameLine {
	side := games.TeamTotals{FG: 35, FGA: 80, TwoPM: 25, ThreePM: 10, ThreePA: 30, FTM: 15, FTA: 20, ORB: 10, DRB: 30, TOV: 12, MIN: 200}
	return games.TeamGameLine{
		GameID:    game,
		Team:      team,
		Date:      date,
		TeamStats: side,
		OppStats:  side,
		TeamScore: score,
		OppScore:  oppScore,
	}
}

func names[T any](rows []T, name func(T) string) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = name(r)
	}
	return out
}
