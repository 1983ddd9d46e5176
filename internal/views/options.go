package views

import (
	"sort"

	"github.com/preston-bernstein/hoops-analytics-service/internal/analytics"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
)

// TeamOptions is what a client needs to build the team selector and the
// games slider.
type TeamOptions struct {
	Teams        []string `json:"teams"`
	MaxGames     int      `json:"maxGames"`
	TeamMaxGames int      `json:"teamMaxGames"`
}

// Options lists AllTeams followed by every team in the player lines, sorted by
// name, with the window bounds of the player and team tables.
func Options(lines []games.StatLine, teamLines []games.TeamGameLine) TeamOptions {
	seen := make(map[string]struct{})
	var names []string
	for _, l := range lines {
		if l.Team == "" {
			continue
		}
		if _, ok := seen[l.Team]; ok {
			continue
		}
		seen[l.Team] = struct{}{}
		names = append(names, l.Team)
	}
	sort.Strings(names)

	return TeamOptions{
		Teams:        append([]string{AllTeams}, names...),
		MaxGames:     analytics.MaxGames(analytics.DistinctGames(lines, byTeam, byGame)),
		TeamMaxGames: analytics.MaxGames(analytics.DistinctGames(teamLines, teamOf, teamGameOf)),
	}
}
