package views

import (
	"math"
	"sort"

	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/ranking"
)

// TeamContext compares one team's roster against the league: players used and
// average height and weight. Averages are nil when no player has a value; the
// matching rank is then 0.
type TeamContext struct {
	Team        string   `json:"team"`
	Teams       int      `json:"teams"`
	PlayersUsed int      `json:"playersUsed"`
	PlayersRank int      `json:"playersRank"`
	AvgHeightCM *float64 `json:"avgHeightCm"`
	HeightRank  int      `json:"heightRank"`
	AvgWeightKG *float64 `json:"avgWeightKg"`
	WeightRank  int      `json:"weightRank"`
}

type rosterProfile struct {
	team    string
	players int
	height  float64
	weight  float64
}

// TeamContextFor computes the context of team over every team in lines. Only
// players who logged minutes count. It returns nil when team has no such player.
func TeamContextFor(lines []games.StatLine, meta Metadata, team string) *TeamContext {
	type member struct{ player, team string }
	seen := make(map[member]struct{})
	byTeam := make(map[string][]string)
	for _, l := range lines {
		if !l.Active() {
			continue
		}
		m := member{l.PlayerID, l.Team}
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		byTeam[l.Team] = append(byTeam[l.Team], l.PlayerID)
	}
	if _, ok := byTeam[team]; !ok {
		return nil
	}

	profiles := make([]rosterProfile, 0, len(byTeam))
	for name, ids := range byTeam {
		profiles = append(profiles, rosterProfile{
			team:    name,
			players: len(ids),
			height:  meanNonZero(ids, meta.Height),
			weight:  meanNonZero(ids, meta.Weight),
		})
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].team < profiles[j].team })

	playerRanks := ranking.RankBy(profiles, func(p rosterProfile) float64 { return float64(p.players) }, ranking.Descending)
	heightRanks := ranking.RankBy(profiles, func(p rosterProfile) float64 { return p.height }, ranking.Descending)
	weightRanks := ranking.RankBy(profiles, func(p rosterProfile) float64 { return p.weight }, ranking.Descending)

	for i, p := range profiles {
		if p.team != team {
			continue
		}
		return &TeamContext{
			Team:        team,
			Teams:       len(profiles),
			PlayersUsed: p.players,
			PlayersRank: playerRanks[i],
			AvgHeightCM: optional(p.height),
			HeightRank:  heightRanks[i],
			AvgWeightKG: optional(p.weight),
			WeightRank:  weightRanks[i],
		}
	}
	return nil
}

func meanNonZero(ids []string, value func(string) float64) float64 {
	var sum float64
	var n int
	for _, id := range ids {
		if v := value(id); v != 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

func optional(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
