package views

import (
	"github.com/preston-bernstein/hoops-analytics-service/internal/analytics"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/ranking"
)

// AdvancedRow is one player's summed window with every derived metric.
type AdvancedRow struct {
	PlayerID string             `json:"playerId"`
	Name     string             `json:"name"`
	Team     string             `json:"team"`
	Position string             `json:"position"`
	HeightCM float64            `json:"heightCm"`
	GP       int                `json:"gp"`
	Starts   int                `json:"starts"`
	MPG      float64            `json:"mpg"`
	Metrics  analytics.Advanced `json:"metrics"`
}

// AdvancedResult is one page of the advanced leaderboard.
type AdvancedResult struct {
	PlayerTable
	Rows []AdvancedRow `json:"rows"`
}

// AdvancedSort lists the advanced leaderboard sort options. Default PPS.
var AdvancedSort = ranking.NewTable("PPS",
	ranking.Key[AdvancedRow]{Label: "MIN", Column: "mpg", Value: func(r AdvancedRow) float64 { return r.MPG }},
	ranking.Key[AdvancedRow]{Label: "USG%", Column: "usgPct", Value: func(r AdvancedRow) float64 { return r.Metrics.Rates.USGPct }},
	ranking.Key[AdvancedRow]{Label: "TS%", Column: "tsPct", Value: func(r AdvancedRow) float64 { return r.Metrics.Rates.TSPct }},
	ranking.Key[AdvancedRow]{Label: "eFG%", Column: "efgPct", Value: func(r AdvancedRow) float64 { return r.Metrics.Rates.EFGPct }},
	ranking.Key[AdvancedRow]{Label: "PPS", Column: "pointsPerShot", Value: func(r AdvancedRow) float64 { return r.Metrics.Rates.PointsPerShot }},
	ranking.Key[AdvancedRow]{Label: "ALT", Column: "heightCm", Value: func(r AdvancedRow) float64 { return r.HeightCM }},
)

// AdvancedStats builds the advanced leaderboard from summed window totals.
func AdvancedStats(lines []games.StatLine, meta Metadata, q Query) AdvancedResult {
	scope := scopePlayers(lines, q)
	totals := analytics.SumPlayers(scope.lines)

	rows := make([]AdvancedRow, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, AdvancedRow{
			PlayerID: t.PlayerID,
			Name:     t.Name,
			Team:     t.Team,
			Position: meta.Position(t.PlayerID),
			HeightCM: meta.Height(t.PlayerID),
			GP:       t.GP,
			Starts:   t.Starts,
			MPG:      t.MPG(),
			Metrics:  analytics.ComputeAdvanced(t),
		})
	}

	page, table := finishPlayerTable(rows, q, scope, AdvancedSort,
		func(r AdvancedRow) playerFacet {
			return playerFacet{name: r.Name, position: r.Position, height: r.HeightCM}
		},
		func(r AdvancedRow, threshold int) bool {
			return r.GP >= threshold && r.MPG >= QualifiedMinutes
		},
	)
	if q.SingleTeam() {
		table.TeamContext = TeamContextFor(lines, meta, q.Team)
	}
	return AdvancedResult{PlayerTable: table, Rows: page}
}
