package views

import (
	"github.com/preston-bernstein/hoops-analytics-service/internal/analytics"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/ranking"
)

// FactorRanks are the eleven competition ranks of a four factors row.
type FactorRanks struct {
	Net    int `json:"net"`
	Off    int `json:"off"`
	OffEFG int `json:"offEfg"`
	OffTOV int `json:"offTov"`
	OffORB int `json:"offOrb"`
	OffFTR int `json:"offFtr"`
	Def    int `json:"def"`
	DefEFG int `json:"defEfg"`
	DefTOV int `json:"defTov"`
	DefDRB int `json:"defDrb"`
	DefFTR int `json:"defFtr"`
}

// FactorsRow is one team in the four factors table.
type FactorsRow struct {
	Team      string                `json:"team"`
	GP        int                   `json:"gp"`
	Wins      int                   `json:"wins"`
	Losses    int                   `json:"losses"`
	Points    float64               `json:"points"`
	OppPoints float64               `json:"oppPoints"`
	Poss      float64               `json:"poss"`
	OppPoss   float64               `json:"oppPoss"`
	Ratings   analytics.Ratings     `json:"ratings"`
	Factors   analytics.FourFactors `json:"factors"`
	Ranks     FactorRanks           `json:"ranks"`
}

// FactorsResult is the full four factors table.
type FactorsResult struct {
	TeamTable
	Rows []FactorsRow `json:"rows"`
}

func factorKey(label, column string, asc bool, value func(FactorsRow) float64) ranking.Key[FactorsRow] {
	return ranking.Key[FactorsRow]{Label: label, Column: column, Ascending: asc, Value: value}
}

// FactorsSort lists the four factors sort options in display order. Each
// option carries its own direction; losses sort with the most first.
var FactorsSort = ranking.NewTable("Victorias",
	factorKey("Victorias", "wins", false, func(r FactorsRow) float64 { return float64(r.Wins) }),
	factorKey("Derrotas", "losses", false, func(r FactorsRow) float64 { return float64(r.Losses) }),
	factorKey("NRtg", "netRtg", false, func(r FactorsRow) float64 { return r.Ratings.Net }),
	factorKey("ORtg", "offRtg", false, func(r FactorsRow) float64 { return r.Ratings.Off }),
	factorKey("eFG% O", "offEfg", false, func(r FactorsRow) float64 { return r.Factors.OffEFG }),
	factorKey("TOV% O", "offTovPct", true, func(r FactorsRow) float64 { return r.Factors.OffTOVPct }),
	factorKey("ORB%", "offOrbPct", false, func(r FactorsRow) float64 { return r.Factors.OffORBPct }),
	factorKey("FTRate O", "offFtRate", false, func(r FactorsRow) float64 { return r.Factors.OffFTRate }),
	factorKey("DRtg", "defRtg", true, func(r FactorsRow) float64 { return r.Ratings.Def }),
	factorKey("eFG% D", "defEfg", true, func(r FactorsRow) float64 { return r.Factors.DefEFG }),
	factorKey("TOV% D", "defTovPct", false, func(r FactorsRow) float64 { return r.Factors.DefTOVPct }),
	factorKey("DRB%", "defDrbPct", false, func(r FactorsRow) float64 { return r.Factors.DefDRBPct }),
	factorKey("FTRate D", "defFtRate", true, func(r FactorsRow) float64 { return r.Factors.DefFTRate }),
)

// FactorPoints picks how each side's points are credited. A side whose
// recorded scores sum to zero over the whole snapshot falls back to points
// rebuilt from the box score.
func FactorPoints(lines []games.TeamGameLine) analytics.PointsFunc {
	var team, opp float64
	for _, l := range lines {
		team += l.TeamScore
		opp += l.OppScore
	}
	useTeam, useOpp := team > 0, opp > 0
	return func(l games.TeamGameLine) (float64, float64) {
		boxTeam, boxOpp := analytics.BoxPoints(l)
		if useTeam {
			boxTeam = l.TeamScore
		}
		if useOpp {
			boxOpp = l.OppScore
		}
		return boxTeam, boxOpp
	}
}

// FourFactors builds the four factors table over each team's last window
// games.
func FourFactors(lines []games.TeamGameLine, q Query) FactorsResult {
	window := analytics.NewWindow(q.Window, analytics.MaxGames(analytics.DistinctGames(lines, teamOf, teamGameOf)))
	key := FactorsSort.Resolve(q.Sort)

	result := FactorsResult{
		TeamTable: TeamTable{
			Window:      window.Size,
			MaxGames:    window.Max,
			Sort:        key.Label,
			Ascending:   key.Ascending,
			SortOptions: FactorsSort.Labels(),
		},
		Rows: []FactorsRow{},
	}
	if len(lines) == 0 {
		result.NoData = true
		return result
	}

	sums := analytics.SumTeamGames(analytics.RecentPerEntity(lines, teamOf, teamDate, window.Size), FactorPoints(lines))
	rows := make([]FactorsRow, 0, len(sums))
	for _, w := range sums {
		rows = append(rows, FactorsRow{
			Team:      w.Team,
			GP:        w.GP,
			Wins:      w.Wins,
			Losses:    w.Losses,
			Points:    w.Points,
			OppPoints: w.OppPoints,
			Poss:      w.Poss,
			OppPoss:   w.OppPoss,
			Ratings:   w.Ratings(),
			Factors:   analytics.ComputeFourFactors(w.TeamStats, w.OppStats),
		})
	}
	rankFactors(rows)

	result.Rows = ranking.Sort(rows, key.Value, key.Direction())
	return result
}

func rankFactors(rows []FactorsRow) {
	rank := func(value func(FactorsRow) float64, dir ranking.Direction) []int {
		return ranking.RankBy(rows, value, dir)
	}
	desc, asc := ranking.Descending, ranking.Ascending
	net := rank(func(r FactorsRow) float64 { return r.Ratings.Net }, desc)
	off := rank(func(r FactorsRow) float64 { return r.Ratings.Off }, desc)
	offEFG := rank(func(r FactorsRow) float64 { return r.Factors.OffEFG }, desc)
	offTOV := rank(func(r FactorsRow) float64 { return r.Factors.OffTOVPct }, asc)
	offORB := rank(func(r FactorsRow) float64 { return r.Factors.OffORBPct }, desc)
	offFTR := rank(func(r FactorsRow) float64 { return r.Factors.OffFTRate }, desc)
	def := rank(func(r FactorsRow) float64 { return r.Ratings.Def }, asc)
	defEFG := rank(func(r FactorsRow) float64 { return r.Factors.DefEFG }, asc)
	defTOV := rank(func(r FactorsRow) float64 { return r.Factors.DefTOVPct }, desc)
	defDRB := rank(func(r FactorsRow) float64 { return r.Factors.DefDRBPct }, desc)
	defFTR := rank(func(r FactorsRow) float64 { return r.Factors.DefFTRate }, asc)

	for i := range rows {
		rows[i].Ranks = FactorRanks{
			Net:    net[i],
			Off:    off[i],
			OffEFG: offEFG[i],
			OffTOV: offTOV[i],
			OffORB: offORB[i],
			OffFTR: offFTR[i],
			Def:    def[i],
			DefEFG: defEFG[i],
			DefTOV: defTOV[i],
			DefDRB: defDRB[i],
			DefFTR: defFTR[i],
		}
	}
}
