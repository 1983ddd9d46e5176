package views

import (
	"time"

	"github.com/preston-bernstein/hoops-analytics-service/internal/analytics"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/ranking"
)

// DefaultSeasonGames is the regular season length used for expected wins.
const DefaultSeasonGames = 30

const recentGames = 5

// RecentForm is a team's record and ratings over its last five games.
type RecentForm struct {
	Wins   int     `json:"wins"`
	Losses int     `json:"losses"`
	OffRtg float64 `json:"offRtg"`
	DefRtg float64 `json:"defRtg"`
	NetRtg float64 `json:"netRtg"`
}

// SummaryRanks are the competition ranks of a summary row across teams.
type SummaryRanks struct {
	Net        int `json:"net"`
	Wins       int `json:"wins"`
	Losses     int `json:"losses"`
	WinPct     int `json:"winPct"`
	ExpTotal   int `json:"expectedWinsTotal"`
	ExpCurrent int `json:"expectedWinsToDate"`
	Diff       int `json:"winDifferential"`
	Off        int `json:"off"`
	Def        int `json:"def"`
	L5Wins     int `json:"l5Wins"`
	L5Losses   int `json:"l5Losses"`
	L5Net      int `json:"l5Net"`
	L5Off      int `json:"l5Off"`
	L5Def      int `json:"l5Def"`
}

// SummaryRow is one team in the summary table.
type SummaryRow struct {
	Team        string                `json:"team"`
	GP          int                   `json:"gp"`
	Wins        int                   `json:"wins"`
	Losses      int                   `json:"losses"`
	WinPct      float64               `json:"winPct"`
	Points      float64               `json:"points"`
	OppPoints   float64               `json:"oppPoints"`
	Poss        float64               `json:"poss"`
	OppPoss     float64               `json:"oppPoss"`
	Ratings     analytics.Ratings     `json:"ratings"`
	Pythagorean analytics.Pythagorean `json:"pythagorean"`
	Last5       RecentForm            `json:"last5"`
	Ranks       SummaryRanks          `json:"ranks"`
}

// TeamTable is the header shared by the team tables.
type TeamTable struct {
	Window      int      `json:"window"`
	MaxGames    int      `json:"maxGames"`
	Sort        string   `json:"sort"`
	Ascending   bool     `json:"ascending"`
	SortOptions []string `json:"sortOptions"`
	NoData      bool     `json:"noData"`
}

// SummaryResult is the full team summary table.
type SummaryResult struct {
	TeamTable
	SeasonGames int          `json:"seasonGames"`
	Rows        []SummaryRow `json:"rows"`
}

func summaryKey(label, column string, asc bool, value func(SummaryRow) float64) ranking.Key[SummaryRow] {
	return ranking.Key[SummaryRow]{Label: label, Column: column, Ascending: asc, Value: value}
}

// SummarySort lists the summary sort options. Only defensive ratings and
// losses sort ascending. Default NRtg.
var SummarySort = ranking.NewTable("NRtg",
	summaryKey("Victorias", "wins", false, func(r SummaryRow) float64 { return float64(r.Wins) }),
	summaryKey("Derrotas", "losses", true, func(r SummaryRow) float64 { return float64(r.Losses) }),
	summaryKey("%Victorias", "winPct", false, func(r SummaryRow) float64 { return r.WinPct }),
	summaryKey("EWT", "expectedWinsTotal", false, func(r SummaryRow) float64 { return r.Pythagorean.ExpTotal }),
	summaryKey("EWA", "expectedWinsToDate", false, func(r SummaryRow) float64 { return r.Pythagorean.ExpCurrent }),
	summaryKey("EWD", "winDifferential", false, func(r SummaryRow) float64 { return r.Pythagorean.WinsOverPace }),
	summaryKey("ORtg", "offRtg", false, func(r SummaryRow) float64 { return r.Ratings.Off }),
	summaryKey("DRtg", "defRtg", true, func(r SummaryRow) float64 { return r.Ratings.Def }),
	summaryKey("NRtg", "netRtg", false, func(r SummaryRow) float64 { return r.Ratings.Net }),
	summaryKey("Vict U5", "l5Wins", false, func(r SummaryRow) float64 { return float64(r.Last5.Wins) }),
	summaryKey("Derr U5", "l5Losses", true, func(r SummaryRow) float64 { return float64(r.Last5.Losses) }),
	summaryKey("ORtg U5", "l5OffRtg", false, func(r SummaryRow) float64 { return r.Last5.OffRtg }),
	summaryKey("DRtg U5", "l5DefRtg", true, func(r SummaryRow) float64 { return r.Last5.DefRtg }),
	summaryKey("NRtg U5", "l5NetRtg", false, func(r SummaryRow) float64 { return r.Last5.NetRtg }),
)

func teamOf(l games.TeamGameLine) string      { return l.Team }
func teamGameOf(l games.TeamGameLine) string  { return l.GameID }
func teamDate(l games.TeamGameLine) time.Time { return l.Date }

// TeamSummary builds the standings table: record, ratings, Pythagorean
// expectation and last-five form, each ranked across teams. Points come from
// the recorded final scores.
func TeamSummary(lines []games.TeamGameLine, q Query, seasonGames int) SummaryResult {
	if seasonGames <= 0 {
		seasonGames = DefaultSeasonGames
	}
	window := analytics.NewWindow(q.Window, analytics.MaxGames(analytics.DistinctGames(lines, teamOf, teamGameOf)))
	key := SummarySort.Resolve(q.Sort)

	result := SummaryResult{
		TeamTable: TeamTable{
			Window:      window.Size,
			MaxGames:    window.Max,
			Sort:        key.Label,
			Ascending:   key.Ascending,
			SortOptions: SummarySort.Labels(),
		},
		SeasonGames: seasonGames,
		Rows:        []SummaryRow{},
	}
	if len(lines) == 0 {
		result.NoData = true
		return result
	}

	current := analytics.SumTeamGames(analytics.RecentPerEntity(lines, teamOf, teamDate, window.Size), analytics.ScorePoints)
	recent := analytics.SumTeamGames(analytics.RecentPerEntity(lines, teamOf, teamDate, recentGames), analytics.ScorePoints)
	form := make(map[string]RecentForm, len(recent))
	for _, w := range recent {
		r := w.Ratings()
		form[w.Team] = RecentForm{Wins: w.Wins, Losses: w.Losses, OffRtg: r.Off, DefRtg: r.Def, NetRtg: r.Net}
	}

	rows := make([]SummaryRow, 0, len(current))
	for _, w := range current {
		rows = append(rows, SummaryRow{
			Team:        w.Team,
			GP:          w.GP,
			Wins:        w.Wins,
			Losses:      w.Losses,
			WinPct:      w.WinPct(),
			Points:      w.Points,
			OppPoints:   w.OppPoints,
			Poss:        w.Poss,
			OppPoss:     w.OppPoss,
			Ratings:     w.Ratings(),
			Pythagorean: analytics.ComputePythagorean(w.Points, w.OppPoints, w.Wins, w.GP, seasonGames),
			Last5:       form[w.Team],
		})
	}
	rankSummary(rows)

	result.Rows = ranking.Sort(rows, key.Value, key.Direction())
	return result
}

func rankSummary(rows []SummaryRow) {
	rank := func(value func(SummaryRow) float64, dir ranking.Direction) []int {
		return ranking.RankBy(rows, value, dir)
	}
	desc, asc := ranking.Descending, ranking.Ascending
	net := rank(func(r SummaryRow) float64 { return r.Ratings.Net }, desc)
	wins := rank(func(r SummaryRow) float64 { return float64(r.Wins) }, desc)
	losses := rank(func(r SummaryRow) float64 { return float64(r.Losses) }, asc)
	pct := rank(func(r SummaryRow) float64 { return r.WinPct }, desc)
	expT := rank(func(r SummaryRow) float64 { return r.Pythagorean.ExpTotal }, desc)
	expC := rank(func(r SummaryRow) float64 { return r.Pythagorean.ExpCurrent }, desc)
	diff := rank(func(r SummaryRow) float64 { return r.Pythagorean.WinsOverPace }, desc)
	off := rank(func(r SummaryRow) float64 { return r.Ratings.Off }, desc)
	def := rank(func(r SummaryRow) float64 { return r.Ratings.Def }, asc)
	l5w := rank(func(r SummaryRow) float64 { return float64(r.Last5.Wins) }, desc)
	l5l := rank(func(r SummaryRow) float64 { return float64(r.Last5.Losses) }, asc)
	l5n := rank(func(r SummaryRow) float64 { return r.Last5.NetRtg }, desc)
	l5o := rank(func(r SummaryRow) float64 { return r.Last5.OffRtg }, desc)
	l5d := rank(func(r SummaryRow) float64 { return r.Last5.DefRtg }, asc)

	for i := range rows {
		rows[i].Ranks = SummaryRanks{
			Net:        net[i],
			Wins:       wins[i],
			Losses:     losses[i],
			WinPct:     pct[i],
			ExpTotal:   expT[i],
			ExpCurrent: expC[i],
			Diff:       diff[i],
			Off:        off[i],
			Def:        def[i],
			L5Wins:     l5w[i],
			L5Losses:   l5l[i],
			L5Net:      l5n[i],
			L5Off:      l5o[i],
			L5Def:      l5d[i],
		}
	}
}
