package views

import (
	"github.com/preston-bernstein/hoops-analytics-service/internal/analytics"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/ranking"
)

// AveragesRow is one player's per-game line in the averages leaderboard.
type AveragesRow struct {
	PlayerID   string  `json:"playerId"`
	Name       string  `json:"name"`
	Team       string  `json:"team"`
	Position   string  `json:"position"`
	HeightCM   float64 `json:"heightCm"`
	GP         int     `json:"gp"`
	Starts     int     `json:"starts"`
	MPG        float64 `json:"mpg"`
	PTS        float64 `json:"pts"`
	FGM        float64 `json:"fgm"`
	FGA        float64 `json:"fga"`
	FGPct      float64 `json:"fgPct"`
	TwoPM      float64 `json:"twoPm"`
	TwoPA      float64 `json:"twoPa"`
	TwoPct     float64 `json:"twoPct"`
	ThreePM    float64 `json:"threePm"`
	ThreePA    float64 `json:"threePa"`
	ThreePct   float64 `json:"threePct"`
	FTM        float64 `json:"ftm"`
	FTA        float64 `json:"fta"`
	FTPct      float64 `json:"ftPct"`
	ORB        float64 `json:"orb"`
	DRB        float64 `json:"drb"`
	TRB        float64 `json:"trb"`
	AST        float64 `json:"ast"`
	TOV        float64 `json:"tov"`
	STL        float64 `json:"stl"`
	BLK        float64 `json:"blk"`
	PF         float64 `json:"pf"`
	FoulsDrawn float64 `json:"foulsDrawn"`
}

// AveragesResult is one page of the averages leaderboard.
type AveragesResult struct {
	PlayerTable
	Rows []AveragesRow `json:"rows"`
}

func avgKey(label, column string, value func(AveragesRow) float64) ranking.Key[AveragesRow] {
	return ranking.Key[AveragesRow]{Label: label, Column: column, Value: value}
}

// AveragesSort lists the averages leaderboard sort options. Default PTS.
var AveragesSort = ranking.NewTable("PTS",
	avgKey("MIN", "mpg", func(r AveragesRow) float64 { return r.MPG }),
	avgKey("FGM", "fgm", func(r AveragesRow) float64 { return r.FGM }),
	avgKey("FGA", "fga", func(r AveragesRow) float64 { return r.FGA }),
	avgKey("FG%", "fgPct", func(r AveragesRow) float64 { return r.FGPct }),
	avgKey("2PM", "twoPm", func(r AveragesRow) float64 { return r.TwoPM }),
	avgKey("2PA", "twoPa", func(r AveragesRow) float64 { return r.TwoPA }),
	avgKey("2P%", "twoPct", func(r AveragesRow) float64 { return r.TwoPct }),
	avgKey("3PM", "threePm", func(r AveragesRow) float64 { return r.ThreePM }),
	avgKey("3PA", "threePa", func(r AveragesRow) float64 { return r.ThreePA }),
	avgKey("3P%", "threePct", func(r AveragesRow) float64 { return r.ThreePct }),
	avgKey("FTM", "ftm", func(r AveragesRow) float64 { return r.FTM }),
	avgKey("FTA", "fta", func(r AveragesRow) float64 { return r.FTA }),
	avgKey("FT%", "ftPct", func(r AveragesRow) float64 { return r.FTPct }),
	avgKey("RBO", "orb", func(r AveragesRow) float64 { return r.ORB }),
	avgKey("RBD", "drb", func(r AveragesRow) float64 { return r.DRB }),
	avgKey("RBT", "trb", func(r AveragesRow) float64 { return r.TRB }),
	avgKey("AST", "ast", func(r AveragesRow) float64 { return r.AST }),
	avgKey("TOV", "tov", func(r AveragesRow) float64 { return r.TOV }),
	avgKey("STL", "stl", func(r AveragesRow) float64 { return r.STL }),
	avgKey("BLK", "blk", func(r AveragesRow) float64 { return r.BLK }),
	avgKey("PF", "pf", func(r AveragesRow) float64 { return r.PF }),
	avgKey("PFR", "foulsDrawn", func(r AveragesRow) float64 { return r.FoulsDrawn }),
	avgKey("PTS", "pts", func(r AveragesRow) float64 { return r.PTS }),
	avgKey("ALT", "heightCm", func(r AveragesRow) float64 { return r.HeightCM }),
)

// Averages builds the per-game leaderboard.
func Averages(lines []games.StatLine, meta Metadata, q Query) AveragesResult {
	scope := scopePlayers(lines, q)
	totals := analytics.SumPlayers(scope.lines)

	rows := make([]AveragesRow, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, averagesRow(t.Averages(), meta))
	}

	page, table := finishPlayerTable(rows, q, scope, AveragesSort,
		func(r AveragesRow) playerFacet {
			return playerFacet{name: r.Name, position: r.Position, height: r.HeightCM}
		},
		func(r AveragesRow, threshold int) bool {
			return r.GP >= threshold && r.MPG >= QualifiedMinutes
		},
	)
	if q.SingleTeam() {
		table.TeamContext = TeamContextFor(lines, meta, q.Team)
	}
	return AveragesResult{PlayerTable: table, Rows: page}
}

func averagesRow(a analytics.PlayerAverages, meta Metadata) AveragesRow {
	b := a.PerGame
	return AveragesRow{
		PlayerID:   a.PlayerID,
		Name:       a.Name,
		Team:       a.Team,
		Position:   meta.Position(a.PlayerID),
		HeightCM:   meta.Height(a.PlayerID),
		GP:         a.GP,
		Starts:     a.Starts,
		MPG:        b.Minutes,
		PTS:        b.Points,
		FGM:        b.FGM,
		FGA:        b.FGA,
		FGPct:      a.FGPct,
		TwoPM:      b.TwoPM,
		TwoPA:      b.TwoPA,
		TwoPct:     a.TwoPct,
		ThreePM:    b.ThreePM,
		ThreePA:    b.ThreePA,
		ThreePct:   a.ThreePct,
		FTM:        b.FTM,
		FTA:        b.FTA,
		FTPct:      a.FTPct,
		ORB:        b.ORB,
		DRB:        b.DRB,
		TRB:        b.TRB,
		AST:        b.AST,
		TOV:        b.TOV,
		STL:        b.STL,
		BLK:        b.BLK,
		PF:         b.PF,
		FoulsDrawn: b.FoulsDrawn,
	}
}
