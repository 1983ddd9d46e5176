package analytics

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
)

// Two games, no team context rows: every team-based denominator is zero.
func twoGamePlayer() []games.StatLine {
	return []games.StatLine{
		{PlayerID: "7", PlayerName: "Sofia", Team: "Tec MTY", GameID: "A", Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Box: games.BoxScore{Minutes: 30, FGM: 10, FGA: 20, ThreePM: 2, ThreePA: 5, TwoPM: 8, TwoPA: 15, Points: 22}},
		{PlayerID: "7", PlayerName: "Sofia", Team: "Tec MTY", GameID: "B", Date: time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			Box: games.BoxScore{Minutes: 25, FGM: 8, FGA: 15, ThreePM: 1, ThreePA: 3, TwoPM: 7, TwoPA: 12, Points: 17}},
	}
}

func TestAdvancedWithoutTeamContext(t *testing.T) {
	totals := SumPlayers(twoGamePlayer())
	require.Len(t, totals, 1)

	adv := ComputeAdvanced(totals[0])

	assert.InDelta(t, 55.714, adv.Rates.EFGPct, 1e-3)
	assert.Equal(t, 0.0, adv.Rates.USGPct)
	assert.Equal(t, 0.0, adv.Offense.Pace)
	assert.Equal(t, 0.0, adv.Defense.DRtg)

	// No assists and no team context: qAST is 0, so FG credit is the raw makes.
	assert.InDelta(t, 18.0, adv.Offense.ScPoss, 1e-9)
	assert.InDelta(t, 39.0, adv.Offense.PProd, 1e-9)
	assert.InDelta(t, 35.0, adv.Offense.TotPoss, 1e-9)
	assert.InDelta(t, 100*39.0/35.0, adv.Offense.ORtg, 1e-9)
	assert.InDelta(t, 100*18.0/35.0, adv.Offense.FloorPct, 1e-9)

	assertFinite(t, adv)
}

func TestAdvancedOnEmptyTotalsIsFinite(t *testing.T) {
	assertFinite(t, ComputeAdvanced(PlayerTotals{}))
}

func TestComputeRates(t *testing.T) {
	p := PlayerTotals{
		GP:        2,
		Box:       games.BoxScore{Minutes: 20, Points: 20, FGM: 7, FGA: 10, TwoPM: 5, ThreePM: 2, FTM: 4, FTA: 5, ORB: 2, DRB: 6, TRB: 8, TOV: 2, PF: 3, BLK: 1, STL: 2},
		TeamStats: games.TeamTotals{MIN: 200, FGA: 60, FTA: 20, TOV: 10, ORB: 10, DRB: 30, TRB: 40},
		OppStats:  games.TeamTotals{DRB: 30, ORB: 10, TRB: 40, FGA: 55, ThreePA: 15},
	}

	r := ComputeRates(p)

	// Shares are weighted by team MIN / 5 over the player's minutes.
	assert.InDelta(t, 100*2*(200.0/5)/(20*(10+30)), r.ORBPct, 1e-9)
	assert.InDelta(t, 100*6*(200.0/5)/(20*(30+10)), r.DRBPct, 1e-9)
	assert.InDelta(t, 100*8*(200.0/5)/(20*(40+40)), r.TRBPct, 1e-9)
	assert.InDelta(t, 100*1*(200.0/5)/(20*(55-15)), r.BLKPct, 1e-9)
	oppPoss := 55 - 10.0/(10+30)*55*1.07
	assert.InDelta(t, 100*2*(200.0/5)/(20*oppPoss), r.STLPct, 1e-9)
	assert.InDelta(t, 10.0, r.ORBPct, 1e-9)
	assert.InDelta(t, 5.0, r.BLKPct, 1e-9)
	// No team makes recorded, so there is nothing to assist.
	assert.Equal(t, 0.0, r.ASTPct)
	assert.InDelta(t, 100*568.0/1576.0, r.USGPct, 1e-9)
	assert.InDelta(t, 100*20.0/(2*12.2), r.TSPct, 1e-9)
	assert.InDelta(t, 80.0, r.EFGPct, 1e-9)
	assert.InDelta(t, 0.4, r.FTr, 1e-9)
	assert.InDelta(t, 0.2, r.FG3r, 1e-9)
	assert.InDelta(t, 6.0, r.PFPer40, 1e-9)
	assert.InDelta(t, 1.6, r.PointsPerShot, 1e-9)
}

func TestAssistPctWithoutTeamContext(t *testing.T) {
	lines := []games.StatLine{
		{PlayerID: "9", PlayerName: "Renata", Team: "Tec MTY", GameID: "A", Box: games.BoxScore{Minutes: 30, FGM: 6, AST: 5}},
		{PlayerID: "9", PlayerName: "Renata", Team: "Tec MTY", GameID: "B", Box: games.BoxScore{Minutes: 30, FGM: 4, AST: 3}},
	}
	totals := SumPlayers(lines)
	require.Len(t, totals, 1)

	r := ComputeRates(totals[0])

	assert.Equal(t, 0.0, r.ASTPct)
}

func TestAssistPct(t *testing.T) {
	tests := []struct {
		name                         string
		ast, fgm, minutes, tm5, tmFG float64
		want                         float64
	}{
		{"on-court teammate makes", 5, 9, 32, 40, 28, 100 * 5 / (32.0/40*28 - 9)},
		{"no team minutes", 5, 9, 32, 0, 28, 0},
		{"own makes cover team makes", 5, 9, 10, 40, 28, 0},
		{"no minutes", 2, 0, 0, 40, 28, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, assistPct(tt.ast, tt.fgm, tt.minutes, tt.tm5, tt.tmFG), 1e-9)
		})
	}
}

func TestComputeTouches(t *testing.T) {
	p := PlayerTotals{
		GP:        3,
		Box:       games.BoxScore{FGA: 10, TOV: 2, FTA: 5, AST: 3.4},
		TeamStats: games.TeamTotals{FTA: 20},
		OppStats:  games.TeamTotals{PF: 10},
	}

	tc := ComputeTouches(p)

	assert.InDelta(t, 34.5, tc.Total, 1e-9)
	assert.InDelta(t, 11.5, tc.PerGame, 1e-9)
	assert.InDelta(t, 100*20/34.5, tc.PassPct, 1e-9)
	assert.InDelta(t, 100*10/34.5, tc.ShootPct, 1e-9)
	assert.InDelta(t, 100*2.5/34.5, tc.FouledPct, 1e-9)
	assert.InDelta(t, 100*2/34.5, tc.TurnoverPct, 1e-9)
	assert.InDelta(t, 100, tc.PassPct+tc.ShootPct+tc.FouledPct+tc.TurnoverPct, 1e-9)
}

func TestTouchesDefaultFoulRatio(t *testing.T) {
	tc := ComputeTouches(PlayerTotals{GP: 1, Box: games.BoxScore{FTA: 4}})
	assert.InDelta(t, 4.0, tc.Total, 1e-9)
	assert.InDelta(t, 100.0, tc.FouledPct, 1e-9)
}

func TestOffensiveRatingWithTeamContext(t *testing.T) {
	p := PlayerTotals{
		GP:        1,
		Box:       games.BoxScore{Minutes: 32, Points: 24, FGM: 9, FGA: 18, ThreePM: 2, FTM: 4, FTA: 5, ORB: 2, AST: 5, TOV: 3},
		TeamStats: games.TeamTotals{MIN: 200, FG: 28, FGA: 64, ThreePM: 7, FTM: 14, FTA: 19, ORB: 11, DRB: 27, AST: 16, TOV: 13},
		OppStats:  games.TeamTotals{FG: 25, FGA: 61, ORB: 9, DRB: 26, TOV: 14, FTA: 15},
	}

	o := OffensiveRating(p)

	assert.Greater(t, o.QAST, 0.0)
	assert.Greater(t, o.ORBAdj, 0.0)
	assert.Less(t, o.ORBAdj, 1.0)
	assert.InDelta(t, (o.FGPart+o.ASTPart+o.FTPart)*o.ORBAdj+o.ORBPart, o.ScPoss, 1e-9)
	assert.InDelta(t, 100*o.PProd/o.TotPoss, o.ORtg, 1e-9)
	assert.InDelta(t, 100*o.ScPoss/o.TotPoss, o.FloorPct, 1e-9)
	assert.InDelta(t, 40*(o.TeamPoss+o.OppPoss)/(2*40), o.Pace, 1e-9)

	d := DefensiveRating(p)
	// Opponent scored 50 points on 25 scoring possessions.
	assert.InDelta(t, d.TeamDRtg+0.2*(100*2*(1-d.StopPct)-d.TeamDRtg), d.DRtg, 1e-9)
	assert.Greater(t, d.Stops, 0.0)
	assert.GreaterOrEqual(t, d.FMwt, 0.0)
	assert.LessOrEqual(t, d.FMwt, 1.0)
}

// One game with full team and opponent context. Expected values are worked
// by hand through the Oliver formulas.
func ratedPlayer() PlayerTotals {
	return PlayerTotals{
		GP: 1,
		Box: games.BoxScore{Minutes: 32, Points: 24, FGM: 9, FGA: 18, ThreePM: 2, FTM: 4, FTA: 5,
			ORB: 2, DRB: 6, TRB: 8, AST: 5, TOV: 3, STL: 2, BLK: 1, PF: 3},
		TeamStats: games.TeamTotals{MIN: 200, FG: 28, FGA: 64, ThreePM: 7, FTM: 14, FTA: 19,
			ORB: 11, DRB: 27, TRB: 38, AST: 16, TOV: 13, STL: 7, BLK: 4, PF: 18},
		OppStats: games.TeamTotals{MIN: 200, FG: 25, FGA: 61, ThreePM: 6, FTM: 11, FTA: 15,
			ORB: 9, DRB: 26, TRB: 35, TOV: 14, PF: 17},
	}
}

func TestOffensiveRatingMatchesHandComputedValues(t *testing.T) {
	o := OffensiveRating(ratedPlayer())

	assert.InDelta(t, 73.1481081081081, o.TeamPoss, 1e-6)
	assert.InDelta(t, 71.37, o.OppPoss, 1e-6)
	assert.InDelta(t, 0.47470362473347544, o.QAST, 1e-6)
	assert.InDelta(t, 7.813240938166311, o.FGPart, 1e-6)
	assert.InDelta(t, 1.1684782608695652, o.ASTPart, 1e-6)
	assert.InDelta(t, 1.92, o.FTPart, 1e-6)
	assert.InDelta(t, 0.5190677731819902, o.ORBPart, 1e-6)
	assert.InDelta(t, 0.9186035679809154, o.ORBAdj, 1e-6)
	assert.InDelta(t, 10.533425926542392, o.ScPoss, 1e-6)
	assert.InDelta(t, 23.192657379693056, o.PProd, 1e-6)
	assert.InDelta(t, 19.750452953569418, o.TotPoss, 1e-6)
	assert.InDelta(t, 117.42848345916816, o.ORtg, 1e-6)
	assert.InDelta(t, 53.332579011251134, o.FloorPct, 1e-6)
}

func TestDefensiveRatingMatchesHandComputedValues(t *testing.T) {
	d := DefensiveRating(ratedPlayer())

	assert.InDelta(t, 93.87697912288075, d.TeamDRtg, 1e-6)
	assert.InDelta(t, 0.6756756756756757, d.FMwt, 1e-6)
	assert.InDelta(t, 8.166043543543545, d.Stops, 1e-6)
	assert.InDelta(t, 0.6977319505203973, d.StopPct, 1e-6)
	assert.InDelta(t, 88.34970321662125, d.DRtg, 1e-6)
}

func TestAssistPctWithTeamContext(t *testing.T) {
	r := ComputeRates(ratedPlayer())
	assert.InDelta(t, 37.31343283582089, r.ASTPct, 1e-6)
}

func assertFinite(t *testing.T, adv Advanced) {
	t.Helper()
	for _, part := range []any{adv.Offense, adv.Defense, adv.Rates, adv.Touches} {
		v := reflect.ValueOf(part)
		for i := 0; i < v.NumField(); i++ {
			f := v.Field(i).Float()
			assert.False(t, math.IsNaN(f) || math.IsInf(f, 0), "%s.%s is not finite", v.Type().Name(), v.Type().Field(i).Name)
		}
	}
}
