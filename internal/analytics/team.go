package analytics

import (
	"math"

	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
)

// Ratings are points scored and allowed per 100 possessions.
type Ratings struct {
	Off float64 `json:"offRtg"`
	Def float64 `json:"defRtg"`
	Net float64 `json:"netRtg"`
}

// ComputeRatings derives offensive, defensive and net rating.
func ComputeRatings(pts, poss, oppPts, oppPoss float64) Ratings {
	off := 100 * SafeDiv(pts, poss)
	def := 100 * SafeDiv(oppPts, oppPoss)
	return Ratings{Off: off, Def: def, Net: off - def}
}

// FourFactors are the shooting, turnover, rebounding and free throw rates for
// both ends of the floor, as fractions.
type FourFactors struct {
	OffEFG    float64 `json:"offEfg"`
	OffTOVPct float64 `json:"offTovPct"`
	OffORBPct float64 `json:"offOrbPct"`
	OffFTRate float64 `json:"offFtRate"`
	DefEFG    float64 `json:"defEfg"`
	DefTOVPct float64 `json:"defTovPct"`
	DefDRBPct float64 `json:"defDrbPct"`
	DefFTRate float64 `json:"defFtRate"`
}

// ComputeFourFactors derives the eight factors from summed team and opponent totals.
func ComputeFourFactors(team, opp games.TeamTotals) FourFactors {
	return FourFactors{
		OffEFG:    EffectiveFG(team.FG, team.ThreePM, team.FGA),
		OffTOVPct: TurnoverRate(team.TOV, team.FGA, team.FTA),
		OffORBPct: SafeDiv(team.ORB, team.ORB+opp.DRB),
		OffFTRate: SafeDiv(team.FTM, team.FGA),
		DefEFG:    EffectiveFG(opp.FG, opp.ThreePM, opp.FGA),
		DefTOVPct: TurnoverRate(opp.TOV, opp.FGA, opp.FTA),
		DefDRBPct: SafeDiv(team.DRB, opp.ORB+team.DRB),
		DefFTRate: SafeDiv(opp.FTM, opp.FGA),
	}
}

// EffectiveFG is (FG + 0.5*3PM) / FGA, 0 without attempts.
func EffectiveFG(fg, threePM, fga float64) float64 {
	return SafeDiv(fg+0.5*threePM, fga)
}

// TurnoverRate is TOV / (FGA + 0.44*FTA + TOV).
func TurnoverRate(tov, fga, fta float64) float64 {
	return SafeDiv(tov, fga+0.44*fta+tov)
}

// PythagoreanExponent is the empirical exponent for this competition level.
const PythagoreanExponent = 13.91

// Pythagorean is the expected winning record implied by points scored and allowed.
type Pythagorean struct {
	Ratio        float64 `json:"ratio"`
	ExpTotal     float64 `json:"expectedWinsTotal"`
	ExpCurrent   float64 `json:"expectedWinsToDate"`
	WinsOverPace float64 `json:"winDifferential"`
}

// ComputePythagorean projects wins over the season and over games played.
func ComputePythagorean(pts, oppPts float64, wins, gp, seasonGames int) Pythagorean {
	ratio := pythagoreanRatio(pts, oppPts)
	current := ratio * float64(gp)
	return Pythagorean{
		Ratio:        ratio,
		ExpTotal:     ratio * float64(seasonGames),
		ExpCurrent:   current,
		WinsOverPace: float64(wins) - current,
	}
}

func pythagoreanRatio(pts, oppPts float64) float64 {
	if pts == oppPts {
		if pts == 0 {
			return 0
		}
		return 0.5
	}
	// Large point totals overflow the power; compare in log space instead.
	if pts <= 0 {
		return 0
	}
	if oppPts <= 0 {
		return 1
	}
	d := PythagoreanExponent * (math.Log(oppPts) - math.Log(pts))
	return finite(1 / (1 + math.Exp(d)))
}
