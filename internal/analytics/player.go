package analytics

import "github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"

const (
	assistShotWeight = 1.14
	touchesPerAssist = 0.17
	minutesPerGame   = 40.0
	playersOnCourt   = 5.0
	usageFTWeight    = 0.44
	stopAdjustWeight = 0.2
)

// Offense is the individual offensive rating decomposition.
type Offense struct {
	QAST      float64 `json:"qAst"`
	FGPart    float64 `json:"fgPart"`
	ASTPart   float64 `json:"astPart"`
	FTPart    float64 `json:"ftPart"`
	ORBPart   float64 `json:"orbPart"`
	ORBWeight float64 `json:"orbWeight"`
	PlayPct   float64 `json:"playPct"`
	ORBAdj    float64 `json:"orbAdj"`
	ScPoss    float64 `json:"scPoss"`
	PProd     float64 `json:"pProd"`
	TotPoss   float64 `json:"totPoss"`
	ORtg      float64 `json:"oRtg"`
	FloorPct  float64 `json:"floorPct"`
	Pace      float64 `json:"pace"`
	TeamPoss  float64 `json:"teamPoss"`
	OppPoss   float64 `json:"oppPoss"`
}

// OffensiveRating credits the player's share of team scoring possessions and
// points produced, then rates points produced per 100 possessions used.
func OffensiveRating(p PlayerTotals) Offense {
	b, tm, opp := p.Box, p.TeamStats, p.OppStats
	tmPoss := Possessions(tm, opp)
	oppPoss := Possessions(opp, tm)

	tmMin5 := tm.MIN / playersOnCourt
	pace := minutesPerGame * SafeDiv(tmPoss+oppPoss, 2*tmMin5)
	timeRatio := SafeDiv(b.Minutes, tmMin5)

	partA := timeRatio * assistShotWeight * SafeDiv(tm.AST-b.AST, tm.FG)
	astPerMin := SafeDiv(tm.AST, tm.MIN)
	fgPerMin := SafeDiv(tm.FG, tm.MIN)
	partB := SafeDiv(astPerMin*b.Minutes*playersOnCourt-b.AST, fgPerMin*b.Minutes*playersOnCourt-b.FGM) * (1 - timeRatio)
	qAST := partA + partB

	ptsFromFG := b.Points - b.FTM
	ptsPerAttempt := SafeDiv(ptsFromFG, 2*b.FGA)
	fgPart := b.FGM * (1 - 0.5*ptsPerAttempt*qAST)

	tmPts := boxPoints(tm)
	tmPtsOthers := (tmPts - tm.FTM) - ptsFromFG
	tmFGAOthers := tm.FGA - b.FGA
	othersPerShot := SafeDiv(tmPtsOthers, 2*tmFGAOthers)
	astPart := 0.5 * othersPerShot * b.AST

	ftPct := SafeDiv(b.FTM, b.FTA)
	ftPart := (1 - (1-ftPct)*(1-ftPct)) * ftPossWeight * b.FTA

	teamORBPct := SafeDiv(tm.ORB, tm.ORB+opp.DRB)
	tmFTPct := SafeDiv(tm.FTM, tm.FTA)
	tmFTPoss := (1 - (1-tmFTPct)*(1-tmFTPct)) * tm.FTA * ftPossWeight
	teamScPoss := tm.FG + tmFTPoss
	playPct := SafeDiv(teamScPoss, tm.FGA+tm.FTA*ftPossWeight+tm.TOV)

	t1 := (1 - teamORBPct) * playPct
	t2 := teamORBPct * (1 - playPct)
	orbWeight := SafeDiv(t1, t1+t2)
	orbPart := b.ORB * orbWeight * playPct
	orbAdj := 1 - SafeDiv(tm.ORB, teamScPoss)*orbWeight*playPct

	scPoss := (fgPart+astPart+ftPart)*orbAdj + orbPart

	pprodFG := 2 * (b.FGM + 0.5*b.ThreePM) * (1 - 0.5*ptsPerAttempt*qAST)
	tmFGOthers := tm.FG - b.FGM
	factor1 := 2 * SafeDiv(tmFGOthers+0.5*(tm.ThreePM-b.ThreePM), tmFGOthers)
	pprodAST := factor1 * 0.5 * othersPerShot * b.AST
	pprodORB := orbPart * SafeDiv(tmPts, teamScPoss)
	pprod := (pprodFG+pprodAST+b.FTM)*orbAdj + pprodORB

	fgxPoss := (b.FGA - b.FGM) * (1 - orbPossWeight*teamORBPct)
	ftxPoss := (1 - ftPct) * (1 - ftPct) * ftPossWeight * b.FTA
	totPoss := scPoss + fgxPoss + ftxPoss + b.TOV

	return Offense{
		QAST:      finite(qAST),
		FGPart:    finite(fgPart),
		ASTPart:   finite(astPart),
		FTPart:    finite(ftPart),
		ORBPart:   finite(orbPart),
		ORBWeight: orbWeight,
		PlayPct:   playPct,
		ORBAdj:    finite(orbAdj),
		ScPoss:    finite(scPoss),
		PProd:     finite(pprod),
		TotPoss:   finite(totPoss),
		ORtg:      100 * SafeDiv(pprod, totPoss),
		FloorPct:  100 * SafeDiv(scPoss, totPoss),
		Pace:      pace,
		TeamPoss:  tmPoss,
		OppPoss:   oppPoss,
	}
}

// Defense is the individual defensive rating estimate.
type Defense struct {
	TeamDRtg float64 `json:"teamDRtg"`
	FMwt     float64 `json:"fmWt"`
	Stops    float64 `json:"stops"`
	StopPct  float64 `json:"stopPct"`
	DRtg     float64 `json:"dRtg"`
}

// DefensiveRating moves the team's defensive rating 20% toward the rating
// implied by the player's estimated stop rate.
func DefensiveRating(p PlayerTotals) Defense {
	b, tm, opp := p.Box, p.TeamStats, p.OppStats
	tmPoss := Possessions(tm, opp)
	oppPoss := Possessions(opp, tm)

	oppPts := boxPoints(opp)
	teamDRtg := 100 * SafeDiv(oppPts, oppPoss)

	dorPct := SafeDiv(opp.ORB, opp.ORB+tm.DRB)
	dfgPct := SafeDiv(opp.FG, opp.FGA)
	fmwt := SafeDiv(dfgPct*(1-dorPct), dfgPct*(1-dorPct)+(1-dfgPct)*dorPct)
	missWeight := fmwt * (1 - orbPossWeight*dorPct)

	stops1 := b.STL + b.BLK*missWeight + b.DRB*(1-fmwt)

	oppFTPct := SafeDiv(opp.FTM, opp.FTA)
	perMinute := SafeDiv(opp.FGA-opp.FG-tm.BLK, tm.MIN)*missWeight + SafeDiv(opp.TOV-tm.STL, tm.MIN)
	foulStops := SafeDiv(b.PF, tm.PF) * ftPossWeight * opp.FTA * (1-oppFTPct) * (1-oppFTPct)
	stops2 := perMinute*b.Minutes + foulStops

	stops := stops1 + stops2
	stopPct := SafeDiv(stops*opp.MIN, tmPoss*b.Minutes)

	oppScPoss := opp.FG + (1-(1-oppFTPct)*(1-oppFTPct))*opp.FTA*ftPossWeight
	ptsPerScPoss := SafeDiv(oppPts, oppScPoss)
	drtg := teamDRtg + stopAdjustWeight*(100*ptsPerScPoss*(1-stopPct)-teamDRtg)

	return Defense{
		TeamDRtg: teamDRtg,
		FMwt:     fmwt,
		Stops:    finite(stops),
		StopPct:  finite(stopPct),
		DRtg:     finite(drtg),
	}
}

// Rates are the role and efficiency percentages. Values ending in Pct are
// scaled to 0-100; FTr and FG3r are ratios. Rebound, block and steal shares
// are weighted by the player's fraction of team minutes, so ORB% is
// 100 * ORB * (team MIN / 5) / (MIN * (team ORB + opp DRB)).
type Rates struct {
	ORBPct        float64 `json:"orbPct"`
	DRBPct        float64 `json:"drbPct"`
	TRBPct        float64 `json:"trbPct"`
	ASTPct        float64 `json:"astPct"`
	BLKPct        float64 `json:"blkPct"`
	STLPct        float64 `json:"stlPct"`
	USGPct        float64 `json:"usgPct"`
	TSPct         float64 `json:"tsPct"`
	EFGPct        float64 `json:"efgPct"`
	TOVPct        float64 `json:"tovPct"`
	FTr           float64 `json:"ftr"`
	FG3r          float64 `json:"fg3r"`
	PFPer40       float64 `json:"pfPer40"`
	PointsPerShot float64 `json:"pointsPerShot"`
}

// ComputeRates derives the rate stats from summed totals.
func ComputeRates(p PlayerTotals) Rates {
	b, tm, opp := p.Box, p.TeamStats, p.OppStats
	tmMin5 := tm.MIN / playersOnCourt
	oppPoss := Possessions(opp, tm)

	return Rates{
		ORBPct:        100 * SafeDiv(b.ORB*tmMin5, b.Minutes*(tm.ORB+opp.DRB)),
		DRBPct:        100 * SafeDiv(b.DRB*tmMin5, b.Minutes*(tm.DRB+opp.ORB)),
		TRBPct:        100 * SafeDiv(b.TRB*tmMin5, b.Minutes*(tm.TRB+opp.TRB)),
		ASTPct:        assistPct(b.AST, b.FGM, b.Minutes, tmMin5, tm.FG),
		BLKPct:        100 * SafeDiv(b.BLK*tmMin5, b.Minutes*(opp.FGA-opp.ThreePA)),
		STLPct:        100 * SafeDiv(b.STL*tmMin5, b.Minutes*oppPoss),
		USGPct:        Usage(b.FGA, b.FTA, b.TOV, b.Minutes, tm),
		TSPct:         100 * TrueShooting(b.Points, b.FGA, b.FTA),
		EFGPct:        100 * EffectiveFG(b.FGM, b.ThreePM, b.FGA),
		TOVPct:        100 * TurnoverRate(b.TOV, b.FGA, b.FTA),
		FTr:           SafeDiv(b.FTM, b.FGA),
		FG3r:          SafeDiv(b.ThreePM, b.FGA),
		PFPer40:       minutesPerGame * SafeDiv(b.PF, b.Minutes),
		PointsPerShot: PointsPerShot(b.TwoPM, b.ThreePM, b.FGA),
	}
}

// assistPct is the share of teammate makes the player assisted while on
// court. It is 0 without team minutes or when the player's own makes cover
// every on-court team make.
func assistPct(ast, fgm, minutes, tmMin5, tmFG float64) float64 {
	if tmMin5 <= 0 {
		return 0
	}
	teammateFG := minutes/tmMin5*tmFG - fgm
	if teammateFG <= 0 {
		return 0
	}
	return 100 * SafeDiv(ast, teammateFG)
}

// TrueShooting is PTS / (2*(FGA + 0.44*FTA)), as a fraction.
func TrueShooting(pts, fga, fta float64) float64 {
	return SafeDiv(pts, 2*(fga+usageFTWeight*fta))
}

// PointsPerShot is field goal points per field goal attempt.
func PointsPerShot(twoPM, threePM, fga float64) float64 {
	return SafeDiv(2*twoPM+3*threePM, fga)
}

// Usage is the share of team plays used while on court, scaled to 0-100.
// It is 0 when either the player's minutes or the team context are missing.
func Usage(fga, fta, tov, minutes float64, tm games.TeamTotals) float64 {
	num := (fga + usageFTWeight*fta + tov) * (tm.MIN / playersOnCourt)
	den := minutes * (tm.FGA + usageFTWeight*tm.FTA + tm.TOV)
	return 100 * SafeDiv(num, den)
}

// Touches estimates how often the player handled the ball and how each touch ended.
type Touches struct {
	Total       float64 `json:"total"`
	PerGame     float64 `json:"perGame"`
	PassPct     float64 `json:"passPct"`
	ShootPct    float64 `json:"shootPct"`
	FouledPct   float64 `json:"fouledPct"`
	TurnoverPct float64 `json:"turnoverPct"`
}

// ComputeTouches estimates touches as FGA + TOV + FTA/foulRatio + AST/0.17,
// where foulRatio is team FTA per opponent foul (1 when undefined).
func ComputeTouches(p PlayerTotals) Touches {
	b := p.Box
	foulRatio := SafeDiv(p.TeamStats.FTA, p.OppStats.PF)
	if foulRatio == 0 {
		foulRatio = 1
	}
	fouled := b.FTA / foulRatio
	passes := b.AST / touchesPerAssist
	total := b.FGA + b.TOV + fouled + passes

	return Touches{
		Total:       finite(total),
		PerGame:     SafeDiv(total, float64(p.GP)),
		PassPct:     100 * SafeDiv(passes, total),
		ShootPct:    100 * SafeDiv(b.FGA, total),
		FouledPct:   100 * SafeDiv(fouled, total),
		TurnoverPct: 100 * SafeDiv(b.TOV, total),
	}
}

// Advanced bundles every derived player metric for one window.
type Advanced struct {
	Offense Offense `json:"offense"`
	Defense Defense `json:"defense"`
	Rates   Rates   `json:"rates"`
	Touches Touches `json:"touches"`
}

// ComputeAdvanced runs the full player metric pipeline on summed totals.
func ComputeAdvanced(p PlayerTotals) Advanced {
	return Advanced{
		Offense: OffensiveRating(p),
		Defense: DefensiveRating(p),
		Rates:   ComputeRates(p),
		Touches: ComputeTouches(p),
	}
}
