package games

import "time"

// TeamTotals holds one side's box-score aggregates for a game (or a sum of games).
type TeamTotals struct {
	FG      float64 `json:"fg"`
	FGA     float64 `json:"fga"`
	TwoPM   float64 `json:"twoPm"`
	ThreePM float64 `json:"threePm"`
	ThreePA float64 `json:"threePa"`
	FTM     float64 `json:"ftm"`
	FTA     float64 `json:"fta"`
	ORB     float64 `json:"orb"`
	DRB     float64 `json:"drb"`
	TRB     float64 `json:"trb"`
	AST     float64 `json:"ast"`
	STL     float64 `json:"stl"`
	BLK     float64 `json:"blk"`
	TOV     float64 `json:"tov"`
	PF      float64 `json:"pf"`
	MIN     float64 `json:"min"`
}

// Add returns the field-wise sum of t and o.
func (t TeamTotals) Add(o TeamTotals) TeamTotals {
	return TeamTotals{
		FG:      t.FG + o.FG,
		FGA:     t.FGA + o.FGA,
		TwoPM:   t.TwoPM + o.TwoPM,
		ThreePM: t.ThreePM + o.ThreePM,
		ThreePA: t.ThreePA + o.ThreePA,
		FTM:     t.FTM + o.FTM,
		FTA:     t.FTA + o.FTA,
		ORB:     t.ORB + o.ORB,
		DRB:     t.DRB + o.DRB,
		TRB:     t.TRB + o.TRB,
		AST:     t.AST + o.AST,
		STL:     t.STL + o.STL,
		BLK:     t.BLK + o.BLK,
		TOV:     t.TOV + o.TOV,
		PF:      t.PF + o.PF,
		MIN:     t.MIN + o.MIN,
	}
}

// BoxScore is a single player's counting stats.
type BoxScore struct {
	Minutes    float64 `json:"minutes"`
	Points     float64 `json:"points"`
	FGM        float64 `json:"fgm"`
	FGA        float64 `json:"fga"`
	TwoPM      float64 `json:"twoPm"`
	TwoPA      float64 `json:"twoPa"`
	ThreePM    float64 `json:"threePm"`
	ThreePA    float64 `json:"threePa"`
	FTM        float64 `json:"ftm"`
	FTA        float64 `json:"fta"`
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

// Add returns the field-wise sum of b and o.
func (b BoxScore) Add(o BoxScore) BoxScore {
	return BoxScore{
		Minutes:    b.Minutes + o.Minutes,
		Points:     b.Points + o.Points,
		FGM:        b.FGM + o.FGM,
		FGA:        b.FGA + o.FGA,
		TwoPM:      b.TwoPM + o.TwoPM,
		TwoPA:      b.TwoPA + o.TwoPA,
		ThreePM:    b.ThreePM + o.ThreePM,
		ThreePA:    b.ThreePA + o.ThreePA,
		FTM:        b.FTM + o.FTM,
		FTA:        b.FTA + o.FTA,
		ORB:        b.ORB + o.ORB,
		DRB:        b.DRB + o.DRB,
		TRB:        b.TRB + o.TRB,
		AST:        b.AST + o.AST,
		TOV:        b.TOV + o.TOV,
		STL:        b.STL + o.STL,
		BLK:        b.BLK + o.BLK,
		PF:         b.PF + o.PF,
		FoulsDrawn: b.FoulsDrawn + o.FoulsDrawn,
	}
}

// Scale multiplies every field by f.
func (b BoxScore) Scale(f float64) BoxScore {
	return BoxScore{
		Minutes:    b.Minutes * f,
		Points:     b.Points * f,
		FGM:        b.FGM * f,
		FGA:        b.FGA * f,
		TwoPM:      b.TwoPM * f,
		TwoPA:      b.TwoPA * f,
		ThreePM:    b.ThreePM * f,
		ThreePA:    b.ThreePA * f,
		FTM:        b.FTM * f,
		FTA:        b.FTA * f,
		ORB:        b.ORB * f,
		DRB:        b.DRB * f,
		TRB:        b.TRB * f,
		AST:        b.AST * f,
		TOV:        b.TOV * f,
		STL:        b.STL * f,
		BLK:        b.BLK * f,
		PF:         b.PF * f,
		FoulsDrawn: b.FoulsDrawn * f,
	}
}

// StatLine is one player's box score in one game, together with the team and
// opponent aggregates for that same game.
type StatLine struct {
	PlayerID   string     `json:"playerId"`
	PlayerName string     `json:"playerName"`
	Team       string     `json:"team"`
	GameID     string     `json:"gameId"`
	Date       time.Time  `json:"date"`
	Starter    bool       `json:"starter"`
	Box        BoxScore   `json:"box"`
	TeamStats  TeamTotals `json:"teamStats"`
	OppStats   TeamTotals `json:"oppStats"`
	Opponent   string     `json:"opponent"`
	TeamScore  float64    `json:"teamScore"`
	OppScore   float64    `json:"oppScore"`
}

// Active reports whether the player logged minutes in the game.
func (l StatLine) Active() bool {
	return l.Box.Minutes > 0
}

// TeamGameLine is one team's box score in one game.
type TeamGameLine struct {
	GameID    string     `json:"gameId"`
	Team      string     `json:"team"`
	Date      time.Time  `json:"date"`
	TeamStats TeamTotals `json:"teamStats"`
	OppStats  TeamTotals `json:"oppStats"`
	TeamScore float64    `json:"teamScore"`
	OppScore  float64    `json:"oppScore"`
}

// Result is the outcome of a game from the team's perspective.
type Result string

const (
	ResultWin  Result = "W"
	ResultLoss Result = "L"
	ResultDraw Result = "D"
)

// Outcome compares the two scores; equal scores (including missing ones) are a draw.
func Outcome(teamScore, oppScore float64) Result {
	switch {
	case teamScore > oppScore:
		return ResultWin
	case teamScore < oppScore:
		return ResultLoss
	default:
		return ResultDraw
	}
}
