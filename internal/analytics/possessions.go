package analytics

import "github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"

const (
	orbPossWeight = 1.07
	ftPossWeight  = 0.4
)

// Possessions estimates the possessions used by own, with opp supplying the
// defensive rebounds that cap own's offensive rebound rate:
//
//	FGA - ORB/(ORB+OppDRB) * (FGA-FG) * 1.07 + TOV + 0.4*FTA
//
// Call it with the arguments swapped for the opponent's possessions.
func Possessions(own, opp games.TeamTotals) float64 {
	orbPct := SafeDiv(own.ORB, own.ORB+opp.DRB)
	missed := own.FGA - own.FG
	return finite(own.FGA - orbPct*missed*orbPossWeight + own.TOV + ftPossWeight*own.FTA)
}
