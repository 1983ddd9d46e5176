package analytics

import (
	"sort"

	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
)

// PlayerTotals is one player's summed box score over a window, together with
// the summed team and opponent context of the same games.
type PlayerTotals struct {
	PlayerID  string
	Name      string
	Team      string
	GP        int
	Starts    int
	Box       games.BoxScore
	TeamStats games.TeamTotals
	OppStats  games.TeamTotals
}

// MPG is minutes per game played.
func (p PlayerTotals) MPG() float64 {
	return SafeDiv(p.Box.Minutes, float64(p.GP))
}

type playerKey struct {
	id, name, team string
}

// SumPlayers groups lines by (player id, name, team) and sums them. Rows come
// back ordered by that key.
func SumPlayers(lines []games.StatLine) []PlayerTotals {
	index := make(map[playerKey]int)
	var out []PlayerTotals
	for _, l := range lines {
		k := playerKey{l.PlayerID, l.PlayerName, l.Team}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, PlayerTotals{PlayerID: l.PlayerID, Name: l.PlayerName, Team: l.Team})
		}
		t := &out[i]
		t.GP++
		if l.Starter {
			t.Starts++
		}
		t.Box = t.Box.Add(l.Box)
		t.TeamStats = t.TeamStats.Add(l.TeamStats)
		t.OppStats = t.OppStats.Add(l.OppStats)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.PlayerID != b.PlayerID {
			return a.PlayerID < b.PlayerID
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.Team < b.Team
	})
	return out
}

// PlayerAverages is the per-game view of a PlayerTotals. Percentages are
// computed from the per-game means and scaled to 0-100.
type PlayerAverages struct {
	PlayerID string
	Name     string
	Team     string
	GP       int
	Starts   int
	PerGame  games.BoxScore
	FGPct    float64
	TwoPct   float64
	ThreePct float64
	FTPct    float64
}

// Averages divides every counting stat by games played.
func (p PlayerTotals) Averages() PlayerAverages {
	per := games.BoxScore{}
	if p.GP > 0 {
		per = p.Box.Scale(1 / float64(p.GP))
	}
	return PlayerAverages{
		PlayerID: p.PlayerID,
		Name:     p.Name,
		Team:     p.Team,
		GP:       p.GP,
		Starts:   p.Starts,
		PerGame:  per,
		FGPct:    100 * SafeDiv(per.FGM, per.FGA),
		TwoPct:   100 * SafeDiv(per.TwoPM, per.TwoPA),
		ThreePct: 100 * SafeDiv(per.ThreePM, per.ThreePA),
		FTPct:    100 * SafeDiv(per.FTM, per.FTA),
	}
}

// TeamWindow is one team's record and scoring over a window of games.
// Possessions are estimated per game and then summed.
type TeamWindow struct {
	Team      string
	GP        int
	Wins      int
	Losses    int
	Points    float64
	OppPoints float64
	Poss      float64
	OppPoss   float64
	TeamStats games.TeamTotals
	OppStats  games.TeamTotals
}

// PointsFunc returns the (team, opponent) points credited for one game line.
type PointsFunc func(games.TeamGameLine) (float64, float64)

// ScorePoints credits the recorded final scores.
func ScorePoints(l games.TeamGameLine) (float64, float64) {
	return l.TeamScore, l.OppScore
}

// BoxPoints rebuilds points from the shooting totals as 2*FG + 3PM + FTM.
func BoxPoints(l games.TeamGameLine) (float64, float64) {
	return boxPoints(l.TeamStats), boxPoints(l.OppStats)
}

func boxPoints(t games.TeamTotals) float64 {
	return 2*t.FG + t.ThreePM + t.FTM
}

// SumTeamGames aggregates lines per team using points to credit each game.
// Rows come back ordered by team name.
func SumTeamGames(lines []games.TeamGameLine, points PointsFunc) []TeamWindow {
	if points == nil {
		points = ScorePoints
	}
	index := make(map[string]int)
	var out []TeamWindow
	for _, l := range lines {
		i, ok := index[l.Team]
		if !ok {
			i = len(out)
			index[l.Team] = i
			out = append(out, TeamWindow{Team: l.Team})
		}
		pts, opp := points(l)
		w := &out[i]
		w.GP++
		switch games.Outcome(pts, opp) {
		case games.ResultWin:
			w.Wins++
		case games.ResultLoss:
			w.Losses++
		}
		w.Points += pts
		w.OppPoints += opp
		w.Poss += Possessions(l.TeamStats, l.OppStats)
		w.OppPoss += Possessions(l.OppStats, l.TeamStats)
		w.TeamStats = w.TeamStats.Add(l.TeamStats)
		w.OppStats = w.OppStats.Add(l.OppStats)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Team < out[j].Team })
	return out
}

// Ratings computes the window's offensive, defensive and net ratings.
func (w TeamWindow) Ratings() Ratings {
	return ComputeRatings(w.Points, w.Poss, w.OppPoints, w.OppPoss)
}

// WinPct is wins over games played, as a fraction.
func (w TeamWindow) WinPct() float64 {
	return SafeDiv(float64(w.Wins), float64(w.GP))
}
