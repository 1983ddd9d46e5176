package views

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/preston-bernstein/hoops-analytics-service/internal/analytics"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/timeutil"
)

// ErrPlayerNotFound is returned when the requested player has no bio.
var ErrPlayerNotFound = errors.New("player not found")

const (
	missing    = "N/A"
	noTeam     = "Sin Equipo"
	noJersey   = "?"
	emptyStat  = "-"
	winMarker  = "✅ "
	lossMarker = "❌ "
	drawMarker = "➖ "
)

// ProfileBio is the header card of a player profile.
type ProfileBio struct {
	PlayerID    string `json:"playerId"`
	Name        string `json:"name"`
	Team        string `json:"team"`
	Jersey      string `json:"jersey"`
	Position    string `json:"position"`
	DateOfBirth string `json:"dateOfBirth"`
	Age         string `json:"age"`
	HeightCM    int    `json:"heightCm"`
	WeightKG    int    `json:"weightKg"`
	Nationality string `json:"nationality"`
}

// ProfileAdvanced holds the window's shooting efficiency and usage, as percentages
// except for points per shot.
type ProfileAdvanced struct {
	USGPct        float64 `json:"usgPct"`
	TSPct         float64 `json:"tsPct"`
	EFGPct        float64 `json:"efgPct"`
	PointsPerShot float64 `json:"pointsPerShot"`
}

// GameLogRow is one game of the log. Rate columns are preformatted and read
// "-" when the game had no attempts. Highs lists the columns where this game
// is the player's best in the window.
type GameLogRow struct {
	Date     time.Time    `json:"date"`
	Label    string       `json:"label"`
	Result   games.Result `json:"result"`
	Opponent string       `json:"opponent"`
	Minutes  float64      `json:"minutes"`
	Points   float64      `json:"points"`
	USGPct   string       `json:"usgPct"`
	TSPct    string       `json:"tsPct"`
	EFGPct   string       `json:"efgPct"`
	PPS      string       `json:"pps"`
	FGM      float64      `json:"fgm"`
	FGA      float64      `json:"fga"`
	FGPct    string       `json:"fgPct"`
	ThreePM  float64      `json:"threePm"`
	ThreePA  float64      `json:"threePa"`
	ThreePct string       `json:"threePct"`
	FTM      float64      `json:"ftm"`
	FTA      float64      `json:"fta"`
	FTPct    string       `json:"ftPct"`
	ORB      float64      `json:"orb"`
	DRB      float64      `json:"drb"`
	TRB      float64      `json:"trb"`
	AST      float64      `json:"ast"`
	STL      float64      `json:"stl"`
	BLK      float64      `json:"blk"`
	TOV      float64      `json:"tov"`
	PF       float64      `json:"pf"`
	Highs    []string     `json:"highs"`
}

// TrendPoint is one game of the efficiency series, oldest first.
type TrendPoint struct {
	Date     time.Time `json:"date"`
	Label    string    `json:"label"`
	Opponent string    `json:"opponent"`
	FGPct    float64   `json:"fgPct"`
	TwoPct   float64   `json:"twoPct"`
	ThreePct float64   `json:"threePct"`
	FTPct    float64   `json:"ftPct"`
	EFGPct   float64   `json:"efgPct"`
	TSPct    float64   `json:"tsPct"`
	USGPct   float64   `json:"usgPct"`
}

// ProfileResult is the full player profile.
type ProfileResult struct {
	Bio      ProfileBio       `json:"bio"`
	Window   int              `json:"window"`
	MaxGames int              `json:"maxGames"`
	Averages *AveragesRow     `json:"averages,omitempty"`
	Advanced *ProfileAdvanced `json:"advanced,omitempty"`
	GameLog  []GameLogRow     `json:"gameLog"`
	Trends   []TrendPoint     `json:"trends"`
	NoData   bool             `json:"noData"`
}

// Profile builds a single player's page over their last window active games.
// It returns ErrPlayerNotFound when the player has no bio.
func Profile(lines []games.StatLine, meta Metadata, playerID string, window int, now time.Time) (ProfileResult, error) {
	if _, ok := meta.Bio(playerID); !ok {
		return ProfileResult{}, fmt.Errorf("profile %q: %w", playerID, ErrPlayerNotFound)
	}

	result := ProfileResult{
		Bio:     profileBio(playerID, meta, now),
		GameLog: []GameLogRow{},
		Trends:  []TrendPoint{},
	}

	var active []games.StatLine
	for _, l := range lines {
		if l.PlayerID == playerID && l.Active() {
			active = append(active, l)
		}
	}
	active = analytics.RecentPerEntity(active, byPlayer, lineDate, 0)

	w := analytics.NewWindow(window, len(active))
	result.Window, result.MaxGames = w.Size, w.Max
	if len(active) == 0 {
		result.NoData = true
		return result, nil
	}
	recent := active[:w.Size]

	totals := sumPlayer(recent)
	avg := averagesRow(totals.Averages(), meta)
	result.Averages = &avg
	result.Advanced = &ProfileAdvanced{
		USGPct:        analytics.Usage(totals.Box.FGA, totals.Box.FTA, totals.Box.TOV, totals.Box.Minutes, totals.TeamStats),
		TSPct:         100 * analytics.TrueShooting(totals.Box.Points, totals.Box.FGA, totals.Box.FTA),
		EFGPct:        100 * analytics.EffectiveFG(totals.Box.FGM, totals.Box.ThreePM, totals.Box.FGA),
		PointsPerShot: analytics.PointsPerShot(totals.Box.TwoPM, totals.Box.ThreePM, totals.Box.FGA),
	}
	result.GameLog = gameLog(recent)
	result.Trends = trends(recent)
	return result, nil
}

func profileBio(playerID string, meta Metadata, now time.Time) ProfileBio {
	bio, _ := meta.Bio(playerID)
	out := ProfileBio{
		PlayerID:    playerID,
		Name:        bio.FullName(),
		Team:        noTeam,
		Jersey:      noJersey,
		Position:    missing,
		DateOfBirth: timeutil.FormatOr(bio.DateOfBirth, timeutil.DayMonthYear, missing),
		Age:         missing,
		HeightCM:    int(bio.HeightCM),
		WeightKG:    int(bio.WeightKG),
		Nationality: bio.Nationality,
	}
	if out.Nationality == "" {
		out.Nationality = missing
	}
	if years, ok := timeutil.Age(bio.DateOfBirth, now); ok {
		out.Age = fmt.Sprintf("%d", years)
	}
	if r, ok := meta.CurrentRoster(playerID); ok {
		out.Position = meta.Position(playerID)
		if r.ShirtNumber != "" {
			out.Jersey = r.ShirtNumber
		}
		if name, ok := meta.TeamName(r.TeamID); ok {
			out.Team = name
		} else {
			out.Team = fmt.Sprintf("ID %s no hallado", r.TeamID)
		}
	}
	return out
}

// sumPlayer totals every line as one player, labelled with the latest
// name and team.
func sumPlayer(lines []games.StatLine) analytics.PlayerTotals {
	latest := lines[0]
	relabeled := make([]games.StatLine, len(lines))
	for i, l := range lines {
		l.PlayerName, l.Team = latest.PlayerName, latest.Team
		relabeled[i] = l
	}
	return analytics.SumPlayers(relabeled)[0]
}

// gameRates are the unformatted per-game rates, as percentages.
type gameRates struct {
	fg, two, three, ft, efg, ts, usg, pps float64
}

func ratesOf(l games.StatLine) gameRates {
	b := l.Box
	return gameRates{
		fg:    100 * analytics.SafeDiv(b.FGM, b.FGA),
		two:   100 * analytics.SafeDiv(b.TwoPM, b.TwoPA),
		three: 100 * analytics.SafeDiv(b.ThreePM, b.ThreePA),
		ft:    100 * analytics.SafeDiv(b.FTM, b.FTA),
		efg:   100 * analytics.EffectiveFG(b.FGM, b.ThreePM, b.FGA),
		ts:    100 * analytics.TrueShooting(b.Points, b.FGA, b.FTA),
		usg:   analytics.Usage(b.FGA, b.FTA, b.TOV, b.Minutes, l.TeamStats),
		pps:   analytics.PointsPerShot(b.TwoPM, b.ThreePM, b.FGA),
	}
}

func pctOr(v float64, ok bool) string {
	if !ok {
		return emptyStat
	}
	return fmt.Sprintf("%.1f%%", v)
}

func resultMarker(r games.Result) string {
	switch r {
	case games.ResultWin:
		return winMarker
	case games.ResultLoss:
		return lossMarker
	default:
		return drawMarker
	}
}

// highColumn pairs a game log column with its numeric value.
type highColumn struct {
	label string
	value func(games.StatLine, gameRates) float64
}

var highColumns = []highColumn{
	{"MIN", func(l games.StatLine, _ gameRates) float64 { return l.Box.Minutes }},
	{"PTS", func(l games.StatLine, _ gameRates) float64 { return l.Box.Points }},
	{"USG%", func(_ games.StatLine, r gameRates) float64 { return r.usg }},
	{"TS%", func(_ games.StatLine, r gameRates) float64 { return r.ts }},
	{"eFG%", func(_ games.StatLine, r gameRates) float64 { return r.efg }},
	{"PPS", func(_ games.StatLine, r gameRates) float64 { return r.pps }},
	{"FGM", func(l games.StatLine, _ gameRates) float64 { return l.Box.FGM }},
	{"FGA", func(l games.StatLine, _ gameRates) float64 { return l.Box.FGA }},
	{"FG%", func(_ games.StatLine, r gameRates) float64 { return r.fg }},
	{"3PM", func(l games.StatLine, _ gameRates) float64 { return l.Box.ThreePM }},
	{"3PA", func(l games.StatLine, _ gameRates) float64 { return l.Box.ThreePA }},
	{"3P%", func(_ games.StatLine, r gameRates) float64 { return r.three }},
	{"FTM", func(l games.StatLine, _ gameRates) float64 { return l.Box.FTM }},
	{"FTA", func(l games.StatLine, _ gameRates) float64 { return l.Box.FTA }},
	{"FT%", func(_ games.StatLine, r gameRates) float64 { return r.ft }},
	{"ORB", func(l games.StatLine, _ gameRates) float64 { return l.Box.ORB }},
	{"DRB", func(l games.StatLine, _ gameRates) float64 { return l.Box.DRB }},
	{"TRB", func(l games.StatLine, _ gameRates) float64 { return l.Box.TRB }},
	{"AST", func(l games.StatLine, _ gameRates) float64 { return l.Box.AST }},
	{"STL", func(l games.StatLine, _ gameRates) float64 { return l.Box.STL }},
	{"BLK", func(l games.StatLine, _ gameRates) float64 { return l.Box.BLK }},
	{"TOV", func(l games.StatLine, _ gameRates) float64 { return l.Box.TOV }},
	{"PF", func(l games.StatLine, _ gameRates) float64 { return l.Box.PF }},
}

// gameLog renders the window newest first and marks, for every column with a
// positive best, each game that reached it.
func gameLog(lines []games.StatLine) []GameLogRow {
	rates := make([]gameRates, len(lines))
	for i, l := range lines {
		rates[i] = ratesOf(l)
	}

	rows := make([]GameLogRow, len(lines))
	for i, l := range lines {
		b, r := l.Box, rates[i]
		result := games.Outcome(l.TeamScore, l.OppScore)
		pps := emptyStat
		if b.FGA > 0 {
			pps = fmt.Sprintf("%.2f", r.pps)
		}
		rows[i] = GameLogRow{
			Date:     l.Date,
			Label:    timeutil.FormatOr(l.Date, timeutil.DayMonthYear, emptyStat),
			Result:   result,
			Opponent: resultMarker(result) + l.Opponent,
			Minutes:  b.Minutes,
			Points:   b.Points,
			USGPct:   pctOr(r.usg, b.Minutes > 0),
			TSPct:    pctOr(r.ts, b.FGA > 0 || b.FTA > 0),
			EFGPct:   pctOr(r.efg, b.FGA > 0),
			PPS:      pps,
			FGM:      b.FGM,
			FGA:      b.FGA,
			FGPct:    pctOr(r.fg, b.FGA > 0),
			ThreePM:  b.ThreePM,
			ThreePA:  b.ThreePA,
			ThreePct: pctOr(r.three, b.ThreePA > 0),
			FTM:      b.FTM,
			FTA:      b.FTA,
			FTPct:    pctOr(r.ft, b.FTA > 0),
			ORB:      b.ORB,
			DRB:      b.DRB,
			TRB:      b.TRB,
			AST:      b.AST,
			STL:      b.STL,
			BLK:      b.BLK,
			TOV:      b.TOV,
			PF:       b.PF,
			Highs:    []string{},
		}
	}

	for _, col := range highColumns {
		best := math.Inf(-1)
		for i, l := range lines {
			best = math.Max(best, col.value(l, rates[i]))
		}
		if best <= 0 {
			continue
		}
		for i, l := range lines {
			if col.value(l, rates[i]) == best {
				rows[i].Highs = append(rows[i].Highs, col.label)
			}
		}
	}
	return rows
}

func trends(lines []games.StatLine) []TrendPoint {
	ordered := make([]games.StatLine, len(lines))
	copy(ordered, lines)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Date.Before(ordered[j].Date) })

	points := make([]TrendPoint, len(ordered))
	for i, l := range ordered {
		r := ratesOf(l)
		points[i] = TrendPoint{
			Date:     l.Date,
			Label:    timeutil.FormatOr(l.Date, timeutil.DayMonthShortYear, emptyStat),
			Opponent: l.Opponent,
			FGPct:    r.fg,
			TwoPct:   r.two,
			ThreePct: r.three,
			FTPct:    r.ft,
			EFGPct:   r.efg,
			TSPct:    r.ts,
			USGPct:   r.usg,
		}
	}
	return points
}
