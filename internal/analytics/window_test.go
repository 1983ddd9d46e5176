package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
)

func line(player, team, game string, date time.Time, minutes float64) games.StatLine {
	return games.StatLine{
		PlayerID:   player,
		PlayerName: "Player " + player,
		Team:       team,
		GameID:     game,
		Date:       date,
		Box:        games.BoxScore{Minutes: minutes, FGM: 3, FGA: 7, Points: 8},
	}
}

func lineKey(l games.StatLine) string     { return l.PlayerID }
func lineDate(l games.StatLine) time.Time { return l.Date }

func TestRecentPerEntityKeepsNewestGames(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC) }
	rows := []games.StatLine{
		line("1", "A", "g1", d(1), 20),
		line("1", "A", "g3", d(3), 20),
		line("2", "A", "g1", d(1), 20),
		line("1", "A", "g0", time.Time{}, 20),
		line("1", "A", "g2", d(2), 20),
	}
	original := append([]games.StatLine(nil), rows...)

	out := RecentPerEntity(rows, lineKey, lineDate, 2)

	require.Len(t, out, 3)
	assert.Equal(t, "g3", out[0].GameID)
	assert.Equal(t, "g2", out[1].GameID)
	assert.Equal(t, "2", out[2].PlayerID)
	assert.Equal(t, original, rows, "input must not be reordered")

	all := RecentPerEntity(rows, lineKey, lineDate, 0)
	require.Len(t, all, 5)
	assert.Equal(t, "g0", all[4].GameID, "null dates sort last")
}

func TestDistinctGamesAndMax(t *testing.T) {
	rows := []games.StatLine{
		line("1", "A", "g1", time.Time{}, 10),
		line("2", "A", "g1", time.Time{}, 10),
		line("1", "A", "g2", time.Time{}, 10),
		line("3", "B", "g1", time.Time{}, 10),
	}
	counts := DistinctGames(rows, func(l games.StatLine) string { return l.Team }, func(l games.StatLine) string { return l.GameID })

	assert.Equal(t, map[string]int{"A": 2, "B": 1}, counts)
	assert.Equal(t, 2, MaxGames(counts))
	assert.Equal(t, 1, MaxGames(nil))
}

func TestNewWindow(t *testing.T) {
	assert.Equal(t, Window{Size: 12, Max: 12}, NewWindow(0, 12))
	assert.Equal(t, Window{Size: 12, Max: 12}, NewWindow(40, 12))
	assert.Equal(t, Window{Size: 1, Max: 1}, NewWindow(3, 0))

	w := NewWindow(5, 12)
	assert.True(t, w.Restricted())
	assert.Equal(t, 5, w.Limit())
	assert.Equal(t, 0, NewWindow(12, 12).Limit())
}

func TestQualificationThreshold(t *testing.T) {
	counts := map[string]int{"A": 18, "B": 20, "C": 19}

	assert.Equal(t, 4, QualificationThreshold(NewWindow(10, 20), counts, false))
	assert.Equal(t, 9, QualificationThreshold(NewWindow(0, 20), counts, false))
	assert.Equal(t, 10, QualificationThreshold(NewWindow(0, 20), map[string]int{"B": 20}, true))
	assert.Equal(t, 1, QualificationThreshold(NewWindow(0, 1), nil, false))
}

func TestWindowOfAllGamesMatchesFullSeason(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 2, day, 0, 0, 0, 0, time.UTC) }
	rows := []games.StatLine{
		line("1", "A", "g1", d(1), 20),
		line("1", "A", "g2", d(2), 25),
		line("1", "A", "g3", d(3), 30),
		line("2", "B", "g1", d(1), 15),
	}
	counts := DistinctGames(rows, func(l games.StatLine) string { return l.Team }, func(l games.StatLine) string { return l.GameID })
	max := MaxGames(counts)

	windowed := SumPlayers(RecentPerEntity(rows, lineKey, lineDate, max))
	full := SumPlayers(RecentPerEntity(rows, lineKey, lineDate, 0))

	assert.Equal(t, full, windowed)
}
