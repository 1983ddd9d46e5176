package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
)

func TestOptionsListsTeamsAndBounds(t *testing.T) {
	teamLines := []games.TeamGameLine{
		teamLine("A", "g1", day(1), 80, 70),
		teamLine("A", "g2", day(2), 80, 70),
		teamLine("B", "g1", day(1), 70, 80),
	}

	opts := Options(leagueLines(), teamLines)

	assert.Equal(t, []string{AllTeams, "A", "B"}, opts.Teams)
	assert.Equal(t, 3, opts.MaxGames)
	assert.Equal(t, 2, opts.TeamMaxGames)
}

func TestOptionsEmpty(t *testing.T) {
	opts := Options(nil, nil)

	assert.Equal(t, []string{AllTeams}, opts.Teams)
	assert.Equal(t, 1, opts.MaxGames)
	assert.Equal(t, 1, opts.TeamMaxGames)
}
