package views

import (
	"time"

	"github.com/preston-bernstein/hoops-analytics-service/internal/analytics"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	"github.com/preston-bernstein/hoops-analytics-service/internal/ranking"
)

// QualifiedMinutes is the minimum minutes per game of a qualified row.
const QualifiedMinutes = 10.0

// PlayerTable is the header shared by the player leaderboards.
type PlayerTable struct {
	Team        string       `json:"team"`
	Window      int          `json:"window"`
	MaxGames    int          `json:"maxGames"`
	Threshold   int          `json:"threshold"`
	Qualified   bool         `json:"qualified"`
	Sort        string       `json:"sort"`
	Ascending   bool         `json:"ascending"`
	SortOptions []string     `json:"sortOptions"`
	Positions   []string     `json:"positions"`
	Heights     HeightRange  `json:"heightRange"`
	TeamContext *TeamContext `json:"teamContext,omitempty"`
	Page        Page         `json:"page"`
	NoData      bool         `json:"noData"`
}

// playerScope is the windowed set of active lines a player table aggregates.
type playerScope struct {
	lines     []games.StatLine
	window    analytics.Window
	threshold int
}

func byTeam(l games.StatLine) string      { return l.Team }
func byGame(l games.StatLine) string      { return l.GameID }
func byPlayer(l games.StatLine) string    { return l.PlayerID }
func lineDate(l games.StatLine) time.Time { return l.Date }

// scopePlayers selects the team's lines, keeps active games and applies the
// window. Window bounds come from every line in the snapshot.
func scopePlayers(lines []games.StatLine, q Query) playerScope {
	window := analytics.NewWindow(q.Window, analytics.MaxGames(analytics.DistinctGames(lines, byTeam, byGame)))

	view := lines
	if q.SingleTeam() {
		view = make([]games.StatLine, 0, len(lines))
		for _, l := range lines {
			if l.Team == q.Team {
				view = append(view, l)
			}
		}
	}

	active := make([]games.StatLine, 0, len(view))
	for _, l := range view {
		if l.Active() {
			active = append(active, l)
		}
	}
	if window.Restricted() {
		active = analytics.RecentPerEntity(active, byPlayer, lineDate, window.Size)
	}

	return playerScope{
		lines:     active,
		window:    window,
		threshold: analytics.QualificationThreshold(window, analytics.DistinctGames(view, byTeam, byGame), q.SingleTeam()),
	}
}

// finishPlayerTable runs the shared tail of both leaderboards: filter options,
// filters, the qualified cut, sorting and pagination.
func finishPlayerTable[T any](
	rows []T,
	q Query,
	scope playerScope,
	table ranking.Table[T],
	facet func(T) playerFacet,
	qualifies func(T, int) bool,
) ([]T, PlayerTable) {
	facets := make([]playerFacet, len(rows))
	for i, r := range rows {
		facets[i] = facet(r)
	}
	positions, bounds := filterOptions(facets)

	filter := newPlayerFilter(q, bounds)
	kept := make([]T, 0, len(rows))
	for i, r := range rows {
		if !filter.keep(facets[i]) {
			continue
		}
		if q.Qualified && !qualifies(r, scope.threshold) {
			continue
		}
		kept = append(kept, r)
	}

	key := table.Resolve(q.Sort)
	sorted := ranking.Sort(kept, key.Value, ranking.DirectionOf(q.Ascending))
	page, info := Paginate(sorted, q.Page)

	return page, PlayerTable{
		Team:        teamLabel(q),
		Window:      scope.window.Size,
		MaxGames:    scope.window.Max,
		Threshold:   scope.threshold,
		Qualified:   q.Qualified,
		Sort:        key.Label,
		Ascending:   q.Ascending,
		SortOptions: table.Labels(),
		Positions:   positions,
		Heights:     bounds,
		Page:        info,
		NoData:      info.TotalRows == 0,
	}
}

func teamLabel(q Query) string {
	if q.SingleTeam() {
		return q.Team
	}
	return AllTeams
}
