// Package views turns a raw snapshot into the computed, sorted and paginated
// tables served to clients. Every function is pure: inputs are never mutated
// and empty input yields an empty result flagged NoData.
package views

import "strings"

// AllTeams is the team scope that selects every team.
const AllTeams = "Todos"

// PageSize is the number of rows per page in player tables.
const PageSize = 30

// Query is the explicit view state of one request. Transitions return a new
// Query; the receiver is never modified.
type Query struct {
	Team      string
	Window    int
	Qualified bool
	Sort      string
	Ascending bool
	Page      int
	Search    string
	Positions []string
	HeightMin float64
	HeightMax float64
}

// SingleTeam reports whether the query is scoped to one team.
func (q Query) SingleTeam() bool {
	return q.Team != "" && q.Team != AllTeams
}

// WithSort selects a sort label. Choosing a different label resets the
// direction to descending and returns to the first page.
func (q Query) WithSort(label string) Query {
	if label == q.Sort {
		return q
	}
	q.Sort = label
	q.Ascending = false
	q.Page = 0
	return q
}

// ToggleOrder inverts the sort direction.
func (q Query) ToggleOrder() Query {
	q.Ascending = !q.Ascending
	return q
}

// WithPage moves to page n.
func (q Query) WithPage(n int) Query {
	if n < 0 {
		n = 0
	}
	q.Page = n
	return q
}

// WithWindow selects the last n games. 0 selects every game.
func (q Query) WithWindow(n int) Query {
	if n < 0 {
		n = 0
	}
	q.Window = n
	return q
}

// WithTeam changes the team scope.
func (q Query) WithTeam(team string) Query {
	q.Team = strings.TrimSpace(team)
	return q
}
