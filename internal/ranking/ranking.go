// Package ranking implements competition ranking and metric-driven sorting
// shared by every table view.
package ranking

import (
	"math"
	"sort"
)

// Direction tells whether lower or higher values rank first.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

// DirectionOf maps an ascending flag to a Direction.
func DirectionOf(ascending bool) Direction {
	if ascending {
		return Ascending
	}
	return Descending
}

func (d Direction) String() string {
	if d == Ascending {
		return "asc"
	}
	return "desc"
}

func (d Direction) better(a, b float64) bool {
	if d == Ascending {
		return a < b
	}
	return a > b
}

// Rank assigns standard competition ranks: tied values share the best rank
// and the next distinct value resumes at its position, so [10 10 8]
// descending ranks as [1 1 3]. NaN values are left unranked with 0.
func Rank(values []float64, dir Direction) []int {
	idx := make([]int, 0, len(values))
	for i, v := range values {
		if !math.IsNaN(v) {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return dir.better(values[idx[a]], values[idx[b]])
	})

	ranks := make([]int, len(values))
	for pos, i := range idx {
		if pos > 0 && values[i] == values[idx[pos-1]] {
			ranks[i] = ranks[idx[pos-1]]
			continue
		}
		ranks[i] = pos + 1
	}
	return ranks
}

// RankBy ranks rows by the value extracted from each.
func RankBy[T any](rows []T, value func(T) float64, dir Direction) []int {
	values := make([]float64, len(rows))
	for i, r := range rows {
		values[i] = value(r)
	}
	return Rank(values, dir)
}

// Sort returns a stably sorted copy of rows. NaN values sort last.
func Sort[T any](rows []T, value func(T) float64, dir Direction) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := value(out[i]), value(out[j])
		switch {
		case math.IsNaN(a):
			return false
		case math.IsNaN(b):
			return true
		default:
			return dir.better(a, b)
		}
	})
	return out
}
