package analytics

import (
	"math"
	"sort"
	"time"
)

// RecentPerEntity orders rows by date descending (null dates last, ties keep
// input order) and keeps the first n rows of every entity. n <= 0 keeps all.
// The input slice is never reordered; a new slice is returned.
func RecentPerEntity[T any](rows []T, key func(T) string, date func(T) time.Time, n int) []T {
	sorted := make([]T, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := date(sorted[i]), date(sorted[j])
		switch {
		case di.IsZero():
			return false
		case dj.IsZero():
			return true
		default:
			return di.After(dj)
		}
	})
	if n <= 0 {
		return sorted
	}

	taken := make(map[string]int)
	out := make([]T, 0, len(sorted))
	for _, row := range sorted {
		k := key(row)
		if taken[k] >= n {
			continue
		}
		taken[k]++
		out = append(out, row)
	}
	return out
}

// DistinctGames counts distinct game ids per group.
func DistinctGames[T any](rows []T, group, game func(T) string) map[string]int {
	seen := make(map[string]map[string]struct{})
	for _, row := range rows {
		g := group(row)
		if seen[g] == nil {
			seen[g] = make(map[string]struct{})
		}
		seen[g][game(row)] = struct{}{}
	}
	counts := make(map[string]int, len(seen))
	for g, ids := range seen {
		counts[g] = len(ids)
	}
	return counts
}

// MaxGames is the largest count, never below 1.
func MaxGames(counts map[string]int) int {
	best := 0
	for _, c := range counts {
		if c > best {
			best = c
		}
	}
	if best < 1 {
		return 1
	}
	return best
}

func minGames(counts map[string]int) int {
	best := 0
	first := true
	for _, c := range counts {
		if first || c < best {
			best = c
			first = false
		}
	}
	return best
}

// Window is a last-N-games selection bounded by the most games any team has played.
type Window struct {
	Size int
	Max  int
}

// NewWindow clamps size into [1, max]. A size of 0 selects every game.
func NewWindow(size, max int) Window {
	if max < 1 {
		max = 1
	}
	if size <= 0 || size > max {
		size = max
	}
	return Window{Size: size, Max: max}
}

// Restricted reports whether the window excludes older games.
func (w Window) Restricted() bool {
	return w.Size < w.Max
}

// Limit is the per-entity row limit to pass to RecentPerEntity.
func (w Window) Limit() int {
	if w.Restricted() {
		return w.Size
	}
	return 0
}

const (
	restrictedShare = 0.40
	seasonShare     = 0.50
)

// QualificationThreshold is the minimum games played for a qualified row.
// A restricted window needs 40% of its size. The full season needs half of
// the most games any team played when a single team is in view, or half of
// the fewest when every team is.
func QualificationThreshold(w Window, counts map[string]int, singleTeam bool) int {
	if w.Restricted() {
		return int(math.Ceil(float64(w.Size) * restrictedShare))
	}
	base := 1
	if len(counts) > 0 {
		if singleTeam {
			base = MaxGames(counts)
		} else {
			base = minGames(counts)
		}
	}
	return int(math.Ceil(float64(base) * seasonShare))
}
