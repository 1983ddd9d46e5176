package views

import (
	"sort"
	"strings"
)

// HeightRange is an inclusive height interval in cm.
type HeightRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

var defaultHeights = HeightRange{Min: 150, Max: 210}

// playerFacet is what the shared player filters need from a row.
type playerFacet struct {
	name     string
	position string
	height   float64
}

// filterOptions lists the positions present (excluding unknown) and the
// height bounds of rows with a known height.
func filterOptions(facets []playerFacet) ([]string, HeightRange) {
	seen := make(map[string]struct{})
	var positions []string
	bounds := HeightRange{}
	found := false
	for _, f := range facets {
		if f.position != UnknownPosition {
			if _, ok := seen[f.position]; !ok {
				seen[f.position] = struct{}{}
				positions = append(positions, f.position)
			}
		}
		if f.height > 0 {
			h := int(f.height)
			if !found || h < bounds.Min {
				bounds.Min = h
			}
			if !found || h > bounds.Max {
				bounds.Max = h
			}
			found = true
		}
	}
	sort.Strings(positions)
	if !found {
		bounds = defaultHeights
	}
	return positions, bounds
}

// playerFilter applies the name search, position and height filters of q.
// The height filter is only active when the requested range differs from the
// data bounds.
type playerFilter struct {
	search    string
	positions map[string]struct{}
	heights   HeightRange
	useHeight bool
}

func newPlayerFilter(q Query, bounds HeightRange) playerFilter {
	f := playerFilter{search: strings.ToLower(strings.TrimSpace(q.Search))}
	if len(q.Positions) > 0 {
		f.positions = make(map[string]struct{}, len(q.Positions))
		for _, p := range q.Positions {
			f.positions[p] = struct{}{}
		}
	}
	requested := bounds
	if q.HeightMin > 0 {
		requested.Min = int(q.HeightMin)
	}
	if q.HeightMax > 0 {
		requested.Max = int(q.HeightMax)
	}
	f.heights = requested
	f.useHeight = requested != bounds
	return f
}

func (f playerFilter) keep(p playerFacet) bool {
	if f.search != "" && !strings.Contains(strings.ToLower(p.name), f.search) {
		return false
	}
	if f.positions != nil {
		if _, ok := f.positions[p.position]; !ok {
			return false
		}
	}
	if f.useHeight && (p.height < float64(f.heights.Min) || p.height > float64(f.heights.Max)) {
		return false
	}
	return true
}
