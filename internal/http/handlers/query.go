package handlers

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/preston-bernstein/hoops-analytics-service/internal/views"
)

// Query parameter names.
const (
	paramTeam      = "team"
	paramWindow    = "window"
	paramQualified = "qualified"
	paramSort      = "sort"
	paramOrder     = "order"
	paramPage      = "page"
	paramSearch    = "q"
	paramPosition  = "pos"
	paramHeightMin = "hmin"
	paramHeightMax = "hmax"
)

// sortValidator reports whether a sort label exists in a view's sort table.
type sortValidator func(label string) bool

// parseQuery builds the view state of a request. Absent parameters keep the
// view defaults; malformed ones are rejected.
func parseQuery(values url.Values, validSort sortValidator) (views.Query, error) {
	q := views.Query{Team: views.AllTeams}
	if team := strings.TrimSpace(values.Get(paramTeam)); team != "" {
		q = q.WithTeam(team)
	}

	window, err := nonNegativeInt(values, paramWindow)
	if err != nil {
		return views.Query{}, err
	}
	q = q.WithWindow(window)

	if raw := strings.TrimSpace(values.Get(paramQualified)); raw != "" {
		qualified, err := strconv.ParseBool(raw)
		if err != nil {
			return views.Query{}, fmt.Errorf("invalid %s: %q", paramQualified, raw)
		}
		q.Qualified = qualified
	}

	if label := strings.TrimSpace(values.Get(paramSort)); label != "" {
		if validSort != nil && !validSort(label) {
			return views.Query{}, fmt.Errorf("unknown %s: %q", paramSort, label)
		}
		q = q.WithSort(label)
	}

	switch order := strings.ToLower(strings.TrimSpace(values.Get(paramOrder))); order {
	case "", "desc":
	case "asc":
		q = q.ToggleOrder()
	default:
		return views.Query{}, fmt.Errorf("invalid %s: %q (expected asc or desc)", paramOrder, order)
	}

	page, err := nonNegativeInt(values, paramPage)
	if err != nil {
		return views.Query{}, err
	}
	q = q.WithPage(page)

	q.Search = strings.TrimSpace(values.Get(paramSearch))
	for _, pos := range values[paramPosition] {
		if pos = strings.TrimSpace(pos); pos != "" {
			q.Positions = append(q.Positions, pos)
		}
	}

	if q.HeightMin, err = nonNegativeFloat(values, paramHeightMin); err != nil {
		return views.Query{}, err
	}
	if q.HeightMax, err = nonNegativeFloat(values, paramHeightMax); err != nil {
		return views.Query{}, err
	}
	if q.HeightMin > 0 && q.HeightMax > 0 && q.HeightMin > q.HeightMax {
		return views.Query{}, fmt.Errorf("%s must not exceed %s", paramHeightMin, paramHeightMax)
	}
	return q, nil
}

func nonNegativeInt(values url.Values, name string) (int, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return n, nil
}

func nonNegativeFloat(values url.Values, name string) (float64, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return f, nil
}
