package handlers

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/hoops-analytics-service/internal/views"
)

// Navigation labels recorded under the main view selector.
const (
	viewTeams    = "🤝 Equipos"
	viewFactors  = "4️⃣ Four Factors"
	viewAverages = "📊 Por partido"
	viewAdvanced = "🛸 Avanzadas"
)

const mainViewVariable = "Vista Principal"

// playerControls names the tracked controls of one player leaderboard.
type playerControls struct {
	view      string
	team      string
	window    string
	search    string
	position  string
	height    string
	sort      string
	qualified string
}

var averagesControls = playerControls{
	view:      viewAverages,
	team:      "Filtro Equipo (Avg)",
	window:    "Slider Juegos (Avg)",
	search:    "Búsqueda Texto (Avg)",
	position:  "Filtro Posición (Avg)",
	height:    "Filtro Altura (Avg)",
	sort:      "Ordenar Por (Avg)",
	qualified: "Filtro Qualified (Basic)",
}

var advancedControls = playerControls{
	view:      viewAdvanced,
	team:      "Filtro Equipo (Adv)",
	window:    "Slider Juegos (Adv)",
	search:    "Búsqueda Texto (Adv)",
	position:  "Filtro Posición (Adv)",
	height:    "Filtro Altura (Adv)",
	sort:      "Ordenar Por (Adv)",
	qualified: "Filtro Qualified (Adv)",
}

// teamControls names the tracked controls of one team table.
type teamControls struct {
	view   string
	window string
	sort   string
}

var summaryControls = teamControls{
	view:   viewTeams,
	window: "Slider Juegos (Equipos)",
	sort:   "Sort Equipos",
}

var factorsControls = teamControls{
	view:   viewFactors,
	window: "Slider 4Factors",
	sort:   "Sort 4Factors",
}

const (
	profileVariable       = "Perfil Jugador"
	profileWindowVariable = "Slider Juegos (Perfil)"
)

// trackPlayerView records the controls of a served player leaderboard. The
// search, position and height controls are only tracked while in use.
func (h *Handler) trackPlayerView(ctx context.Context, user string, c playerControls, q views.Query, table views.PlayerTable) {
	if h.tracker == nil {
		return
	}
	h.tracker.Track(ctx, user, mainViewVariable, c.view)
	h.tracker.Track(ctx, user, c.team, table.Team)
	h.tracker.Track(ctx, user, c.window, table.Window)
	if q.Search != "" {
		h.tracker.Track(ctx, user, c.search, q.Search)
	}
	if len(q.Positions) > 0 {
		h.tracker.Track(ctx, user, c.position, q.Positions)
	}
	if requested := requestedHeights(q, table.Heights); requested != table.Heights {
		h.tracker.Track(ctx, user, c.height, fmt.Sprintf("(%d, %d)", requested.Min, requested.Max))
	}
	h.tracker.Track(ctx, user, c.sort, table.Sort)
	h.tracker.Track(ctx, user, c.qualified, table.Qualified)
}

// trackTeamView records the controls of a served team table.
func (h *Handler) trackTeamView(ctx context.Context, user string, c teamControls, table views.TeamTable) {
	if h.tracker == nil {
		return
	}
	h.tracker.Track(ctx, user, mainViewVariable, c.view)
	h.tracker.Track(ctx, user, c.window, table.Window)
	h.tracker.Track(ctx, user, c.sort, table.Sort)
}

func (h *Handler) trackProfile(ctx context.Context, user string, profile views.ProfileResult) {
	if h.tracker == nil {
		return
	}
	h.tracker.Track(ctx, user, profileVariable, profile.Bio.Name)
	h.tracker.Track(ctx, user, profileWindowVariable, profile.Window)
}

func requestedHeights(q views.Query, bounds views.HeightRange) views.HeightRange {
	requested := bounds
	if q.HeightMin > 0 {
		requested.Min = int(q.HeightMin)
	}
	if q.HeightMax > 0 {
		requested.Max = int(q.HeightMax)
	}
	return requested
}
