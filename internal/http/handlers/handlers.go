package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/hoops-analytics-service/internal/eventlog"
	"github.com/preston-bernstein/hoops-analytics-service/internal/http/requestutil"
	"github.com/preston-bernstein/hoops-analytics-service/internal/logging"
	"github.com/preston-bernstein/hoops-analytics-service/internal/refresher"
	"github.com/preston-bernstein/hoops-analytics-service/internal/views"
)

// PlayerIDVar is the route variable holding a player id.
const PlayerIDVar = "playerID"

// PlayerService computes the player views.
type PlayerService interface {
	Averages(ctx context.Context, q views.Query) views.AveragesResult
	Advanced(ctx context.Context, q views.Query) views.AdvancedResult
	Profile(ctx context.Context, playerID string, window int) (views.ProfileResult, error)
}

// TeamService computes the team views.
type TeamService interface {
	Options(ctx context.Context) views.TeamOptions
	Summary(ctx context.Context, q views.Query) views.SummaryResult
	FourFactors(ctx context.Context, q views.Query) views.FactorsResult
}

// Handler wires HTTP routes to the view services.
type Handler struct {
	players  PlayerService
	teams    TeamService
	tracker  *eventlog.Tracker
	logger   *slog.Logger
	statusFn func() refresher.Status
}

// NewHandler constructs a Handler. tracker and statusFn may be nil.
func NewHandler(players PlayerService, teams TeamService, tracker *eventlog.Tracker, logger *slog.Logger, statusFn func() refresher.Status) *Handler {
	return &Handler{
		players:  players,
		teams:    teams,
		tracker:  tracker,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Teams lists the selectable teams and the games slider bounds.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.teams.Options(r.Context()), loggerFromContext(r, h.logger))
}

// Averages serves the per-game player leaderboard.
func (h *Handler) Averages(w nethttp.ResponseWriter, r *nethttp.Request) {
	q, ok := h.query(w, r, func(label string) bool {
		_, found := views.AveragesSort.Lookup(label)
		return found
	})
	if !ok {
		return
	}
	result := h.players.Averages(r.Context(), q)
	h.trackPlayerView(r.Context(), requestutil.User(r), averagesControls, q, result.PlayerTable)
	h.served(r, "averages", len(result.Rows), result.NoData)
	writeJSON(w, nethttp.StatusOK, result, loggerFromContext(r, h.logger))
}

// Advanced serves the advanced metrics leaderboard.
func (h *Handler) Advanced(w nethttp.ResponseWriter, r *nethttp.Request) {
	q, ok := h.query(w, r, func(label string) bool {
		_, found := views.AdvancedSort.Lookup(label)
		return found
	})
	if !ok {
		return
	}
	result := h.players.Advanced(r.Context(), q)
	h.trackPlayerView(r.Context(), requestutil.User(r), advancedControls, q, result.PlayerTable)
	h.served(r, "advanced", len(result.Rows), result.NoData)
	writeJSON(w, nethttp.StatusOK, result, loggerFromContext(r, h.logger))
}

// Profile serves one player's card over the requested window.
func (h *Handler) Profile(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	playerID := strings.TrimSpace(mux.Vars(r)[PlayerIDVar])
	if playerID == "" {
		writeError(w, r, nethttp.StatusBadRequest, "invalid player id", logger)
		return
	}
	window, err := nonNegativeInt(r.URL.Query(), paramWindow)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}

	profile, err := h.players.Profile(r.Context(), playerID, window)
	switch {
	case errors.Is(err, views.ErrPlayerNotFound):
		writeError(w, r, nethttp.StatusNotFound, "player not found", logger)
		return
	case err != nil:
		logging.Error(logger, "profile unavailable", err, slog.String("player_id", playerID))
		writeError(w, r, nethttp.StatusServiceUnavailable, "player data unavailable", logger)
		return
	}

	h.trackProfile(r.Context(), requestutil.User(r), profile)
	h.served(r, "profile", len(profile.GameLog), profile.NoData)
	writeJSON(w, nethttp.StatusOK, profile, logger)
}

// Summary serves the team standings table.
func (h *Handler) Summary(w nethttp.ResponseWriter, r *nethttp.Request) {
	q, ok := h.query(w, r, func(label string) bool {
		_, found := views.SummarySort.Lookup(label)
		return found
	})
	if !ok {
		return
	}
	result := h.teams.Summary(r.Context(), q)
	h.trackTeamView(r.Context(), requestutil.User(r), summaryControls, result.TeamTable)
	h.served(r, "team_summary", len(result.Rows), result.NoData)
	writeJSON(w, nethttp.StatusOK, result, loggerFromContext(r, h.logger))
}

// FourFactors serves the four factors table.
func (h *Handler) FourFactors(w nethttp.ResponseWriter, r *nethttp.Request) {
	q, ok := h.query(w, r, func(label string) bool {
		_, found := views.FactorsSort.Lookup(label)
		return found
	})
	if !ok {
		return
	}
	result := h.teams.FourFactors(r.Context(), q)
	h.trackTeamView(r.Context(), requestutil.User(r), factorsControls, result.TeamTable)
	h.served(r, "four_factors", len(result.Rows), result.NoData)
	writeJSON(w, nethttp.StatusOK, result, loggerFromContext(r, h.logger))
}

// query parses the request's view state, answering 400 when it is invalid.
func (h *Handler) query(w nethttp.ResponseWriter, r *nethttp.Request, validSort sortValidator) (views.Query, bool) {
	q, err := parseQuery(r.URL.Query(), validSort)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), loggerFromContext(r, h.logger))
		return views.Query{}, false
	}
	return q, true
}

func (h *Handler) served(r *nethttp.Request, view string, rows int, noData bool) {
	logging.Info(loggerFromContext(r, h.logger), "served view",
		slog.String(logging.FieldView, view),
		slog.Int(logging.FieldCount, rows),
		slog.Bool("no_data", noData),
	)
}

// NotFound answers unknown routes with a JSON error.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", loggerFromContext(r, h.logger))
}

// MethodNotAllowed answers known routes requested with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", loggerFromContext(r, h.logger))
}
