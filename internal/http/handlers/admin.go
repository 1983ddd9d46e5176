package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"
	"sort"

	"github.com/preston-bernstein/hoops-analytics-service/internal/dataset"
	"github.com/preston-bernstein/hoops-analytics-service/internal/http/requestutil"
	"github.com/preston-bernstein/hoops-analytics-service/internal/logging"
)

// CacheRefresher drops the cached datasets and reloads them.
type CacheRefresher interface {
	RefreshNow(ctx context.Context) (dataset.Result, error)
}

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	refresher CacheRefresher
	token     string
	logger    *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(refresher CacheRefresher, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		refresher: refresher,
		token:     token,
		logger:    logger,
	}
}

// refreshResponse reports the datasets reloaded by a cache refresh.
type refreshResponse struct {
	Status   string            `json:"status"`
	Datasets []string          `json:"datasets"`
	Failed   map[string]string `json:"failed,omitempty"`
}

// RefreshCache refetches every dataset. A dataset whose fetch fails keeps
// its cached rows.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshCache(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	if h.refresher == nil {
		writeError(w, r, http.StatusServiceUnavailable, "cache refresher not configured", logger)
		return
	}

	res, err := h.refresher.RefreshNow(r.Context())
	// An error without per-dataset failures means nothing was reloaded.
	if err != nil && (len(res.Errors) == 0 || len(res.Errors) >= len(dataset.All)) {
		logging.Error(logger, "admin cache refresh failed", err)
		writeError(w, r, http.StatusBadGateway, "cache refresh failed", logger)
		return
	}

	resp := refreshResponse{Status: "ok", Datasets: loadedDatasets(res)}
	if len(res.Errors) > 0 {
		resp.Status = "partial"
		resp.Failed = make(map[string]string, len(res.Errors))
		for name, dsErr := range res.Errors {
			resp.Failed[name] = dsErr.Error()
		}
	}

	logging.Info(logger, "admin cache refreshed",
		slog.Int(logging.FieldCount, len(resp.Datasets)),
		slog.Int("failed", len(resp.Failed)),
	)
	writeJSON(w, http.StatusOK, resp, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	return subtle.ConstantTimeCompare([]byte(got), []byte("Bearer "+h.token)) == 1
}

func loadedDatasets(res dataset.Result) []string {
	loaded := make([]string, 0, len(dataset.All))
	for _, name := range dataset.All {
		if _, failed := res.Errors[name]; !failed {
			loaded = append(loaded, name)
		}
	}
	sort.Strings(loaded)
	return loaded
}
