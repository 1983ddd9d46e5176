package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/hoops-analytics-service/internal/app/players"
	"github.com/preston-bernstein/hoops-analytics-service/internal/app/teams"
	"github.com/preston-bernstein/hoops-analytics-service/internal/dataset"
	"github.com/preston-bernstein/hoops-analytics-service/internal/domain/games"
	domainplayers "github.com/preston-bernstein/hoops-analytics-service/internal/domain/players"
	"github.com/preston-bernstein/hoops-analytics-service/internal/http/handlers"
	"github.com/preston-bernstein/hoops-analytics-service/internal/http/middleware"
	"github.com/preston-bernstein/hoops-analytics-service/internal/refresher"
	"github.com/preston-bernstein/hoops-analytics-service/internal/teststubs"
	"github.com/preston-bernstein/hoops-analytics-service/internal/testutil"
	"github.com/preston-bernstein/hoops-analytics-service/internal/views"
)

func newTestRouter(t *testing.T, adminToken string) http.Handler {
	t.Helper()
	source := &teststubs.StubSource{
		StatRows: []games.StatLine{
			testutil.SampleStatLine("p1", "Team A", "g1", 1, 30, 10),
			testutil.SampleStatLine("p1", "Team A", "g2", 2, 28, 14),
			testutil.SampleStatLine("p2", "Team B", "g1", 1, 25, 8),
		},
		TeamRows: []games.TeamGameLine{
			testutil.SampleTeamLine("Team A", "g1", 1, 80, 70),
			testutil.SampleTeamLine("Team B", "g1", 1, 70, 80),
		},
		BioRows: []domainplayers.Bio{
			testutil.SampleBio("p1", "Ana", "Ruiz", 185, 80),
			testutil.SampleBio("p2", "Beto", "Lara", 195, 90),
		},
		RosterRows:  []domainplayers.RosterAssignment{testutil.SampleRoster("p1", "10", "Base", 1)},
		CatalogRows: testutil.SampleCatalog(),
	}
	loader := dataset.NewLoader(source, nil, dataset.TTLs{}, nil, nil)
	ref := refresher.New(loader, nil, nil, 0)

	h := handlers.NewHandler(players.NewService(loader), teams.NewService(loader, 0), nil, nil, ref.Status)
	var admin *handlers.AdminHandler
	if adminToken != "" {
		admin = handlers.NewAdminHandler(ref, adminToken, nil)
	}
	logger, _ := testutil.NewBufferLogger()
	return middleware.LoggingMiddleware(logger, nil, NewRouter(h, admin))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t, "")

	cases := map[string]int{
		"/health":                          http.StatusOK,
		"/ready":                           http.StatusServiceUnavailable,
		"/api/v1/teams":                    http.StatusOK,
		"/api/v1/teams/summary":            http.StatusOK,
		"/api/v1/teams/four-factors":       http.StatusOK,
		"/api/v1/players/averages":         http.StatusOK,
		"/api/v1/players/advanced":         http.StatusOK,
		"/api/v1/players/p1/profile":       http.StatusOK,
		"/api/v1/players/nobody/profile":   http.StatusNotFound,
		"/api/v1/players/averages?sort=XX": http.StatusBadRequest,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterServesComputedViews(t *testing.T) {
	router := newTestRouter(t, "")

	rr := testutil.Serve(router, http.MethodGet, "/api/v1/players/averages?team=Team%20A", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var averages views.AveragesResult
	testutil.DecodeJSON(t, rr, &averages)
	if len(averages.Rows) != 1 || averages.Rows[0].PlayerID != "p1" || averages.Rows[0].PTS != 12 {
		t.Fatalf("unexpected averages %+v", averages.Rows)
	}

	rr = testutil.Serve(router, http.MethodGet, "/api/v1/teams", nil)
	var options views.TeamOptions
	testutil.DecodeJSON(t, rr, &options)
	if len(options.Teams) != 3 || options.Teams[0] != views.AllTeams {
		t.Fatalf("unexpected options %+v", options)
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t, "")

	for _, path := range []string{"/does-not-exist", "/api/v1/unknown"} {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %s, got %d", path, rr.Code)
		}
		if rr.Header().Get("X-Request-ID") == "" {
			t.Fatalf("expected request id on %s", path)
		}
	}
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	router := newTestRouter(t, "")
	rr := testutil.Serve(router, http.MethodPost, "/api/v1/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterMountsAdminOnlyWithToken(t *testing.T) {
	rr := testutil.Serve(newTestRouter(t, ""), http.MethodPost, "/admin/cache/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	router := newTestRouter(t, "secret")
	req := httptest.NewRequest(http.MethodPost, "/admin/cache/refresh", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr = testutil.ServeRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}
