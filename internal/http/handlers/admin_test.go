package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/hoops-analytics-service/internal/dataset"
	"github.com/preston-bernstein/hoops-analytics-service/internal/sources"
	"github.com/preston-bernstein/hoops-analytics-service/internal/testutil"
)

type stubCacheRefresher struct {
	res   dataset.Result
	err   error
	calls int
}

func (s *stubCacheRefresher) RefreshNow(ctx context.Context) (dataset.Result, error) {
	s.calls++
	return s.res, s.err
}

func adminRequest(method, token string) *http.Request {
	req := httptest.NewRequest(method, "/admin/cache/refresh", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminRefreshRequiresAuth(t *testing.T) {
	stub := &stubCacheRefresher{}
	h := NewAdminHandler(stub, "secret", nil)

	for _, token := range []string{"", "wrong"} {
		rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), adminRequest(http.MethodPost, token))
		testutil.AssertStatus(t, rr, http.StatusUnauthorized)
	}
	if stub.calls != 0 {
		t.Fatalf("unauthorized requests must not refresh")
	}
}

func TestAdminRefreshRejectsEmptyToken(t *testing.T) {
	h := NewAdminHandler(&stubCacheRefresher{}, "", nil)
	req := adminRequest(http.MethodPost, "")
	req.Header.Set("Authorization", "Bearer ")
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), req)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminRefreshRequiresPost(t *testing.T) {
	h := NewAdminHandler(&stubCacheRefresher{}, "secret", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), adminRequest(http.MethodGet, "secret"))
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestAdminRefreshReloadsDatasets(t *testing.T) {
	stub := &stubCacheRefresher{}
	h := NewAdminHandler(stub, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), adminRequest(http.MethodPost, "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	if stub.calls != 1 {
		t.Fatalf("expected one refresh, got %d", stub.calls)
	}

	var body refreshResponse
	testutil.DecodeJSON(t, rr, &body)
	if body.Status != "ok" || len(body.Datasets) != len(dataset.All) || len(body.Failed) != 0 {
		t.Fatalf("unexpected response %+v", body)
	}
}

func TestAdminRefreshReportsPartialFailure(t *testing.T) {
	rosterErr := sources.NewError("postgres", sources.DatasetRosters, sources.KindUnavailable, errors.New("timeout"))
	res := dataset.Result{Errors: map[string]error{sources.DatasetRosters: rosterErr}}
	stub := &stubCacheRefresher{res: res, err: res.Err()}
	h := NewAdminHandler(stub, "secret", nil)

	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), adminRequest(http.MethodPost, "secret"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body refreshResponse
	testutil.DecodeJSON(t, rr, &body)
	if body.Status != "partial" || len(body.Datasets) != len(dataset.All)-1 {
		t.Fatalf("unexpected response %+v", body)
	}
	if _, ok := body.Failed[sources.DatasetRosters]; !ok {
		t.Fatalf("expected rosters failure reported, got %+v", body.Failed)
	}
}

func TestAdminRefreshFailures(t *testing.T) {
	all := map[string]error{}
	for _, name := range dataset.All {
		all[name] = errors.New("down")
	}
	tests := []struct {
		name string
		stub *stubCacheRefresher
	}{
		{name: "refresh failed without dataset errors", stub: &stubCacheRefresher{err: errors.New("redis down")}},
		{name: "every dataset failed", stub: &stubCacheRefresher{res: dataset.Result{Errors: all}, err: errors.New("down")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAdminHandler(tt.stub, "secret", nil)
			rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), adminRequest(http.MethodPost, "secret"))
			testutil.AssertStatus(t, rr, http.StatusBadGateway)
		})
	}
}

func TestAdminRefreshWithoutRefresher(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)
	rr := testutil.ServeRequest(http.HandlerFunc(h.RefreshCache), adminRequest(http.MethodPost, "secret"))
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}
