package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/hoops-analytics-service/internal/http/handlers"
)

const apiPrefix = "/api/v1"

// NewRouter registers the HTTP routes. The admin routes are mounted only when
// admin is non-nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) *mux.Router {
	router := mux.NewRouter()
	router.NotFoundHandler = nethttp.HandlerFunc(handler.NotFound)
	router.MethodNotAllowedHandler = nethttp.HandlerFunc(handler.MethodNotAllowed)

	router.HandleFunc("/health", handler.Health).Methods(nethttp.MethodGet)
	router.HandleFunc("/ready", handler.Ready).Methods(nethttp.MethodGet)

	api := router.PathPrefix(apiPrefix).Subrouter()
	api.HandleFunc("/teams", handler.Teams).Methods(nethttp.MethodGet)
	api.HandleFunc("/teams/summary", handler.Summary).Methods(nethttp.MethodGet)
	api.HandleFunc("/teams/four-factors", handler.FourFactors).Methods(nethttp.MethodGet)
	api.HandleFunc("/players/averages", handler.Averages).Methods(nethttp.MethodGet)
	api.HandleFunc("/players/advanced", handler.Advanced).Methods(nethttp.MethodGet)
	api.HandleFunc("/players/{"+handlers.PlayerIDVar+"}/profile", handler.Profile).Methods(nethttp.MethodGet)

	if admin != nil {
		router.HandleFunc("/admin/cache/refresh", admin.RefreshCache)
	}
	return router
}
