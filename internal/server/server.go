package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/hoops-analytics-service/internal/app/players"
	"github.com/preston-bernstein/hoops-analytics-service/internal/app/teams"
	"github.com/preston-bernstein/hoops-analytics-service/internal/config"
	"github.com/preston-bernstein/hoops-analytics-service/internal/dataset"
	"github.com/preston-bernstein/hoops-analytics-service/internal/eventlog"
	httpserver "github.com/preston-bernstein/hoops-analytics-service/internal/http"
	"github.com/preston-bernstein/hoops-analytics-service/internal/http/handlers"
	"github.com/preston-bernstein/hoops-analytics-service/internal/http/middleware"
	"github.com/preston-bernstein/hoops-analytics-service/internal/logging"
	"github.com/preston-bernstein/hoops-analytics-service/internal/metrics"
	"github.com/preston-bernstein/hoops-analytics-service/internal/refresher"
	"github.com/preston-bernstein/hoops-analytics-service/internal/sources"
)

var metricsSetup = metrics.Setup

// closer releases a connection opened at startup.
type closer struct {
	name  string
	close func() error
}

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	loader        *dataset.Loader
	httpServer    httpServer
	metricsServer httpServer
	refresher     Refresher
	metricsStop   func(context.Context) error
	closers       []closer
}

// New constructs a server from configuration: the data source, the dataset
// cache, the event sink, the refresher and the HTTP server.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(ctx, cfg, logger, nil)
}

func newServerWithMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	source, closeSource, err := newSourceFactory(logger, recorder).build(ctx, cfg)
	if err != nil {
		if metricsShutdown != nil {
			_ = metricsShutdown(ctx)
		}
		return nil, err
	}
	caches := buildCache(ctx, cfg, logger)

	srv := newServerWithSource(cfg, logger, recorder, source, caches)
	srv.metricsServer = metricsSrv
	srv.metricsStop = metricsShutdown
	if closeSource != nil {
		srv.closers = append(srv.closers, closer{name: "source", close: closeSource})
	}
	if caches.redis != nil {
		srv.closers = append(srv.closers, closer{name: "redis", close: caches.redis.Close})
	}
	return srv, nil
}

// newServerWithSource wires everything downstream of an already built source.
func newServerWithSource(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, source sources.Source, caches cacheComponents) *Server {
	loader := dataset.NewLoader(source, caches.cache, dataset.TTLs{
		Stats:    cfg.Cache.StatsTTL,
		Metadata: cfg.Cache.MetadataTTL,
	}, logger, recorder)
	ref := refresher.New(loader, logger, recorder, cfg.Cache.RefreshInterval)
	tracker := buildEvents(cfg, caches.redis, logger, recorder)

	return &Server{
		cfg:        cfg,
		logger:     logger,
		metrics:    recorder,
		loader:     loader,
		httpServer: buildHTTPServer(cfg, loader, ref, tracker, logger, recorder),
		refresher:  ref,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, ref Refresher) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		refresher:  ref,
	}
}

func buildHTTPServer(cfg config.Config, loader *dataset.Loader, ref Refresher, tracker *eventlog.Tracker, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	var statusFn func() refresher.Status
	if ref != nil {
		statusFn = ref.Status
	}

	handler := handlers.NewHandler(
		players.NewService(loader),
		teams.NewService(loader, cfg.SeasonGames),
		tracker,
		logger,
		statusFn,
	)
	// The admin refresh endpoint is mounted only when a token is set.
	var admin *handlers.AdminHandler
	if cfg.AdminToken != "" && ref != nil {
		admin = handlers.NewAdminHandler(ref, cfg.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:           wrapped,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the refresher and HTTP server, then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.refresher.Start(ctx)

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", logging.FieldError, err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", logging.FieldError, err)
		}
	}

	if err := s.refresher.Stop(shutdownCtx); err != nil {
		logging.Error(s.logger, "failed to stop refresher", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// Connections close last so in-flight requests can finish their queries.
	for _, c := range s.closers {
		if err := c.close(); err != nil {
			logging.Warn(s.logger, "failed to close "+c.name, logging.FieldError, err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", logging.FieldError, err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(logger, name+" server failed", logging.FieldError, err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
