package config

import "time"

const (
	envPort            = "PORT"
	envDataSource      = "DATA_SOURCE"
	envDatabaseURL     = "DATABASE_URL"
	envDBMaxOpenConns  = "DB_MAX_OPEN_CONNS"
	envFixtureDir      = "FIXTURE_DIR"
	envRetryAttempts   = "SOURCE_RETRY_ATTEMPTS"
	envRetryBackoff    = "SOURCE_RETRY_BACKOFF"
	envRedisURL        = "REDIS_URL"
	envStatsCacheTTL   = "STATS_CACHE_TTL"
	envMetadataTTL     = "METADATA_CACHE_TTL"
	envRefreshInterval = "REFRESH_INTERVAL"
	envEventStream     = "EVENT_STREAM"
	envEventTimezone   = "EVENT_TIMEZONE"
	envSeasonGames     = "SEASON_GAMES"
	envAdminToken      = "ADMIN_TOKEN"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"

	// Data source names accepted in DATA_SOURCE.
	SourceFixture  = "fixture"
	SourcePostgres = "postgres"

	defaultPort          = "4000"
	defaultDataSource    = SourceFixture
	defaultFixtureDir    = "data/fixtures"
	defaultMaxOpenConns  = 5
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 200 * Duration(time.Millisecond)
	defaultStatsCacheTTL = 10 * Duration(time.Minute)
	defaultMetadataTTL   = Duration(time.Hour)
	defaultRefreshEvery  = 5 * Duration(time.Minute)
	defaultEventStream   = "hoops:events"
	defaultEventTimezone = "America/Mexico_City"
	defaultSeasonGames   = 30
	defaultMetricsPort   = "9090"
	defaultServiceName   = "hoops-analytics-service"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
)
