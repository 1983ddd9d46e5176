package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalid marks a configuration that cannot start the service.
var ErrInvalid = errors.New("invalid configuration")

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	DataSource  string
	Postgres    PostgresConfig
	FixtureDir  string
	Retry       RetryConfig
	Cache       CacheConfig
	Events      EventsConfig
	SeasonGames int
	AdminToken  string
	Log         LogConfig
	Metrics     MetricsConfig
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		DataSource:  strings.ToLower(envOrDefault(envDataSource, defaultDataSource)),
		Postgres:    loadPostgres(),
		FixtureDir:  envOrDefault(envFixtureDir, defaultFixtureDir),
		Retry:       loadRetry(),
		Cache:       loadCache(),
		Events:      loadEvents(),
		SeasonGames: intEnvOrDefault(envSeasonGames, defaultSeasonGames),
		AdminToken:  envOrDefault(envAdminToken, ""),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
	}
}

// Validate reports every setting that would prevent startup. The returned
// error wraps ErrInvalid.
func (c Config) Validate() error {
	var problems []string

	switch c.DataSource {
	case SourceFixture:
		if c.FixtureDir == "" {
			problems = append(problems, envFixtureDir+" is required for the fixture source")
		}
	case SourcePostgres:
		if c.Postgres.URL == "" {
			problems = append(problems, envDatabaseURL+" is required for the postgres source")
		}
	default:
		problems = append(problems, fmt.Sprintf("%s must be %q or %q, got %q", envDataSource, SourceFixture, SourcePostgres, c.DataSource))
	}

	if c.Cache.RedisURL != "" {
		if u, err := url.Parse(c.Cache.RedisURL); err != nil || (u.Scheme != "redis" && u.Scheme != "rediss") {
			problems = append(problems, envRedisURL+" must be a redis:// or rediss:// URL")
		}
	}

	problems = append(problems, c.Metrics.problems(c.Port)...)

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
}
