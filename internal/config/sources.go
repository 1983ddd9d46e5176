package config

import "time"

// PostgresConfig controls the connection to the analytics database.
type PostgresConfig struct {
	URL          string
	MaxOpenConns int
}

// RetryConfig controls how failed source calls are retried.
type RetryConfig struct {
	Attempts int
	Backoff  time.Duration
}

func loadPostgres() PostgresConfig {
	return PostgresConfig{
		URL:          envOrDefault(envDatabaseURL, ""),
		MaxOpenConns: intEnvOrDefault(envDBMaxOpenConns, defaultMaxOpenConns),
	}
}

func loadRetry() RetryConfig {
	return RetryConfig{
		Attempts: intEnvOrDefault(envRetryAttempts, defaultRetryAttempts),
		Backoff:  durationEnvOrDefault(envRetryBackoff, defaultRetryBackoff),
	}
}
