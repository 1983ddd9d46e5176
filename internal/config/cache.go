package config

import "time"

// CacheConfig controls the dataset caches. An empty RedisURL keeps the caches
// in process memory.
type CacheConfig struct {
	RedisURL        string
	StatsTTL        time.Duration
	MetadataTTL     time.Duration
	RefreshInterval time.Duration
}

// EventsConfig controls where interaction events are written.
type EventsConfig struct {
	Stream   string
	Timezone string
}

func loadCache() CacheConfig {
	return CacheConfig{
		RedisURL:        envOrDefault(envRedisURL, ""),
		StatsTTL:        durationEnvOrDefault(envStatsCacheTTL, defaultStatsCacheTTL),
		MetadataTTL:     durationEnvOrDefault(envMetadataTTL, defaultMetadataTTL),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, defaultRefreshEvery),
	}
}

func loadEvents() EventsConfig {
	return EventsConfig{
		Stream:   envOrDefault(envEventStream, defaultEventStream),
		Timezone: envOrDefault(envEventTimezone, defaultEventTimezone),
	}
}
