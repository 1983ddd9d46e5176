package config

import (
	"net"
	"strconv"
)

// MetricsConfig controls the Prometheus listener and the optional OTLP push.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

// problems lists metrics settings that would break startup. The metrics
// listener cannot share the API port, and the OTLP exporter takes a bare
// host:port.
func (m MetricsConfig) problems(apiPort string) []string {
	if !m.Enabled {
		return nil
	}
	var out []string
	if n, err := strconv.Atoi(m.Port); err != nil || n < 1 || n > 65535 {
		out = append(out, envMetricsPort+" must be a port number")
	} else if m.Port == apiPort {
		out = append(out, envMetricsPort+" must differ from "+envPort)
	}
	if m.OtlpEndpoint != "" {
		if _, _, err := net.SplitHostPort(m.OtlpEndpoint); err != nil {
			out = append(out, envOtelEndpoint+" must be host:port without a scheme")
		}
	}
	return out
}
