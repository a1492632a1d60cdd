// Package config provides hierarchical configuration loading for the
// TRINITI backend. Precedence: defaults < YAML file < environment variables.
package config

import "time"

// Config holds all runtime configuration for the backend service.
type Config struct {
	Server      Server      `yaml:"server"`
	Logging     Logging     `yaml:"logging"`
	Journal     Journal     `yaml:"journal"`
	Simulator   Simulator   `yaml:"simulator"`
	NATS        NATS        `yaml:"nats"`
	Rate        Rate        `yaml:"rate"`
	Idempotency Idempotency `yaml:"idempotency"`
	Telemetry   Telemetry   `yaml:"telemetry"`
}

// Server holds HTTP server configuration.
type Server struct {
	Port       string `yaml:"port"`
	CORSOrigin string `yaml:"cors_origin"`
}

// Logging holds structured logging configuration.
type Logging struct {
	Level   string `yaml:"level"`
	Service string `yaml:"service"`
}

// Journal holds task journal configuration.
type Journal struct {
	Capacity int `yaml:"capacity"` // max retained records; oldest evicted first
}

// Simulator holds execution simulator configuration.
type Simulator struct {
	Latency         time.Duration `yaml:"latency"`
	MaxCommandBytes int           `yaml:"max_command_bytes"`
}

// NATS holds the event publisher configuration. An empty URL disables
// publishing entirely.
type NATS struct {
	URL string `yaml:"url"`
}

// Rate holds rate limiter configuration.
type Rate struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

// Idempotency holds Idempotency-Key replay cache configuration.
type Idempotency struct {
	TTL         time.Duration `yaml:"ttl"`
	CacheSizeMB int64         `yaml:"cache_size_mb"`
}

// Telemetry holds OpenTelemetry export configuration.
type Telemetry struct {
	Enabled  bool   `yaml:"enabled"`
	Endpoint string `yaml:"endpoint"` // OTLP gRPC collector endpoint
}

// Defaults returns a Config with sensible default values for local development.
func Defaults() Config {
	return Config{
		Server: Server{
			Port:       "3000",
			CORSOrigin: "http://localhost:3001",
		},
		Logging: Logging{
			Level:   "info",
			Service: "triniti-backend",
		},
		Journal: Journal{
			Capacity: 1000,
		},
		Simulator: Simulator{
			Latency:         100 * time.Millisecond,
			MaxCommandBytes: 4096,
		},
		NATS: NATS{
			URL: "",
		},
		Rate: Rate{
			RequestsPerSecond: 50,
			Burst:             100,
		},
		Idempotency: Idempotency{
			TTL:         10 * time.Minute,
			CacheSizeMB: 32,
		},
		Telemetry: Telemetry{
			Enabled:  false,
			Endpoint: "localhost:4317",
		},
	}
}
