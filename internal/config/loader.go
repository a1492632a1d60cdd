package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the path checked for YAML configuration.
const DefaultConfigFile = "triniti.yaml"

// Load returns a Config using the hierarchy: defaults < YAML < ENV.
// The YAML file is optional; a missing file is not an error.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigFile)
}

// LoadFrom returns a Config loaded from the given YAML path using the
// hierarchy: defaults < YAML < ENV. The YAML file is optional.
func LoadFrom(yamlPath string) (*Config, error) {
	cfg := Defaults()

	if err := loadYAML(&cfg, yamlPath); err != nil {
		return nil, fmt.Errorf("config yaml: %w", err)
	}

	loadEnv(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validate: %w", err)
	}

	return &cfg, nil
}

// loadYAML reads the YAML file and unmarshals it over cfg.
// Returns nil if the file does not exist.
func loadYAML(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is validated by caller
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

// loadEnv overlays environment variables onto cfg.
// Only non-empty env values override the current config.
func loadEnv(cfg *Config) {
	setString(&cfg.Server.Port, "TRINITI_PORT")
	setString(&cfg.Server.CORSOrigin, "TRINITI_CORS_ORIGIN")
	setString(&cfg.Logging.Level, "TRINITI_LOG_LEVEL")
	setString(&cfg.Logging.Service, "TRINITI_LOG_SERVICE")
	setInt(&cfg.Journal.Capacity, "TRINITI_JOURNAL_CAPACITY")
	setDuration(&cfg.Simulator.Latency, "TRINITI_SIM_LATENCY")
	setInt(&cfg.Simulator.MaxCommandBytes, "TRINITI_SIM_MAX_COMMAND_BYTES")
	setString(&cfg.NATS.URL, "NATS_URL")
	setFloat64(&cfg.Rate.RequestsPerSecond, "TRINITI_RATE_RPS")
	setInt(&cfg.Rate.Burst, "TRINITI_RATE_BURST")
	setDuration(&cfg.Idempotency.TTL, "TRINITI_IDEMPOTENCY_TTL")
	setInt64(&cfg.Idempotency.CacheSizeMB, "TRINITI_IDEMPOTENCY_CACHE_MB")
	setBool(&cfg.Telemetry.Enabled, "TRINITI_OTEL_ENABLED")
	setString(&cfg.Telemetry.Endpoint, "TRINITI_OTEL_ENDPOINT")
}

// validate checks that required fields are set.
func validate(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server.port is required")
	}
	if cfg.Journal.Capacity < 1 {
		return errors.New("journal.capacity must be >= 1")
	}
	if cfg.Simulator.Latency < 0 {
		return errors.New("simulator.latency must not be negative")
	}
	if cfg.Simulator.MaxCommandBytes < 1 {
		return errors.New("simulator.max_command_bytes must be >= 1")
	}
	if cfg.Rate.Burst < 1 {
		return errors.New("rate.burst must be >= 1")
	}
	if cfg.Idempotency.CacheSizeMB < 1 {
		return errors.New("idempotency.cache_size_mb must be >= 1")
	}
	if cfg.Telemetry.Enabled && cfg.Telemetry.Endpoint == "" {
		return errors.New("telemetry.endpoint is required when telemetry is enabled")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}

func setFloat64(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func setDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
