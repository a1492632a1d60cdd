package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Server.Port)
	}
	if cfg.Journal.Capacity != 1000 {
		t.Fatalf("expected default capacity 1000, got %d", cfg.Journal.Capacity)
	}
	if cfg.NATS.URL != "" {
		t.Fatalf("expected NATS disabled by default, got %q", cfg.NATS.URL)
	}
}

func TestLoadFromYAMLOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triniti.yaml")
	yaml := `
server:
  port: "8088"
journal:
  capacity: 25
simulator:
  latency: 5ms
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != "8088" {
		t.Fatalf("expected port 8088, got %q", cfg.Server.Port)
	}
	if cfg.Journal.Capacity != 25 {
		t.Fatalf("expected capacity 25, got %d", cfg.Journal.Capacity)
	}
	if cfg.Simulator.Latency != 5*time.Millisecond {
		t.Fatalf("expected 5ms latency, got %v", cfg.Simulator.Latency)
	}
	// Untouched sections keep their defaults.
	if cfg.Rate.Burst != 100 {
		t.Fatalf("expected default burst 100, got %d", cfg.Rate.Burst)
	}
}

func TestLoadFromEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triniti.yaml")
	if err := os.WriteFile(path, []byte("journal:\n  capacity: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TRINITI_JOURNAL_CAPACITY", "7")
	t.Setenv("TRINITI_SIM_LATENCY", "0s")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Journal.Capacity != 7 {
		t.Fatalf("expected env capacity 7, got %d", cfg.Journal.Capacity)
	}
	if cfg.Simulator.Latency != 0 {
		t.Fatalf("expected zero latency from env, got %v", cfg.Simulator.Latency)
	}
}

func TestLoadFromRejectsInvalidCapacity(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triniti.yaml")
	if err := os.WriteFile(path, []byte("journal:\n  capacity: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected validation error for capacity 0")
	}
}

func TestLoadFromRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triniti.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected parse error for malformed YAML")
	}
}
