package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadServerEnvDefaults(t *testing.T) {
	cfg, err := LoadServerEnv()
	if err != nil {
		t.Fatalf("LoadServerEnv() error: %v", err)
	}

	expected := ServerEnv{
		Address:     ":23234",
		DBPath:      "~/.huehunt/scores.db",
		IdleTimeout: 30 * time.Minute,
		LogLevel:    "info",
	}
	if cfg != expected {
		t.Errorf("LoadServerEnv() = %+v, expected %+v", cfg, expected)
	}
}

func TestLoadServerEnvOverrides(t *testing.T) {
	t.Setenv("HUEHUNT_SSH_ADDR", "127.0.0.1:2222")
	t.Setenv("HUEHUNT_HOST_KEY", "/tmp/key")
	t.Setenv("HUEHUNT_IDLE_TIMEOUT", "90s")
	t.Setenv("HUEHUNT_LOG_LEVEL", "debug")

	cfg, err := LoadServerEnv()
	if err != nil {
		t.Fatalf("LoadServerEnv() error: %v", err)
	}
	if cfg.Address != "127.0.0.1:2222" || cfg.HostKeyPath != "/tmp/key" {
		t.Errorf("address/key = %q/%q", cfg.Address, cfg.HostKeyPath)
	}
	if cfg.IdleTimeout != 90*time.Second || cfg.LogLevel != "debug" {
		t.Errorf("timeout/level = %v/%q", cfg.IdleTimeout, cfg.LogLevel)
	}
}

func TestLoadServerEnvError(t *testing.T) {
	t.Setenv("HUEHUNT_IDLE_TIMEOUT", "soon")

	_, err := LoadServerEnv()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
