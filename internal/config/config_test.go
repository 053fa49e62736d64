package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultHueHuntConfigIsValid(t *testing.T) {
	cfg := DefaultHueHuntConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() on defaults failed: %v", err)
	}
	if cfg.TickInterval() != time.Second {
		t.Errorf("TickInterval() = %v, expected 1s", cfg.TickInterval())
	}
	if cfg.ShakeDuration() != 300*time.Millisecond {
		t.Errorf("ShakeDuration() = %v, expected 300ms", cfg.ShakeDuration())
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parseHueHunt(GetDefaultYAML("huehunt"))
	if err != nil {
		t.Fatalf("parseHueHunt(embedded) failed: %v", err)
	}
	if cfg != DefaultHueHuntConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultHueHuntConfig())
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("GetDefaultYAML should return nil for unknown games")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HueHuntConfig)
	}{
		{"zero round", func(c *HueHuntConfig) { c.Round.Seconds = 0 }},
		{"zero tick", func(c *HueHuntConfig) { c.Round.TickIntervalMS = 0 }},
		{"negative shake", func(c *HueHuntConfig) { c.Round.ShakeMS = -1 }},
		{"grid too small", func(c *HueHuntConfig) { c.Grid.MaxSize = 1 }},
		{"grid too large", func(c *HueHuntConfig) { c.Grid.MaxSize = 11 }},
		{"zero contrast", func(c *HueHuntConfig) { c.Contrast.Base = 0 }},
		{"negative stage factor", func(c *HueHuntConfig) { c.Contrast.StageFactor = -0.1 }},
		{"ceiling above one", func(c *HueHuntConfig) { c.Color.LightnessCeiling = 1.5 }},
		{"saturation out of range", func(c *HueHuntConfig) { c.Color.SaturationSpan = 0.8 }},
		{"negative lightness", func(c *HueHuntConfig) { c.Color.LightnessMin = -0.1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHueHuntConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error %v should wrap ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadHueHuntCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("round:\n  seconds: 30\ngrid:\n  max_size: 6\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHueHunt(path)
	if err != nil {
		t.Fatalf("LoadHueHunt() failed: %v", err)
	}
	if cfg.Round.Seconds != 30 {
		t.Errorf("Round.Seconds = %d, expected 30", cfg.Round.Seconds)
	}
	if cfg.Grid.MaxSize != 6 {
		t.Errorf("Grid.MaxSize = %d, expected 6", cfg.Grid.MaxSize)
	}
	// Unset keys keep their defaults
	if cfg.Round.ShakeMS != 300 || cfg.Contrast.Base != 0.25 {
		t.Errorf("partial config lost defaults: %+v", cfg)
	}
}

func TestLoadHueHuntCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadHueHunt(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadHueHunt() should fail for a missing file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("round: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadHueHunt(bad); err == nil {
		t.Error("LoadHueHunt() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  max_size: 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadHueHunt(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadHueHunt() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadHueHuntSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Nothing on disk: embedded default
	cfg, err := LoadHueHunt("")
	if err != nil {
		t.Fatalf("LoadHueHunt() failed: %v", err)
	}
	if cfg != DefaultHueHuntConfig() {
		t.Errorf("expected embedded default, got %+v", cfg)
	}

	// Local ./configs file is picked up
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "huehunt.yaml"), []byte("round:\n  seconds: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadHueHunt("")
	if cfg.Round.Seconds != 20 {
		t.Errorf("local config: Round.Seconds = %d, expected 20", cfg.Round.Seconds)
	}

	// User config wins over the local one
	userDir := filepath.Join(home, AppDir, "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "huehunt.yaml"), []byte("round:\n  seconds: 10\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadHueHunt("")
	if cfg.Round.Seconds != 10 {
		t.Errorf("user config: Round.Seconds = %d, expected 10", cfg.Round.Seconds)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"easy", 90},
		{"normal", 60},
		{"hard", 45},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			preset, err := ParseDifficultyPreset(tc.input)
			if err != nil {
				t.Fatalf("ParseDifficultyPreset(%q) failed: %v", tc.input, err)
			}
			cfg := DefaultHueHuntConfig()
			ApplyHueHuntPreset(&cfg, preset)
			if cfg.Round.Seconds != tc.expected {
				t.Errorf("Round.Seconds = %d, expected %d", cfg.Round.Seconds, tc.expected)
			}
		})
	}

	cfg := DefaultHueHuntConfig()
	cfg.Round.Seconds = 17
	ApplyHueHuntPreset(&cfg, "")
	if cfg.Round.Seconds != 17 {
		t.Error("empty preset should leave the config untouched")
	}

	if _, err := ParseDifficultyPreset("fixed"); err == nil {
		t.Error("ParseDifficultyPreset(\"fixed\") should fail")
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandHome("~/.huehunt/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if expected := filepath.Join(home, ".huehunt", "scores.db"); got != expected {
		t.Errorf("ExpandHome() = %q, expected %q", got, expected)
	}

	if got, _ := ExpandHome("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("ExpandHome() changed an absolute path: %q", got)
	}
}
