package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory for configs, scores and host keys.
const AppDir = ".huehunt"

// LoadHueHunt loads Hue Hunt configuration.
// Search order: customPath -> ~/.huehunt/configs/huehunt.yaml -> ./configs/huehunt.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadHueHunt(customPath string) (HueHuntConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HueHuntConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseHueHunt(data)
		if err != nil {
			return HueHuntConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("huehunt.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseHueHunt(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "huehunt.yaml")); err == nil {
		if cfg, err := parseHueHunt(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseHueHunt(defaultHueHuntYAML)
	if err != nil {
		return DefaultHueHuntConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseHueHunt decodes YAML over the built-in defaults and validates the result.
func parseHueHunt(data []byte) (HueHuntConfig, error) {
	cfg := DefaultHueHuntConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HueHuntConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return HueHuntConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
