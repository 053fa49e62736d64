// Package config provides YAML-based game configuration loading and
// difficulty presets for the game platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// HueHuntConfig contains all configuration for the Hue Hunt game.
type HueHuntConfig struct {
	Round    RoundConfig    `yaml:"round"`
	Grid     GridConfig     `yaml:"grid"`
	Color    ColorConfig    `yaml:"color"`
	Contrast ContrastConfig `yaml:"contrast"`
}

// RoundConfig defines countdown timing.
type RoundConfig struct {
	Seconds        int `yaml:"seconds"`
	TickIntervalMS int `yaml:"tick_interval_ms"`
	ShakeMS        int `yaml:"shake_ms"`
}

// GridConfig defines the board size cap.
type GridConfig struct {
	MaxSize int `yaml:"max_size"`
}

// ColorConfig defines the ranges the base color is drawn from.
type ColorConfig struct {
	SaturationMin    float64 `yaml:"saturation_min"`
	SaturationSpan   float64 `yaml:"saturation_span"`
	LightnessMin     float64 `yaml:"lightness_min"`
	LightnessSpan    float64 `yaml:"lightness_span"`
	LightnessCeiling float64 `yaml:"lightness_ceiling"`
}

// ContrastConfig defines the difficulty curve.
type ContrastConfig struct {
	Base        float64 `yaml:"base"`
	StageFactor float64 `yaml:"stage_factor"`
}

// Grid size bounds. A 1x1 grid has no odd cell to find and anything above
// 10x10 stops fitting a regular terminal.
const (
	MinGridSize = 2
	MaxGridSize = 10
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid value")

// TickInterval returns the countdown step as a duration.
func (c HueHuntConfig) TickInterval() time.Duration {
	return time.Duration(c.Round.TickIntervalMS) * time.Millisecond
}

// ShakeDuration returns how long the shake cue stays on.
func (c HueHuntConfig) ShakeDuration() time.Duration {
	return time.Duration(c.Round.ShakeMS) * time.Millisecond
}

// Validate checks that every value is usable by the game.
func (c HueHuntConfig) Validate() error {
	switch {
	case c.Round.Seconds <= 0:
		return fmt.Errorf("%w: round.seconds must be positive, got %d", ErrInvalidConfig, c.Round.Seconds)
	case c.Round.TickIntervalMS <= 0:
		return fmt.Errorf("%w: round.tick_interval_ms must be positive, got %d", ErrInvalidConfig, c.Round.TickIntervalMS)
	case c.Round.ShakeMS <= 0:
		return fmt.Errorf("%w: round.shake_ms must be positive, got %d", ErrInvalidConfig, c.Round.ShakeMS)
	case c.Grid.MaxSize < MinGridSize || c.Grid.MaxSize > MaxGridSize:
		return fmt.Errorf("%w: grid.max_size must be in [%d, %d], got %d",
			ErrInvalidConfig, MinGridSize, MaxGridSize, c.Grid.MaxSize)
	case c.Contrast.Base <= 0:
		return fmt.Errorf("%w: contrast.base must be positive, got %g", ErrInvalidConfig, c.Contrast.Base)
	case c.Contrast.StageFactor < 0:
		return fmt.Errorf("%w: contrast.stage_factor must not be negative, got %g", ErrInvalidConfig, c.Contrast.StageFactor)
	case c.Color.LightnessCeiling <= 0 || c.Color.LightnessCeiling > 1:
		return fmt.Errorf("%w: color.lightness_ceiling must be in (0, 1], got %g", ErrInvalidConfig, c.Color.LightnessCeiling)
	}

	if err := checkRange("saturation", c.Color.SaturationMin, c.Color.SaturationSpan); err != nil {
		return err
	}
	return checkRange("lightness", c.Color.LightnessMin, c.Color.LightnessSpan)
}

// checkRange verifies [min, min+span) lies inside [0, 1].
func checkRange(name string, lo, span float64) error {
	if lo < 0 || span < 0 || lo+span > 1 {
		return fmt.Errorf("%w: color.%s range [%g, %g) must lie in [0, 1]", ErrInvalidConfig, name, lo, lo+span)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset maps a CLI value to a preset.
// The empty string means "use the config as loaded".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// RoundSecondsForPreset returns the countdown length for a preset.
func RoundSecondsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 90
	case DifficultyHard:
		return 45
	default:
		return 60
	}
}

// ApplyHueHuntPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyHueHuntPreset(cfg *HueHuntConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Round.Seconds = RoundSecondsForPreset(preset)
}
