package config

import (
	_ "embed"
)

//go:embed defaults/huehunt.yaml
var defaultHueHuntYAML []byte

// DefaultHueHuntConfig returns the built-in Hue Hunt configuration.
func DefaultHueHuntConfig() HueHuntConfig {
	return HueHuntConfig{
		Round: RoundConfig{
			Seconds:        60,
			TickIntervalMS: 1000,
			ShakeMS:        300,
		},
		Grid: GridConfig{
			MaxSize: 10,
		},
		Color: ColorConfig{
			SaturationMin:    0.5,
			SaturationSpan:   0.4,
			LightnessMin:     0.4,
			LightnessSpan:    0.2,
			LightnessCeiling: 0.9,
		},
		Contrast: ContrastConfig{
			Base:        0.25,
			StageFactor: 0.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "huehunt":
		return defaultHueHuntYAML
	default:
		return nil
	}
}
