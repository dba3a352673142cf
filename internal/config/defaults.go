package config

import (
	_ "embed"
)

//go:embed defaults/snake64.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the
// final fallback if the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Speed: SpeedConfig{
			MinDelayFrames: 4,
			MaxDelayFrames: 20,
			CurveScale:     6,
		},
		Timing: TimingConfig{
			ReadyFrames:            32,
			CollideFrames:          120,
			PauseFlashFrames:       30,
			HighScoreFlashToggles:  6,
			HighScoreFlashInterval: 4,
		},
		Display: DisplayConfig{
			FPS: 50,
		},
	}
}
