// Package config provides YAML-based tuning for the game: the speed
// curve bounds and the frame counts that pace the ready, collision and
// pause sequences.
package config

// Config is the full tuning file.
type Config struct {
	Speed   SpeedConfig   `yaml:"speed"`
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
}

// SpeedConfig shapes the length-to-delay curve.
type SpeedConfig struct {
	MinDelayFrames int `yaml:"min_delay_frames"` // fastest advance interval
	MaxDelayFrames int `yaml:"max_delay_frames"` // slowest advance interval
	CurveScale     int `yaml:"curve_scale"`      // quadratic ramp factor
}

// TimingConfig holds the frame counts for the state sequences.
type TimingConfig struct {
	ReadyFrames            int `yaml:"ready_frames"`
	CollideFrames          int `yaml:"collide_frames"`
	PauseFlashFrames       int `yaml:"pause_flash_frames"`
	HighScoreFlashToggles  int `yaml:"highscore_flash_toggles"`
	HighScoreFlashInterval int `yaml:"highscore_flash_interval"`
}

// DisplayConfig holds platform-level display settings.
type DisplayConfig struct {
	FPS int `yaml:"fps"` // frame rate; 50 matches the PAL refresh the pacing was tuned for
}
