// Package game implements the snake engine: the movement and collision
// model, fruit placement, the speed curve, the collision flash, the
// pause overlay, the HUD and the four-state game state machine that
// sequences them. The package is pure logic over the capability
// interfaces in internal/core and is driven one tick per display frame.
package game

// Tuning collects the frame-count and curve parameters of the engine.
// Defaults reproduce the original cadence at 50 frames per second.
type Tuning struct {
	MinDelayFrames         int // fastest advance interval
	MaxDelayFrames         int // slowest advance interval
	CurveScale             int // how fast the speed curve ramps
	ReadyFrames            int // get-ready countdown
	CollideFrames          int // collision flash duration
	PauseFlashFrames       int // frames between pause banner toggles
	HighScoreFlashToggles  int // visibility toggles after a new high score
	HighScoreFlashInterval int // frames between those toggles
}

// DefaultTuning returns the reference parameters.
func DefaultTuning() Tuning {
	return Tuning{
		MinDelayFrames:         4,
		MaxDelayFrames:         20,
		CurveScale:             6,
		ReadyFrames:            32,
		CollideFrames:          120,
		PauseFlashFrames:       30,
		HighScoreFlashToggles:  6,
		HighScoreFlashInterval: 4,
	}
}
