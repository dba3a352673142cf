package game

import "github.com/petscii/snake64/internal/core"

// DelayFrames maps snake length to the advance interval in frames.
// Quadratic ease-in: early growth speeds the game up quickly, the curve
// flattens out near maximum length. Total and deterministic.
func (t Tuning) DelayFrames(length int) int {
	if length < 1 {
		length = 1
	}

	// Scale length so the effective maximum is reached sooner, then
	// clamp into byte range for the quadratic step.
	x := core.Clamp((length-1)*t.CurveScale, 0, 255)
	quad := x * x / 255

	delay := t.MaxDelayFrames - quad*(t.MaxDelayFrames-t.MinDelayFrames)/255
	if delay < t.MinDelayFrames {
		delay = t.MinDelayFrames
	}
	return delay
}

// SpeedMaxValue is the highest HUD speed readout.
func (t Tuning) SpeedMaxValue() int {
	return t.MaxDelayFrames - t.MinDelayFrames
}

// SpeedReadout inverts a frame delay into the 1..SpeedMaxValue number
// shown on the HUD.
func (t Tuning) SpeedReadout(delay int) int {
	if delay <= t.MinDelayFrames {
		return t.SpeedMaxValue()
	}
	if delay >= t.MaxDelayFrames {
		return 1
	}
	return core.Clamp(t.MaxDelayFrames-delay, 1, t.SpeedMaxValue())
}
