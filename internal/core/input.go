package core

// InputSample is one frame's worth of player input: a direction on each
// axis (-1, 0 or +1) and the pause button level. Whether the sample
// came from an arrow-key or WASD scheme is decided by the platform
// layer; the engine only sees the abstract signal.
type InputSample struct {
	DX, DY int
	Button bool
}

// InputSource is polled exactly once per tick by the state machine.
type InputSource interface {
	Poll() InputSample
}

// NopInput is an InputSource that never reports input.
type NopInput struct{}

// Poll returns an empty sample.
func (NopInput) Poll() InputSample { return InputSample{} }
