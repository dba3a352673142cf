package tui

import "github.com/petscii/snake64/internal/core"

// keyboardInput buffers key events into the sample the engine polls on
// its next tick. Terminal input is event based, so a key press is held
// for exactly one poll; the engine's edge detection sees a rising edge
// followed by a release, which matches how the original sampled its
// button line.
type keyboardInput struct {
	next core.InputSample
}

// Poll returns the buffered sample and clears it.
func (k *keyboardInput) Poll() core.InputSample {
	s := k.next
	k.next = core.InputSample{}
	return s
}

func (k *keyboardInput) direction(dx, dy int) {
	k.next.DX = dx
	k.next.DY = dy
}

func (k *keyboardInput) button() {
	k.next.Button = true
}

var _ core.InputSource = (*keyboardInput)(nil)
