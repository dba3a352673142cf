package audio

import "github.com/petscii/snake64/internal/core"

// Voice assignment:
//
//	voice 1 - death slide
//	voice 2 - step and pickup beeps
//	voice 3 - high-score coin arpeggio
const (
	voiceDeath = 0
	voiceSFX   = 1
	voiceCoin  = 2
)

// Death slide parameters: a sawtooth starting fairly high and sliding
// down every frame until its lifetime runs out.
const (
	deathFrames    = 24
	deathStartFreq = 0x0C00
	deathFloorFreq = 0x0200
	deathSlideStep = 0x0018
)

// Step and pickup beeps on the triangle voice.
const (
	stepFreqLow   = 0x0900
	stepFreqHigh  = 0x0B00
	stepBeepLife  = 6
	pickupFreq    = 0x1400
	pickupLife    = 14
)

// Upward arpeggio for the high-score coin sound.
var coinFreqs = []uint16{0x1800, 0x1C00, 0x2000, 0x2400}

const coinStepFrames = 3 // frames per arpeggio note

// Driver implements core.AudioFeedback over a SID register bus. Each
// voice is an independent timer state machine; Tick advances all three
// once per frame regardless of game state.
type Driver struct {
	bus Bus

	stepToggle bool

	// Voice 1 death slide.
	deathLeft int
	deathFreq uint16
	v1Ctrl    byte // shadow of the control register

	// Voice 2 beep lifetime.
	sfxLeft int
	v2Ctrl  byte

	// Voice 3 coin arpeggio.
	coinActive bool
	coinTimer  int
	coinIndex  int
	v3Ctrl     byte
}

// NewDriver initializes the chip (volume, envelopes, waveforms, gates
// off) and returns a ready driver.
func NewDriver(bus Bus) *Driver {
	d := &Driver{bus: bus}

	// Master volume 15, no filter.
	bus.Poke(RegModeVol, 0x0F)

	// Voice 1: sawtooth, fast attack, short decay.
	d.pokeVoice(voiceDeath, regAD, 0x28)
	d.pokeVoice(voiceDeath, regSR, 0x88)
	d.pokeVoice(voiceDeath, regPWLo, 0x00)
	d.pokeVoice(voiceDeath, regPWHi, 0x08)
	d.v1Ctrl = CtrlSaw
	d.pokeVoice(voiceDeath, regCtrl, d.v1Ctrl)

	// Voice 2: triangle, the general SFX voice.
	d.pokeVoice(voiceSFX, regAD, 0x48)
	d.pokeVoice(voiceSFX, regSR, 0x88)
	d.v2Ctrl = CtrlTri
	d.pokeVoice(voiceSFX, regCtrl, d.v2Ctrl)

	// Voice 3: pulse, for the coin arpeggio.
	d.pokeVoice(voiceCoin, regAD, 0x28)
	d.pokeVoice(voiceCoin, regSR, 0x88)
	d.pokeVoice(voiceCoin, regPWLo, 0x00)
	d.pokeVoice(voiceCoin, regPWHi, 0x08)
	d.v3Ctrl = CtrlRect
	d.pokeVoice(voiceCoin, regCtrl, d.v3Ctrl)

	return d
}

func (d *Driver) pokeVoice(v int, reg uint16, value byte) {
	d.bus.Poke(voiceBase(v)+reg, value)
}

func (d *Driver) setFreq(v int, freq uint16) {
	d.pokeVoice(v, regFreqLo, byte(freq))
	d.pokeVoice(v, regFreqHi, byte(freq>>8))
}

// OnStep plays a short beep alternating between two mid-range pitches.
func (d *Driver) OnStep() {
	freq := uint16(stepFreqLow)
	if d.stepToggle {
		freq = stepFreqHigh
	}
	d.stepToggle = !d.stepToggle

	d.setFreq(voiceSFX, freq)
	d.v2Ctrl = CtrlTri | CtrlGate
	d.pokeVoice(voiceSFX, regCtrl, d.v2Ctrl)
	d.sfxLeft = stepBeepLife
}

// OnPickup plays a brighter, longer beep on the SFX voice.
func (d *Driver) OnPickup() {
	d.setFreq(voiceSFX, pickupFreq)
	d.v2Ctrl = CtrlTri | CtrlGate
	d.pokeVoice(voiceSFX, regCtrl, d.v2Ctrl)
	d.sfxLeft = pickupLife
}

// OnHighScore starts (or restarts) the coin arpeggio.
func (d *Driver) OnHighScore() {
	d.coinActive = true
	d.coinIndex = 0
	d.setFreq(voiceCoin, coinFreqs[0])
	d.v3Ctrl = CtrlRect | CtrlGate
	d.pokeVoice(voiceCoin, regCtrl, d.v3Ctrl)
	d.coinTimer = coinStepFrames
}

// OnDeath starts the descending game-over slide.
func (d *Driver) OnDeath() {
	d.deathLeft = deathFrames
	d.deathFreq = deathStartFreq
	d.setFreq(voiceDeath, d.deathFreq)
	d.v1Ctrl = CtrlSaw | CtrlGate
	d.pokeVoice(voiceDeath, regCtrl, d.v1Ctrl)
}

// Tick advances every voice timer by one frame.
func (d *Driver) Tick() {
	if d.deathLeft > 0 {
		d.deathLeft--
		if d.deathFreq > deathFloorFreq {
			d.deathFreq -= deathSlideStep
		}
		d.setFreq(voiceDeath, d.deathFreq)
		if d.deathLeft == 0 {
			d.v1Ctrl &^= CtrlGate
			d.pokeVoice(voiceDeath, regCtrl, d.v1Ctrl)
		}
	}

	if d.sfxLeft > 0 {
		d.sfxLeft--
		if d.sfxLeft == 0 {
			d.v2Ctrl &^= CtrlGate
			d.pokeVoice(voiceSFX, regCtrl, d.v2Ctrl)
		}
	}

	if d.coinActive {
		if d.coinTimer > 0 {
			d.coinTimer--
		}
		if d.coinTimer == 0 {
			d.coinIndex++
			if d.coinIndex >= len(coinFreqs) {
				d.coinActive = false
				d.v3Ctrl &^= CtrlGate
				d.pokeVoice(voiceCoin, regCtrl, d.v3Ctrl)
			} else {
				d.setFreq(voiceCoin, coinFreqs[d.coinIndex])
				d.coinTimer = coinStepFrames
			}
		}
	}
}

// StopAll silences every voice and resets the driver state.
func (d *Driver) StopAll() {
	d.deathLeft = 0
	d.sfxLeft = 0
	d.coinActive = false
	d.coinTimer = 0
	d.coinIndex = 0
	d.stepToggle = false

	d.v1Ctrl &^= CtrlGate
	d.pokeVoice(voiceDeath, regCtrl, d.v1Ctrl)
	d.v2Ctrl &^= CtrlGate
	d.pokeVoice(voiceSFX, regCtrl, d.v2Ctrl)
	d.v3Ctrl &^= CtrlGate
	d.pokeVoice(voiceCoin, regCtrl, d.v3Ctrl)
}

var _ core.AudioFeedback = (*Driver)(nil)
