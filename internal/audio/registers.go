// Package audio implements the three-voice sound driver: small
// envelope and arpeggio state machines per voice, triggered by game
// events and advanced once per display frame. The driver talks to a
// SID-style register bus, so the same logic runs against the in-memory
// register file used here and in tests, or against a real chip adapter.
package audio

// SID register layout, $D400 base. Each voice occupies seven registers.
const (
	SIDBase = 0xD400

	regFreqLo = 0 // voice-relative offsets
	regFreqHi = 1
	regPWLo   = 2
	regPWHi   = 3
	regCtrl   = 4
	regAD     = 5
	regSR     = 6

	voiceRegs = 7

	RegModeVol = SIDBase + 24 // master volume / filter mode

	RegCount = 29
)

// voiceBase returns the base address of voice v (0..2).
func voiceBase(v int) uint16 {
	return uint16(SIDBase + v*voiceRegs)
}

// Control register bits.
const (
	CtrlGate  = 0x01
	CtrlSync  = 0x02
	CtrlRing  = 0x04
	CtrlTest  = 0x08
	CtrlTri   = 0x10
	CtrlSaw   = 0x20
	CtrlRect  = 0x40
	CtrlNoise = 0x80
)

// Bus is the register write surface the driver drives. Reads are never
// needed; the driver keeps shadow copies of the control bytes.
type Bus interface {
	Poke(addr uint16, value byte)
}

// RegisterFile is an in-memory Bus capturing the last written value of
// each register. It stands in for the memory-mapped chip and lets tests
// assert on gate and frequency writes.
type RegisterFile struct {
	regs [RegCount]byte
}

// Poke stores a register write. Addresses outside the chip's range are
// ignored.
func (f *RegisterFile) Poke(addr uint16, value byte) {
	if addr < SIDBase || addr >= SIDBase+RegCount {
		return
	}
	f.regs[addr-SIDBase] = value
}

// Peek returns the last value written to a register.
func (f *RegisterFile) Peek(addr uint16) byte {
	if addr < SIDBase || addr >= SIDBase+RegCount {
		return 0
	}
	return f.regs[addr-SIDBase]
}
