package game

import "github.com/petscii/snake64/internal/core"

// HUD layout on row 0.
const (
	hudRow        = 0
	hudScoreLabel = 1
	hudScoreX     = 8
	hudSpeedLabel = 16
	hudSpeedX     = 21
	hudHighLabel  = 33
	hudHighX      = 36
)

// hud owns the score/speed/high-score readout. Numbers are redrawn only
// when the value changed since the last refresh; beating the high score
// schedules a short visibility flash of the high-score digits.
type hud struct {
	flashInterval int

	lastScore int
	lastSpeed int
	lastHigh  int

	flashToggles int // toggles remaining
	flashTimer   int // frames until next toggle
	flashOn      bool
}

// Init draws the static labels and forces the next Refresh to redraw
// every number.
func (h *hud) Init(grid core.Grid) {
	for x := 0; x < core.ScreenW; x++ {
		grid.PutCell(x, hudRow, core.GlyphSpace, core.ColorBlack)
	}
	grid.PrintText(hudScoreLabel, hudRow, "SCORE:", core.ColorLightGrey)
	grid.PrintText(hudSpeedLabel, hudRow, "SPD:", core.ColorLightGrey)
	grid.PrintText(hudHighLabel, hudRow, "HI:", core.ColorLightGrey)

	h.lastScore = -1
	h.lastSpeed = -1
	h.lastHigh = -1
	h.flashToggles = 0
	h.flashTimer = 0
	h.flashOn = false
}

// FlashHighScore schedules the given number of visibility toggles,
// starting visible and toggling on the next Refresh.
func (h *hud) FlashHighScore(toggles int) {
	h.flashToggles = toggles
	h.flashTimer = 0
	h.flashOn = true
	h.lastHigh = -1 // force a redraw once the flash ends
}

// Refresh updates the numeric readouts, redrawing only changed values,
// and advances the high-score flash.
func (h *hud) Refresh(grid core.Grid, score, speed, high int) {
	if score != h.lastScore {
		grid.PrintNumber(hudScoreX, hudRow, score, 3, core.ColorWhite)
		h.lastScore = score
	}

	if speed != h.lastSpeed {
		grid.PrintNumber(hudSpeedX, hudRow, speed, 2, core.ColorWhite)
		h.lastSpeed = speed
	}

	if h.flashToggles > 0 {
		if h.flashTimer > 0 {
			h.flashTimer--
			return
		}
		h.flashTimer = h.flashInterval
		h.flashOn = !h.flashOn
		h.flashToggles--
		if h.flashOn {
			grid.PrintNumber(hudHighX, hudRow, high, 3, core.ColorWhite)
		} else {
			grid.PrintText(hudHighX, hudRow, "   ", core.ColorBlack)
		}
		return
	}

	if high != h.lastHigh {
		grid.PrintNumber(hudHighX, hudRow, high, 3, core.ColorWhite)
		h.lastHigh = high
	}
}
