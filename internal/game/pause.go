package game

import "github.com/petscii/snake64/internal/core"

const (
	pauseW = 11
	pauseH = 3
)

var pauseRegion = core.NewRect(
	(core.ScreenW-pauseW)/2,
	(core.ScreenH-pauseH)/2,
	pauseW, pauseH,
)

const pauseBanner = "GAME PAUSED"

// pauseOverlay flashes a banner over the playfield while the game is
// suspended. The covered region is snapshotted on entry and restored
// verbatim, never re-rendered, so the overlay is invisible to the rest
// of the engine.
type pauseOverlay struct {
	flashEvery int
	chars      [pauseH][pauseW]core.Glyph
	colors     [pauseH][pauseW]core.Color
	counter    int
	visible    bool
}

// Enter snapshots the banner region and resets the flash hidden.
func (p *pauseOverlay) Enter(grid core.Grid) {
	for y := 0; y < pauseH; y++ {
		for x := 0; x < pauseW; x++ {
			sx, sy := pauseRegion.X+x, pauseRegion.Y+y
			p.chars[y][x] = grid.GetCell(sx, sy)
			p.colors[y][x] = grid.CellColor(sx, sy)
		}
	}
	p.counter = 0
	p.visible = false
}

// Tick advances the flash timer, toggling between the banner and the
// backed-up region every flashEvery frames.
func (p *pauseOverlay) Tick(grid core.Grid) {
	p.counter++
	if p.counter < p.flashEvery {
		return
	}
	p.counter = 0
	if p.visible {
		p.restore(grid)
		p.visible = false
	} else {
		p.drawBanner(grid)
		p.visible = true
	}
}

// Exit restores the region if the banner is currently shown.
// Idempotent when already hidden.
func (p *pauseOverlay) Exit(grid core.Grid) {
	if p.visible {
		p.restore(grid)
		p.visible = false
	}
}

func (p *pauseOverlay) restore(grid core.Grid) {
	for y := 0; y < pauseH; y++ {
		for x := 0; x < pauseW; x++ {
			grid.PutCell(pauseRegion.X+x, pauseRegion.Y+y, p.chars[y][x], p.colors[y][x])
		}
	}
}

func (p *pauseOverlay) drawBanner(grid core.Grid) {
	for y := 0; y < pauseH; y++ {
		for x := 0; x < pauseW; x++ {
			sx, sy := pauseRegion.X+x, pauseRegion.Y+y
			if y == 1 {
				grid.PutCell(sx, sy, core.GlyphForChar(pauseBanner[x]), core.ColorYellow)
			} else {
				grid.PutCell(sx, sy, core.GlyphBlock, core.ColorDarkGrey)
			}
		}
	}
}
