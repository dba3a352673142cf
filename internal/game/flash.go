package game

import "github.com/petscii/snake64/internal/core"

// flashColors is the ordered palette cycled over the snake body while
// the collision state runs.
var flashColors = []core.Color{
	core.ColorYellow,
	core.ColorWhite,
	core.ColorLightGrey,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorRed,
	core.ColorMedGrey,
	core.ColorDarkGrey,
}

// flashIndex maps the remaining collision countdown to a palette index,
// so the cycle is synchronized to elapsed collision time rather than a
// separate counter.
func flashIndex(total, remaining int) int {
	step := core.Max(1, total/len(flashColors))
	return core.Clamp((total-remaining)/step, 0, len(flashColors)-1)
}

// renderCollisionFlash repaints every occupied body cell in the palette
// color for the current frame of the collision countdown.
func (g *Game) renderCollisionFlash() {
	c := flashColors[flashIndex(g.tuning.CollideFrames, g.count)]
	for i := 0; i < g.snake.length; i++ {
		p := g.snake.bodyCell(i)
		g.grid.PutCell(p.X, p.Y, core.GlyphSnake, c)
	}
}
