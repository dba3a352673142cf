package game

import "github.com/petscii/snake64/internal/core"

// Interior cells where the fruit may appear: everything inside the
// border rows/columns.
const (
	FruitMinX = 1
	FruitMaxX = core.ScreenW - 2
	FruitMinY = core.BorderTop + 1
	FruitMaxY = core.BorderBottom - 1
)

// Fruit is a transient marker on the grid plus its remembered
// coordinates. Exactly one fruit is present during play.
type Fruit struct {
	pos core.Point
}

// Place picks a uniformly random empty interior cell, marks it with the
// fruit glyph and remembers it. The rejection loop has no retry bound;
// the snake caps out at MaxLength cells, far below the interior size,
// so the board can never saturate.
func (f *Fruit) Place(grid core.Grid, rng core.RandomSource) {
	for {
		x := rng.Uniform(FruitMinX, FruitMaxX)
		y := rng.Uniform(FruitMinY, FruitMaxY)
		if grid.GetCell(x, y) != core.GlyphSpace {
			continue
		}
		grid.PutCell(x, y, core.GlyphFruit, core.ColorRed)
		f.pos = core.Point{X: x, Y: y}
		return
	}
}

// Pos returns the remembered fruit coordinates.
func (f *Fruit) Pos() core.Point { return f.pos }
