package game

import "github.com/petscii/snake64/internal/core"

// BodyCapacity is the fixed size of the body ring buffer. One slot is
// reserved for the shifting logic, so length saturates at MaxLength.
const (
	BodyCapacity = 256
	MaxLength    = BodyCapacity - 1
)

// Start position and direction of a fresh snake: the visual center of
// the playfield, heading right.
var (
	snakeStart    = core.Point{X: 20, Y: 13}
	snakeStartDir = core.Point{X: 1, Y: 0}
)

// MoveResult is the outcome of one Advance. Collision is a normal
// terminal result of gameplay, not an error.
type MoveResult int

const (
	Moved MoveResult = iota
	Collided
)

// Snake is the sole mutable game entity: a head, a unit direction with
// exactly one non-zero axis, and a ring buffer of the previous head
// cells that are still occupied.
type Snake struct {
	head   core.Point
	dir    core.Point
	body   [BodyCapacity]core.Point
	length int // occupied body cells, 1..MaxLength
	pos    int // next write slot, wraps mod BodyCapacity
}

// Init resets the snake for a new session and draws its head.
func (s *Snake) Init(grid core.Grid) {
	s.length = 1
	s.pos = 0
	s.head = snakeStart
	s.dir = snakeStartDir
	grid.PutCell(s.head.X, s.head.Y, core.GlyphSnake, core.ColorWhite)
}

// Steer applies direction input. Only perpendicular turns are honored:
// a horizontal snake takes vertical input and vice versa. Input
// parallel to the current direction, or on both axes at once, is
// ignored, which makes an instant U-turn impossible and keeps exactly
// one axis active.
func (s *Snake) Steer(dx, dy int) {
	if dx != 0 && dy != 0 {
		return
	}
	if s.dir.X != 0 && dy != 0 {
		s.dir = core.Point{X: 0, Y: dy}
	} else if s.dir.Y != 0 && dx != 0 {
		s.dir = core.Point{X: dx, Y: 0}
	}
}

// Head returns the current head cell.
func (s *Snake) Head() core.Point { return s.head }

// Dir returns the current direction vector.
func (s *Snake) Dir() core.Point { return s.dir }

// Length returns the number of occupied body cells.
func (s *Snake) Length() int { return s.length }

// bodyCell returns the i-th most recent body cell, i in [0, length).
func (s *Snake) bodyCell(i int) core.Point {
	return s.body[(s.pos-1-i+BodyCapacity)%BodyCapacity]
}

// Advance moves the snake one cell: the head is pushed into the body
// ring, the new head cell is classified, and the trailing cell that
// fell outside the pre-growth length window is erased. Consuming the
// fruit grows the snake (saturating at MaxLength), scores a point and
// may raise the high score. Hitting anything else reports Collided with
// no further mutation.
func (g *Game) Advance() MoveResult {
	s := &g.snake

	g.audio.OnStep()

	// Promote the head to the newest body cell and repaint it in the
	// body color.
	s.body[s.pos] = s.head
	s.pos = (s.pos + 1) % BodyCapacity
	g.grid.PutCell(s.head.X, s.head.Y, core.GlyphSnake, core.ColorLightBlue)

	// The trailing slot is fixed before any growth this tick; on a
	// growth tick the same slot is erased again next tick as a no-op,
	// which is what lets the tail stay put for one frame.
	tail := s.body[(s.pos-s.length+BodyCapacity)%BodyCapacity]

	s.head = s.head.Add(s.dir)
	ch := g.grid.GetCell(s.head.X, s.head.Y)

	if ch != core.GlyphSpace && ch != core.GlyphFruit {
		// Wall or body. Leave the board as it stands.
		return Collided
	}

	g.grid.PutCell(s.head.X, s.head.Y, core.GlyphSnake, core.ColorWhite)

	if ch == core.GlyphFruit {
		if s.length < MaxLength {
			s.length++
		}
		g.fruit.Place(g.grid, g.rng)
		g.score++
		if g.score > g.highScore {
			g.highScore = g.score
			g.hud.FlashHighScore(g.tuning.HighScoreFlashToggles)
			g.audio.OnHighScore()
		}
		g.audio.OnPickup()
	}

	g.grid.PutCell(tail.X, tail.Y, core.GlyphSpace, core.ColorBlack)

	// Self-healing check: if the remembered fruit cell no longer shows
	// the fruit glyph and the head is not sitting on it, respawn. The
	// tail erase above can land on the fruit cell when the body history
	// contains stale coordinates after saturation.
	fp := g.fruit.Pos()
	if g.grid.GetCell(fp.X, fp.Y) != core.GlyphFruit && s.head != fp {
		g.fruit.Place(g.grid, g.rng)
	}

	return Moved
}
