package game

import (
	"testing"

	"github.com/petscii/snake64/internal/core"
)

func TestSnakeInit(t *testing.T) {
	screen := core.NewScreen()
	var s Snake
	s.Init(screen)

	if s.Head() != (core.Point{X: 20, Y: 13}) {
		t.Errorf("head = %+v, expected the playfield center", s.Head())
	}
	if s.Dir() != (core.Point{X: 1, Y: 0}) {
		t.Errorf("dir = %+v, expected heading right", s.Dir())
	}
	if s.Length() != 1 {
		t.Errorf("length = %d, expected 1", s.Length())
	}
	if screen.GetCell(20, 13) != core.GlyphSnake {
		t.Error("head not drawn")
	}
}

func TestSteer(t *testing.T) {
	tests := []struct {
		name     string
		start    core.Point
		dx, dy   int
		expected core.Point
	}{
		{"perpendicular up", core.Point{X: 1, Y: 0}, 0, -1, core.Point{X: 0, Y: -1}},
		{"perpendicular down", core.Point{X: -1, Y: 0}, 0, 1, core.Point{X: 0, Y: 1}},
		{"perpendicular left", core.Point{X: 0, Y: 1}, -1, 0, core.Point{X: -1, Y: 0}},
		{"parallel ignored", core.Point{X: 1, Y: 0}, 1, 0, core.Point{X: 1, Y: 0}},
		{"reverse ignored", core.Point{X: 1, Y: 0}, -1, 0, core.Point{X: 1, Y: 0}},
		{"reverse vertical ignored", core.Point{X: 0, Y: -1}, 0, 1, core.Point{X: 0, Y: -1}},
		{"both axes ignored", core.Point{X: 1, Y: 0}, 1, -1, core.Point{X: 1, Y: 0}},
		{"both axes ignored vertical", core.Point{X: 0, Y: 1}, -1, 1, core.Point{X: 0, Y: 1}},
		{"no input", core.Point{X: 1, Y: 0}, 0, 0, core.Point{X: 1, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Snake{dir: tc.start}
			s.Steer(tc.dx, tc.dy)
			if s.dir != tc.expected {
				t.Errorf("Steer(%d, %d) from %+v gives %+v, expected %+v",
					tc.dx, tc.dy, tc.start, s.dir, tc.expected)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	rng := &queueRand{vals: []int{5, 5}}
	g, screen := newTestGame(fastTuning(), &scriptInput{}, rng, &spyAudio{})
	g.Tick()
	g.Tick() // playing

	// Long enough that turning back into the trail is fatal.
	g.snake.length = 5
	for i := 0; i < 4; i++ {
		g.Tick()
	}
	if g.State() != StatePlaying {
		t.Fatalf("state = %v, expected playing with a visible trail", g.State())
	}
	if screen.GetCell(22, 13) != core.GlyphSnake {
		t.Fatal("expected a body cell behind the head")
	}

	// U-turn over two ticks: up, then right-to-left is blocked so go
	// left, landing on the body cell one row back.
	g.snake.Steer(0, -1)
	if g.Advance() != Moved {
		t.Fatal("upward step should be clear")
	}
	g.snake.Steer(-1, 0)
	if g.Advance() != Moved {
		t.Fatal("leftward step should be clear")
	}
	g.snake.Steer(0, 1)
	if g.Advance() != Collided {
		t.Error("stepping onto the body should collide")
	}
}

func TestLengthSaturates(t *testing.T) {
	rng := &queueRand{vals: []int{5, 5}}
	g, screen := newTestGame(fastTuning(), &scriptInput{}, rng, &spyAudio{})
	g.Tick()
	g.Tick()

	g.snake.length = MaxLength
	screen.PutCell(21, 13, core.GlyphFruit, core.ColorRed)
	g.fruit.pos = core.Point{X: 21, Y: 13}

	if g.Advance() != Moved {
		t.Fatal("eating the fruit should not collide")
	}
	if g.snake.length != MaxLength {
		t.Errorf("length = %d, expected saturation at %d", g.snake.length, MaxLength)
	}
	if g.score != 1 {
		t.Errorf("score = %d, eating must still count at maximum length", g.score)
	}
}

func TestCollisionLeavesBoardUntouched(t *testing.T) {
	rng := &queueRand{vals: []int{5, 5}}
	g, screen := newTestGame(fastTuning(), &scriptInput{}, rng, &spyAudio{})
	g.Tick()
	g.Tick()

	// Walk the head to the cell just inside the right border.
	for g.snake.head.X < core.ScreenW-2 {
		if g.Advance() != Moved {
			t.Fatal("path to the border should be clear")
		}
	}

	fruitBefore := g.fruit.pos
	if g.Advance() != Collided {
		t.Fatal("expected a border collision")
	}

	// No mutation on the colliding step: the border cell keeps its
	// glyph, the fruit stays put and the score is unchanged.
	if screen.GetCell(core.ScreenW-1, 13) != core.GlyphBlock {
		t.Error("border cell was overwritten")
	}
	if g.fruit.pos != fruitBefore {
		t.Error("fruit moved on a colliding step")
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected 0", g.score)
	}
}
