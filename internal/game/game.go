package game

import "github.com/petscii/snake64/internal/core"

// State is the top-level game state.
type State int

const (
	StateReady State = iota
	StatePlaying
	StateCollide
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateCollide:
		return "collide"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Game is the single session instance. All state lives here and is
// mutated only from the frame tick; there is one Game per process and
// the engine must never be ticked re-entrantly.
type Game struct {
	grid   core.Grid
	input  core.InputSource
	audio  core.AudioFeedback
	rng    core.RandomSource
	tuning Tuning

	state State
	count int // per-state frame countdown
	snake Snake
	fruit Fruit

	score     int
	highScore int // survives session resets, process lifetime only

	prevButton bool // previous frame's button sample, for edge detection
	pause      pauseOverlay
	hud        hud

	splashPending bool
}

// New wires a game over its capabilities. Call Start to draw the
// playfield and begin the ready countdown.
func New(grid core.Grid, input core.InputSource, audio core.AudioFeedback, rng core.RandomSource, tuning Tuning) *Game {
	g := &Game{
		grid:   grid,
		input:  input,
		audio:  audio,
		rng:    rng,
		tuning: tuning,
	}
	g.pause.flashEvery = tuning.PauseFlashFrames
	g.hud.flashInterval = tuning.HighScoreFlashInterval
	return g
}

// Start (re)enters the ready state, clearing and redrawing the
// playfield. The platform calls it at startup and again whenever the
// splash screen is dismissed.
func (g *Game) Start() {
	g.setState(StateReady)
}

// Reseed feeds fresh entropy to the random source.
func (g *Game) Reseed(seed int64) {
	g.rng.Reseed(seed)
}

// Frame runs one full display frame in the fixed order: audio timers
// first, then one state-machine tick, then the HUD readout.
func (g *Game) Frame() {
	g.audio.Tick()
	g.Tick()
	g.refreshHUD()
}

// Tick runs one state-machine step. Exposed separately so tests can
// drive the machine without audio or HUD effects.
func (g *Game) Tick() {
	switch g.state {
	case StateReady:
		g.count--
		if g.count == 0 {
			g.setState(StatePlaying)
		}

	case StatePlaying:
		in := g.input.Poll()
		if in.Button && !g.prevButton {
			g.prevButton = true
			g.pause.Enter(g.grid)
			g.state = StatePaused
			return
		}
		g.prevButton = in.Button

		g.snake.Steer(in.DX, in.DY)

		g.count--
		if g.count == 0 {
			if g.Advance() == Collided {
				g.audio.OnDeath()
				g.setState(StateCollide)
			} else {
				g.count = g.tuning.DelayFrames(g.snake.length)
			}
		}

	case StateCollide:
		g.renderCollisionFlash()
		g.count--
		if g.count == 0 {
			g.audio.StopAll()
			g.splashPending = true
			g.setState(StateReady)
		}

	case StatePaused:
		in := g.input.Poll()
		if in.Button && !g.prevButton {
			g.prevButton = true
			g.pause.Exit(g.grid)
			g.state = StatePlaying
			return
		}
		g.prevButton = in.Button
		g.pause.Tick(g.grid)
	}
}

// setState transitions and runs the entry actions for the new state.
func (g *Game) setState(s State) {
	g.state = s

	switch s {
	case StateReady:
		g.grid.Clear()
		g.grid.DrawBorder()
		g.hud.Init(g.grid)
		g.count = g.tuning.ReadyFrames
		g.prevButton = false

	case StatePlaying:
		g.snake.Init(g.grid)
		g.score = 0
		g.fruit.Place(g.grid, g.rng)
		g.count = g.tuning.DelayFrames(g.snake.length)

	case StateCollide:
		g.count = g.tuning.CollideFrames

	case StatePaused:
	}
}

func (g *Game) refreshHUD() {
	delay := g.tuning.DelayFrames(g.snake.length)
	g.hud.Refresh(g.grid, g.score, g.tuning.SpeedReadout(delay), g.highScore)
}

// State returns the current top-level state.
func (g *Game) State() State { return g.state }

// Score returns the current session score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score of the process lifetime.
func (g *Game) HighScore() int { return g.highScore }

// TakeSplashRequest reports and clears the pending request to show the
// control-selection splash. Set when a collision sequence finishes.
func (g *Game) TakeSplashRequest() bool {
	v := g.splashPending
	g.splashPending = false
	return v
}
