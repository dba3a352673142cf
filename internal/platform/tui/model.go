package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/petscii/snake64/internal/core"
	"github.com/petscii/snake64/internal/game"
)

// mode is the screen the model currently shows.
type mode int

const (
	modeSplash mode = iota
	modePlaying
)

// Options configures a game session.
type Options struct {
	FPS    int
	Seed   int64 // 0 means seed from the clock
	Tuning game.Tuning
	Audio  core.AudioFeedback

	// Scheme preselects the control scheme and skips the initial
	// splash when non-nil.
	Scheme *Scheme
}

// Model is the Bubble Tea model running the splash screen and the game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	input      *keyboardInput
	keys       KeyMap
	splashKeys SplashKeyMap
	mode       mode
	fps        int
	quitting   bool
}

// NewModel wires the engine to its terminal-side capabilities.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Audio == nil {
		opts.Audio = core.NopAudio{}
	}

	screen := core.NewScreen()
	input := &keyboardInput{}
	g := game.New(screen, input, opts.Audio, core.NewRand(opts.Seed), opts.Tuning)

	m := Model{
		game:       g,
		screen:     screen,
		input:      input,
		keys:       KeyMapFor(SchemeArrows),
		splashKeys: DefaultSplashKeyMap(),
		mode:       modeSplash,
		fps:        opts.FPS,
	}

	if opts.Scheme != nil {
		m.keys = KeyMapFor(*opts.Scheme)
		m.mode = modePlaying
		m.game.Start()
	} else {
		drawSplash(m.screen)
	}
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles key and frame messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case FrameMsg:
		return m.handleFrame()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeSplash {
		switch {
		case key.Matches(msg, m.splashKeys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.splashKeys.PickArrows):
			return m.leaveSplash(SchemeArrows), nil
		case key.Matches(msg, m.splashKeys.PickWASD):
			return m.leaveSplash(SchemeWASD), nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.input.direction(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.input.direction(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.input.direction(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.input.direction(1, 0)
	case key.Matches(msg, m.keys.Action):
		m.input.button()
	}
	return m, nil
}

// leaveSplash applies the chosen scheme, reseeds from the clock (the
// user interaction is the entropy source) and starts the ready
// countdown.
func (m Model) leaveSplash(s Scheme) Model {
	m.keys = KeyMapFor(s)
	m.game.Reseed(time.Now().UnixNano())
	m.game.Start()
	m.mode = modePlaying
	return m
}

func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.mode == modePlaying {
		m.game.Frame()
		if m.game.TakeSplashRequest() {
			m.mode = modeSplash
			drawSplash(m.screen)
		}
	}
	return m, frameCmd(m.fps)
}

// View renders the screen buffer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one session.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
