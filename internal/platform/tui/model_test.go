package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/petscii/snake64/internal/core"
	"github.com/petscii/snake64/internal/game"
)

func testOptions() Options {
	return Options{
		FPS:    50,
		Seed:   1,
		Tuning: game.DefaultTuning(),
	}
}

func TestKeyboardInputPollClears(t *testing.T) {
	k := &keyboardInput{}
	k.direction(1, 0)
	k.button()

	got := k.Poll()
	if got.DX != 1 || got.DY != 0 || !got.Button {
		t.Errorf("Poll() = %+v, expected the buffered sample", got)
	}

	// A key press is a one-poll pulse.
	if k.Poll() != (core.InputSample{}) {
		t.Error("second Poll() should be empty")
	}
}

func TestModelStartsOnSplash(t *testing.T) {
	m := NewModel(testOptions())

	if m.mode != modeSplash {
		t.Fatalf("mode = %d, expected splash", m.mode)
	}
	// The title screen is on the buffer before the first frame.
	if m.screen.Row(18)[7:25] != "ENTER - ARROW KEYS" {
		t.Errorf("splash row 18 = %q", m.screen.Row(18))
	}
}

func TestPreselectedSchemeSkipsSplash(t *testing.T) {
	opts := testOptions()
	scheme := SchemeWASD
	opts.Scheme = &scheme

	m := NewModel(opts)
	if m.mode != modePlaying {
		t.Fatalf("mode = %d, expected playing", m.mode)
	}
	if m.game.State() != game.StateReady {
		t.Errorf("game state = %v, expected the ready countdown", m.game.State())
	}
}

func TestSplashSchemeSelection(t *testing.T) {
	m := NewModel(testOptions())

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(Model)
	if got.mode != modePlaying {
		t.Fatalf("mode after enter = %d, expected playing", got.mode)
	}
	if len(got.keys.Up.Keys()) == 0 || got.keys.Up.Keys()[0] != "up" {
		t.Errorf("up binding = %v, expected the arrow scheme", got.keys.Up.Keys())
	}

	m = NewModel(testOptions())
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	got = next.(Model)
	if got.mode != modePlaying {
		t.Fatalf("mode after space = %d, expected playing", got.mode)
	}
	if len(got.keys.Up.Keys()) == 0 || got.keys.Up.Keys()[0] != "w" {
		t.Errorf("up binding = %v, expected the WASD scheme", got.keys.Up.Keys())
	}
}

func TestDirectionKeysFeedTheEngine(t *testing.T) {
	opts := testOptions()
	scheme := SchemeWASD
	opts.Scheme = &scheme
	m := NewModel(opts)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	got := next.(Model)

	if sample := got.input.Poll(); sample.DY != -1 {
		t.Errorf("sample after 'w' = %+v, expected an upward direction", sample)
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(testOptions())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should produce a command")
	}
	if next.(Model).View() != "" {
		t.Error("view after quit should be empty")
	}
}

func TestFrameAdvancesGame(t *testing.T) {
	opts := testOptions()
	scheme := SchemeArrows
	opts.Scheme = &scheme
	m := NewModel(opts)

	for i := 0; i < game.DefaultTuning().ReadyFrames; i++ {
		next, cmd := m.Update(FrameMsg{})
		m = next.(Model)
		if cmd == nil {
			t.Fatal("every frame must schedule the next one")
		}
	}

	if m.game.State() != game.StatePlaying {
		t.Errorf("game state = %v, expected playing after the countdown", m.game.State())
	}
}

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen()
	s.DrawBorder()
	s.PutCell(20, 13, core.GlyphSnake, core.ColorWhite)
	s.PutCell(5, 5, core.GlyphFruit, core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != core.ScreenH {
		t.Fatalf("rendered %d lines, expected %d", len(lines), core.ScreenH)
	}
	if !strings.Contains(out, "●") {
		t.Error("snake glyph missing from the render")
	}
	if !strings.Contains(out, "♥") {
		t.Error("fruit glyph missing from the render")
	}
	if !strings.Contains(out, "█") {
		t.Error("border glyph missing from the render")
	}
}
