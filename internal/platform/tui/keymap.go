package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// Scheme identifies the selected control scheme. The original offered
// joystick or keyboard; in a terminal this becomes arrow keys or WASD,
// chosen once on the splash screen.
type Scheme int

const (
	SchemeArrows Scheme = iota
	SchemeWASD
)

// KeyMap holds the in-game key bindings for one control scheme.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Action key.Binding // pause/unpause, the "fire button"
	Quit   key.Binding
}

// KeyMapFor returns the bindings of the given scheme.
func KeyMapFor(s Scheme) KeyMap {
	km := KeyMap{
		Action: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	if s == SchemeWASD {
		km.Up = key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "up"))
		km.Down = key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "down"))
		km.Left = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "left"))
		km.Right = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "right"))
		return km
	}
	km.Up = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up"))
	km.Down = key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down"))
	km.Left = key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left"))
	km.Right = key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right"))
	return km
}

// SplashKeyMap holds the control-selection bindings on the splash
// screen.
type SplashKeyMap struct {
	PickArrows key.Binding
	PickWASD   key.Binding
	Quit       key.Binding
}

// DefaultSplashKeyMap returns the splash bindings.
func DefaultSplashKeyMap() SplashKeyMap {
	return SplashKeyMap{
		PickArrows: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play with arrow keys"),
		),
		PickWASD: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play with WASD"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
