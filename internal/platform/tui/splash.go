package tui

import "github.com/petscii/snake64/internal/core"

// drawSplash renders the title and control-selection screen. Shown at
// startup and again after every collision sequence; leaving it reseeds
// the random source and restarts the ready countdown.
func drawSplash(s *core.Screen) {
	s.Clear()
	s.DrawBorder()

	drawBigText(s, 5, 3, "SNAKE", core.ColorYellow)
	drawBigText(s, 5, 9, "64", core.ColorYellow)

	s.PrintText(18, 10, "EAT HEARTS", core.ColorCyan)
	s.PrintText(18, 12, "DONT CRASH", core.ColorCyan)

	s.PrintText(16, 16, "CONTROLS", core.ColorLightRed)
	s.PrintText(7, 18, "ENTER - ARROW KEYS", core.ColorWhite)
	s.PrintText(7, 20, "SPACE - WASD KEYS", core.ColorWhite)
	s.PrintText(4, 22, "PAUSE WITH SPACE WHILE PLAYING", core.ColorWhite)
}
