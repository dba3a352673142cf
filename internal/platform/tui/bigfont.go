package tui

import "github.com/petscii/snake64/internal/core"

// bigFont is a 5x5 block font covering exactly the characters the
// title needs. Each entry is five rows of five bits, most significant
// bit leftmost.
var bigFont = map[byte][5]byte{
	'S': {0b11111, 0b10000, 0b11111, 0b00001, 0b11111},
	'N': {0b10001, 0b11001, 0b10101, 0b10011, 0b10001},
	'A': {0b01110, 0b10001, 0b11111, 0b10001, 0b10001},
	'K': {0b10001, 0b10010, 0b11100, 0b10010, 0b10001},
	'E': {0b11111, 0b10000, 0b11110, 0b10000, 0b11111},
	'6': {0b11111, 0b10000, 0b11111, 0b10001, 0b11111},
	'4': {0b10010, 0b10010, 0b11111, 0b00010, 0b00010},
}

// drawBigText renders text in the block font at (x0, y0), six columns
// per character (five cells plus a gap). Unknown characters leave a
// blank slot. Set cells only; the background shows through the gaps.
func drawBigText(s *core.Screen, x0, y0 int, text string, c core.Color) {
	for i := 0; i < len(text); i++ {
		rows, ok := bigFont[text[i]]
		if !ok {
			continue
		}
		for row := 0; row < 5; row++ {
			bits := rows[row]
			for col := 0; col < 5; col++ {
				if bits&(1<<(4-col)) != 0 {
					s.PutCell(x0+i*6+col, y0+row, core.GlyphBlock, c)
				}
			}
		}
	}
}
