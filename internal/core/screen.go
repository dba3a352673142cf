package core

import "strings"

// Glyph is a screen code stored in the character plane. The values for
// the game entities are the original PETSCII screen codes, kept as
// sentinels so that cell inspection can classify a cell without any
// side tables.
type Glyph byte

const (
	GlyphSpace Glyph = 32  // empty cell
	GlyphSnake Glyph = 81  // filled circle, snake head and body
	GlyphFruit Glyph = 83  // heart
	GlyphBlock Glyph = 160 // solid block, borders and banners
)

// Screen geometry of the fixed 40x25 character display. Row 0 carries
// the HUD; the playfield border occupies row 1, row 24 and columns 0
// and 39.
const (
	ScreenW = 40
	ScreenH = 25

	BorderTop    = 1
	BorderBottom = 24
)

// Grid is the display capability consumed by the game engine. It covers
// single-cell access plus the text primitives the HUD and overlays need.
// Implemented by *Screen; the engine never talks to a terminal directly.
type Grid interface {
	PutCell(x, y int, g Glyph, c Color)
	GetCell(x, y int) Glyph
	CellColor(x, y int) Color
	Clear()
	DrawBorder()
	PrintText(x, y int, text string, c Color)
	PrintNumber(x, y int, value, width int, c Color)
}

// Screen is the character-mapped display buffer: a character plane and
// a color plane, mirroring screen memory and color memory of the
// original hardware. All access is bounds checked and out-of-range
// writes are silently ignored.
type Screen struct {
	chars  [ScreenH][ScreenW]Glyph
	colors [ScreenH][ScreenW]Color
}

// NewScreen creates a cleared screen buffer.
func NewScreen() *Screen {
	s := &Screen{}
	s.Clear()
	return s
}

// PutCell places a glyph with a color at the given position.
func (s *Screen) PutCell(x, y int, g Glyph, c Color) {
	if x < 0 || x >= ScreenW || y < 0 || y >= ScreenH {
		return
	}
	s.chars[y][x] = g
	s.colors[y][x] = c
}

// GetCell returns the glyph at the given position. Out-of-bounds reads
// return GlyphSpace.
func (s *Screen) GetCell(x, y int) Glyph {
	if x < 0 || x >= ScreenW || y < 0 || y >= ScreenH {
		return GlyphSpace
	}
	return s.chars[y][x]
}

// CellColor returns the color at the given position.
func (s *Screen) CellColor(x, y int) Color {
	if x < 0 || x >= ScreenW || y < 0 || y >= ScreenH {
		return ColorBlack
	}
	return s.colors[y][x]
}

// Clear fills the whole screen with spaces.
func (s *Screen) Clear() {
	for y := range s.chars {
		for x := range s.chars[y] {
			s.chars[y][x] = GlyphSpace
			s.colors[y][x] = ColorBlack
		}
	}
}

// DrawBorder draws the playfield frame: full rows at BorderTop and
// BorderBottom, full columns at 0 and 39 between them. Row 0 is left
// alone for the HUD.
func (s *Screen) DrawBorder() {
	for x := 0; x < ScreenW; x++ {
		s.PutCell(x, BorderTop, GlyphBlock, ColorLightGrey)
		s.PutCell(x, BorderBottom, GlyphBlock, ColorLightGrey)
	}
	for y := BorderTop; y <= BorderBottom; y++ {
		s.PutCell(0, y, GlyphBlock, ColorLightGrey)
		s.PutCell(ScreenW-1, y, GlyphBlock, ColorLightGrey)
	}
}

// GlyphForChar maps an ASCII character to its screen code. Uppercase
// letters and digits land in the 0..63 screen-code range; anything else
// passes through unchanged.
func GlyphForChar(c byte) Glyph {
	if c == ' ' {
		return GlyphSpace
	}
	if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
		return Glyph(c & 0x3F)
	}
	return Glyph(c)
}

// CharForGlyph is the inverse of GlyphForChar for the printable subset.
// Used only for rendering and debugging output.
func CharForGlyph(g Glyph) byte {
	switch {
	case g == GlyphSpace:
		return ' '
	case g >= 1 && g <= 26: // screen codes for A..Z
		return byte(g) + 'A' - 1
	case g >= '0' && g <= '9':
		return byte(g)
	default:
		return byte(g)
	}
}

// PrintText writes a text string starting at (x, y), clipping at the
// right screen edge.
func (s *Screen) PrintText(x, y int, text string, c Color) {
	for i := 0; i < len(text) && x+i < ScreenW; i++ {
		s.PutCell(x+i, y, GlyphForChar(text[i]), c)
	}
}

// PrintNumber writes a zero-padded decimal number of the given width
// (at most 4 digits) at (x, y).
func (s *Screen) PrintNumber(x, y int, value, width int, c Color) {
	if width > 4 {
		width = 4
	}
	buf := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('0' + value%10)
		value /= 10
	}
	for i := 0; i < width && x+i < ScreenW; i++ {
		s.PutCell(x+i, y, GlyphForChar(buf[i]), c)
	}
}

// Row renders one row of the character plane as ASCII. Test helper.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= ScreenH {
		return strings.Repeat(" ", ScreenW)
	}
	b := make([]byte, ScreenW)
	for x := 0; x < ScreenW; x++ {
		b[x] = CharForGlyph(s.chars[y][x])
	}
	return string(b)
}

var _ Grid = (*Screen)(nil)
