package core

// Color identifies a cell color. The values follow the VIC-II palette
// order, so a color doubles as the nibble the original hardware would
// have stored in color memory.
type Color uint8

const (
	ColorBlack Color = iota
	ColorWhite
	ColorRed
	ColorCyan
	ColorPurple
	ColorGreen
	ColorBlue
	ColorYellow
	ColorOrange
	ColorBrown
	ColorLightRed
	ColorDarkGrey
	ColorMedGrey
	ColorLightGreen
	ColorLightBlue
	ColorLightGrey
)
