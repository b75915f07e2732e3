package core

import "strconv"

// Color is a foreground color for a screen cell.
type Color uint8

// Palette used by the playfield. Values are stable so snapshots stay comparable.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
)

var ansiCodes = [...]int{
	ColorDefault:      -1,
	ColorGreen:        2,
	ColorYellow:       3,
	ColorMagenta:      5,
	ColorWhite:        7,
	ColorBrightRed:    9,
	ColorBrightGreen:  10,
	ColorBrightYellow: 11,
	ColorBrightBlue:   12,
	ColorBrightWhite:  15,
	ColorOrange:       208,
	ColorGray:         245,
}

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) || ansiCodes[c] < 0 {
		return ""
	}
	return strconv.Itoa(ansiCodes[c])
}
