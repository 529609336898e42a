package core

import "strconv"

// Color is a foreground color for a screen cell. The zero value leaves
// the terminal's default color.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	numColors
)

// ANSI returns the terminal color code, or "" for ColorDefault and
// unknown colors. The basic and bright colors map onto the 16-color
// palette; orange and gray come from the 256-color cube.
func (c Color) ANSI() string {
	switch {
	case c == ColorDefault || c >= numColors:
		return ""
	case c <= ColorWhite:
		return strconv.Itoa(int(c))
	case c <= ColorBrightWhite:
		return strconv.Itoa(int(c) + 1) // Skip bright black (8)
	case c == ColorOrange:
		return "208"
	default:
		return "245"
	}
}

// Colors returns every predefined color except ColorDefault.
func Colors() []Color {
	out := make([]Color, 0, numColors-1)
	for c := ColorRed; c < numColors; c++ {
		out = append(out, c)
	}
	return out
}
