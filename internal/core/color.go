package core

// Color represents a foreground color for a screen cell. The platform maps
// these to ANSI 256-color codes; games only name intents.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
)
