package core

// Color is the role a cell plays on screen. Platforms map roles to concrete
// terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBird
	ColorBeak
	ColorPipe
	ColorPipeCap
	ColorGround
	ColorSoil
	ColorText
	ColorHighlight
	ColorButton
)
