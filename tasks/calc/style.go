package calc

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"
)

const (
	labelMathError   = "Math Error"
	labelSyntaxError = "Syntax Error"
)

var (
	colorBackground = hex(0x2E2E2E)
	colorDisplayFG  = hex(0xFFFFFF)
	colorEntryFG    = hex(0xCCCCCC)
	colorButtonFG   = hex(0xFFFFFF)
)

type buttonStyle struct {
	bg     color.RGBA
	active color.RGBA
}

var (
	styleDigit    = buttonStyle{bg: hex(0x4A4A4A), active: hex(0x6A6A6A)}
	styleOperator = buttonStyle{bg: hex(0xD35400), active: hex(0xE67E22)}
	styleEquals   = buttonStyle{bg: hex(0x27AE60), active: hex(0x2ECC71)}
	styleClose    = buttonStyle{bg: hex(0xC0392B), active: hex(0xE74C3C)}
)

// Result label and entry/button text.
var (
	fontLarge tinyfont.Fonter = &freesans.Bold24pt7b
	fontSmall tinyfont.Fonter = &freesans.Bold12pt7b
)

// labelPadX is the horizontal padding of both display labels.
const labelPadX = 24

// flashMillis is how long a key-activated button shows its active color.
const flashMillis = 150

func hex(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}
