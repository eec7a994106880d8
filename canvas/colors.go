package canvas

import (
	"fmt"
	"image/color"
)

// Palette holds the 16 pen colors addressable by SETPENCOLOR. Index 7,
// white, is the turtle's default.
var Palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xFF}, // black
	{0x00, 0x00, 0xFF, 0xFF}, // blue
	{0x00, 0xFF, 0x00, 0xFF}, // green
	{0x00, 0xFF, 0xFF, 0xFF}, // cyan
	{0xFF, 0x00, 0x00, 0xFF}, // red
	{0xFF, 0x00, 0xFF, 0xFF}, // magenta
	{0xFF, 0xFF, 0x00, 0xFF}, // yellow
	{0xFF, 0xFF, 0xFF, 0xFF}, // white
	{0xA5, 0x2A, 0x2A, 0xFF}, // brown
	{0xD2, 0xB4, 0x8C, 0xFF}, // tan
	{0x22, 0x8B, 0x22, 0xFF}, // forest
	{0x7F, 0xFF, 0xD4, 0xFF}, // aqua
	{0xFA, 0x80, 0x72, 0xFF}, // salmon
	{0x80, 0x00, 0x80, 0xFF}, // purple
	{0xFF, 0xA5, 0x00, 0xFF}, // orange
	{0x80, 0x80, 0x80, 0xFF}, // grey
}

// hexColor formats a palette entry for SVG stroke styles.
func hexColor(index int) string {
	c := Palette[index]
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
