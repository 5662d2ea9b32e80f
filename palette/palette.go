// Package palette maps cell values to display colours.
package palette

import (
	"image/color"

	"github.com/plus3/blockfall/tetris"
)

var colors = [...]color.RGBA{
	{128, 128, 128, 255}, // empty / grid
	{238, 130, 238, 255}, // violet
	{255, 0, 0, 255},     // red
	{0, 255, 0, 255},     // lime
	{255, 255, 0, 255},   // yellow
	{255, 165, 0, 255},   // orange
}

// Color returns the display colour of c. Unknown values render as the grid
// colour.
func Color(c tetris.Cell) color.RGBA {
	if int(c) >= len(colors) {
		return colors[0]
	}
	return colors[c]
}

// Ghost returns the colour of c at the given alpha.
func Ghost(c tetris.Cell, alpha uint8) color.RGBA {
	rgba := Color(c)
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(alpha) / 255) }
	return color.RGBA{scale(rgba.R), scale(rgba.G), scale(rgba.B), alpha}
}
