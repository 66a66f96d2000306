package cleaner

import (
	"fmt"
	"image/color"

	"github.com/beevik/etree"
)

type Color struct {
	R uint8
	G uint8
	B uint8
}

// StrokeColor is the fixed stroke applied to every surviving path.
var StrokeColor = Color{R: 120, G: 68, B: 33}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// RGBA converts the color for use with image/draw and the exporters.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// applyStrokeStyle drops any inline style and stroke width the element
// carried, then sets the fixed plotting style.
func applyStrokeStyle(el *etree.Element, strokeWidthMM float64) {
	el.RemoveAttr("style")
	el.RemoveAttr("stroke-width")

	el.CreateAttr("stroke", StrokeColor.String())
	el.CreateAttr("stroke-width", FormatNumber(strokeWidthMM)+"mm")
	el.CreateAttr("stroke-linecap", "round")
	el.CreateAttr("stroke-linejoin", "round")
	el.CreateAttr("fill", "none")
}
