// Package preview rasterizes a cleaned drawing so it can be checked before
// plotting.
package preview

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"plotprep/pkg/cfg"
	"plotprep/pkg/geometry"

	"golang.org/x/image/vector"
	"golang.org/x/xerrors"
)

// Render draws lines, given in mm with Y pointing down on a widthMM by
// heightMM page, into an image whose longer side is sizePX pixels. Strokes
// are strokeMM wide with round joins and caps. The page is padded by half a
// stroke on every side so strokes along its edges are drawn in full. One
// side of the page may be zero, as for a drawing of a single straight line.
func Render(lines []geometry.Polyline, widthMM, heightMM, strokeMM float64, sizePX int, stroke color.Color) (*image.RGBA, error) {
	if !(widthMM >= 0) || !(heightMM >= 0) || widthMM+heightMM == 0 || !(strokeMM >= 0) || sizePX <= 0 {
		return nil, xerrors.Errorf("cannot render a %gx%g mm drawing at %d px", widthMM, heightMM, sizePX)
	}
	pageW, pageH := widthMM+strokeMM, heightMM+strokeMM
	scale := float64(sizePX) / math.Max(pageW, pageH)
	widthPX := pixels(pageW * scale)
	heightPX := pixels(pageH * scale)

	img := image.NewRGBA(image.Rect(0, 0, widthPX, heightPX))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.BackgroundColor), image.Point{}, draw.Src)

	r := vector.NewRasterizer(widthPX, heightPX)
	halfWidth := float32(strokeMM * scale / 2)
	toPX := geometry.Scaling(scale, scale).Multiply(geometry.Translation(strokeMM/2, strokeMM/2))
	for _, line := range lines {
		line = line.Transform(toPX)
		for i, p := range line {
			addDot(r, float32(p.X), float32(p.Y), halfWidth)
			if i > 0 {
				addQuad(r, line[i-1], p, halfWidth)
			}
		}
	}
	r.Draw(img, img.Bounds(), image.NewUniform(stroke), image.Point{})
	return img, nil
}

func pixels(v float64) int {
	if n := int(math.Round(v)); n > 1 {
		return n
	}
	return 1
}

// All shapes are added with the same winding, so where they overlap the
// coverage adds up instead of cancelling out.

// addQuad adds the body of one stroked segment.
func addQuad(r *vector.Rasterizer, a, b geometry.Point, halfWidth float32) {
	d := geometry.Distance(a, b)
	if d == 0 {
		return
	}
	nx := float32(-(b.Y - a.Y) / d) * halfWidth
	ny := float32((b.X - a.X) / d) * halfWidth
	ax, ay := float32(a.X), float32(a.Y)
	bx, by := float32(b.X), float32(b.Y)

	r.MoveTo(ax+nx, ay+ny)
	r.LineTo(bx+nx, by+ny)
	r.LineTo(bx-nx, by-ny)
	r.LineTo(ax-nx, ay-ny)
	r.ClosePath()
}

// addDot adds a filled circle, which gives the round joins and caps.
func addDot(r *vector.Rasterizer, cx, cy, radius float32) {
	const k = float32(0.5522847498)
	kr := k * radius

	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
	r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
	r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return xerrors.Errorf("encoding preview: %w", err)
	}
	return nil
}
