package geometry

import "math"

// BoundingBox is the axis-aligned extent of a point set.
// Width and Height are never negative.
type BoundingBox struct {
	MinX, MinY    float64
	Width, Height float64
}

// Bounds returns the tight bounding box of points, or the zero box if there
// are none.
func Bounds(points []Point) BoundingBox {
	if len(points) == 0 {
		return BoundingBox{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return BoundingBox{
		MinX:   minX,
		MinY:   minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// MaxDimension returns the larger of Width and Height.
func (b BoundingBox) MaxDimension() float64 {
	return math.Max(b.Width, b.Height)
}

// MaxX returns the right edge.
func (b BoundingBox) MaxX() float64 { return b.MinX + b.Width }

// MaxY returns the bottom edge.
func (b BoundingBox) MaxY() float64 { return b.MinY + b.Height }

// Contains reports whether p lies inside b, allowing for tolerance eps.
func (b BoundingBox) Contains(p Point, eps float64) bool {
	return p.X >= b.MinX-eps && p.X <= b.MaxX()+eps &&
		p.Y >= b.MinY-eps && p.Y <= b.MaxY()+eps
}
