package geometry

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Point is a location in document user space (CSS px unless stated otherwise).
type Point = vec.Vec2

// Distance returns the distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func lerp(a, b Point, t float64) Point {
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

func crossZ(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

func minus(a, b Point) Point {
	return Point{X: a.X - b.X, Y: a.Y - b.Y}
}
