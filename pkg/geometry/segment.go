package geometry

import "math"

// Segment is a single drawing primitive between two points.
type Segment interface {
	Start() Point
	End() Point
	// PointAt evaluates the segment at t in [0, 1].
	PointAt(t float64) Point
	Length() float64
}

// Line is a straight segment from A to B.
type Line struct {
	A, B Point
}

func (l Line) Start() Point { return l.A }
func (l Line) End() Point { return l.B }

func (l Line) PointAt(t float64) Point {
	return lerp(l.A, l.B, t)
}

func (l Line) Length() float64 {
	return Distance(l.A, l.B)
}

// QuadBez is a quadratic Bézier curve with control point P1.
type QuadBez struct {
	P0, P1, P2 Point
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point { return q.P2 }

func (q QuadBez) PointAt(t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*q.P0.X + 2*mt*t*q.P1.X + t*t*q.P2.X,
		Y: mt*mt*q.P0.Y + 2*mt*t*q.P1.Y + t*t*q.P2.Y,
	}
}

// Length uses the closed form of the quadratic arc length integral.
// See https://malczak.linuxpl.com/blog/quadratic-bezier-curve-length/.
func (q QuadBez) Length() float64 {
	a := Point{X: q.P0.X - 2*q.P1.X + q.P2.X, Y: q.P0.Y - 2*q.P1.Y + q.P2.Y}
	b := Point{X: 2 * (q.P1.X - q.P0.X), Y: 2 * (q.P1.Y - q.P0.Y)}

	A := 4 * (a.X*a.X + a.Y*a.Y)
	B := 4 * (a.X*b.X + a.Y*b.Y)
	C := b.X*b.X + b.Y*b.Y

	numeric := func() float64 {
		return integrate(func(t float64) float64 {
			return math.Hypot(2*a.X*t+b.X, 2*a.Y*t+b.Y)
		}, 0, 1)
	}

	// Collinear control points make the closed form divide by zero.
	if A < 1e-12*(C+1) || math.Abs(B*B-4*A*C) < 1e-9*(B*B+1) {
		return numeric()
	}

	sabc := 2 * math.Sqrt(A+B+C)
	a2 := math.Sqrt(A)
	a32 := 2 * A * a2
	c2 := 2 * math.Sqrt(C)
	ba := B / a2

	l := (a32*sabc + a2*B*(sabc-c2) + (4*C*A-B*B)*math.Log((2*a2+ba+sabc)/(ba+c2))) / (4 * a32)
	if math.IsNaN(l) || math.IsInf(l, 0) {
		return numeric()
	}
	return l
}

// CubicBez is a cubic Bézier curve with control points P1 and P2.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point { return c.P3 }

func (c CubicBez) PointAt(t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

func (c CubicBez) Length() float64 {
	return integrate(func(t float64) float64 {
		mt := 1 - t
		dx := 3*mt*mt*(c.P1.X-c.P0.X) + 6*mt*t*(c.P2.X-c.P1.X) + 3*t*t*(c.P3.X-c.P2.X)
		dy := 3*mt*mt*(c.P1.Y-c.P0.Y) + 6*mt*t*(c.P2.Y-c.P1.Y) + 3*t*t*(c.P3.Y-c.P2.Y)
		return math.Hypot(dx, dy)
	}, 0, 1)
}

// Flatten approximates seg with a polyline whose points are at most maxStep
// apart along the curve. Lines are returned as their two endpoints.
func Flatten(seg Segment, maxStep float64) Polyline {
	if l, ok := seg.(Line); ok {
		return Polyline{l.A, l.B}
	}
	n := 1
	if maxStep > 0 {
		n = int(math.Ceil(seg.Length() / maxStep))
	}
	if n < 1 {
		n = 1
	}
	if n > maxFlattenSteps {
		n = maxFlattenSteps
	}
	line := make(Polyline, 0, n+1)
	line = append(line, seg.Start())
	for i := 1; i < n; i++ {
		line = append(line, seg.PointAt(float64(i)/float64(n)))
	}
	return append(line, seg.End())
}

const maxFlattenSteps = 4096
