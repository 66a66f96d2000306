package geometry

import "math"

// Arc is an SVG elliptical arc in endpoint parameterization.
// Rotation is in degrees.
type Arc struct {
	From, To        Point
	RX, RY          float64
	Rotation        float64
	LargeArc, Sweep bool
}

func (a Arc) Start() Point { return a.From }
func (a Arc) End() Point { return a.To }

// degenerate reports whether the arc must be treated as a straight line.
func (a Arc) degenerate() bool {
	return a.RX == 0 || a.RY == 0
}

// center converts to center parameterization, returning the center, the
// (possibly enlarged) radii, the start angle and the signed sweep angle.
// See https://www.w3.org/TR/SVG11/implnote.html#ArcConversionEndpointToCenter.
func (a Arc) center() (c Point, rx, ry, theta1, dtheta float64) {
	rx, ry = math.Abs(a.RX), math.Abs(a.RY)
	phi := a.Rotation * math.Pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	dx2 := (a.From.X - a.To.X) / 2
	dy2 := (a.From.Y - a.To.Y) / 2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	// Scale radii up if they cannot span the endpoints.
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := 0.0
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if a.LargeArc == a.Sweep {
		coef = -coef
	}
	cxp := coef * rx * y1p / ry
	cyp := -coef * ry * x1p / rx

	c = Point{
		X: cosPhi*cxp - sinPhi*cyp + (a.From.X+a.To.X)/2,
		Y: sinPhi*cxp + cosPhi*cyp + (a.From.Y+a.To.Y)/2,
	}

	ux, uy := (x1p-cxp)/rx, (y1p-cyp)/ry
	vx, vy := (-x1p-cxp)/rx, (-y1p-cyp)/ry
	theta1 = math.Atan2(uy, ux)
	dtheta = math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
	if !a.Sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	} else if a.Sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}
	return c, rx, ry, theta1, dtheta
}

func (a Arc) PointAt(t float64) Point {
	if a.From == a.To {
		return a.From
	}
	if a.degenerate() {
		return lerp(a.From, a.To, t)
	}
	switch t {
	case 0:
		return a.From
	case 1:
		return a.To
	}
	c, rx, ry, theta1, dtheta := a.center()
	sinPhi, cosPhi := math.Sincos(a.Rotation * math.Pi / 180)
	sin, cos := math.Sincos(theta1 + t*dtheta)
	return Point{
		X: c.X + rx*cos*cosPhi - ry*sin*sinPhi,
		Y: c.Y + rx*cos*sinPhi + ry*sin*cosPhi,
	}
}

// Length returns the arc length. Coincident endpoints draw nothing; a zero
// radius draws a straight line.
func (a Arc) Length() float64 {
	if a.From == a.To {
		return 0
	}
	if a.degenerate() {
		return Distance(a.From, a.To)
	}
	_, rx, ry, theta1, dtheta := a.center()
	if rx == ry {
		return rx * math.Abs(dtheta)
	}
	return math.Abs(integrate(func(theta float64) float64 {
		sin, cos := math.Sincos(theta)
		return math.Hypot(rx*sin, ry*cos)
	}, theta1, theta1+dtheta))
}
