package geometry

// Matrix is a 2D affine transform:
//
//	⎡ A C E ⎤
//	⎣ B D F ⎦
type Matrix struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

// Identity leaves points unchanged.
var Identity = Matrix{A: 1, D: 1}

// Translation moves points by (tx, ty).
func Translation(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// Scaling scales x by sx and y by sy about the origin.
func Scaling(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// Multiply returns the transform that applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.C*other.B,
		B: m.B*other.A + m.D*other.B,
		C: m.A*other.C + m.C*other.D,
		D: m.B*other.C + m.D*other.D,
		E: m.A*other.E + m.C*other.F + m.E,
		F: m.B*other.E + m.D*other.F + m.F,
	}
}

func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Transform returns a transformed copy of the polyline.
func (line Polyline) Transform(m Matrix) Polyline {
	out := make(Polyline, len(line))
	for i, p := range line {
		out[i] = m.TransformPoint(p)
	}
	return out
}
