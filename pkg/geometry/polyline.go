package geometry

import "math"

// Polyline is a sequence of connected points.
type Polyline []Point

// LineSegment is the straight chord between two points.
type LineSegment struct {
	A Point
	B Point
}

// Distance returns the distance between a point and a line segment.
func (s LineSegment) Distance(p Point) float64 {
	AP := minus(p, s.A)
	AB := minus(s.A, s.B)
	mAP := math.Hypot(AP.X, AP.Y)
	mBP := Distance(p, s.B)
	mAB := math.Hypot(AB.X, AB.Y)

	if mAB == 0 {
		return mAP
	}
	if mAP > mAB || mBP > mAB {
		// closest point on line is outside segment boundaries, so the closest point
		// is the nearest of the two endpoints.
		return math.Min(mAP, mBP)
	}

	return math.Abs(crossZ(AP, AB)) / mAB
}

// Length returns the summed length of the polyline's edges.
func (line Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(line); i++ {
		total += Distance(line[i-1], line[i])
	}
	return total
}

// Simplify simplifies the polyline using the Douglas-Peucker algorithm.
func (points Polyline) Simplify(epsilon float64) Polyline {
	if len(points) < 2 {
		return points
	}

	// find the point with the max distance from the line segment between the first and last points
	firstPoint, lastPoint := points[0], points[len(points)-1]
	if len(points) == 2 {
		return Polyline{firstPoint, lastPoint}
	}
	chord := LineSegment{A: firstPoint, B: lastPoint}

	dmax := 0.0
	index := 0
	for i := 1; i < len(points)-1; i++ {
		d := chord.Distance(points[i])
		if d > dmax {
			index = i
			dmax = d
		}
	}

	if dmax < epsilon {
		return Polyline{firstPoint, lastPoint}
	}

	// note: need to be careful on the recursive step to not call with < 2 points
	left := points[:index+1].Simplify(epsilon)
	right := points[index:].Simplify(epsilon)

	result := make(Polyline, 0, len(left)+len(right)-1)
	result = append(result, left[:len(left)-1]...)
	return append(result, right...)
}
