package svgpath

import (
	"plotprep/pkg/geometry"
)

// Segments converts the path into absolute geometric segments. Close-path
// adds a line back to the sub-path start unless the pen is already there.
// Arcs with coincident endpoints draw nothing; arcs with a zero radius are
// lines.
func (p *Path) Segments() []geometry.Segment {
	var (
		segs     []geometry.Segment
		cur      geometry.Point
		start    geometry.Point
		lastCtrl geometry.Point
		prev     byte
	)

	for _, cmd := range p.Commands {
		name := upper(cmd.Name)
		relative := cmd.Name != name
		abs := func(x, y float64) geometry.Point {
			if relative {
				return geometry.Point{X: cur.X + x, Y: cur.Y + y}
			}
			return geometry.Point{X: x, Y: y}
		}

		if name == 'Z' {
			if cur != start {
				segs = append(segs, geometry.Line{A: cur, B: start})
			}
			cur = start
			prev = name
			continue
		}

		n := arity[name]
		for i := 0; i+n <= len(cmd.Args); i += n {
			a := cmd.Args[i : i+n]
			switch name {
			case 'M':
				pt := abs(a[0], a[1])
				if i == 0 {
					start = pt
				} else {
					// Extra coordinate pairs are implicit line-to commands.
					segs = append(segs, geometry.Line{A: cur, B: pt})
				}
				cur = pt
			case 'L':
				pt := abs(a[0], a[1])
				segs = append(segs, geometry.Line{A: cur, B: pt})
				cur = pt
			case 'H':
				x := a[0]
				if relative {
					x += cur.X
				}
				pt := geometry.Point{X: x, Y: cur.Y}
				segs = append(segs, geometry.Line{A: cur, B: pt})
				cur = pt
			case 'V':
				y := a[0]
				if relative {
					y += cur.Y
				}
				pt := geometry.Point{X: cur.X, Y: y}
				segs = append(segs, geometry.Line{A: cur, B: pt})
				cur = pt
			case 'C':
				c1, c2, pt := abs(a[0], a[1]), abs(a[2], a[3]), abs(a[4], a[5])
				segs = append(segs, geometry.CubicBez{P0: cur, P1: c1, P2: c2, P3: pt})
				lastCtrl, cur = c2, pt
			case 'S':
				c1 := cur
				if prev == 'C' || prev == 'S' {
					c1 = reflect(lastCtrl, cur)
				}
				c2, pt := abs(a[0], a[1]), abs(a[2], a[3])
				segs = append(segs, geometry.CubicBez{P0: cur, P1: c1, P2: c2, P3: pt})
				lastCtrl, cur = c2, pt
			case 'Q':
				c, pt := abs(a[0], a[1]), abs(a[2], a[3])
				segs = append(segs, geometry.QuadBez{P0: cur, P1: c, P2: pt})
				lastCtrl, cur = c, pt
			case 'T':
				c := cur
				if prev == 'Q' || prev == 'T' {
					c = reflect(lastCtrl, cur)
				}
				pt := abs(a[0], a[1])
				segs = append(segs, geometry.QuadBez{P0: cur, P1: c, P2: pt})
				lastCtrl, cur = c, pt
			case 'A':
				pt := abs(a[5], a[6])
				switch {
				case pt == cur:
				case a[0] == 0 || a[1] == 0:
					segs = append(segs, geometry.Line{A: cur, B: pt})
				default:
					segs = append(segs, geometry.Arc{
						From:     cur,
						To:       pt,
						RX:       a[0],
						RY:       a[1],
						Rotation: a[2],
						LargeArc: a[3] != 0,
						Sweep:    a[4] != 0,
					})
				}
				cur = pt
			}
			prev = name
		}
	}
	return segs
}

func reflect(ctrl, about geometry.Point) geometry.Point {
	return geometry.Point{X: 2*about.X - ctrl.X, Y: 2*about.Y - ctrl.Y}
}

// Points returns the start and end point of every segment, in order.
func (p *Path) Points() []geometry.Point {
	segs := p.Segments()
	points := make([]geometry.Point, 0, 2*len(segs))
	for _, seg := range segs {
		points = append(points, seg.Start(), seg.End())
	}
	return points
}

// Length returns the total arc length of the path.
func (p *Path) Length() float64 {
	total := 0.0
	for _, seg := range p.Segments() {
		total += seg.Length()
	}
	return total
}

// StartPoint returns the first point the pen draws from, and false if the
// path draws nothing.
func (p *Path) StartPoint() (geometry.Point, bool) {
	segs := p.Segments()
	if len(segs) == 0 {
		return geometry.Point{}, false
	}
	return segs[0].Start(), true
}

// Polylines flattens the path into connected runs of points no more than
// maxStep apart along each curve. A new run starts wherever the pen lifts.
func (p *Path) Polylines(maxStep float64) []geometry.Polyline {
	var lines []geometry.Polyline
	var current geometry.Polyline
	for _, seg := range p.Segments() {
		flat := geometry.Flatten(seg, maxStep)
		if len(current) > 0 && current[len(current)-1] == flat[0] {
			current = append(current, flat[1:]...)
			continue
		}
		if len(current) > 0 {
			lines = append(lines, current)
		}
		current = flat
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// EndPoint returns the last point the pen draws to, and false if the path
// draws nothing.
func (p *Path) EndPoint() (geometry.Point, bool) {
	segs := p.Segments()
	if len(segs) == 0 {
		return geometry.Point{}, false
	}
	return segs[len(segs)-1].End(), true
}
