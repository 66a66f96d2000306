package svgpath

import "plotprep/pkg/geometry"

// Measurement is the length and segment endpoints of one path-data string.
type Measurement struct {
	Length float64
	Points []geometry.Point
}

// Measure parses d and measures it. A parse failure is returned as an
// error alongside the zero Measurement; callers that process many paths
// substitute the zero value and carry on.
func Measure(d string) (Measurement, error) {
	path, err := Parse(d)
	if err != nil {
		return Measurement{}, err
	}
	return Measurement{
		Length: path.Length(),
		Points: path.Points(),
	}, nil
}
