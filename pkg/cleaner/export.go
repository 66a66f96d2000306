package cleaner

import "plotprep/pkg/geometry"

// PageSize returns the cleaned drawing's size in mm.
func (r Result) PageSize() (widthMM, heightMM float64) {
	return PXToMM(r.Box.Width), PXToMM(r.Box.Height)
}

// Polylines flattens the kept paths into mm, measured from the top-left
// corner of the refitted box with Y pointing down. No chord is longer than
// maxStepMM.
func (r Result) Polylines(maxStepMM float64) []geometry.Polyline {
	k := PXToMM(1)
	toMM := geometry.Scaling(k, k).Multiply(geometry.Translation(-r.Box.MinX, -r.Box.MinY))
	maxStep := MMToPX(maxStepMM)

	var lines []geometry.Polyline
	for _, path := range r.Paths {
		for _, line := range path.Polylines(maxStep) {
			lines = append(lines, line.Transform(toMM))
		}
	}
	return lines
}
