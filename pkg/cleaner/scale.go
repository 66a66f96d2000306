package cleaner

import (
	"plotprep/pkg/geometry"
	"plotprep/pkg/svgpath"

	"github.com/beevik/etree"
)

// measure returns the measurement of an element's path data. Data that
// fails to parse measures as zero length with no points.
func measure(el *etree.Element) svgpath.Measurement {
	m, err := svgpath.Measure(el.SelectAttrValue("d", ""))
	if err != nil {
		return svgpath.Measurement{}
	}
	return m
}

// CombinedBounds returns the bounding box of the segment endpoints of all
// the given path elements.
func CombinedBounds(paths []*etree.Element) geometry.BoundingBox {
	var points []geometry.Point
	for _, el := range paths {
		points = append(points, measure(el).Points...)
	}
	return geometry.Bounds(points)
}

// ScaleFactor returns the uniform factor that makes the larger dimension of
// box equal to targetMM.
func ScaleFactor(box geometry.BoundingBox, targetMM float64) (float64, error) {
	maxDimension := box.MaxDimension()
	if maxDimension == 0 {
		return 0, ErrDegenerateGeometry
	}
	return MMToPX(targetMM) / maxDimension, nil
}

// ScaleAndFilter computes one scale factor from the combined bounds of all
// sub-paths, rewrites every sub-path's data scaled by it, and returns the
// sub-paths whose scaled length is at least minLengthMM. Order is kept.
// Sub-paths whose data can't be parsed keep their data unchanged and count
// as zero length.
func ScaleAndFilter(subPaths []*etree.Element, minLengthMM, targetMM float64) (kept []*etree.Element, factor float64, err error) {
	factor, err = ScaleFactor(CombinedBounds(subPaths), targetMM)
	if err != nil {
		return nil, 0, err
	}

	minLength := MMToPX(minLengthMM)
	for _, el := range subPaths {
		if path, err := svgpath.Parse(el.SelectAttrValue("d", "")); err == nil {
			el.CreateAttr("d", path.Scale(factor).String())
		}
		if measure(el).Length >= minLength {
			kept = append(kept, el)
		}
	}
	return kept, factor, nil
}
