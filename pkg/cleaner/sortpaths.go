package cleaner

import (
	"plotprep/pkg/geometry"
	"plotprep/pkg/svgpath"

	"github.com/beevik/etree"
)

// SortForTravel orders paths to reduce pen-up travel: starting from the
// drawing's lower-left corner, it repeatedly picks the path whose start is
// nearest the current pen position, then moves the pen to that path's end.
// Paths are never reversed. Paths that draw nothing keep their relative
// order at the end.
func SortForTravel(paths []*etree.Element) []*etree.Element {
	type endpoints struct {
		start, end geometry.Point
	}

	var starts []geometry.Point
	ends := make([]*endpoints, len(paths))
	for i, el := range paths {
		path, err := svgpath.Parse(el.SelectAttrValue("d", ""))
		if err != nil {
			continue
		}
		start, ok := path.StartPoint()
		if !ok {
			continue
		}
		end, _ := path.EndPoint()
		ends[i] = &endpoints{start: start, end: end}
		starts = append(starts, start)
	}

	tree := newPathTree(geometry.Bounds(starts))
	for i, e := range ends {
		if e != nil && !tree.add(e.start, i) {
			ends[i] = nil
		}
	}

	box := CombinedBounds(paths)
	pen := geometry.Point{X: box.MinX, Y: box.MaxY()}
	sorted := make([]*etree.Element, 0, len(paths))
	for {
		index, ok := tree.nearest(pen)
		if !ok {
			break
		}
		tree.remove(ends[index].start, index)
		sorted = append(sorted, paths[index])
		pen = ends[index].end
	}

	for i, e := range ends {
		if e == nil {
			sorted = append(sorted, paths[i])
		}
	}
	return sorted
}
