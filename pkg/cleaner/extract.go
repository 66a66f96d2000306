package cleaner

import (
	"plotprep/pkg/svgpath"

	"github.com/beevik/etree"
)

// ExtractSubPaths replaces every path element below root that carries path
// data with one new element per sub-path. Each new element copies all of the
// original's attributes, then takes one sub-path as its "d". The originals
// are removed from the tree; the new elements are returned in document
// order and are not inserted anywhere. An original whose "d" holds only
// whitespace is removed without replacement. Path elements with no "d" are
// left in place.
func ExtractSubPaths(root *etree.Element) []*etree.Element {
	// Collect first, then mutate, so removal can't disturb the walk.
	var subPaths []*etree.Element
	for _, el := range findPaths(root) {
		d := el.SelectAttr("d")
		if d == nil {
			continue
		}
		for _, piece := range svgpath.SplitSubPaths(d.Value) {
			sub := etree.NewElement(el.Tag)
			sub.Space = el.Space
			for _, attr := range el.Attr {
				sub.CreateAttr(attr.FullKey(), attr.Value)
			}
			sub.CreateAttr("d", piece)
			subPaths = append(subPaths, sub)
		}
		detach(el)
	}
	return subPaths
}
