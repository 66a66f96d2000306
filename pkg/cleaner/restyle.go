package cleaner

import (
	"fmt"

	"plotprep/pkg/geometry"

	"github.com/beevik/etree"
)

// Restyle applies the plotting style to each kept sub-path, gathers them in
// order into a new group, replaces every remaining path element below root
// with that group, and refits the root's viewBox, width and height to the
// group's contents. It returns the fitted box in coordinate units.
func Restyle(root *etree.Element, kept []*etree.Element, strokeWidthMM float64) (*etree.Element, geometry.BoundingBox) {
	group := etree.NewElement("g")
	group.Space = root.Space
	for _, el := range kept {
		applyStrokeStyle(el, strokeWidthMM)
		group.AddChild(el)
	}

	for _, el := range findPaths(root) {
		detach(el)
	}
	root.AddChild(group)

	box := CombinedBounds(group.ChildElements())
	Refit(root, box)
	return group, box
}

// Refit sets the root element's viewBox to box and its width and height to
// the box size in mm.
func Refit(root *etree.Element, box geometry.BoundingBox) {
	root.CreateAttr("viewBox", fmt.Sprintf("%s %s %s %s",
		FormatNumber(box.MinX), FormatNumber(box.MinY),
		FormatNumber(box.Width), FormatNumber(box.Height)))
	root.CreateAttr("width", FormatNumber(PXToMM(box.Width))+"mm")
	root.CreateAttr("height", FormatNumber(PXToMM(box.Height))+"mm")
}
