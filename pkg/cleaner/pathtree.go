package cleaner

import (
	"math"

	"plotprep/pkg/geometry"

	"github.com/asim/quadtree"
)

// pathNode is one distinct start point in the tree. Several paths may start
// at the same point; their indices are kept in ascending order.
type pathNode struct {
	at      geometry.Point
	indices []int
}

type pathTree struct {
	quadTree *quadtree.QuadTree
	nodes    map[geometry.Point]*quadtree.Point
	span     float64
	size     int
}

func newPathTree(box geometry.BoundingBox) *pathTree {
	halfSize := box.MaxDimension() / 2

	// Add a small margin to avoid dropping objects at the edges
	halfSize += 10

	aabb := quadtree.NewAABB(
		quadtree.NewPoint(box.MinX+box.Width/2, box.MinY+box.Height/2, nil),
		quadtree.NewPoint(halfSize, halfSize, nil))
	return &pathTree{
		quadTree: quadtree.New(aabb, 0, nil),
		nodes:    map[geometry.Point]*quadtree.Point{},
		span:     halfSize * 2,
	}
}

// add reports false if at lies outside the tree.
func (t *pathTree) add(at geometry.Point, index int) bool {
	if point, ok := t.nodes[at]; ok {
		node := point.Data().(*pathNode)
		node.indices = append(node.indices, index)
		t.size++
		return true
	}
	point := quadtree.NewPoint(at.X, at.Y, &pathNode{at: at, indices: []int{index}})
	if !t.quadTree.Insert(point) {
		return false
	}
	t.nodes[at] = point
	t.size++
	return true
}

func (t *pathTree) remove(at geometry.Point, index int) {
	point, ok := t.nodes[at]
	if !ok {
		return
	}
	node := point.Data().(*pathNode)
	for i, candidate := range node.indices {
		if candidate == index {
			node.indices = append(node.indices[:i], node.indices[i+1:]...)
			t.size--
			break
		}
	}
	if len(node.indices) == 0 {
		t.quadTree.Remove(point)
		delete(t.nodes, at)
	}
}

func (t *pathTree) search(at geometry.Point, halfSize float64) []*quadtree.Point {
	return t.quadTree.Search(quadtree.NewAABB(
		quadtree.NewPoint(at.X, at.Y, nil),
		quadtree.NewPoint(halfSize, halfSize, nil),
	))
}

// nearest returns the index of the path starting closest to at. Among
// equally close paths the lowest index wins.
func (t *pathTree) nearest(at geometry.Point) (int, bool) {
	if t.size == 0 {
		return 0, false
	}

	// The search box is square, so the closest point found in it may still
	// lose to one just outside; one more search at that distance settles it.
	for r := t.span / 64; ; r *= 2 {
		points := t.search(at, r)
		if len(points) == 0 {
			continue
		}
		best, d := closest(at, points)
		if d > r {
			best, _ = closest(at, t.search(at, d))
		}
		return best.indices[0], true
	}
}

func closest(at geometry.Point, points []*quadtree.Point) (*pathNode, float64) {
	var best *pathNode
	bestDist := math.Inf(1)
	for _, point := range points {
		node := point.Data().(*pathNode)
		d := geometry.Distance(at, node.at)
		if best == nil || d < bestDist || (d == bestDist && node.indices[0] < best.indices[0]) {
			best, bestDist = node, d
		}
	}
	return best, bestDist
}
