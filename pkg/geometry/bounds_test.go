package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		points []Point
		want   BoundingBox
	}{
		{nil, BoundingBox{}},
		{[]Point{{X: 5, Y: 5}}, BoundingBox{MinX: 5, MinY: 5}},
		{
			[]Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 20}, {X: 20, Y: 30}},
			BoundingBox{MinX: 0, MinY: 0, Width: 20, Height: 30},
		},
		{
			[]Point{{X: -3, Y: 2}, {X: 4, Y: -1}},
			BoundingBox{MinX: -3, MinY: -1, Width: 7, Height: 3},
		},
	}
	for i, test := range tests {
		got := Bounds(test.points)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("test %d: incorrect bounds: %s", i, diff)
		}
	}
}

func TestMaxDimension(t *testing.T) {
	b := BoundingBox{Width: 20, Height: 30}
	if b.MaxDimension() != 30 {
		t.Errorf("expected 30, got %g", b.MaxDimension())
	}
}
