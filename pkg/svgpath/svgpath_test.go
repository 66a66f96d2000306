package svgpath_test

import (
	"math"
	"testing"

	"plotprep/pkg/geometry"
	"plotprep/pkg/svgpath"

	"github.com/google/go-cmp/cmp"
)

var approx = cmp.Comparer(func(x, y float64) bool {
	return math.Abs(x-y) < 1e-9*math.Max(1, math.Max(math.Abs(x), math.Abs(y)))
})

func TestBasic(t *testing.T) {
	path, err := svgpath.Parse(" \t\r\nM1.e2 2. 1 .2.3 0.4e2 z L 7 8 9 10 H 11 12 13 l 2 2v5C 5 6 7 8 9 10")
	if err != nil {
		t.Fatalf("parsing failed: %s", err)
	}
	expected := &svgpath.Path{Commands: []*svgpath.Command{
		{Name: 'M', Args: []float64{100, 2, 1, .2, .3, 40}},
		{Name: 'z'},
		{Name: 'L', Args: []float64{7, 8, 9, 10}},
		{Name: 'H', Args: []float64{11, 12, 13}},
		{Name: 'l', Args: []float64{2, 2}},
		{Name: 'v', Args: []float64{5}},
		{Name: 'C', Args: []float64{5, 6, 7, 8, 9, 10}},
	}}
	if diff := cmp.Diff(expected, path); diff != "" {
		t.Errorf("incorrect output: %s", diff)
	}
}

func TestParseArcFlags(t *testing.T) {
	path, err := svgpath.Parse("M0,0 a1,1 0 0110,10A5 5 30 1 0 -3-4")
	if err != nil {
		t.Fatalf("parsing failed: %s", err)
	}
	expected := &svgpath.Path{Commands: []*svgpath.Command{
		{Name: 'M', Args: []float64{0, 0}},
		{Name: 'a', Args: []float64{1, 1, 0, 0, 1, 10, 10}},
		{Name: 'A', Args: []float64{5, 5, 30, 1, 0, -3, -4}},
	}}
	if diff := cmp.Diff(expected, path); diff != "" {
		t.Errorf("incorrect output: %s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	for _, d := range []string{
		"L 10 10",
		"M 1",
		"M 0 0 L",
		"M 0 0 X 5",
		"M 0 0 A 1 1 0 2 0 5 5",
		"M 0 0 L 1e 2",
	} {
		if _, err := svgpath.Parse(d); err == nil {
			t.Errorf("expected an error parsing %q", d)
		}
	}
}

func TestSegments(t *testing.T) {
	tests := []struct {
		d    string
		want []geometry.Segment
	}{
		{
			d: "M0,0 L10,0",
			want: []geometry.Segment{
				geometry.Line{A: geometry.Point{X: 0, Y: 0}, B: geometry.Point{X: 10, Y: 0}},
			},
		},
		{
			d: "m1,1 h4 v4 h-4 z",
			want: []geometry.Segment{
				geometry.Line{A: geometry.Point{X: 1, Y: 1}, B: geometry.Point{X: 5, Y: 1}},
				geometry.Line{A: geometry.Point{X: 5, Y: 1}, B: geometry.Point{X: 5, Y: 5}},
				geometry.Line{A: geometry.Point{X: 5, Y: 5}, B: geometry.Point{X: 1, Y: 5}},
				geometry.Line{A: geometry.Point{X: 1, Y: 5}, B: geometry.Point{X: 1, Y: 1}},
			},
		},
		{
			// Closing at the start point adds nothing.
			d: "M0,0 L5,0 L0,0 Z",
			want: []geometry.Segment{
				geometry.Line{A: geometry.Point{X: 0, Y: 0}, B: geometry.Point{X: 5, Y: 0}},
				geometry.Line{A: geometry.Point{X: 5, Y: 0}, B: geometry.Point{X: 0, Y: 0}},
			},
		},
		{
			d: "M0,0 C0,1 1,2 2,2 S4,1 4,0",
			want: []geometry.Segment{
				geometry.CubicBez{
					P0: geometry.Point{X: 0, Y: 0}, P1: geometry.Point{X: 0, Y: 1},
					P2: geometry.Point{X: 1, Y: 2}, P3: geometry.Point{X: 2, Y: 2},
				},
				geometry.CubicBez{
					P0: geometry.Point{X: 2, Y: 2}, P1: geometry.Point{X: 3, Y: 2},
					P2: geometry.Point{X: 4, Y: 1}, P3: geometry.Point{X: 4, Y: 0},
				},
			},
		},
		{
			d: "M0,0 q1,2 2,0 t2,0",
			want: []geometry.Segment{
				geometry.QuadBez{P0: geometry.Point{X: 0, Y: 0}, P1: geometry.Point{X: 1, Y: 2}, P2: geometry.Point{X: 2, Y: 0}},
				geometry.QuadBez{P0: geometry.Point{X: 2, Y: 0}, P1: geometry.Point{X: 3, Y: -2}, P2: geometry.Point{X: 4, Y: 0}},
			},
		},
		{
			d: "M0,0 a10,10 0 0 1 20,0 A0,5 0 0 0 30,0 A5,5 0 0 0 30,0",
			want: []geometry.Segment{
				geometry.Arc{From: geometry.Point{X: 0, Y: 0}, To: geometry.Point{X: 20, Y: 0}, RX: 10, RY: 10, Sweep: true},
				geometry.Line{A: geometry.Point{X: 20, Y: 0}, B: geometry.Point{X: 30, Y: 0}},
			},
		},
		{
			d:    "M5,5",
			want: nil,
		},
	}
	for _, test := range tests {
		path, err := svgpath.Parse(test.d)
		if err != nil {
			t.Errorf("parsing %q failed: %s", test.d, err)
			continue
		}
		if diff := cmp.Diff(test.want, path.Segments()); diff != "" {
			t.Errorf("%q: incorrect segments: %s", test.d, diff)
		}
	}
}

func TestMeasure(t *testing.T) {
	tests := []struct {
		d       string
		length  float64
		npoints int
		wantErr bool
	}{
		{d: "M0,0 L10,0", length: 10, npoints: 2},
		{d: "M20,20 L20,30", length: 10, npoints: 2},
		{d: "M0,0 h10 v10 h-10 z", length: 40, npoints: 8},
		{d: "M0,0 A10,10 0 0 1 20,0", length: 10 * math.Pi, npoints: 2},
		{d: "M5,5", length: 0, npoints: 0},
		{d: "", length: 0, npoints: 0},
		{d: "L10,10", wantErr: true},
		{d: "M0,0 L10", wantErr: true},
	}
	for _, test := range tests {
		m, err := svgpath.Measure(test.d)
		if (err != nil) != test.wantErr {
			t.Errorf("%q: unexpected error state: %v", test.d, err)
			continue
		}
		if diff := cmp.Diff(test.length, m.Length, approx); diff != "" {
			t.Errorf("%q: incorrect length: %s", test.d, diff)
		}
		if len(m.Points) != test.npoints {
			t.Errorf("%q: expected %d points, got %d", test.d, test.npoints, len(m.Points))
		}
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		d      string
		factor float64
		want   string
	}{
		{"M0,0 L10,0", 2, "M 0 0 L 20 0"},
		{"m1,1 l2,3 h4 v-1 z", 10, "m 10 10 l 20 30 h 40 v -10 z"},
		{"M0,0 A10,5 30 1 0 20,0", 0.5, "M 0 0 A 5 2.5 30 1 0 10 0"},
		{"M0 0 c1 1 2 2 3 3 s1 1 2 2 Q1 1 2 2 T4 4", 3, "M 0 0 c 3 3 6 6 9 9 s 3 3 6 6 Q 3 3 6 6 T 12 12"},
	}
	for _, test := range tests {
		path, err := svgpath.Parse(test.d)
		if err != nil {
			t.Errorf("parsing %q failed: %s", test.d, err)
			continue
		}
		got := path.Scale(test.factor).String()
		if got != test.want {
			t.Errorf("Scale(%q, %g) = %q, want %q", test.d, test.factor, got, test.want)
		}
	}
}

func TestScaledLengthProportional(t *testing.T) {
	const factor = 12.598425196850393
	for _, d := range []string{
		"M0,0 L10,0",
		"m3,4 c1,5 7,-3 9,2 s4,4 6,0",
		"M1,1 Q4,9 8,0 T12,3",
		"M0,0 a5,2 20 0 1 4,3 a3,3 0 1 0 2,2 z",
	} {
		path, err := svgpath.Parse(d)
		if err != nil {
			t.Fatalf("parsing %q failed: %s", d, err)
		}
		want := path.Length() * factor
		got := path.Scale(factor).Length()
		if diff := cmp.Diff(want, got, cmp.Comparer(func(x, y float64) bool {
			return math.Abs(x-y) < 1e-7*math.Max(1, math.Abs(x))
		})); diff != "" {
			t.Errorf("%q: scaled length not proportional: %s", d, diff)
		}
	}
}

func TestSplitSubPaths(t *testing.T) {
	tests := []struct {
		d    string
		want []string
	}{
		{"M0,0 L10,0 M20,20 L20,30", []string{"M0,0 L10,0", "M20,20 L20,30"}},
		{"  m1 1 l2 2 m3 3  ", []string{"m1 1 l2 2", "m3 3"}},
		{"L5,5 M0,0 L1,1", []string{"L5,5", "M0,0 L1,1"}},
		{"L5,5", []string{"L5,5"}},
		{"   ", nil},
		{"", nil},
	}
	for _, test := range tests {
		got := svgpath.SplitSubPaths(test.d)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("SplitSubPaths(%q) incorrect output: %s", test.d, diff)
		}
	}
}

func TestPolylines(t *testing.T) {
	path, err := svgpath.Parse("M0,0 L10,0 L10,10 M20,20 L30,20")
	if err != nil {
		t.Fatalf("parsing failed: %s", err)
	}
	want := []geometry.Polyline{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}},
		{{X: 20, Y: 20}, {X: 30, Y: 20}},
	}
	if diff := cmp.Diff(want, path.Polylines(1)); diff != "" {
		t.Errorf("incorrect polylines: %s", diff)
	}
}
