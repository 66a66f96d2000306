package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"plotprep/pkg/geometry"

	"github.com/google/go-cmp/cmp"
)

var (
	black = color.RGBA{A: 0xff}
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

type pixelTest struct {
	x, y int
	want color.RGBA
}

func checkPixels(t *testing.T, img *image.RGBA, tests []pixelTest) {
	t.Helper()
	for _, test := range tests {
		if got := img.RGBAAt(test.x, test.y); got != test.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", test.x, test.y, got, test.want)
		}
	}
}

func TestRender(t *testing.T) {
	// A 98x18 mm page padded by a 2 mm stroke is 100x20 mm, one pixel per mm.
	lines := []geometry.Polyline{
		{{X: 9, Y: 9}, {X: 89, Y: 9}, {X: 89, Y: 17}},
	}
	img, err := Render(lines, 98, 18, 2, 100, black)
	if err != nil {
		t.Fatalf("render failed: %s", err)
	}
	if diff := cmp.Diff(image.Rect(0, 0, 100, 20), img.Bounds()); diff != "" {
		t.Errorf("incorrect bounds: %s", diff)
	}

	checkPixels(t, img, []pixelTest{
		{50, 9, black},
		{50, 10, black},
		{10, 9, black}, // segment and end cap overlap
		{89, 10, black},
		{90, 14, black},
		{50, 15, white},
		{2, 2, white},
		{95, 18, white},
	})

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("encoding failed: %s", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding failed: %s", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds %v", decoded.Bounds())
	}
}

func TestRenderZeroWidthPage(t *testing.T) {
	// A single vertical line: 0x30 mm page, padded to 2x32 mm at 2 px per mm.
	img, err := Render([]geometry.Polyline{{{X: 0, Y: 0}, {X: 0, Y: 30}}}, 0, 30, 2, 64, black)
	if err != nil {
		t.Fatalf("render failed: %s", err)
	}
	if diff := cmp.Diff(image.Rect(0, 0, 4, 64), img.Bounds()); diff != "" {
		t.Errorf("incorrect bounds: %s", diff)
	}
	checkPixels(t, img, []pixelTest{
		{0, 32, black},
		{3, 32, black},
		{1, 4, black},
		{2, 59, black},
	})
}

func TestRenderRejects(t *testing.T) {
	tests := []struct {
		widthMM, heightMM, strokeMM float64
		sizePX                      int
	}{
		{0, 0, 1, 100},
		{-1, 10, 1, 100},
		{10, 10, 1, 0},
	}
	for _, test := range tests {
		if _, err := Render(nil, test.widthMM, test.heightMM, test.strokeMM, test.sizePX, color.Black); err == nil {
			t.Errorf("%+v accepted", test)
		}
	}

	img, err := Render(nil, 10, 0, 1, 55, color.Black)
	if err != nil {
		t.Fatalf("render failed: %s", err)
	}
	if diff := cmp.Diff(image.Rect(0, 0, 55, 5), img.Bounds()); diff != "" {
		t.Errorf("incorrect bounds: %s", diff)
	}
}
