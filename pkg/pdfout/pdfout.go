// Package pdfout writes a cleaned drawing as a single-page PDF at its
// physical size.
package pdfout

import (
	"image/color"
	"io"
	"math"

	"plotprep/pkg/geometry"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/xerrors"
)

// minPageMM keeps degenerate drawings (a single horizontal line, say) on a
// page the PDF writer accepts.
const minPageMM = 1.0

// Write draws lines, given in mm with Y pointing down, on a widthMM by
// heightMM page and writes the PDF to w.
func Write(w io.Writer, lines []geometry.Polyline, widthMM, heightMM, strokeMM float64, stroke color.Color) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size: gofpdf.SizeType{
			Wd: math.Max(widthMM, minPageMM),
			Ht: math.Max(heightMM, minPageMM),
		},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	r, g, b, _ := stroke.RGBA()
	pdf.SetDrawColor(int(r>>8), int(g>>8), int(b>>8))
	pdf.SetLineWidth(strokeMM)
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		pdf.MoveTo(line[0].X, line[0].Y)
		for _, p := range line[1:] {
			pdf.LineTo(p.X, p.Y)
		}
		pdf.DrawPath("D")
	}

	if err := pdf.Output(w); err != nil {
		return xerrors.Errorf("writing pdf: %w", err)
	}
	return nil
}
