package gcode

import (
	"bufio"
	"fmt"
	"io"

	"plotprep/pkg/cfg"
	"plotprep/pkg/geometry"
)

// Settings are the plotter parameters. Distances are mm, rates mm/min.
type Settings struct {
	XYTravelRate float64
	XYFeedRate   float64
	ZFeedRate    float64
	PenUpZ       float64
	PenDownZ     float64
	// SimplifyEpsilon is the Douglas-Peucker tolerance applied to each
	// polyline. Zero keeps every point.
	SimplifyEpsilon float64
}

func DefaultSettings() Settings {
	return Settings{
		XYTravelRate:    cfg.XYTravelRate,
		XYFeedRate:      cfg.XYFeedRate,
		ZFeedRate:       cfg.ZFeedRate,
		PenUpZ:          cfg.PenUpZ,
		PenDownZ:        cfg.PenDownZ,
		SimplifyEpsilon: cfg.SimplifyEpsilon,
	}
}

// Stats summarizes a generated job.
type Stats struct {
	Polylines int
	// DrawMM is the distance travelled with the pen down.
	DrawMM float64
	// TravelMM is the distance travelled with the pen up, including the
	// return home.
	TravelMM float64
}

// Generate writes a G-code job that draws lines in order. The lines are in
// mm with Y pointing down, as returned by cleaner.Result.Polylines, on a
// page heightMM tall. The machine's Y axis points up, so Y is flipped and
// home is the page's lower-left corner.
func Generate(w io.Writer, lines []geometry.Polyline, heightMM float64, s Settings) (Stats, error) {
	var stats Stats
	out := bufio.NewWriter(w)
	flip := geometry.Translation(0, heightMM).Multiply(geometry.Scaling(1, -1))

	// Output gcode header
	fmt.Fprintln(out, "G21 (metric ftw)")
	fmt.Fprintln(out, "G90 (absolute mode)")
	fmt.Fprintln(out, "G92 X0.00 Y0.00 Z0.00 (you are here)")
	fmt.Fprintf(out, "G0 F%0.2f (Travel Feed Rate)\n", s.XYTravelRate)
	fmt.Fprintf(out, "G1 F%0.2f (Cut Feed Rate)\n", s.XYFeedRate)
	fmt.Fprintf(out, "G0 Z%0.2f (Pen Up)\n", s.PenUpZ)

	pen := geometry.Point{}
	for _, line := range lines {
		if len(line) < 2 {
			continue
		}
		if s.SimplifyEpsilon > 0 {
			line = line.Simplify(s.SimplifyEpsilon)
		}
		line = line.Transform(flip)
		stats.Polylines++
		stats.TravelMM += geometry.Distance(pen, line[0])
		stats.DrawMM += line.Length()

		fmt.Fprintf(out, "\n(Polyline consisting of %d segments.)\n", len(line)-1)
		fmt.Fprintf(out, "G0 X%0.2f Y%0.2f\n", line[0].X, line[0].Y)
		fmt.Fprintf(out, "G1 Z%0.2f F%0.2f (Pen Down)\n", s.PenDownZ, s.ZFeedRate)
		fmt.Fprintf(out, "G1 F%0.2f\n", s.XYFeedRate)
		for _, p := range line[1:] {
			fmt.Fprintf(out, "G1 X%0.2f Y%0.2f\n", p.X, p.Y)
		}
		fmt.Fprintf(out, "G0 Z%0.2f (Pen Up)\n", s.PenUpZ)
		pen = line[len(line)-1]
	}
	stats.TravelMM += geometry.Distance(pen, geometry.Point{})

	// Output gcode footer
	fmt.Fprintln(out)
	fmt.Fprintln(out, "(end of print job)")
	fmt.Fprintf(out, "G0 Z%0.2f\n", s.PenUpZ)
	fmt.Fprintf(out, "G0 X0.00 Y0.00 F%0.2f (go home)\n", s.XYTravelRate)

	return stats, out.Flush()
}
