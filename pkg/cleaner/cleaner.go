package cleaner

import (
	"plotprep/pkg/cfg"
	"plotprep/pkg/geometry"
	"plotprep/pkg/svgpath"

	"github.com/beevik/etree"
	"golang.org/x/xerrors"
)

// Options controls a cleaning run. Lengths are in mm.
type Options struct {
	// MinLengthMM is the shortest sub-path kept, measured after scaling.
	// A sub-path exactly this long is kept.
	MinLengthMM float64
	// TargetDimensionMM is the size the larger side of the drawing is
	// scaled to.
	TargetDimensionMM float64
	StrokeWidthMM     float64
	// SortForTravel reorders the kept sub-paths to shorten pen-up moves.
	// When false they stay in document order.
	SortForTravel bool
}

func DefaultOptions() Options {
	return Options{
		MinLengthMM:       cfg.MinLengthMM,
		TargetDimensionMM: cfg.TargetDimensionMM,
		StrokeWidthMM:     cfg.StrokeWidthMM,
	}
}

func (o Options) Validate() error {
	if !(o.TargetDimensionMM > 0) {
		return xerrors.Errorf("target dimension must be positive, got %g: %w", o.TargetDimensionMM, ErrInvalidOptions)
	}
	if !(o.StrokeWidthMM > 0) {
		return xerrors.Errorf("stroke width must be positive, got %g: %w", o.StrokeWidthMM, ErrInvalidOptions)
	}
	if !(o.MinLengthMM >= 0) {
		return xerrors.Errorf("minimum length must not be negative, got %g: %w", o.MinLengthMM, ErrInvalidOptions)
	}
	return nil
}

// Result describes a finished run.
type Result struct {
	// Original counts the sub-paths found before filtering.
	Original int
	Kept     int
	// ScaleFactor is zero when no sub-paths were found.
	ScaleFactor float64
	// Box is the refitted viewBox, in px.
	Box geometry.BoundingBox
	// Paths holds the kept sub-paths, in output order, for the exporters.
	Paths []*svgpath.Path
}

// Clean runs the pipeline on d in place: split every path into sub-paths,
// scale the drawing so its larger side is TargetDimensionMM, drop short
// sub-paths, restyle the rest into one group and refit the canvas.
//
// A document without any sub-paths is left unchanged and gives a zero
// Result. If every sub-path collapses to one point the error is
// ErrDegenerateGeometry and the document must be discarded.
func (d *Document) Clean(opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	root := d.Root()
	subPaths := ExtractSubPaths(root)
	if len(subPaths) == 0 {
		return Result{}, nil
	}

	kept, factor, err := ScaleAndFilter(subPaths, opts.MinLengthMM, opts.TargetDimensionMM)
	if err != nil {
		return Result{}, err
	}
	if opts.SortForTravel {
		kept = SortForTravel(kept)
	}

	group, box := Restyle(root, kept, opts.StrokeWidthMM)
	return Result{
		Original:    len(subPaths),
		Kept:        len(kept),
		ScaleFactor: factor,
		Box:         box,
		Paths:       parsePaths(group.ChildElements()),
	}, nil
}

func parsePaths(elements []*etree.Element) []*svgpath.Path {
	var paths []*svgpath.Path
	for _, el := range elements {
		path, err := svgpath.Parse(el.SelectAttrValue("d", ""))
		if err != nil {
			continue
		}
		paths = append(paths, path)
	}
	return paths
}

// Process parses an SVG document, cleans it and serializes the result.
func Process(data []byte, opts Options) ([]byte, Result, error) {
	doc, err := Parse(data)
	if err != nil {
		return nil, Result{}, err
	}
	result, err := doc.Clean(opts)
	if err != nil {
		return nil, Result{}, err
	}
	out, err := doc.Marshal()
	if err != nil {
		return nil, Result{}, xerrors.Errorf("serializing cleaned document: %w", err)
	}
	return out, result, nil
}
