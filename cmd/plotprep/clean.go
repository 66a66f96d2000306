package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"plotprep/pkg/cfg"
	"plotprep/pkg/cleaner"
	"plotprep/pkg/gcode"
	"plotprep/pkg/pdfout"
	"plotprep/pkg/preview"

	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

// Flag variables.
var (
	flagMinLength   float64
	flagSize        float64
	flagStrokeWidth float64
	flagOut         string
	flagSortTravel  bool
	flagGCode       string
	flagPreview     string
	flagPDF         string
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file.svg>",
	Short: "Clean an SVG and write <name>_Clean.svg next to it",
	Long: `Clean splits paths into sub-paths, scales the drawing so its larger side is
--size mm, removes sub-paths shorter than --min-length mm and restyles the
rest with a --stroke-width mm round stroke.

Examples:
  plotprep clean logo.svg
  plotprep clean logo.svg --size 150 --min-length 1 --out logo_plot
  plotprep clean logo.svg --sort-travel --gcode logo.gcode --preview logo.png`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().Float64Var(&flagMinLength, "min-length", cfg.MinLengthMM, "Minimum sub-path length to keep, in mm")
	cleanCmd.Flags().Float64Var(&flagSize, "size", cfg.TargetDimensionMM, "Size of the drawing's larger side, in mm")
	cleanCmd.Flags().Float64Var(&flagStrokeWidth, "stroke-width", cfg.StrokeWidthMM, "Stroke width, in mm")
	cleanCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Output file name (default <name>_Clean.svg)")
	cleanCmd.Flags().BoolVar(&flagSortTravel, "sort-travel", false, "Reorder paths to shorten pen-up moves")

	// Extra outputs.
	cleanCmd.Flags().StringVar(&flagGCode, "gcode", "", "Also write G-code to this file")
	cleanCmd.Flags().StringVar(&flagPreview, "preview", "", "Also write a PNG preview to this file")
	cleanCmd.Flags().StringVar(&flagPDF, "pdf", "", "Also write a PDF to this file")
}

func runClean(cmd *cobra.Command, args []string) error {
	input := args[0]
	data, err := os.ReadFile(input)
	if err != nil {
		return xerrors.Errorf("file read error: %w", err)
	}

	opts := cleaner.Options{
		MinLengthMM:       flagMinLength,
		TargetDimensionMM: flagSize,
		StrokeWidthMM:     flagStrokeWidth,
		SortForTravel:     flagSortTravel,
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	doc, err := cleaner.Parse(data)
	if err != nil {
		return xerrors.Errorf("%s: %w", input, err)
	}
	if verbose {
		if w, h, err := doc.PhysicalSize(); err == nil {
			log.Printf("%s is %.1f x %.1f mm", input, w, h)
		}
	}

	result, err := doc.Clean(opts)
	if xerrors.Is(err, cleaner.ErrDegenerateGeometry) {
		return xerrors.Errorf("%s: nothing measurable found: %w", input, err)
	}
	if err != nil {
		return err
	}
	if verbose {
		log.Printf("scale factor %g", result.ScaleFactor)
	}

	out, err := doc.Marshal()
	if err != nil {
		return xerrors.Errorf("marshal error: %w", err)
	}
	outPath := outputPath(input, flagOut)
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return xerrors.Errorf("file write error: %w", err)
	}
	if verbose {
		log.Printf("wrote %s", outPath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Original paths: %d\n", result.Original)
	fmt.Fprintf(cmd.OutOrStdout(), "Remaining paths: %d\n", result.Kept)

	return export(result)
}

func export(result cleaner.Result) error {
	if flagGCode == "" && flagPreview == "" && flagPDF == "" {
		return nil
	}
	if result.Kept == 0 {
		log.Printf("no paths left, skipping exports")
		return nil
	}

	widthMM, heightMM := result.PageSize()
	lines := result.Polylines(cfg.FlattenMaxStep)
	stroke := cleaner.StrokeColor.RGBA()

	if flagGCode != "" {
		err := writeFile(flagGCode, func(w io.Writer) error {
			stats, err := gcode.Generate(w, lines, heightMM, gcode.DefaultSettings())
			if verbose {
				log.Printf("%d polylines, %.1f mm drawn, %.1f mm travel", stats.Polylines, stats.DrawMM, stats.TravelMM)
			}
			return err
		})
		if err != nil {
			return err
		}
	}

	if flagPreview != "" {
		img, err := preview.Render(lines, widthMM, heightMM, flagStrokeWidth, cfg.PreviewSizePX, stroke)
		if err != nil {
			return err
		}
		err = writeFile(flagPreview, func(w io.Writer) error {
			return preview.WritePNG(w, img)
		})
		if err != nil {
			return err
		}
	}

	if flagPDF != "" {
		err := writeFile(flagPDF, func(w io.Writer) error {
			return pdfout.Write(w, lines, widthMM, heightMM, flagStrokeWidth, stroke)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return xerrors.Errorf("file write error: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return xerrors.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return xerrors.Errorf("file write error: %w", err)
	}
	if verbose {
		log.Printf("wrote %s", path)
	}
	return nil
}
