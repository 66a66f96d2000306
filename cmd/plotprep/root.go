package main

import "github.com/spf13/cobra"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "plotprep",
	Short: "Prepare SVG line art for pen plotters and laser engravers",
	Long: `plotprep splits every path in an SVG into its sub-paths, scales the drawing
to a target size, drops sub-paths that are too short to plot, and restyles
what is left with a uniform stroke.

Usage:
  plotprep clean <file.svg> [flags]`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log progress")
}
