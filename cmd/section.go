package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Polygonal section property analysis",
	Long: `Analyze beam cross-sections defined as simple polygons in JSON files.

This allows analysis of arbitrary shapes like I-girders, T-beams,
box sections or any simple polygonal section.

Subcommands:
  analyze  - Calculate area, centroid, inertia, section moduli and
             radii of gyration

Example JSON file structure:
{
  "name": "Rectangular Girder",
  "vertices": [
    {"x": 0.0, "y": 0.0},
    {"x": 0.2, "y": 0.0},
    {"x": 0.2, "y": 0.8},
    {"x": 0.0, "y": 0.8}
  ]
}

Coordinates are in meters; the polygon is implicitly closed.`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
