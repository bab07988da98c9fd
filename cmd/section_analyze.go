package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gopsc/internal/diagram"
	"github.com/alexiusacademia/gopsc/internal/section"
)

var (
	sectionAnalyzeFile       string
	sectionAnalyzeExportFile string
)

var sectionAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Calculate geometric properties of a polygonal section",
	Long: `Calculate the area, centroid, centroidal moments of inertia,
section moduli and radii of gyration of a polygonal section
defined in a JSON file.

The computation uses the discrete form of Green's theorem over the
polygon edges, so any simple (non-self-intersecting) polygon works.

Examples:
  gopsc section analyze --file girder.json
  gopsc section analyze -f girder.json -o girder.png`,
	Run: runSectionAnalyze,
}

func init() {
	sectionCmd.AddCommand(sectionAnalyzeCmd)

	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeFile, "file", "f", "", "Path to section JSON file [required]")
	sectionAnalyzeCmd.MarkFlagRequired("file")

	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
}

func runSectionAnalyze(cmd *cobra.Command, args []string) {
	sec, err := section.LoadFromFile(sectionAnalyzeFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	props, err := sec.Properties()
	if err != nil {
		fmt.Printf("Error analyzing section: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          POLYGONAL SECTION ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if sec.Name != "" {
		fmt.Printf("  Section: %s\n", sec.Name)
	}
	if sec.Description != "" {
		fmt.Printf("  Description: %s\n", sec.Description)
	}
	fmt.Println()

	fmt.Println("SECTION GEOMETRY:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width (max):\t%.3f m\n", props.Width)
	fmt.Fprintf(w, "  Height:\t%.3f m\n", props.Height)
	fmt.Fprintf(w, "  Gross Area:\t%.4f m²\n", props.Area)
	fmt.Fprintf(w, "  Vertices:\t%d points\n", len(sec.Vertices))
	w.Flush()
	fmt.Println()

	fmt.Println("CENTROID AND INERTIA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Centroid X:\t%.4f m\n", props.CentroidX)
	fmt.Fprintf(w, "  Centroid Y:\t%.4f m\n", props.CentroidY)
	fmt.Fprintf(w, "  Ix (centroidal):\t%.6e m⁴\n", props.Ix)
	fmt.Fprintf(w, "  Iy (centroidal):\t%.6e m⁴\n", props.Iy)
	fmt.Fprintf(w, "  Radius of gyration rx:\t%.4f m\n", props.Rx)
	fmt.Fprintf(w, "  Radius of gyration ry:\t%.4f m\n", props.Ry)
	w.Flush()
	fmt.Println()

	fmt.Println("EXTREME FIBERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  yi (to bottom fiber):\t%.4f m\n", props.Yi)
	fmt.Fprintf(w, "  ys (to top fiber):\t%.4f m\n", props.Ys)
	fmt.Fprintf(w, "  Wi (bottom modulus):\t%.6e m³\n", props.Wi)
	fmt.Fprintf(w, "  Ws (top modulus):\t%.6e m³\n", props.Ws)
	w.Flush()
	fmt.Println()

	if sectionAnalyzeExportFile != "" {
		if err := diagram.ExportSectionDiagram(sec, props, 0, sectionAnalyzeExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", sectionAnalyzeExportFile)
		}
	}
}
