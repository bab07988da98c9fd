package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gopsc/internal/cable"
	"github.com/alexiusacademia/gopsc/internal/diagram"
	"github.com/alexiusacademia/gopsc/internal/prestress"
)

var (
	cableFile    string
	cableSamples int
)

var cableCmd = &cobra.Command{
	Use:   "cable",
	Short: "Show the tendon profile along the span",
	Long: `Evaluate the tendon eccentricity and tangent angle along the span
from the cable waypoints of a beam JSON file.

Waypoints may describe only the first half of the span; positions past
the last waypoint are mirrored about midspan. Each waypoint carries a
segment type ("straight" or "parabolic") for the piece running to the
next waypoint.

Examples:
  gopsc cable --file beam.json
  gopsc cable -f beam.json --samples 20`,
	Run: runCable,
}

func init() {
	rootCmd.AddCommand(cableCmd)

	cableCmd.Flags().StringVarP(&cableFile, "file", "f", "", "Path to beam JSON file [required]")
	cableCmd.MarkFlagRequired("file")

	cableCmd.Flags().IntVarP(&cableSamples, "samples", "n", 20, "Number of span intervals to tabulate")
}

func runCable(cmd *cobra.Command, args []string) {
	beam, err := prestress.LoadFromFile(cableFile)
	if err != nil {
		fmt.Printf("Error loading beam: %v\n", err)
		return
	}

	path, err := cable.New(beam.Span, beam.Cable)
	if err != nil {
		fmt.Printf("Error building cable path: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          TENDON PROFILE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if beam.Name != "" {
		fmt.Printf("  Beam: %s\n", beam.Name)
		fmt.Println()
	}

	n := cableSamples
	if n < 2 {
		n = 2
	}

	positions := make([]float64, n+1)
	eccentricity := make([]float64, n+1)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  x (m)\te (m)\tangle (rad)\n")
	fmt.Fprintf(w, "  ─────\t─────\t───────────\n")
	for i := 0; i <= n; i++ {
		x := beam.Span * float64(i) / float64(n)
		positions[i] = x
		eccentricity[i] = path.PositionAt(x)
		fmt.Fprintf(w, "  %.2f\t%.4f\t%+.5f\n", x, eccentricity[i], path.TangentAngleAt(x))
	}
	w.Flush()

	fmt.Println(diagram.DrawCableProfile(positions, eccentricity))
}
