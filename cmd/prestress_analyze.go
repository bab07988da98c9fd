package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gopsc/internal/diagram"
	"github.com/alexiusacademia/gopsc/internal/prestress"
)

var (
	prestressAnalyzeFile        string
	prestressAnalyzeForce       float64
	prestressAnalyzeShowDiagram bool
	prestressAnalyzeExportFile  string
)

var prestressAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the complete prestress analysis of a beam",
	Long: `Run the complete analysis chain for a post-tensioned beam:
section geometry, materials and stress limits, service moments,
admissible initial force range, and the loss pipeline
(friction → anchorage → elastic shortening → relaxation,
shrinkage and creep with their interaction).

Examples:
  gopsc prestress analyze --file beam.json
  gopsc prestress analyze -f beam.json --force 1200 --diagram
  gopsc prestress analyze -f beam.json -o losses.png`,
	Run: runPrestressAnalyze,
}

func init() {
	prestressCmd.AddCommand(prestressAnalyzeCmd)

	prestressAnalyzeCmd.Flags().StringVarP(&prestressAnalyzeFile, "file", "f", "", "Path to beam JSON file [required]")
	prestressAnalyzeCmd.MarkFlagRequired("file")

	prestressAnalyzeCmd.Flags().Float64VarP(&prestressAnalyzeForce, "force", "P", 0, "Initial jacking force (kN), defaults to the admissible upper bound")
	prestressAnalyzeCmd.Flags().BoolVar(&prestressAnalyzeShowDiagram, "diagram", false, "Show ASCII loss and profile diagrams")
	prestressAnalyzeCmd.Flags().StringVarP(&prestressAnalyzeExportFile, "output", "o", "", "Export loss diagram to file (png, svg, pdf)")
}

func runPrestressAnalyze(cmd *cobra.Command, args []string) {
	beam, err := prestress.LoadFromFile(prestressAnalyzeFile)
	if err != nil {
		fmt.Printf("Error loading beam: %v\n", err)
		return
	}

	result, err := beam.Analyze(prestressAnalyzeForce)
	if err != nil {
		var rangeErr *prestress.RangeError
		if errors.As(err, &rangeErr) {
			printForceBounds(result)
			fmt.Println()
			fmt.Println("STATUS:")
			fmt.Println("───────────────────────────────────────────────────────────────")
			fmt.Printf("  ✗ %v\n", err)
			fmt.Println("  The section or tendon layout cannot satisfy all stress limits")
			fmt.Println("  simultaneously and must be redesigned.")
			fmt.Println()
			return
		}
		fmt.Printf("Error analyzing beam: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     PRESTRESSED BEAM ANALYSIS - EN 1992-1-1")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if beam.Name != "" {
		fmt.Printf("  Beam: %s\n", beam.Name)
	}
	if beam.Description != "" {
		fmt.Printf("  Description: %s\n", beam.Description)
	}
	fmt.Println()

	fmt.Println("MATERIAL PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  fck:\t%.1f MPa\n", result.Concrete.Fck)
	fmt.Fprintf(w, "  fctm:\t%.2f MPa\n", result.Concrete.Fctm)
	fmt.Fprintf(w, "  Ecm:\t%.0f MPa\n", result.Concrete.Ecm)
	fmt.Fprintf(w, "  fck at transfer (%.0f d):\t%.1f MPa\n", beam.TransferAge, result.AtTransfer.Fck)
	fmt.Fprintf(w, "  fptk:\t%.0f MPa\n", beam.Tendon.Fptk)
	w.Flush()
	fmt.Println()

	fmt.Println("STRESS LIMITS (MPa, tension positive):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Initial compression:\t%.2f\n", result.Limits.InitialCompression)
	fmt.Fprintf(w, "  Initial tension:\t%.2f\n", result.Limits.InitialTension)
	fmt.Fprintf(w, "  Service compression:\t%.2f\n", result.Limits.ServiceCompression)
	fmt.Fprintf(w, "  Service tension:\t%.2f\n", result.Limits.ServiceTension)
	w.Flush()
	fmt.Println()

	fmt.Println("SECTION AND MOMENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Gross area:\t%.4f m²\n", result.Properties.Area)
	fmt.Fprintf(w, "  Ix:\t%.6e m⁴\n", result.Properties.Ix)
	fmt.Fprintf(w, "  Wi / Ws:\t%.5e / %.5e m³\n", result.Properties.Wi, result.Properties.Ws)
	fmt.Fprintf(w, "  Midspan eccentricity:\t%.3f m\n", result.Eccentricity)
	fmt.Fprintf(w, "  M self-weight:\t%.2f kN-m\n", result.Moments.SelfWeight)
	fmt.Fprintf(w, "  M quasi-permanent:\t%.2f kN-m\n", result.Moments.QuasiPermanent)
	fmt.Fprintf(w, "  M frequent:\t%.2f kN-m\n", result.Moments.Frequent)
	w.Flush()
	fmt.Println()

	printForceBounds(result)
	fmt.Println()

	fmt.Println(diagram.DrawSummaryBox("ADMISSIBLE INITIAL FORCE", []string{
		fmt.Sprintf("P min = %.1f kN", result.Force.Low),
		fmt.Sprintf("P max = %s", formatForce(result.Force.High)),
		fmt.Sprintf("Nominal capacity = %.1f kN (advisory)", result.Force.EstimatedCapacity),
		fmt.Sprintf("Applied jacking force = %.1f kN", result.AppliedForce),
	}))

	fmt.Println("LOSS TABLE (tendon stress, MPa):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  x (m)\te (m)\tfriction\tanchorage\timmediate\tfinal\n")
	fmt.Fprintf(w, "  ─────\t─────\t────────\t─────────\t─────────\t─────\n")
	table := result.Losses
	step := len(table.Positions) / 10
	if step < 1 {
		step = 1
	}
	for i := 0; i < len(table.Positions); i += step {
		fmt.Fprintf(w, "  %.2f\t%.3f\t%.1f\t%.1f\t%.1f\t%.1f\n",
			table.Positions[i], table.Eccentricity[i],
			table.Friction[i], table.Anchorage[i], table.Immediate[i], table.Final[i])
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  Anchorage penetration length: %.2f m\n", table.PenetrationLength)
	fmt.Println()

	for _, warning := range result.Warnings {
		slog.Warn(warning)
	}

	if prestressAnalyzeShowDiagram {
		fmt.Println(diagram.DrawCableProfile(table.Positions, table.Eccentricity))
		fmt.Println(diagram.DrawLossCurves(table))
	}

	if prestressAnalyzeExportFile != "" {
		if err := diagram.ExportLossDiagram(table, prestressAnalyzeExportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", prestressAnalyzeExportFile)
		}
	}
}

func printForceBounds(result *prestress.Result) {
	fmt.Println("STRESS-LIMIT FORCE BOUNDS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Check\tBound\tP (kN)\n")
	fmt.Fprintf(w, "  ─────\t─────\t──────\n")
	for _, b := range result.Force.Bounds {
		kind := "upper"
		if b.IsLower {
			kind = "lower"
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", b.Name, kind, formatForce(b.Value))
	}
	w.Flush()
}

func formatForce(p float64) string {
	if math.IsInf(p, 1) {
		return "not governing"
	}
	return fmt.Sprintf("%.1f kN", p)
}
