package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gopsc/internal/ec2"
	"github.com/alexiusacademia/gopsc/internal/loads"
)

var (
	// Distributed loads (kN/m)
	momentSelfWeight float64
	momentPermanent  float64
	momentVariable   float64

	momentSpan float64
	momentAt   float64
)

var momentCmd = &cobra.Command{
	Use:   "moment",
	Short: "Calculate service combination moments",
	Long: `Calculate the quasi-permanent and frequent combination bending
moments of a simply supported beam under uniform loads.

Combinations follow EN 1990 serviceability rules:
  quasi-permanent: G0 + G + ψ2·Q   (ψ2 = 0.4)
  frequent:        G0 + G + ψ1·Q   (ψ1 = 0.6)

The moment at position x is M(x) = w·x·(L-x)/2, which reduces to
wL²/8 at midspan.

Examples:
  # Midspan moments
  gopsc moment --span 18 --self-weight 5 --permanent 3 --variable 8

  # Moment at the quarter point
  gopsc moment --span 18 --self-weight 5 --permanent 3 --variable 8 --at 4.5`,
	Run: runMoment,
}

func init() {
	rootCmd.AddCommand(momentCmd)

	momentCmd.Flags().Float64VarP(&momentSpan, "span", "L", 0, "Beam span (m) [required]")
	momentCmd.MarkFlagRequired("span")

	momentCmd.Flags().Float64VarP(&momentSelfWeight, "self-weight", "g", 0, "Self weight load G0 (kN/m)")
	momentCmd.Flags().Float64VarP(&momentPermanent, "permanent", "p", 0, "Superimposed permanent load G (kN/m)")
	momentCmd.Flags().Float64VarP(&momentVariable, "variable", "q", 0, "Variable load Q (kN/m)")

	momentCmd.Flags().Float64VarP(&momentAt, "at", "x", -1, "Evaluation position along the span (m), midspan when omitted")
}

func runMoment(cmd *cobra.Command, args []string) {
	ls := loads.LoadSet{
		SelfWeight: momentSelfWeight,
		Permanent:  momentPermanent,
		Variable:   momentVariable,
	}

	if ls.SelfWeight == 0 && ls.Permanent == 0 && ls.Variable == 0 {
		fmt.Println("Error: Please provide at least one distributed load.")
		fmt.Println("Use 'gopsc moment --help' for usage information.")
		return
	}

	x := momentAt
	if x < 0 {
		x = momentSpan / 2
	}
	if x > momentSpan {
		fmt.Printf("Error: position %.2f m is beyond the span of %.2f m.\n", x, momentSpan)
		return
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          SERVICE COMBINATION MOMENTS (EN 1990)")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("DISTRIBUTED LOADS (kN/m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Self weight (G0):\t%.2f\n", ls.SelfWeight)
	fmt.Fprintf(w, "  Permanent (G):\t%.2f\n", ls.Permanent)
	fmt.Fprintf(w, "  Variable (Q):\t%.2f\n", ls.Variable)
	fmt.Fprintf(w, "  Span:\t%.2f m\n", momentSpan)
	fmt.Fprintf(w, "  Position:\t%.2f m\n", x)
	w.Flush()
	fmt.Println()

	fmt.Println("COMBINATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  ID\tCombination\tw (kN/m)\tM(x) (kN-m)\n")
	fmt.Fprintf(w, "  ──\t───────────\t────────\t───────────\n")
	for _, combo := range ec2.ServiceCombinations {
		wc := combo.Combine(ls.SelfWeight, ls.Permanent, ls.Variable)
		fmt.Fprintf(w, "  %s\t%s\t%.2f\t%.2f\n", combo.ID, combo.Description, wc, loads.MomentAt(wc, momentSpan, x))
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═══════════════════════════════════════════╗\n")
	fmt.Printf("  ║  M quasi-permanent = %.2f kN-m            \n", loads.MomentAt(ls.QuasiPermanent(), momentSpan, x))
	fmt.Printf("  ║  M frequent        = %.2f kN-m            \n", loads.MomentAt(ls.Frequent(), momentSpan, x))
	fmt.Printf("  ╚═══════════════════════════════════════════╝\n")
	fmt.Println()
}
