package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gopsc/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "gopsc",
	Short: "Prestressed Concrete Beam Design Tool",
	Long: `gopsc - Go Prestressed Concrete Beam Designer

A CLI tool for the service design of post-tensioned concrete beams
based on EN 1992-1-1 (Eurocode 2).

This tool helps structural engineers perform:
  - Polygonal section property analysis (area, inertia, moduli)
  - Service load combinations and bending moments
  - Admissible prestressing force range from fiber stress limits
  - Multi-stage prestress loss evaluation along the tendon

All calculations follow EN 1992-1-1 serviceability provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gopsc v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Prestressed Concrete Beam Designer                   ║")
		fmt.Println("  ║   Alexius S. Academia ©  2026                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the design of post-tensioned concrete beams")
		fmt.Println("  based on EN 1992-1-1 (Eurocode 2).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Polygonal section analysis (area, centroid, inertia, moduli)")
		fmt.Println("    • Quasi-permanent and frequent combination moments")
		fmt.Println("    • Admissible prestressing force range")
		fmt.Println("    • Friction, anchorage, elastic and deferred loss curves")
		fmt.Println()
		fmt.Println("  Use 'gopsc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))
}
