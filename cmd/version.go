package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gopsc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gopsc",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gopsc v%s\n", version.Version)
		fmt.Println("Prestressed Concrete Beam Design Tool")
		fmt.Println("Based on EN 1992-1-1 (Eurocode 2)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
