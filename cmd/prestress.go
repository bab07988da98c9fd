package cmd

import (
	"github.com/spf13/cobra"
)

var prestressCmd = &cobra.Command{
	Use:   "prestress",
	Short: "Prestressing force and loss analysis",
	Long: `Analyze a post-tensioned beam defined in a JSON file: section
properties, material stress limits, service moments, the admissible
initial prestressing force range and the multi-stage loss curve
along the tendon.

Subcommands:
  analyze  - Run the complete analysis

Example JSON file structure:
{
  "name": "Workshop girder",
  "section": {
    "vertices": [
      {"x": 0.0, "y": 0.0},
      {"x": 0.2, "y": 0.0},
      {"x": 0.2, "y": 0.8},
      {"x": 0.0, "y": 0.8}
    ]
  },
  "fck": 35,
  "transfer_age": 7,
  "span": 18,
  "loads": {"self_weight": 5, "permanent": 3, "variable": 8},
  "tendon": {
    "area": 1800,
    "count": 2,
    "fptk": 1860,
    "friction": 0.19,
    "wobble": 0.002,
    "slip": 3
  },
  "cable": [
    {"x": 0, "y": 0.0, "type": "parabolic"},
    {"x": 9, "y": 0.3}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(prestressCmd)
}
