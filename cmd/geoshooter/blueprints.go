package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geo-shooter/internal/geometry"
)

var blueprintsCmd = &cobra.Command{
	Use:   "blueprints",
	Short: "List all entity blueprints",
	Long:  `Shows every registered entity blueprint with its collision shape.`,
	Run:   runBlueprints,
}

func runBlueprints(cmd *cobra.Command, args []string) {
	names := geometry.List()

	if len(names) == 0 {
		fmt.Println("No blueprints registered.")
		return
	}

	fmt.Println("Registered blueprints:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, name := range names {
		if len(name) > maxNameLen {
			maxNameLen = len(name)
		}
	}

	fmt.Printf("  %-*s  %-10s  %-7s  %s\n", maxNameLen, "Name", "Collision", "Shapes", "Radius")
	fmt.Printf("  %-*s  %-10s  %-7s  %s\n", maxNameLen, "----", "---------", "------", "------")

	for _, name := range names {
		bp := geometry.MustGet(name)
		fmt.Printf("  %-*s  %-10s  %-7d  %.1f\n",
			maxNameLen, name, bp.Collision.Kind, len(bp.Shapes), bp.BoundingRadius())
	}
}
