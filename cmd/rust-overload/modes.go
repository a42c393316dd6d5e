package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rust-overload/internal/registry"
)

var modesCmd = &cobra.Command{
	Use:   "modes",
	Short: "List playable modes",
	Long:  `Shows the modes available in the menu and in 'scores --mode'.`,
	Args:  cobra.NoArgs,
	Run:   runModes,
}

func runModes(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, m := range modes {
		fmt.Printf("  %-*s  %s\n", maxIDLen, m.ID, m.Title)
	}

	fmt.Println()
	fmt.Println("Run 'rust-overload play' or 'rust-overload play --endless' to start.")
}
