package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tierpricing/adapters/storage"
)

// tiersCmd lists the catalog's tiers
var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List the tiers in a catalog",
	RunE:  runTiers,
}

func runTiers(cmd *cobra.Command, args []string) error {
	tree, err := storage.Load(effectiveCatalog())
	if err != nil {
		return err
	}

	if len(tree.Tiers) == 0 {
		fmt.Println("Catalog has no tiers.")
		return nil
	}

	fmt.Printf("%-24s %-8s %10s %8s %6s\n", "ID", "PRIORITY", "OVERRIDES", "SEASONS", "ITEMS")
	for _, t := range tree.Tiers {
		fmt.Printf("%-24s %-8s %10d %8d %6d\n",
			t.ID, t.Priority(), len(t.Overrides), len(t.Seasons), len(t.Items))
	}
	return nil
}
