package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tierpricing/adapters/storage"
)

var validateAt string

// validateCmd loads a catalog and reports what resolves
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load a catalog and report per-tier resolution",
	Long: `Validate parses the catalog, then resolves every tier at the given
instant and reports which tiers produce a price. Tiers that resolve to
nothing are reported, not failed: an empty window is a valid catalog.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateAt, "at", "", "probe instant, RFC 3339 (default: now)")
}

func runValidate(cmd *cobra.Command, args []string) error {
	tree, err := storage.Load(effectiveCatalog())
	if err != nil {
		return err
	}

	at := time.Now().UTC()
	if validateAt != "" {
		at, err = time.Parse(time.RFC3339, validateAt)
		if err != nil {
			return fmt.Errorf("invalid --at value (want RFC 3339): %w", err)
		}
	}

	fmt.Printf("Catalog OK: %d tier(s)\n", len(tree.Tiers))
	for _, t := range tree.Tiers {
		if price := t.Price(at); price != nil {
			fmt.Printf("  %-24s resolves to %s (%s)\n", t.ID, price.Amount.StringFixed(2), price.Priority())
		} else {
			fmt.Printf("  %-24s resolves to nothing at %s\n", t.ID, at.Format(time.RFC3339))
		}
	}
	return nil
}
