package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tierpricing/adapters/storage"
	"tierpricing/core/localized"
	"tierpricing/internal/config"
)

var (
	resolveTier string
	resolveAt   string
	resolveLang string
)

// resolveCmd resolves a tier's price at an instant
var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the price for a tier at an instant",
	Long: `Resolve walks the catalog's layers for one tier: overrides first,
then currently active seasons, then the base items. The highest-priority
active price wins; "no price" is a normal outcome, not an error.`,
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveTier, "tier", "t", "", "tier id to resolve [REQUIRED]")
	resolveCmd.Flags().StringVar(&resolveAt, "at", "", "query instant, RFC 3339 (default: now)")
	resolveCmd.Flags().StringVar(&resolveLang, "language", "", "display language for titles")
	resolveCmd.MarkFlagRequired("tier")
}

func runResolve(cmd *cobra.Command, args []string) error {
	tree, err := storage.Load(effectiveCatalog())
	if err != nil {
		return err
	}

	at := time.Now().UTC()
	if resolveAt != "" {
		at, err = time.Parse(time.RFC3339, resolveAt)
		if err != nil {
			return fmt.Errorf("invalid --at value (want RFC 3339): %w", err)
		}
	}
	lang := resolveLang
	if lang == "" {
		lang = config.Get().Catalog.DefaultLanguage
	}
	if lang == "" {
		lang = localized.DefaultLanguage
	}

	tier := tree.Tier(resolveTier)
	if tier == nil {
		fmt.Println("No tiers in catalog.")
		return nil
	}

	fmt.Printf("Tier:     %s\n", tier.ID)
	fmt.Printf("Instant:  %s\n", at.Format(time.RFC3339))

	price := tier.Price(at)
	if price == nil {
		fmt.Println("Price:    (none applicable)")
		return nil
	}

	fmt.Printf("Price:    %s\n", price.Amount.StringFixed(2))
	fmt.Printf("Priority: %s\n", price.Priority())
	if title := tier.ExceptionTitle(at); title != nil {
		fmt.Printf("Note:     %s\n", title.In(lang))
	}
	return nil
}
