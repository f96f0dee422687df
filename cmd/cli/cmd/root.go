// Package cmd provides the CLI commands for tierpricing.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tierpricing/internal/config"
	"tierpricing/internal/logging"
)

var (
	cfgFile     string
	catalogPath string
	verbose     bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tierpricing",
	Short: "Resolve layered tier pricing",
	Long: `tierpricing resolves prices from a layered pricing catalog.

A catalog holds addressable tiers; each tier layers enable-gated
overrides over date-scoped seasons over base weekly plans, and the
highest-priority active rule wins.

Examples:
  tierpricing resolve --catalog pricing.hcl --tier standard
  tierpricing resolve --catalog pricing.json --tier vip --at 2026-12-25T12:00:00Z
  tierpricing tiers --catalog pricing.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tierpricing.json)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "pricing catalog file (.hcl or .json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// effectiveCatalog returns the catalog path from the flag or config.
func effectiveCatalog() string {
	if catalogPath != "" {
		return catalogPath
	}
	return config.Get().Catalog.Path
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tierpricing version 0.1.0")
	},
}
