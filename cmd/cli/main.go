// tierpricing CLI entry point.
package main

import (
	"fmt"
	"os"

	"tierpricing/cmd/cli/cmd"
	"tierpricing/internal/logging"
)

func main() {
	defer logging.Sync()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
