// Package main provides the herpmatch CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "herpmatch",
		Short: "Species recommendations for reptile and amphibian keepers",
		Long: `HerpMatch scores every species in a catalog against keeper preferences
and ranks the best matches, with per-attribute explanations.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newValidateCmd(),
		newRecommendCmd(),
		newIngestCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
