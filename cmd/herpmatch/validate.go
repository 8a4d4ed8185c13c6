package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/herpmatch/herpmatch/pkg/config"
	"github.com/herpmatch/herpmatch/pkg/dataset"
	"github.com/herpmatch/herpmatch/pkg/species"
)

func newValidateCmd() *cobra.Command {
	var (
		dataPath string
		dataDir  string
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a species catalog CSV",
		Long:  `Loads a catalog file, reports row and category counts, and prints every cleaning warning.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(dataPath, dataDir)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "Path to a catalog CSV file")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory to search for known catalog filenames")

	return cmd
}

func runValidate(dataPath, dataDir string) error {
	table, err := loadTable(dataPath, dataDir)
	if err != nil {
		return err
	}

	fmt.Printf("Dataset:  %s\n", table.Version)
	fmt.Printf("Species:  %d\n", table.Len())

	counts := table.CategoryCounts()
	for _, c := range species.Categories() {
		if counts[c] > 0 {
			fmt.Printf("  %-20s %d\n", string(c), counts[c])
		}
	}

	if len(table.Warnings) == 0 {
		fmt.Println("No warnings.")
		return nil
	}
	fmt.Printf("\n%d warning(s):\n", len(table.Warnings))
	for _, w := range table.Warnings {
		fmt.Printf("  - %s\n", w)
	}
	return nil
}

// loadTable resolves the catalog file from flags, then config, then
// directory discovery, and loads it.
func loadTable(dataPath, dataDir string) (*dataset.Table, error) {
	cfg := config.DefaultConfig()
	cwd, err := os.Getwd()
	if err == nil {
		if p := config.FindConfigFile(cwd); p != "" {
			if loaded, err := config.Load(p); err == nil {
				cfg = loaded
			}
		}
	}

	path := firstNonEmpty(dataPath, cfg.Dataset.Path)
	if path == "" {
		dir := firstNonEmpty(dataDir, cfg.Dataset.Dir)
		discovered, err := dataset.Discover(dir)
		if err != nil {
			return nil, fmt.Errorf("no catalog file found: %w", err)
		}
		path = discovered
	}

	return dataset.Load(path)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
