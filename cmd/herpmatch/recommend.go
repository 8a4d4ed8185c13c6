package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/herpmatch/herpmatch/pkg/scoring"
	"github.com/herpmatch/herpmatch/pkg/surface"
)

func newRecommendCmd() *cobra.Command {
	var (
		prefsPath string
		dataPath  string
		dataDir   string
		topN      int
		noReasons bool
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank species against a preference file",
		Long: `Loads keeper preferences from a YAML or JSON file, scores every species
in the catalog, and prints the top matches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecommend(recommendOpts{
				prefsPath: prefsPath,
				dataPath:  dataPath,
				dataDir:   dataDir,
				topN:      topN,
				noReasons: noReasons,
				outputFmt: outputFmt,
			})
		},
	}

	cmd.Flags().StringVar(&prefsPath, "prefs", "", "Path to a preference file (required)")
	cmd.Flags().StringVar(&dataPath, "data", "", "Path to a catalog CSV file")
	cmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory to search for known catalog filenames")
	cmd.Flags().IntVar(&topN, "top-n", 10, "Number of results to return")
	cmd.Flags().BoolVar(&noReasons, "no-reasons", false, "Omit match reasons and contribution breakdowns")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text or json")
	_ = cmd.MarkFlagRequired("prefs")

	return cmd
}

type recommendOpts struct {
	prefsPath string
	dataPath  string
	dataDir   string
	topN      int
	noReasons bool
	outputFmt string
}

func runRecommend(opts recommendOpts) error {
	data, err := os.ReadFile(opts.prefsPath)
	if err != nil {
		return fmt.Errorf("reading preferences: %w", err)
	}

	var prefs scoring.Preferences
	if err := yaml.Unmarshal(data, &prefs); err != nil {
		return fmt.Errorf("parsing preferences: %w", err)
	}
	if len(prefs.Categories) == 0 {
		return fmt.Errorf("preference file must list at least one category")
	}

	table, err := loadTable(opts.dataPath, opts.dataDir)
	if err != nil {
		return err
	}

	engine := scoring.NewEngine(table)
	includeReasons := !opts.noReasons
	rec, err := engine.Recommend(&prefs, &scoring.Options{
		TopN:           opts.topN,
		IncludeReasons: &includeReasons,
	})
	if err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	var renderer surface.Renderer
	switch opts.outputFmt {
	case "json":
		renderer = &surface.JSONRenderer{}
	case "text":
		renderer = &surface.TerminalRenderer{}
	default:
		return fmt.Errorf("unknown output format %q (want text or json)", opts.outputFmt)
	}

	return renderer.Render(os.Stdout, rec)
}
