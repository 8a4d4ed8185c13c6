package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/herpmatch/herpmatch/internal/catalog"
	"github.com/herpmatch/herpmatch/internal/platform"
	"github.com/herpmatch/herpmatch/pkg/config"
)

func newIngestCmd() *cobra.Command {
	var (
		dataPath   string
		versionTag string
		activate   bool
		dbURL      string
	)

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Import a catalog CSV into the dataset catalog",
		Long: `Validates a catalog CSV, uploads the blob to the configured storage
backend, and records a new dataset version in Postgres.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(cmd, dataPath, versionTag, dbURL, activate)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "Path to a catalog CSV file (required)")
	cmd.Flags().StringVar(&versionTag, "version", "", "Version tag (default: file name without extension)")
	cmd.Flags().BoolVar(&activate, "activate", false, "Activate the version after import")
	cmd.Flags().StringVar(&dbURL, "database-url", "", "Postgres DSN (default: config/env)")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func runIngest(cmd *cobra.Command, dataPath, versionTag, dbURL string, activate bool) error {
	ctx := cmd.Context()

	cfg := config.DefaultConfig()
	if cwd, err := os.Getwd(); err == nil {
		if p := config.FindConfigFile(cwd); p != "" {
			if loaded, err := config.Load(p); err == nil {
				cfg = loaded
			}
		}
	}
	cfg.ApplyEnv()

	url := firstNonEmpty(dbURL, cfg.Database.URL)
	if url == "" {
		return fmt.Errorf("a database URL is required (--database-url, config, or DATABASE_URL)")
	}

	data, err := os.ReadFile(dataPath)
	if err != nil {
		return fmt.Errorf("reading dataset: %w", err)
	}
	if versionTag == "" {
		base := filepath.Base(dataPath)
		versionTag = strings.TrimSuffix(base, filepath.Ext(base))
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := platform.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	storage, err := catalog.NewStorage(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	svc := catalog.NewService(db, storage)
	v, err := svc.Import(ctx, versionTag, data)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %s: %d species, %d warning(s)\n", v.VersionTag, v.RowCount, len(v.Warnings))
	for _, w := range v.Warnings {
		fmt.Printf("  - %s\n", w)
	}

	if activate {
		if err := svc.Activate(ctx, v.VersionTag); err != nil {
			return err
		}
		fmt.Printf("Activated %s\n", v.VersionTag)
	}
	return nil
}
