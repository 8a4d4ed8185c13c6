package catalog

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/herpmatch/herpmatch/pkg/dataset"
)

// DatasetVersion is one imported catalog version.
type DatasetVersion struct {
	ID         string
	VersionTag string
	StorageRef string
	RowCount   int
	Warnings   []string
	Active     bool
	CreatedAt  time.Time
}

// Service provides dataset version management backed by Postgres and a
// blob storage backend.
type Service struct {
	db      *sql.DB
	storage StorageClient
}

// NewService creates a new catalog Service.
func NewService(db *sql.DB, storage StorageClient) *Service {
	return &Service{db: db, storage: storage}
}

// Import validates a raw CSV dataset, stores the blob, and records a new
// inactive version. The version tag must be unique.
func (s *Service) Import(ctx context.Context, versionTag string, data []byte) (*DatasetVersion, error) {
	table, err := dataset.Parse(bytes.NewReader(data), versionTag)
	if err != nil {
		return nil, fmt.Errorf("validate dataset: %w", err)
	}
	if table.Len() == 0 {
		return nil, fmt.Errorf("dataset %s has no valid rows", versionTag)
	}

	if err := s.storage.PutDataset(ctx, versionTag, data); err != nil {
		return nil, fmt.Errorf("store dataset blob: %w", err)
	}
	storageRef := fmt.Sprintf("datasets/%s.csv", versionTag)

	v := &DatasetVersion{}
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO datasets (version_tag, storage_ref, row_count, warnings)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, version_tag, storage_ref, row_count, warnings, active, created_at`,
		versionTag, storageRef, table.Len(), pq.Array(table.Warnings),
	).Scan(&v.ID, &v.VersionTag, &v.StorageRef, &v.RowCount, pq.Array(&v.Warnings), &v.Active, &v.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert dataset version %s: %w", versionTag, err)
	}
	return v, nil
}

// Activate marks one version as the serving dataset and deactivates the
// previous one.
func (s *Service) Activate(ctx context.Context, versionTag string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin activate: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE datasets SET active = FALSE WHERE active`); err != nil {
		return fmt.Errorf("deactivate current dataset: %w", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE datasets SET active = TRUE WHERE version_tag = $1`, versionTag)
	if err != nil {
		return fmt.Errorf("activate dataset %s: %w", versionTag, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("activate dataset %s: %w", versionTag, err)
	}
	if n == 0 {
		return fmt.Errorf("dataset version %s not found", versionTag)
	}

	return tx.Commit()
}

// List returns all imported versions, newest first.
func (s *Service) List(ctx context.Context) ([]DatasetVersion, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, version_tag, storage_ref, row_count, warnings, active, created_at
		 FROM datasets ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list datasets: %w", err)
	}
	defer rows.Close()

	var versions []DatasetVersion
	for rows.Next() {
		var v DatasetVersion
		if err := rows.Scan(&v.ID, &v.VersionTag, &v.StorageRef, &v.RowCount,
			pq.Array(&v.Warnings), &v.Active, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dataset version: %w", err)
		}
		versions = append(versions, v)
	}
	return versions, rows.Err()
}

// Active returns the currently serving version.
func (s *Service) Active(ctx context.Context) (*DatasetVersion, error) {
	v := &DatasetVersion{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, version_tag, storage_ref, row_count, warnings, active, created_at
		 FROM datasets WHERE active`,
	).Scan(&v.ID, &v.VersionTag, &v.StorageRef, &v.RowCount,
		pq.Array(&v.Warnings), &v.Active, &v.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("no active dataset")
	}
	if err != nil {
		return nil, fmt.Errorf("get active dataset: %w", err)
	}
	return v, nil
}

// LoadActive fetches the active version's blob and parses it into a
// species table ready for the engine.
func (s *Service) LoadActive(ctx context.Context) (*dataset.Table, error) {
	v, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}

	data, err := s.storage.GetDataset(ctx, v.VersionTag)
	if err != nil {
		return nil, fmt.Errorf("load dataset blob %s: %w", v.VersionTag, err)
	}

	table, err := dataset.Parse(bytes.NewReader(data), v.VersionTag)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", v.VersionTag, err)
	}
	return table, nil
}
