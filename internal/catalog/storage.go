// Package catalog manages imported species dataset versions: raw CSV
// blobs in object storage and version metadata in Postgres.
package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/herpmatch/herpmatch/pkg/config"
)

// StorageClient abstracts blob storage for dataset CSV files.
type StorageClient interface {
	PutDataset(ctx context.Context, versionTag string, data []byte) error
	GetDataset(ctx context.Context, versionTag string) ([]byte, error)
}

// NewStorage builds the storage backend named by the configuration.
func NewStorage(ctx context.Context, cfg config.StorageConfig) (StorageClient, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocalStorage(cfg.Dir), nil
	case "s3":
		return NewS3Storage(ctx, S3Config{
			Bucket:    cfg.Bucket,
			Region:    cfg.Region,
			Endpoint:  cfg.Endpoint,
			AccessKey: cfg.AccessKey,
			SecretKey: cfg.SecretKey,
		})
	case "gcs":
		return NewGCSStorage(ctx, cfg.Bucket)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(versionTag string) string {
	return filepath.Join(s.BaseDir, "datasets", versionTag+".csv")
}

// PutDataset stores a dataset blob.
func (s *LocalStorage) PutDataset(ctx context.Context, versionTag string, data []byte) error {
	path := s.path(versionTag)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// GetDataset retrieves a dataset blob.
func (s *LocalStorage) GetDataset(ctx context.Context, versionTag string) ([]byte, error) {
	return os.ReadFile(s.path(versionTag))
}
