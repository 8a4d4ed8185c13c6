// Package config handles loading and managing HerpMatch configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration for HerpMatch.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig controls the HTTP daemon.
type ServerConfig struct {
	Port   int    `yaml:"port"`
	APIKey string `yaml:"api_key"` // protects admin endpoints when set
}

// DatasetConfig controls where the species catalog is read from.
type DatasetConfig struct {
	Path string `yaml:"path"` // explicit CSV file; overrides Dir discovery
	Dir  string `yaml:"dir"`  // directory searched for known catalog names
}

// ScoringConfig controls scoring behavior.
type ScoringConfig struct {
	Weights map[string]int `yaml:"weights"` // operator overrides of default attribute weights
}

// DatabaseConfig controls the optional catalog version store.
type DatabaseConfig struct {
	URL string `yaml:"url"` // Postgres DSN; empty disables the catalog store
}

// StorageConfig controls where imported dataset blobs are kept.
type StorageConfig struct {
	Backend   string `yaml:"backend"` // local, s3, or gcs
	Dir       string `yaml:"dir"`     // local backend root
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"` // custom S3 endpoint (MinIO etc.)
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
}

// LoggingConfig controls structured log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty logs to stderr only
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Dataset: DatasetConfig{
			Dir: "data",
		},
		Scoring: ScoringConfig{
			Weights: map[string]int{},
		},
		Storage: StorageConfig{
			Backend: "local",
			Dir:     "datasets",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a config file from the given path.
// If the file does not exist, it returns the default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// FindConfigFile looks for .herpmatch/config.yaml in the given directory
// and its parents, returning the path if found, or "" if not.
func FindConfigFile(dir string) string {
	for {
		candidate := filepath.Join(dir, ".herpmatch", "config.yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// ApplyEnv overlays environment variables onto the config. Variables win
// over file values so containerized deployments can skip the file entirely.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("HERPMATCH_API_KEY"); v != "" {
		c.Server.APIKey = v
	}
	if v := os.Getenv("HERPMATCH_DATASET_PATH"); v != "" {
		c.Dataset.Path = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.Database.URL = v
	}
	if v := os.Getenv("HERPMATCH_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("HERPMATCH_STORAGE_BUCKET"); v != "" {
		c.Storage.Bucket = v
	}
	if v := os.Getenv("HERPMATCH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}
