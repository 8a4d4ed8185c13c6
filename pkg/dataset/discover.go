package dataset

import (
	"fmt"
	"os"
	"path/filepath"
)

// filePriorities lists candidate dataset filenames, newest revision first.
// Discovery returns the first one that exists.
var filePriorities = []string{
	"species_catalog_extended.csv",
	"species_catalog_clean.csv",
	"species_catalog_v3_images.csv",
	"species_catalog_v2.csv",
	"species_catalog.csv",
}

// Discover returns the path of the first existing candidate dataset file
// in dir, checked in priority order.
func Discover(dir string) (string, error) {
	for _, name := range filePriorities {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no dataset file found in %s (looked for %v)", dir, filePriorities)
}
