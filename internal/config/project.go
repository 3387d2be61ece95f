package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindConfigFile walks up from startDir to the filesystem root and returns the
// first gridview.yaml or gridview.yml found, so one file at a project root
// covers every subdirectory. Returns "" when there is none.
// The returned path is always absolute (or empty).
func FindConfigFile(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", startDir, err)
	}

	for {
		for _, name := range configNames {
			candidate := filepath.Join(dir, name)
			if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
