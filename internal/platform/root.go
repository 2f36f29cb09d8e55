package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"scrib/pkg/adapters/localfile"
)

// FindRoot recursively looks upwards for a vault root indicator.
// Indicators are: notes.json (the store blob) or config.yaml.
// If found, returns the absolute path to the root.
// If not found (reached root of FS), returns an error.
func FindRoot(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, localfile.StoreFile) || hasFile(dir, ConfigFile) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("vault root not found")
}

func hasFile(dir, name string) bool {
	path := filepath.Join(dir, name)
	_, err := os.Stat(path)
	return err == nil
}
