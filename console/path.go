package console

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NormalizePath expands a leading ~ to the home directory,
// and returns the cleaned absolute form of the path.
func NormalizePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to expand %s: %w", path, err)
		}

		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to normalize %s: %w", path, err)
	}

	return abs, nil
}
