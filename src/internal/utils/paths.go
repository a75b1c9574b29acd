package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// GetAbsolutePath returns path if it was absolute, otherwise joins it with baseDir.
// A leading "~/" is expanded to the user's home directory first.
func GetAbsolutePath(path, baseDir string) string {
	path = expandHome(path)

	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	// Join the relative path with the config directory
	return filepath.Clean(filepath.Join(baseDir, path))
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
