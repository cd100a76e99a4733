package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// ResolvePath resolves a path named inside a script against the script's own
// location. Absolute paths and paths starting with ~/ are not rebased.
func ResolvePath(scriptPath, relativePath string) string {
	if strings.HasPrefix(relativePath, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, relativePath[2:])
		}
	}
	if filepath.IsAbs(relativePath) {
		return relativePath
	}

	baseDir := filepath.Dir(scriptPath)
	if baseDir == "." {
		return relativePath
	}

	return filepath.Join(baseDir, relativePath)
}
