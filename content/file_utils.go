package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// OpenPath opens path, resolving relative paths against the working directory.
func OpenPath(path string) (*os.File, error) {
	resolved := path

	if !filepath.IsAbs(path) {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("could not resolve %s: %w", path, err)
		}

		resolved = filepath.Join(wd, path)
	}

	slog.Info("Opening file", "path", resolved)

	file, err := os.Open(resolved)
	if err != nil {
		return nil, fmt.Errorf("could not open file %s: %w", path, err)
	}

	return file, nil
}
