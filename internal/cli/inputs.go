package cli

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	cp "github.com/otiai10/copy"
)

// BackupSuffix is appended to a file's path to name its backup.
const BackupSuffix = ".bak"

// ExpandInputs resolves glob patterns to absolute, de-duplicated, sorted file
// paths. Relative patterns are resolved against root. Directories are never
// returned and a pattern that matches nothing contributes nothing.
func ExpandInputs(root string, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		full := pattern
		if !filepath.IsAbs(full) {
			full = filepath.Join(root, pattern)
		}
		matches, err := doublestar.FilepathGlob(full, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			abs, err := filepath.Abs(match)
			if err != nil {
				return nil, err
			}
			if !seen[abs] {
				seen[abs] = true
				files = append(files, abs)
			}
		}
	}
	slices.Sort(files)
	return files, nil
}

// WithoutBackups returns files minus the backups written by earlier runs.
func WithoutBackups(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if !strings.HasSuffix(f, BackupSuffix) {
			out = append(out, f)
		}
	}
	return out
}

func backupFile(path string) (string, error) {
	dst := path + BackupSuffix
	if err := cp.Copy(path, dst); err != nil {
		return "", err
	}
	return dst, nil
}
