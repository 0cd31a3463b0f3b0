package fsutils

import (
	"os"
	"path/filepath"
	"strings"
)

var osUserHomeDir = os.UserHomeDir

// ExpandHome expands leading ~ to the user's home directory.
func ExpandHome(p string) string {
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := osUserHomeDir()
		if err == nil {
			if p == "~" {
				return home
			}
			return filepath.Join(home, strings.TrimPrefix(p, "~/"))
		}
	}
	return p
}

// IsWithin reports whether p is root or lies below it.
// Both paths are compared in cleaned form.
func IsWithin(root, p string) bool {
	rel, err := filepath.Rel(filepath.Clean(root), filepath.Clean(p))
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// WithTrailingSeparator returns p ending with exactly one separator.
func WithTrailingSeparator(p string) string {
	sep := string(filepath.Separator)
	trimmed := strings.TrimRight(p, sep)
	return trimmed + sep
}
