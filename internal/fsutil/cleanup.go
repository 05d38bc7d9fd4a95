// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// RemoveGlob removes every entry matching pattern, interpreted relative to
// dir unless it is absolute. It returns the removed paths in match order.
//
// A pattern that matches nothing, including one whose directory does not
// exist, removes nothing and is not an error. Entries are removed with
// os.Remove, so a non-empty directory among the matches fails the call.
func RemoveGlob(dir, pattern string) ([]string, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("invalid cleanup pattern %q: pattern is empty", pattern)
	}
	if !filepath.IsAbs(pattern) && dir != "" {
		pattern = filepath.Join(dir, pattern)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid cleanup pattern %q: %w", pattern, err)
	}

	removed := make([]string, 0, len(matches))
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return removed, err
		}
		removed = append(removed, m)
	}
	return removed, nil
}
