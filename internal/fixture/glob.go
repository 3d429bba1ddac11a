package fixture

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand resolves include glob patterns (doublestar syntax, e.g.
// "fixtures/**/*.toml") to a sorted, de-duplicated list of files, dropping
// any path matched by an exclude pattern. A pattern without glob
// metacharacters that names an existing file is returned as is.
func Expand(include, exclude []string) ([]string, error) {
	for _, pattern := range exclude {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q", pattern)
		}
	}

	seen := make(map[string]bool)
	var out []string
	for _, pattern := range include {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", pattern, err)
		}
		for _, path := range matches {
			if seen[path] || excluded(path, exclude) {
				continue
			}
			seen[path] = true
			out = append(out, path)
		}
	}
	sort.Strings(out)
	return out, nil
}

func excluded(path string, exclude []string) bool {
	for _, pattern := range exclude {
		if matched, _ := doublestar.PathMatch(pattern, path); matched {
			return true
		}
	}
	return false
}
