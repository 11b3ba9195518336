// Package discovery locates per-run data files for batch comparison
// studies, e.g. a grid-convergence layout where each simulation writes
// the same file name into its own subdirectory.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// RunFile is a discovered data file labeled by its run directory.
type RunFile struct {
	Run  string
	Path string
}

// FindRunFiles returns files matching the glob pattern directly under each
// immediate subdirectory of base, sorted by run name for consistent
// ordering across invocations.
func FindRunFiles(base, pattern string) ([]RunFile, error) {
	entries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", base, err)
	}
	var out []RunFile
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		matches, err := filepath.Glob(filepath.Join(base, e.Name(), pattern))
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		sort.Strings(matches)
		for _, m := range matches {
			out = append(out, RunFile{Run: e.Name(), Path: m})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Run < out[j].Run })
	return out, nil
}
