// Package fsutil provides file system utility functions for the CLI layer.
// The parsing core never touches the filesystem; discovery happens here,
// on the caller's side of that boundary.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindConfFiles resolves each root to the set of .conf files beneath it.
// A root that is itself a file is taken as-is, whatever its extension, so
// explicitly named files are never silently skipped. The returned paths
// are deduplicated and sorted.
func FindConfFiles(roots []string) ([]string, error) {
	seen := map[string]struct{}{}
	var files []string

	add := func(path string) {
		if _, dup := seen[path]; dup {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, root := range roots {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("scan root %s: %w", root, err)
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ".conf") {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
