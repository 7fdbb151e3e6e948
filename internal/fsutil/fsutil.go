// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// FindFilesByExtension recursively searches root for files whose name ends
// with one of extensions, compared case-insensitively. Paths are returned in
// lexical order so callers see a stable sequence.
func FindFilesByExtension(root string, extensions ...string) ([]string, error) {
	if len(extensions) == 0 {
		panic("at least one extension is required")
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := strings.ToLower(d.Name())
		for _, ext := range extensions {
			if strings.HasSuffix(name, strings.ToLower(ext)) {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}
