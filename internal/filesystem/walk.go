package filesystem

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// WalkOptions configures directory traversal behavior
type WalkOptions struct {
	IgnoreDirs     []string // Directory names to skip
	IgnorePatterns []string // File patterns to skip (e.g., "*.tmp")
	SkipHidden     bool     // Skip dot-files and dot-directories below the root
}

// Walk traverses a directory tree with configurable ignore rules.
// The visitor is called for each file and directory, the root included.
// Return filepath.SkipDir from visitor to skip a directory.
func Walk(rootPath string, opts WalkOptions, visitor func(path string, d fs.DirEntry) error) error {
	return filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path != rootPath {
			if opts.SkipHidden && strings.HasPrefix(d.Name(), ".") {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				for _, ignore := range opts.IgnoreDirs {
					if d.Name() == ignore {
						return filepath.SkipDir
					}
				}
			}
		}

		if !d.IsDir() {
			for _, pattern := range opts.IgnorePatterns {
				if matched, _ := filepath.Match(pattern, d.Name()); matched {
					return nil
				}
			}
		}

		return visitor(path, d)
	})
}

// Dirs returns rootPath and every directory below it, in lexical walk order.
func Dirs(rootPath string, opts WalkOptions) ([]string, error) {
	var dirs []string
	err := Walk(rootPath, opts, func(path string, d fs.DirEntry) error {
		if d.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", rootPath, err)
	}
	return dirs, nil
}

// Files lists the regular files directly inside dir whose names end with ext.
// Subdirectories are never descended into. The result is sorted by name.
func Files(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}
