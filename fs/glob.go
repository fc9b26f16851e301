/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package fs

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand resolves patterns relative to rootDir. Patterns without glob
// characters are returned as-is, so missing files surface when read.
// Glob patterns support ** and yield sorted matches; duplicates across
// patterns are dropped.
func Expand(filesystem FileSystem, rootDir string, patterns ...string) ([]string, error) {
	var result []string
	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(rootDir, pattern)
		}

		if !containsGlob(pattern) {
			result = appendUnique(result, pattern)
			continue
		}

		matches, err := expandGlob(filesystem, pattern)
		if err != nil {
			return nil, err
		}
		result = appendUnique(result, matches...)
	}
	return result, nil
}

func appendUnique(paths []string, add ...string) []string {
	for _, p := range add {
		if !slices.Contains(paths, p) {
			paths = append(paths, p)
		}
	}
	return paths
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

func expandGlob(filesystem FileSystem, pattern string) ([]string, error) {
	// Walk from the longest non-glob prefix.
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string
	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))
		if ok, _ := doublestar.Match(relPattern, relPath); ok {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(matches)
	return matches, nil
}
