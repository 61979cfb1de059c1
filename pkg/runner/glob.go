package runner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// globSet matches slash-separated relative paths against compiled patterns.
type globSet struct {
	globs []glob.Glob
}

func compileGlobs(patterns []string) (*globSet, error) {
	set := &globSet{globs: make([]glob.Glob, 0, len(patterns))}
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("compile glob %q: %w", pattern, err)
		}
		set.globs = append(set.globs, g)

		// "**/name" should also match "name" at the top level.
		if rest, ok := strings.CutPrefix(pattern, "**/"); ok {
			if g, err := glob.Compile(rest, '/'); err == nil {
				set.globs = append(set.globs, g)
			}
		}
	}
	return set, nil
}

func (s *globSet) empty() bool {
	return s == nil || len(s.globs) == 0
}

// match reports whether relPath, or its base name, matches any pattern.
// Directories are also tried with a trailing slash so "vendor/**" prunes
// the vendor directory itself.
func (s *globSet) match(relPath string, isDir bool) bool {
	if s.empty() {
		return false
	}

	relPath = filepath.ToSlash(relPath)
	candidates := []string{relPath, filepath.Base(relPath)}
	if isDir {
		candidates = append(candidates, relPath+"/")
	}

	for _, g := range s.globs {
		for _, c := range candidates {
			if g.Match(c) {
				return true
			}
		}
	}
	return false
}
