package engine

import (
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/jeduden/lintcoach/internal/log"
)

// ignoreMatcher holds the compiled ignore patterns.
type ignoreMatcher struct {
	globs []glob.Glob
}

// compileIgnore compiles patterns. Invalid patterns are skipped and
// reported through logger.
func compileIgnore(patterns []string, logger *log.Logger) *ignoreMatcher {
	m := &ignoreMatcher{}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			logger.Warnf("skipping invalid ignore pattern %q: %v", p, err)
			continue
		}
		m.globs = append(m.globs, g)
	}
	return m
}

// Match reports whether path matches any pattern, tried against the path
// as written, its cleaned form and its base name.
func (m *ignoreMatcher) Match(path string) bool {
	if path == "" {
		return false
	}
	clean := filepath.Clean(path)
	base := filepath.Base(path)
	for _, g := range m.globs {
		if g.Match(path) || g.Match(clean) || g.Match(base) {
			return true
		}
	}
	return false
}
