package discovery

import (
	"path/filepath"
	"strings"

	"mtc/internal/domain"
)

// Filter narrows scan and load results
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters document paths by filename pattern.
// Supports wildcards like "login-*.yaml" or "*smoke*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(paths []string, pattern string) []string {
	if pattern == "" {
		return paths
	}

	var filtered []string
	for _, path := range paths {
		name := filepath.Base(path)
		if matchName(name, pattern) {
			filtered = append(filtered, path)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// Loose match: every literal part appears in order
	rest := name
	found := false
	for _, part := range strings.Split(pattern, "*") {
		if part == "" || strings.Contains(part, "?") {
			continue
		}
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
		found = true
	}
	return found
}

// FilterByPlatform keeps documents whose platform equals platform, ignoring case.
// An empty platform keeps everything.
func (f *Filter) FilterByPlatform(docs []domain.Document, platform string) []domain.Document {
	if platform == "" {
		return docs
	}

	var filtered []domain.Document
	for _, doc := range docs {
		if doc.TestCase.MatchesPlatform(platform) {
			filtered = append(filtered, doc)
		}
	}
	return filtered
}
