package domain

import "strings"

// DefaultExtension is appended to filenames that carry no recognized extension
const DefaultExtension = ".yaml"

// Extensions are the file extensions recognized as test case documents
var Extensions = []string{".yaml", ".yml"}

// Priorities are the accepted priority values, compared case-insensitively
var Priorities = []string{"critical", "high", "medium", "low"}

// TestCase represents a single test case document
type TestCase struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Platform      string   `yaml:"platform"`
	Priority      string   `yaml:"priority"`
	Tags          []string `yaml:"tags"`
	Author        string   `yaml:"author"`
	CreatedAt     string   `yaml:"created_at"`
	LinkedFeature *string  `yaml:"linked_feature,omitempty"`
	LastRunStatus *string  `yaml:"last_run_status,omitempty"`
	Description   string   `yaml:"description"`
	Preconditions []string `yaml:"preconditions,omitempty"`
	Steps         []Step   `yaml:"steps"`
}

// Step is one action and its expected result
type Step struct {
	Action   string `yaml:"action"`
	Expected string `yaml:"expected"`
}

// MatchesPlatform reports whether the test case targets platform, ignoring case
func (tc *TestCase) MatchesPlatform(platform string) bool {
	return strings.EqualFold(tc.Platform, platform)
}

// HasDocumentExtension reports whether name ends in one of Extensions
func HasDocumentExtension(name string) bool {
	for _, ext := range Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
