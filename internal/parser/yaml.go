package parser

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"mtc/internal/domain"
)

// YAMLParser parses YAML test case documents
type YAMLParser struct{}

// NewYAMLParser creates a new YAMLParser
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse decodes content and validates the result.
// Returns *domain.ParseError for malformed text and *domain.ValidationError for rule violations.
func (p *YAMLParser) Parse(content string) (*domain.TestCase, error) {
	var tc domain.TestCase
	dec := yaml.NewDecoder(strings.NewReader(content))
	if err := dec.Decode(&tc); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("document is empty")
		}
		return nil, &domain.ParseError{Err: err}
	}
	// Exactly one document per file
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errors.New("expected a single YAML document")
		}
		return nil, &domain.ParseError{Err: err}
	}

	if err := Validate(&tc); err != nil {
		return nil, err
	}
	return &tc, nil
}

// Validate checks tc against the schema and reports the first rule it breaks
func Validate(tc *domain.TestCase) error {
	required := []struct {
		field string
		value string
	}{
		{"id", tc.ID},
		{"name", tc.Name},
		{"platform", tc.Platform},
		{"description", tc.Description},
	}
	for _, r := range required {
		if isBlank(r.value) {
			return invalid("%s must not be empty", r.field)
		}
	}

	if !slices.Contains(domain.Priorities, strings.ToLower(tc.Priority)) {
		return invalid("priority must be one of: %s", strings.Join(domain.Priorities, ", "))
	}

	if len(tc.Steps) == 0 {
		return invalid("steps must not be empty")
	}
	for i, step := range tc.Steps {
		if isBlank(step.Action) {
			return invalid("Step %d: action must not be empty", i+1)
		}
		if isBlank(step.Expected) {
			return invalid("Step %d: expected must not be empty", i+1)
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func invalid(format string, args ...any) error {
	return &domain.ValidationError{Reason: fmt.Sprintf(format, args...)}
}
