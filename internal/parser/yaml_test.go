package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"mtc/internal/domain"
)

const validDoc = `id: login-001
name: Login with valid credentials
platform: ios
priority: High
tags: [auth, smoke]
author: qa
created_at: "2024-05-01"
description: User signs in with a known account
preconditions:
  - App is installed
steps:
  - action: Tap "Sign in"
    expected: Sign in form is shown
  - action: Submit credentials
    expected: Home screen is shown
`

func TestYAMLParser_Parse(t *testing.T) {
	p := NewYAMLParser()

	tc, err := p.Parse(validDoc)
	require.NoError(t, err)

	assert.Equal(t, "login-001", tc.ID)
	assert.Equal(t, "ios", tc.Platform)
	assert.Equal(t, "High", tc.Priority)
	assert.Equal(t, []string{"auth", "smoke"}, tc.Tags)
	assert.Equal(t, "2024-05-01", tc.CreatedAt)
	assert.Equal(t, []string{"App is installed"}, tc.Preconditions)
	assert.Nil(t, tc.LinkedFeature)
	assert.Nil(t, tc.LastRunStatus)
	require.Len(t, tc.Steps, 2)
	assert.Equal(t, "Submit credentials", tc.Steps[1].Action)
}

func TestYAMLParser_Parse_OptionalFields(t *testing.T) {
	doc := validDoc + "linked_feature: AUTH-12\nlast_run_status: passed\n"

	tc, err := NewYAMLParser().Parse(doc)
	require.NoError(t, err)
	require.NotNil(t, tc.LinkedFeature)
	require.NotNil(t, tc.LastRunStatus)
	assert.Equal(t, "AUTH-12", *tc.LinkedFeature)
	assert.Equal(t, "passed", *tc.LastRunStatus)
}

func TestYAMLParser_Parse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		replace [2]string
		reason  string
	}{
		{"empty id", [2]string{"id: login-001", "id: ''"}, "id must not be empty"},
		{"blank id", [2]string{"id: login-001", "id: '   '"}, "id must not be empty"},
		{"missing name", [2]string{"name: Login with valid credentials\n", ""}, "name must not be empty"},
		{"empty platform", [2]string{"platform: ios", "platform: ''"}, "platform must not be empty"},
		{"missing description", [2]string{"description: User signs in with a known account\n", ""}, "description must not be empty"},
		{"unknown priority", [2]string{"priority: High", "priority: urgent"}, "priority must be one of: critical, high, medium, low"},
		{"missing priority", [2]string{"priority: High\n", ""}, "priority must be one of: critical, high, medium, low"},
		{"empty action", [2]string{`action: Tap "Sign in"`, "action: ''"}, "Step 1: action must not be empty"},
		{"empty expected", [2]string{"expected: Home screen is shown", "expected: ' '"}, "Step 2: expected must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(validDoc, tt.replace[0], tt.replace[1], 1)
			require.NotEqual(t, validDoc, doc, "fixture replacement did not apply")

			_, err := NewYAMLParser().Parse(doc)
			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.reason, verr.Reason)
		})
	}
}

func TestYAMLParser_Parse_PriorityIgnoresCase(t *testing.T) {
	for _, priority := range []string{"critical", "HIGH", "Medium", "lOw"} {
		doc := strings.Replace(validDoc, "priority: High", "priority: "+priority, 1)
		_, err := NewYAMLParser().Parse(doc)
		assert.NoError(t, err, priority)
	}
}

func TestYAMLParser_Parse_EmptySteps(t *testing.T) {
	doc := validDoc[:strings.Index(validDoc, "steps:")] + "steps: []\n"

	_, err := NewYAMLParser().Parse(doc)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "steps must not be empty", verr.Reason)
}

func TestYAMLParser_Parse_FirstViolationWins(t *testing.T) {
	doc := "id: ''\nname: ''\npriority: nope\nsteps: []\n"

	_, err := NewYAMLParser().Parse(doc)
	require.Error(t, err)
	assert.Equal(t, "id must not be empty", err.Error())
}

func TestYAMLParser_Parse_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty document", ""},
		{"not yaml", "id: [unclosed"},
		{"scalar document", "just a string"},
		{"steps wrong shape", strings.Replace(validDoc, "steps:", "steps: nope\nold_steps:", 1)},
		{"second document", validDoc + "---\ngarbage: [\n"},
		{"second valid document", validDoc + "---\n" + validDoc},
		{"tags wrong shape", strings.Replace(validDoc, "tags: [auth, smoke]", "tags: {a: b}", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewYAMLParser().Parse(tt.content)
			var perr *domain.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Contains(t, err.Error(), "failed to parse YAML test case")
		})
	}
}

func TestTestCase_MarshalOmitsUnsetOptionals(t *testing.T) {
	tc := &domain.TestCase{
		ID:          "t1",
		Name:        "n",
		Platform:    "android",
		Priority:    "low",
		Tags:        []string{},
		Description: "d",
		Steps:       []domain.Step{{Action: "a", Expected: "e"}},
	}

	out, err := yaml.Marshal(tc)
	require.NoError(t, err)

	text := string(out)
	assert.NotContains(t, text, "linked_feature")
	assert.NotContains(t, text, "last_run_status")
	assert.NotContains(t, text, "preconditions")
	assert.Contains(t, text, "tags: []")

	parsed, err := NewYAMLParser().Parse(text)
	require.NoError(t, err)
	assert.Equal(t, tc.ID, parsed.ID)
}
