package discovery

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtc/internal/logging"
	"mtc/internal/parser"
)

const goodDoc = `id: t1
name: First
platform: ios
priority: low
tags: []
author: qa
created_at: today
description: d
steps:
  - action: a
    expected: e
`

func TestLoader_LoadAll(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"a.yaml": goodDoc,
		"b.yaml": "id: [broken",
		"c.yaml": "id: t3\nname: no steps\nplatform: ios\npriority: low\ndescription: d\nsteps: []\n",
	})

	var logs bytes.Buffer
	logging.Init(slog.LevelDebug, "text", &logs)

	loader := NewLoader(parser.NewYAMLParser())
	paths := []string{
		filepath.Join(tmpDir, "a.yaml"),
		filepath.Join(tmpDir, "b.yaml"),
		filepath.Join(tmpDir, "c.yaml"),
		filepath.Join(tmpDir, "gone.yaml"),
	}

	docs := loader.LoadAll(paths)
	require.Len(t, docs, 1)
	assert.Equal(t, "t1", docs[0].TestCase.ID)
	assert.Equal(t, "a.yaml", docs[0].FileName)
	assert.Equal(t, goodDoc, docs[0].Raw)

	assert.Contains(t, logs.String(), "b.yaml")
	assert.Contains(t, logs.String(), "steps must not be empty")
	assert.Contains(t, logs.String(), "component=discovery")
}

func TestLoader_LoadOne(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{"a.yaml": "id: ''\n"})

	res := NewLoader(parser.NewYAMLParser()).LoadOne(filepath.Join(tmpDir, "a.yaml"))
	require.Error(t, res.Err)
	assert.Equal(t, "id must not be empty", res.Err.Error())
}
