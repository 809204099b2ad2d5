package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtc/internal/domain"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		full := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0644))
	}
}

func TestScanner_Scan(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, map[string]string{
		"b.yaml":          "x",
		"a.yml":           "x",
		"c.yaml":          "x",
		"notes.txt":       "x",
		"README.md":       "x",
		"nested/d.yaml":   "x",
		"archive.yaml.bk": "x",
	})
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "dir.yaml"), 0755))

	scanner := NewScanner()

	t.Run("finds documents sorted by filename", func(t *testing.T) {
		results, err := scanner.Scan(tmpDir)
		require.NoError(t, err)

		assert.Equal(t, []string{
			filepath.Join(tmpDir, "a.yml"),
			filepath.Join(tmpDir, "b.yaml"),
			filepath.Join(tmpDir, "c.yaml"),
		}, results)
	})

	t.Run("returns not found for non-existent directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "missing"))
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("returns io error for file instead of directory", func(t *testing.T) {
		_, err := scanner.Scan(filepath.Join(tmpDir, "notes.txt"))
		assert.ErrorIs(t, err, domain.ErrIO)
	})

	t.Run("empty directory", func(t *testing.T) {
		results, err := scanner.Scan(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
